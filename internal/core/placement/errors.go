package placement

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidID               = errors.New("placement: invalid id")
	ErrInvalidActor            = errors.New("placement: actor is required")
	ErrInvalidOutcome          = errors.New("placement: outcome must be accepted or rejected")
	ErrInvalidEmploymentType   = errors.New("placement: invalid employment type")
	ErrInvalidHousingType      = errors.New("placement: invalid housing type")
	ErrInvalidRate             = errors.New("placement: rate must not be negative")
	ErrInvalidStatus           = errors.New("placement: invalid status")
	ErrInvalidPageSize         = errors.New("placement: invalid page size")
	ErrInvalidPageToken        = errors.New("placement: invalid page token")
	ErrRejectionReasonRequired = errors.New("placement: rejection reason is required")
	ErrCompanyRequired         = errors.New("placement: company id or name is required")
	ErrApplicationNotFound     = errors.New("placement: application not found")
	ErrNoticeNotFound          = errors.New("placement: joining notice not found")

	// ErrInvalidState は現在の状態では要求された遷移が許可されないことを表します。
	ErrInvalidState = errors.New("placement: invalid state")
	// ErrPreconditionFailed は関連エンティティが遷移の前提条件を満たさないことを表します。
	ErrPreconditionFailed = errors.New("placement: precondition failed")
	// ErrValidationFailed は提出時の業務ルール違反を表します。
	ErrValidationFailed = errors.New("placement: validation failed")
	// ErrConflict は同時更新による競合を表します。呼び出し側は最新状態を読み直して再試行できます。
	ErrConflict = errors.New("placement: concurrent modification")

	ErrPendingApplicationExists = fmt.Errorf("%w: candidate already has a pending application", ErrInvalidState)
)

// StateError は状態遷移が許可されなかったことを、現在の状態とともに表します。
type StateError struct {
	Kind       Kind
	Current    string
	Transition Transition
}

func (e *StateError) Error() string {
	return fmt.Sprintf("placement: %s in status %q does not allow %s", e.Kind, e.Current, e.Transition)
}

func (e *StateError) Unwrap() error {
	return ErrInvalidState
}

// FieldViolation は検証に失敗した項目です。
type FieldViolation struct {
	Field  string
	Reason string
}

// ValidationError は提出時に検出したすべての違反項目を保持します。
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return "placement: validation failed: " + strings.Join(fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// Fields は違反した項目名を返します。
func (e *ValidationError) Fields() []string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

func (e *ValidationError) add(field, reason string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Reason: reason})
}

func (e *ValidationError) orNil() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}

func preconditionf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPreconditionFailed, fmt.Sprintf(format, args...))
}
