package employee

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

const (
	defaultListPageSize = 50
	maxListPageSize     = 200
)

// Service は社員台帳に関するユースケースをまとめます。社員の作成は入社連絡票の承認でのみ行われます。
type Service struct {
	repo        Repository
	assignments AssignmentRepository
	housing     HousingReleaser
	clock       Clock
	tx          TransactionManager
}

// UseCase は社員ユースケースの公開インターフェースです。
type UseCase interface {
	GetEmployee(ctx context.Context, in GetEmployeeInput) (*EmployeeDetail, error)
	ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error)
	UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error)
	TerminateEmployee(ctx context.Context, in TerminateEmployeeInput) (*EmployeeDetail, error)
}

// NewService は Service を生成します。housing が nil の場合、退社時の社宅返却は行いません。
func NewService(repo Repository, assignments AssignmentRepository, housing HousingReleaser, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, assignments: assignments, housing: housing, clock: clock, tx: tx}
}

// EmployeeDetail は社員と配属情報の組です。
type EmployeeDetail struct {
	Employee   *Employee
	Assignment Assignment
}

// UpdateEmployeeInput は社員更新時の入力です。nil のフィールドは変更しません。
type UpdateEmployeeInput struct {
	ID            string
	FullName      *string
	NameKana      *string
	PostalCode    *string
	Address       *string
	BuildingName  *string
	VisaType      *string
	VisaExpiry    *time.Time
	VisaExpirySet bool
	Office        *string
	Status        *Status
	HireDate      *time.Time
	HireDateSet   bool
}

// TerminateEmployeeInput は退社処理の入力です。TerminationDate が nil の場合は当日を使います。
type TerminateEmployeeInput struct {
	ID              string
	TerminationDate *time.Time
}

// GetEmployeeInput は社員取得時の入力です。
type GetEmployeeInput struct {
	ID string
}

// ListEmployeesInput は一覧取得時の入力です。
type ListEmployeesInput struct {
	PageSize       int
	PageToken      string
	Status         *Status
	EmploymentType *EmploymentType
	// Search は氏名・カナ・社員番号の部分一致検索語です。
	Search *string
}

// ListEmployeesResult は一覧取得結果を表します。
type ListEmployeesResult struct {
	Employees     []*Employee
	NextPageToken string
}

// GetEmployee は社員と配属情報を取得します。
func (s *Service) GetEmployee(ctx context.Context, in GetEmployeeInput) (*EmployeeDetail, error) {
	id, err := normalizeID(in.ID)
	if err != nil {
		return nil, err
	}

	var detail *EmployeeDetail
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		assignment, err := s.assignments.FindAssignmentByEmployeeID(txCtx, found.ID)
		if err != nil {
			return err
		}
		detail = &EmployeeDetail{Employee: found, Assignment: assignment}
		return nil
	}); err != nil {
		return nil, err
	}

	return detail, nil
}

// ListEmployees は社員の一覧を社員番号順に取得します。
func (s *Service) ListEmployees(ctx context.Context, in ListEmployeesInput) (*ListEmployeesResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	var statusPtr *Status
	if in.Status != nil {
		status, ok := normalizeStatus(*in.Status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		statusPtr = &status
	}

	var typePtr *EmploymentType
	if in.EmploymentType != nil {
		if !in.EmploymentType.Valid() {
			return nil, ErrInvalidEmploymentType
		}
		employmentType := *in.EmploymentType
		typePtr = &employmentType
	}

	var (
		employees []*Employee
		nextToken string
	)

	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		resultEmployees, token, err := s.repo.List(txCtx, ListEmployeesFilter{
			EmploymentType: typePtr,
			Status:         statusPtr,
			Search:         normalizeSearch(in.Search),
			Limit:          limit,
			Offset:         offset,
		})
		if err != nil {
			return err
		}
		employees = resultEmployees
		nextToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &ListEmployeesResult{Employees: employees, NextPageToken: nextToken}, nil
}

// UpdateEmployee は社員情報を部分更新します。退社は TerminateEmployee を使用してください。
func (s *Service) UpdateEmployee(ctx context.Context, in UpdateEmployeeInput) (*Employee, error) {
	id, err := normalizeID(in.ID)
	if err != nil {
		return nil, err
	}

	var nextStatus *Status
	if in.Status != nil {
		status, ok := normalizeStatus(*in.Status)
		if !ok || status == StatusTerminated {
			return nil, ErrInvalidStatus
		}
		nextStatus = &status
	}

	var updated *Employee
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		if in.FullName != nil {
			name := strings.TrimSpace(*in.FullName)
			if name == "" {
				return ErrInvalidFullName
			}
			existing.FullName = name
		}

		for _, f := range []struct {
			dst *string
			src *string
		}{
			{&existing.NameKana, in.NameKana},
			{&existing.PostalCode, in.PostalCode},
			{&existing.Address, in.Address},
			{&existing.BuildingName, in.BuildingName},
			{&existing.VisaType, in.VisaType},
			{&existing.Office, in.Office},
		} {
			if f.src != nil {
				*f.dst = strings.TrimSpace(*f.src)
			}
		}

		if in.VisaExpirySet {
			existing.VisaExpiry = normalizeDate(in.VisaExpiry)
		}

		if in.HireDateSet {
			existing.HireDate = normalizeDate(in.HireDate)
		}

		if nextStatus != nil {
			if existing.Status == StatusTerminated {
				return ErrAlreadyTerminated
			}
			existing.Status = *nextStatus
		}

		if err := validateEmploymentPeriod(existing.HireDate, existing.TerminationDate); err != nil {
			return err
		}

		existing.UpdatedAt = s.clock.Now()

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// TerminateEmployee は社員を退社扱いにし、配属を終了し、社宅の入居枠を返却します。
func (s *Service) TerminateEmployee(ctx context.Context, in TerminateEmployeeInput) (*EmployeeDetail, error) {
	id, err := normalizeID(in.ID)
	if err != nil {
		return nil, err
	}

	var detail *EmployeeDetail
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if existing.Status == StatusTerminated {
			return ErrAlreadyTerminated
		}

		now := s.clock.Now()
		terminationDate := normalizeDate(in.TerminationDate)
		if terminationDate == nil {
			terminationDate = normalizeDate(&now)
		}
		if err := validateEmploymentPeriod(existing.HireDate, terminationDate); err != nil {
			return err
		}

		existing.Status = StatusTerminated
		existing.TerminationDate = terminationDate
		existing.UpdatedAt = now

		updated, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}

		assignment, err := s.assignments.EndAssignment(txCtx, updated.ID, *terminationDate, now)
		if err != nil {
			return fmt.Errorf("end assignment: %w", err)
		}

		if s.housing != nil && updated.HousingType == HousingShataku && updated.ApartmentID != nil {
			if _, err := s.housing.Release(txCtx, *updated.ApartmentID); err != nil {
				return fmt.Errorf("release apartment: %w", err)
			}
		}

		detail = &EmployeeDetail{Employee: updated, Assignment: assignment}
		return nil
	}); err != nil {
		return nil, err
	}

	return detail, nil
}

func normalizeID(raw string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("id: %w", ErrInvalidID)
	}
	return parsed.String(), nil
}

func normalizeDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	normalized := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &normalized
}

func validateEmploymentPeriod(hireDate, terminationDate *time.Time) error {
	if hireDate == nil || terminationDate == nil {
		return nil
	}
	if terminationDate.Before(*hireDate) {
		return ErrInvalidDateRange
	}
	return nil
}

// normalizeStatus は在籍状態の前後空白を除去します。状態は自由記述で、空文字のみを拒否します。
func normalizeStatus(status Status) (Status, bool) {
	trimmed := Status(strings.TrimSpace(string(status)))
	return trimmed, trimmed != ""
}

func normalizeSearch(raw *string) *string {
	if raw == nil {
		return nil
	}
	term := strings.TrimSpace(*raw)
	if term == "" {
		return nil
	}
	return &term
}

func normalizePageSize(pageSize int) (int, error) {
	if pageSize <= 0 {
		return defaultListPageSize, nil
	}
	if pageSize > maxListPageSize {
		return 0, ErrInvalidPageSize
	}
	return pageSize, nil
}

func parsePageToken(token string) (int, error) {
	if strings.TrimSpace(token) == "" {
		return 0, nil
	}

	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, ErrInvalidPageToken
	}

	return offset, nil
}
