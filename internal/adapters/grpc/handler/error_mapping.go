package handler

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/staffing-workflow/internal/core/apartment"
	"github.com/ogurasousui/staffing-workflow/internal/core/candidate"
	"github.com/ogurasousui/staffing-workflow/internal/core/company"
	"github.com/ogurasousui/staffing-workflow/internal/core/employee"
	"github.com/ogurasousui/staffing-workflow/internal/core/placement"
)

var invalidArgumentErrors = []error{
	candidate.ErrInvalidID,
	candidate.ErrInvalidFullName,
	candidate.ErrInvalidEmail,
	candidate.ErrInvalidStatus,
	candidate.ErrInvalidActor,
	candidate.ErrInvalidPageSize,
	candidate.ErrInvalidPageToken,
	company.ErrInvalidName,
	company.ErrInvalidCode,
	company.ErrInvalidType,
	company.ErrInvalidBillingRate,
	company.ErrInvalidStatus,
	company.ErrInvalidID,
	company.ErrInvalidPageSize,
	company.ErrInvalidPageToken,
	apartment.ErrInvalidID,
	apartment.ErrInvalidName,
	apartment.ErrInvalidCapacity,
	apartment.ErrInvalidRent,
	apartment.ErrInvalidPageSize,
	apartment.ErrInvalidPageToken,
	employee.ErrInvalidID,
	employee.ErrInvalidStatus,
	employee.ErrInvalidEmploymentType,
	employee.ErrInvalidPageSize,
	employee.ErrInvalidPageToken,
	employee.ErrInvalidDateRange,
	employee.ErrInvalidFullName,
	placement.ErrInvalidID,
	placement.ErrInvalidActor,
	placement.ErrInvalidOutcome,
	placement.ErrInvalidEmploymentType,
	placement.ErrInvalidHousingType,
	placement.ErrInvalidRate,
	placement.ErrInvalidStatus,
	placement.ErrInvalidPageSize,
	placement.ErrInvalidPageToken,
	placement.ErrRejectionReasonRequired,
	placement.ErrCompanyRequired,
}

var failedPreconditionErrors = []error{
	placement.ErrInvalidState,
	placement.ErrPreconditionFailed,
	apartment.ErrNoVacancy,
	apartment.ErrApartmentOccupied,
	apartment.ErrCapacityBelowOccupancy,
	employee.ErrAlreadyTerminated,
}

var alreadyExistsErrors = []error{
	company.ErrCodeAlreadyExists,
	employee.ErrEmployeeNumberExists,
	employee.ErrCandidateAlreadyEmployed,
	employee.ErrAssignmentAlreadyExists,
}

var notFoundErrors = []error{
	candidate.ErrCandidateNotFound,
	company.ErrCompanyNotFound,
	apartment.ErrApartmentNotFound,
	employee.ErrEmployeeNotFound,
	employee.ErrAssignmentNotFound,
	placement.ErrApplicationNotFound,
	placement.ErrNoticeNotFound,
}

// toStatusError はドメインエラーを gRPC ステータスへ変換します。
// 入力検証エラーは errdetails.BadRequest に違反項目を載せます。
func toStatusError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var validation *placement.ValidationError
	switch {
	case errors.As(err, &validation):
		return validationStatus(validation)
	case errors.Is(err, placement.ErrConflict):
		return status.Error(codes.Aborted, err.Error())
	case isAny(err, failedPreconditionErrors):
		return status.Error(codes.FailedPrecondition, err.Error())
	case isAny(err, invalidArgumentErrors):
		return status.Error(codes.InvalidArgument, err.Error())
	case isAny(err, alreadyExistsErrors):
		return status.Error(codes.AlreadyExists, err.Error())
	case isAny(err, notFoundErrors):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func validationStatus(v *placement.ValidationError) error {
	violations := make([]*errdetails.BadRequest_FieldViolation, 0, len(v.Violations))
	for _, fv := range v.Violations {
		violations = append(violations, &errdetails.BadRequest_FieldViolation{Field: fv.Field, Description: fv.Reason})
	}
	return badRequest(v.Error(), violations...)
}

// invalidField は単一項目の入力誤りを InvalidArgument として返します。
func invalidField(field, reason string) error {
	return badRequest(field+": "+reason, &errdetails.BadRequest_FieldViolation{Field: field, Description: reason})
}

func badRequest(message string, violations ...*errdetails.BadRequest_FieldViolation) error {
	st := status.New(codes.InvalidArgument, message)
	detailed, err := st.WithDetails(&errdetails.BadRequest{FieldViolations: violations})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}
