package handler

import (
	"context"
	"slices"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/staffing-workflow/internal/adapters/grpc/staffingv1"
	"github.com/ogurasousui/staffing-workflow/internal/core/employee"
)

// EmployeeGrpcHandler は EmployeeService の gRPC 実装です。
type EmployeeGrpcHandler struct {
	svc employee.UseCase
	staffingv1.UnimplementedEmployeeServiceServer
}

// NewEmployeeGrpcHandler は EmployeeGrpcHandler を生成します。
func NewEmployeeGrpcHandler(svc employee.UseCase) *EmployeeGrpcHandler {
	return &EmployeeGrpcHandler{svc: svc}
}

// GetEmployee は社員と配属情報を取得します。
func (h *EmployeeGrpcHandler) GetEmployee(ctx context.Context, req *staffingv1.GetEmployeeRequest) (*staffingv1.GetEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	detail, err := h.svc.GetEmployee(ctx, employee.GetEmployeeInput{ID: req.ID})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.GetEmployeeResponse{
		Employee:   toProtoEmployee(detail.Employee),
		Assignment: toProtoAssignment(detail.Assignment),
	}, nil
}

// ListEmployees は社員の一覧を取得します。
func (h *EmployeeGrpcHandler) ListEmployees(ctx context.Context, req *staffingv1.ListEmployeesRequest) (*staffingv1.ListEmployeesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	in := employee.ListEmployeesInput{
		PageSize:  int(req.PageSize),
		PageToken: req.PageToken,
		Search:    optionalString(req.Search),
	}
	if req.Status != "" {
		s := employee.Status(req.Status)
		in.Status = &s
	}
	if req.EmploymentType != "" {
		t := employee.EmploymentType(req.EmploymentType)
		in.EmploymentType = &t
	}

	result, err := h.svc.ListEmployees(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	employees := make([]*staffingv1.Employee, 0, len(result.Employees))
	for _, e := range result.Employees {
		employees = append(employees, toProtoEmployee(e))
	}

	return &staffingv1.ListEmployeesResponse{Employees: employees, NextPageToken: result.NextPageToken}, nil
}

// UpdateEmployee は社員情報を部分更新します。
func (h *EmployeeGrpcHandler) UpdateEmployee(ctx context.Context, req *staffingv1.UpdateEmployeeRequest) (*staffingv1.UpdateEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}

	for _, field := range req.ClearFields {
		if !slices.Contains([]string{"visa_expiry", "hire_date"}, field) {
			return nil, invalidField("clear_fields", "unsupported field "+field)
		}
	}

	in := employee.UpdateEmployeeInput{
		ID:           req.ID,
		FullName:     req.FullName,
		NameKana:     req.NameKana,
		PostalCode:   req.PostalCode,
		Address:      req.Address,
		BuildingName: req.BuildingName,
		VisaType:     req.VisaType,
		Office:       req.Office,
	}
	if req.Status != nil {
		s := employee.Status(*req.Status)
		in.Status = &s
	}

	var err error
	if in.VisaExpiry, in.VisaExpirySet, err = parseDatePatch("visa_expiry", req.VisaExpiry, req.ClearFields); err != nil {
		return nil, err
	}
	if in.HireDate, in.HireDateSet, err = parseDatePatch("hire_date", req.HireDate, req.ClearFields); err != nil {
		return nil, err
	}

	updated, err := h.svc.UpdateEmployee(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.UpdateEmployeeResponse{Employee: toProtoEmployee(updated)}, nil
}

// TerminateEmployee は社員を退社扱いにします。termination_date を省略した場合は当日です。
func (h *EmployeeGrpcHandler) TerminateEmployee(ctx context.Context, req *staffingv1.TerminateEmployeeRequest) (*staffingv1.TerminateEmployeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}

	terminationDate, err := parseDate("termination_date", req.TerminationDate)
	if err != nil {
		return nil, err
	}

	detail, err := h.svc.TerminateEmployee(ctx, employee.TerminateEmployeeInput{ID: req.ID, TerminationDate: terminationDate})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.TerminateEmployeeResponse{
		Employee:   toProtoEmployee(detail.Employee),
		Assignment: toProtoAssignment(detail.Assignment),
	}, nil
}

func toProtoEmployee(e *employee.Employee) *staffingv1.Employee {
	if e == nil {
		return nil
	}

	return &staffingv1.Employee{
		ID:              e.ID,
		EmployeeNumber:  e.EmployeeNumber,
		JoiningNoticeID: derefString(e.JoiningNoticeID),
		CandidateID:     derefString(e.CandidateID),
		FullName:        e.FullName,
		NameKana:        e.NameKana,
		Gender:          e.Gender,
		Nationality:     e.Nationality,
		BirthDate:       formatDate(e.BirthDate),
		PostalCode:      e.PostalCode,
		Address:         e.Address,
		BuildingName:    e.BuildingName,
		VisaType:        e.VisaType,
		VisaExpiry:      formatDate(e.VisaExpiry),
		EmploymentType:  string(e.EmploymentType),
		HousingType:     string(e.HousingType),
		ApartmentID:     derefString(e.ApartmentID),
		Office:          e.Office,
		Status:          string(e.Status),
		HireDate:        formatDate(e.HireDate),
		TerminationDate: formatDate(e.TerminationDate),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func toProtoAssignment(a employee.Assignment) *staffingv1.Assignment {
	switch v := a.(type) {
	case *employee.HakenAssignment:
		if v == nil {
			return nil
		}
		return &staffingv1.Assignment{Haken: &staffingv1.HakenAssignment{
			ID:              v.ID,
			EmployeeID:      v.EmployeeID,
			ClientCompanyID: derefString(v.ClientCompanyID),
			ClientCompany:   v.ClientCompany,
			Location:        v.Location,
			Line:            v.Line,
			JobDescription:  v.JobDescription,
			HourlyRate:      v.HourlyRate,
			BillingRate:     v.BillingRate,
			MoveInDate:      formatDate(v.MoveInDate),
			StartDate:       formatDate(v.StartDate),
			EndDate:         formatDate(v.EndDate),
			Status:          string(v.Status),
			CreatedAt:       v.CreatedAt,
			UpdatedAt:       v.UpdatedAt,
		}}
	case *employee.UkeoiAssignment:
		if v == nil {
			return nil
		}
		return &staffingv1.Assignment{Ukeoi: &staffingv1.UkeoiAssignment{
			ID:              v.ID,
			EmployeeID:      v.EmployeeID,
			JobType:         v.JobType,
			HourlyRate:      v.HourlyRate,
			MoveInDate:      formatDate(v.MoveInDate),
			StartDate:       formatDate(v.StartDate),
			EndDate:         formatDate(v.EndDate),
			BankAccountName: v.BankAccountName,
			BankName:        v.BankName,
			BranchNumber:    v.BranchNumber,
			BranchName:      v.BranchName,
			AccountNumber:   v.AccountNumber,
			Status:          string(v.Status),
			CreatedAt:       v.CreatedAt,
			UpdatedAt:       v.UpdatedAt,
		}}
	default:
		return nil
	}
}
