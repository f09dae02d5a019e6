package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/staffing-workflow/internal/adapters/grpc/staffingv1"
	"github.com/ogurasousui/staffing-workflow/internal/core/employee"
	"github.com/ogurasousui/staffing-workflow/internal/core/placement"
)

// PlacementGrpcHandler は PlacementService の gRPC 実装です。
type PlacementGrpcHandler struct {
	svc placement.UseCase
	staffingv1.UnimplementedPlacementServiceServer
}

// NewPlacementGrpcHandler は PlacementGrpcHandler を生成します。
func NewPlacementGrpcHandler(svc placement.UseCase) *PlacementGrpcHandler {
	return &PlacementGrpcHandler{svc: svc}
}

// PresentCandidate は候補者を企業へ紹介します。
func (h *PlacementGrpcHandler) PresentCandidate(ctx context.Context, req *staffingv1.PresentCandidateRequest) (*staffingv1.PresentCandidateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.svc.PresentCandidate(ctx, placement.PresentCandidateInput{
		CandidateID: req.CandidateID,
		CompanyID:   optionalString(req.CompanyID),
		CompanyName: req.CompanyName,
		Actor:       actor,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.PresentCandidateResponse{
		Application: toProtoApplication(result.Application),
		Candidate:   toProtoCandidate(result.Candidate),
	}, nil
}

// RecordResult は紹介結果を記録します。
func (h *PlacementGrpcHandler) RecordResult(ctx context.Context, req *staffingv1.RecordResultRequest) (*staffingv1.RecordResultResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.svc.RecordResult(ctx, placement.RecordResultInput{
		ApplicationID: req.ApplicationID,
		Outcome:       placement.ApplicationStatus(req.Outcome),
		Notes:         req.Notes,
		Actor:         actor,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.RecordResultResponse{
		Application: toProtoApplication(result.Application),
		Candidate:   toProtoCandidate(result.Candidate),
	}, nil
}

// GetApplication は応募を取得します。
func (h *PlacementGrpcHandler) GetApplication(ctx context.Context, req *staffingv1.GetApplicationRequest) (*staffingv1.GetApplicationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetApplication(ctx, placement.GetApplicationInput{ID: req.ID})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.GetApplicationResponse{Application: toProtoApplication(found)}, nil
}

// ListApplications は応募の一覧を取得します。
func (h *PlacementGrpcHandler) ListApplications(ctx context.Context, req *staffingv1.ListApplicationsRequest) (*staffingv1.ListApplicationsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var statusPtr *placement.ApplicationStatus
	if req.Status != "" {
		s := placement.ApplicationStatus(req.Status)
		statusPtr = &s
	}

	result, err := h.svc.ListApplications(ctx, placement.ListApplicationsInput{
		PageSize:    int(req.PageSize),
		PageToken:   req.PageToken,
		CandidateID: optionalString(req.CandidateID),
		Status:      statusPtr,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	apps := make([]*staffingv1.Application, 0, len(result.Applications))
	for _, a := range result.Applications {
		apps = append(apps, toProtoApplication(a))
	}

	return &staffingv1.ListApplicationsResponse{Applications: apps, NextPageToken: result.NextPageToken}, nil
}

// CreateNotice は入社連絡票を作成します。
func (h *PlacementGrpcHandler) CreateNotice(ctx context.Context, req *staffingv1.CreateNoticeRequest) (*staffingv1.CreateNoticeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	fields, err := toDomainNoticeFields(req.Fields)
	if err != nil {
		return nil, err
	}

	result, err := h.svc.CreateNotice(ctx, placement.CreateNoticeInput{
		CandidateID:    req.CandidateID,
		ApplicationID:  optionalString(req.ApplicationID),
		EmploymentType: employee.EmploymentType(req.EmploymentType),
		Fields:         fields,
		Actor:          actor,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.CreateNoticeResponse{
		Notice:    toProtoNotice(result.Notice),
		Candidate: toProtoCandidate(result.Candidate),
	}, nil
}

// UpdateNotice は入社連絡票を部分更新します。
func (h *PlacementGrpcHandler) UpdateNotice(ctx context.Context, req *staffingv1.UpdateNoticeRequest) (*staffingv1.UpdateNoticeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	patch, err := toDomainNoticePatch(req.Patch)
	if err != nil {
		return nil, err
	}

	updated, err := h.svc.UpdateNotice(ctx, placement.UpdateNoticeInput{ID: req.ID, Patch: patch, Actor: actor})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.UpdateNoticeResponse{Notice: toProtoNotice(updated)}, nil
}

// SubmitNotice は入社連絡票を承認待ちにします。
func (h *PlacementGrpcHandler) SubmitNotice(ctx context.Context, req *staffingv1.SubmitNoticeRequest) (*staffingv1.SubmitNoticeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	submitted, err := h.svc.SubmitNotice(ctx, placement.SubmitNoticeInput{ID: req.ID, Actor: actor})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.SubmitNoticeResponse{Notice: toProtoNotice(submitted)}, nil
}

// ApproveNotice は入社連絡票を承認し、社員と配属を作成します。
func (h *PlacementGrpcHandler) ApproveNotice(ctx context.Context, req *staffingv1.ApproveNoticeRequest) (*staffingv1.ApproveNoticeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.svc.ApproveNotice(ctx, placement.ApproveNoticeInput{ID: req.ID, Actor: actor})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.ApproveNoticeResponse{
		Notice:     toProtoNotice(result.Notice),
		Candidate:  toProtoCandidate(result.Candidate),
		Employee:   toProtoEmployee(result.Employee),
		Assignment: toProtoAssignment(result.Assignment),
	}, nil
}

// RejectNotice は入社連絡票を差し戻します。
func (h *PlacementGrpcHandler) RejectNotice(ctx context.Context, req *staffingv1.RejectNoticeRequest) (*staffingv1.RejectNoticeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.svc.RejectNotice(ctx, placement.RejectNoticeInput{ID: req.ID, Actor: actor, Reason: req.Reason})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.RejectNoticeResponse{
		Notice:    toProtoNotice(result.Notice),
		Candidate: toProtoCandidate(result.Candidate),
	}, nil
}

// GetNotice は入社連絡票を取得します。
func (h *PlacementGrpcHandler) GetNotice(ctx context.Context, req *staffingv1.GetNoticeRequest) (*staffingv1.GetNoticeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetNotice(ctx, placement.GetNoticeInput{ID: req.ID})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.GetNoticeResponse{Notice: toProtoNotice(found)}, nil
}

// ListNotices は入社連絡票の一覧を取得します。
func (h *PlacementGrpcHandler) ListNotices(ctx context.Context, req *staffingv1.ListNoticesRequest) (*staffingv1.ListNoticesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var statusPtr *placement.NoticeStatus
	if req.Status != "" {
		s := placement.NoticeStatus(req.Status)
		statusPtr = &s
	}

	result, err := h.svc.ListNotices(ctx, placement.ListNoticesInput{
		PageSize:    int(req.PageSize),
		PageToken:   req.PageToken,
		CandidateID: optionalString(req.CandidateID),
		Status:      statusPtr,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	notices := make([]*staffingv1.JoiningNotice, 0, len(result.Notices))
	for _, n := range result.Notices {
		notices = append(notices, toProtoNotice(n))
	}

	return &staffingv1.ListNoticesResponse{Notices: notices, NextPageToken: result.NextPageToken}, nil
}

func toDomainNoticeFields(f staffingv1.NoticeFields) (placement.NoticeFields, error) {
	fields := placement.NoticeFields{
		FullName:            f.FullName,
		NameKana:            f.NameKana,
		Gender:              f.Gender,
		Nationality:         f.Nationality,
		VisaType:            f.VisaType,
		PostalCode:          f.PostalCode,
		Address:             f.Address,
		BuildingName:        f.BuildingName,
		HousingType:         employee.HousingType(f.HousingType),
		ApartmentID:         optionalString(f.ApartmentID),
		AssignmentCompanyID: optionalString(f.AssignmentCompanyID),
		AssignmentCompany:   f.AssignmentCompany,
		AssignmentLocation:  f.AssignmentLocation,
		AssignmentLine:      f.AssignmentLine,
		JobDescription:      f.JobDescription,
		HourlyRate:          f.HourlyRate,
		BillingRate:         f.BillingRate,
		BankAccountName:     f.BankAccountName,
		BankName:            f.BankName,
		BranchNumber:        f.BranchNumber,
		BranchName:          f.BranchName,
		AccountNumber:       f.AccountNumber,
	}

	var err error
	if fields.BirthDate, err = parseDate("fields.birth_date", f.BirthDate); err != nil {
		return placement.NoticeFields{}, err
	}
	if fields.VisaExpiry, err = parseDate("fields.visa_expiry", f.VisaExpiry); err != nil {
		return placement.NoticeFields{}, err
	}
	if fields.MoveInDate, err = parseDate("fields.move_in_date", f.MoveInDate); err != nil {
		return placement.NoticeFields{}, err
	}
	return fields, nil
}

func toDomainNoticePatch(p staffingv1.NoticeFieldsPatch) (placement.NoticePatch, error) {
	patch := placement.NoticePatch{
		FullName:           p.FullName,
		NameKana:           p.NameKana,
		Gender:             p.Gender,
		Nationality:        p.Nationality,
		VisaType:           p.VisaType,
		PostalCode:         p.PostalCode,
		Address:            p.Address,
		BuildingName:       p.BuildingName,
		AssignmentCompany:  p.AssignmentCompany,
		AssignmentLocation: p.AssignmentLocation,
		AssignmentLine:     p.AssignmentLine,
		JobDescription:     p.JobDescription,
		BankAccountName:    p.BankAccountName,
		BankName:           p.BankName,
		BranchNumber:       p.BranchNumber,
		BranchName:         p.BranchName,
		AccountNumber:      p.AccountNumber,
	}
	if p.HousingType != nil {
		ht := employee.HousingType(*p.HousingType)
		patch.HousingType = &ht
	}

	var err error
	if patch.BirthDate, patch.BirthDateSet, err = parseDatePatch("birth_date", p.BirthDate, p.ClearFields); err != nil {
		return placement.NoticePatch{}, err
	}
	if patch.VisaExpiry, patch.VisaExpirySet, err = parseDatePatch("visa_expiry", p.VisaExpiry, p.ClearFields); err != nil {
		return placement.NoticePatch{}, err
	}
	if patch.MoveInDate, patch.MoveInDateSet, err = parseDatePatch("move_in_date", p.MoveInDate, p.ClearFields); err != nil {
		return placement.NoticePatch{}, err
	}
	if patch.ApartmentID, patch.ApartmentIDSet, err = stringPatch("apartment_id", p.ApartmentID, p.ClearFields); err != nil {
		return placement.NoticePatch{}, err
	}
	if patch.AssignmentCompanyID, patch.AssignmentCompanyIDSet, err = stringPatch("assignment_company_id", p.AssignmentCompanyID, p.ClearFields); err != nil {
		return placement.NoticePatch{}, err
	}
	if patch.HourlyRate, patch.HourlyRateSet, err = int64Patch("hourly_rate", p.HourlyRate, p.ClearFields); err != nil {
		return placement.NoticePatch{}, err
	}
	if patch.BillingRate, patch.BillingRateSet, err = int64Patch("billing_rate", p.BillingRate, p.ClearFields); err != nil {
		return placement.NoticePatch{}, err
	}
	return patch, nil
}

func toProtoApplication(a *placement.Application) *staffingv1.Application {
	if a == nil {
		return nil
	}

	return &staffingv1.Application{
		ID:                 a.ID,
		CandidateID:        a.CandidateID,
		CompanyID:          derefString(a.CompanyID),
		CompanyName:        a.CompanyName,
		PresentedAt:        a.PresentedAt,
		Status:             string(a.Status),
		AllowedTransitions: transitionNames(placement.KindApplication, string(a.Status)),
		ResultAt:           cloneTime(a.ResultAt),
		ResultNotes:        a.ResultNotes,
		CreatedBy:          a.CreatedBy,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func toProtoNotice(n *placement.JoiningNotice) *staffingv1.JoiningNotice {
	if n == nil {
		return nil
	}

	return &staffingv1.JoiningNotice{
		ID:             n.ID,
		CandidateID:    n.CandidateID,
		ApplicationID:  derefString(n.ApplicationID),
		EmploymentType: string(n.EmploymentType),
		NoticeFields: staffingv1.NoticeFields{
			FullName:            n.FullName,
			NameKana:            n.NameKana,
			Gender:              n.Gender,
			Nationality:         n.Nationality,
			BirthDate:           formatDate(n.BirthDate),
			VisaType:            n.VisaType,
			VisaExpiry:          formatDate(n.VisaExpiry),
			PostalCode:          n.PostalCode,
			Address:             n.Address,
			BuildingName:        n.BuildingName,
			HousingType:         string(n.HousingType),
			ApartmentID:         derefString(n.ApartmentID),
			MoveInDate:          formatDate(n.MoveInDate),
			AssignmentCompanyID: derefString(n.AssignmentCompanyID),
			AssignmentCompany:   n.AssignmentCompany,
			AssignmentLocation:  n.AssignmentLocation,
			AssignmentLine:      n.AssignmentLine,
			JobDescription:      n.JobDescription,
			HourlyRate:          n.HourlyRate,
			BillingRate:         n.BillingRate,
			BankAccountName:     n.BankAccountName,
			BankName:            n.BankName,
			BranchNumber:        n.BranchNumber,
			BranchName:          n.BranchName,
			AccountNumber:       n.AccountNumber,
		},
		Status:             string(n.Status),
		AllowedTransitions: transitionNames(placement.KindJoiningNotice, string(n.Status)),
		SubmittedAt:        cloneTime(n.SubmittedAt),
		ApprovedAt:         cloneTime(n.ApprovedAt),
		ApprovedBy:         derefString(n.ApprovedBy),
		RejectionReason:    derefString(n.RejectionReason),
		CreatedBy:          n.CreatedBy,
		CreatedAt:          n.CreatedAt,
		UpdatedAt:          n.UpdatedAt,
	}
}
