package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/staffing-workflow/internal/adapters/grpc/staffingv1"
	"github.com/ogurasousui/staffing-workflow/internal/core/candidate"
	"github.com/ogurasousui/staffing-workflow/internal/core/placement"
)

// CandidateGrpcHandler は CandidateService の gRPC 実装です。
type CandidateGrpcHandler struct {
	svc candidate.UseCase
	staffingv1.UnimplementedCandidateServiceServer
}

// NewCandidateGrpcHandler は CandidateGrpcHandler を生成します。
func NewCandidateGrpcHandler(svc candidate.UseCase) *CandidateGrpcHandler {
	return &CandidateGrpcHandler{svc: svc}
}

// RegisterCandidate は候補者を登録します。
func (h *CandidateGrpcHandler) RegisterCandidate(ctx context.Context, req *staffingv1.RegisterCandidateRequest) (*staffingv1.RegisterCandidateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	actor, err := actorFromContext(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := toDomainProfile(req.Profile)
	if err != nil {
		return nil, err
	}

	created, err := h.svc.RegisterCandidate(ctx, candidate.RegisterCandidateInput{Profile: profile, Actor: actor})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.RegisterCandidateResponse{Candidate: toProtoCandidate(created)}, nil
}

// GetCandidate は候補者を取得します。
func (h *CandidateGrpcHandler) GetCandidate(ctx context.Context, req *staffingv1.GetCandidateRequest) (*staffingv1.GetCandidateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetCandidate(ctx, candidate.GetCandidateInput{ID: req.ID})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.GetCandidateResponse{Candidate: toProtoCandidate(found)}, nil
}

// ListCandidates は候補者の一覧を取得します。
func (h *CandidateGrpcHandler) ListCandidates(ctx context.Context, req *staffingv1.ListCandidatesRequest) (*staffingv1.ListCandidatesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	var statusPtr *candidate.Status
	if req.Status != "" {
		s := candidate.Status(req.Status)
		statusPtr = &s
	}

	result, err := h.svc.ListCandidates(ctx, candidate.ListCandidatesInput{
		PageSize:  int(req.PageSize),
		PageToken: req.PageToken,
		Status:    statusPtr,
		Search:    optionalString(req.Search),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	candidates := make([]*staffingv1.Candidate, 0, len(result.Candidates))
	for _, c := range result.Candidates {
		candidates = append(candidates, toProtoCandidate(c))
	}

	return &staffingv1.ListCandidatesResponse{Candidates: candidates, NextPageToken: result.NextPageToken}, nil
}

// UpdateProfile は候補者のプロフィールを部分更新します。
func (h *CandidateGrpcHandler) UpdateProfile(ctx context.Context, req *staffingv1.UpdateProfileRequest) (*staffingv1.UpdateProfileResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}

	p := req.Patch
	patch := candidate.ProfilePatch{
		FullName:            p.FullName,
		NameKana:            p.NameKana,
		NameRomaji:          p.NameRomaji,
		Gender:              p.Gender,
		Nationality:         p.Nationality,
		PostalCode:          p.PostalCode,
		Address:             p.Address,
		BuildingName:        p.BuildingName,
		Phone:               p.Phone,
		Mobile:              p.Mobile,
		Email:               p.Email,
		VisaType:            p.VisaType,
		ResidenceCardNumber: p.ResidenceCardNumber,
		PassportNumber:      p.PassportNumber,
		Notes:               p.Notes,
	}

	var err error
	if patch.BirthDate, patch.BirthDateSet, err = parseDatePatch("birth_date", p.BirthDate, p.ClearFields); err != nil {
		return nil, err
	}
	if patch.VisaExpiry, patch.VisaExpirySet, err = parseDatePatch("visa_expiry", p.VisaExpiry, p.ClearFields); err != nil {
		return nil, err
	}
	if patch.PassportExpiry, patch.PassportExpirySet, err = parseDatePatch("passport_expiry", p.PassportExpiry, p.ClearFields); err != nil {
		return nil, err
	}

	updated, err := h.svc.UpdateProfile(ctx, candidate.UpdateProfileInput{ID: req.ID, Patch: patch})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.UpdateProfileResponse{Candidate: toProtoCandidate(updated)}, nil
}

func toDomainProfile(p staffingv1.CandidateProfile) (candidate.Profile, error) {
	profile := candidate.Profile{
		FullName:            p.FullName,
		NameKana:            p.NameKana,
		NameRomaji:          p.NameRomaji,
		Gender:              p.Gender,
		Nationality:         p.Nationality,
		PostalCode:          p.PostalCode,
		Address:             p.Address,
		BuildingName:        p.BuildingName,
		Phone:               p.Phone,
		Mobile:              p.Mobile,
		Email:               p.Email,
		VisaType:            p.VisaType,
		ResidenceCardNumber: p.ResidenceCardNumber,
		PassportNumber:      p.PassportNumber,
		Notes:               p.Notes,
	}

	var err error
	if profile.BirthDate, err = parseDate("profile.birth_date", p.BirthDate); err != nil {
		return candidate.Profile{}, err
	}
	if profile.VisaExpiry, err = parseDate("profile.visa_expiry", p.VisaExpiry); err != nil {
		return candidate.Profile{}, err
	}
	if profile.PassportExpiry, err = parseDate("profile.passport_expiry", p.PassportExpiry); err != nil {
		return candidate.Profile{}, err
	}
	return profile, nil
}

func toProtoCandidate(c *candidate.Candidate) *staffingv1.Candidate {
	if c == nil {
		return nil
	}

	return &staffingv1.Candidate{
		ID: c.ID,
		Profile: staffingv1.CandidateProfile{
			FullName:            c.FullName,
			NameKana:            c.NameKana,
			NameRomaji:          c.NameRomaji,
			Gender:              c.Gender,
			Nationality:         c.Nationality,
			BirthDate:           formatDate(c.BirthDate),
			PostalCode:          c.PostalCode,
			Address:             c.Address,
			BuildingName:        c.BuildingName,
			Phone:               c.Phone,
			Mobile:              c.Mobile,
			Email:               c.Email,
			VisaType:            c.VisaType,
			VisaExpiry:          formatDate(c.VisaExpiry),
			ResidenceCardNumber: c.ResidenceCardNumber,
			PassportNumber:      c.PassportNumber,
			PassportExpiry:      formatDate(c.PassportExpiry),
			Notes:               c.Notes,
		},
		Status:             string(c.Status),
		AllowedTransitions: transitionNames(placement.KindCandidate, string(c.Status)),
		CreatedBy:          c.CreatedBy,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}
