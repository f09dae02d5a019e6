package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/staffing-workflow/internal/adapters/grpc/staffingv1"
	"github.com/ogurasousui/staffing-workflow/internal/core/company"
)

// CompanyGrpcHandler は CompanyService の gRPC 実装です。
type CompanyGrpcHandler struct {
	svc company.UseCase
	staffingv1.UnimplementedCompanyServiceServer
}

// NewCompanyGrpcHandler は CompanyGrpcHandler を生成します。
func NewCompanyGrpcHandler(svc company.UseCase) *CompanyGrpcHandler {
	return &CompanyGrpcHandler{svc: svc}
}

// CreateCompany は派遣先企業を登録します。
func (h *CompanyGrpcHandler) CreateCompany(ctx context.Context, req *staffingv1.CreateCompanyRequest) (*staffingv1.CreateCompanyResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}

	created, err := h.svc.CreateCompany(ctx, company.CreateCompanyInput{
		Name:               req.Name,
		NameKana:           req.NameKana,
		Code:               req.Code,
		Type:               company.Type(req.CompanyType),
		BillingRateDefault: req.BillingRateDefault,
		ContactName:        req.ContactName,
		ContactPhone:       req.ContactPhone,
		Description:        req.Description,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.CreateCompanyResponse{Company: toProtoCompany(created)}, nil
}

// GetCompany は会社を取得します。
func (h *CompanyGrpcHandler) GetCompany(ctx context.Context, req *staffingv1.GetCompanyRequest) (*staffingv1.GetCompanyResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetCompany(ctx, company.GetCompanyInput{ID: req.ID})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.GetCompanyResponse{Company: toProtoCompany(found)}, nil
}

// ListCompanies は会社の一覧を取得します。
func (h *CompanyGrpcHandler) ListCompanies(ctx context.Context, req *staffingv1.ListCompaniesRequest) (*staffingv1.ListCompaniesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	in := company.ListCompaniesInput{
		PageSize:  int(req.PageSize),
		PageToken: req.PageToken,
	}
	if req.Status != "" {
		s := company.Status(req.Status)
		in.Status = &s
	}
	if req.CompanyType != "" {
		t := company.Type(req.CompanyType)
		in.Type = &t
	}

	result, err := h.svc.ListCompanies(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	protoCompanies := make([]*staffingv1.Company, 0, len(result.Companies))
	for _, c := range result.Companies {
		protoCompanies = append(protoCompanies, toProtoCompany(c))
	}

	return &staffingv1.ListCompaniesResponse{
		Companies:     protoCompanies,
		NextPageToken: result.NextPageToken,
	}, nil
}

// UpdateCompany は会社情報を更新します。
func (h *CompanyGrpcHandler) UpdateCompany(ctx context.Context, req *staffingv1.UpdateCompanyRequest) (*staffingv1.UpdateCompanyResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}

	in := company.UpdateCompanyInput{
		ID:           req.ID,
		Name:         req.Name,
		NameKana:     req.NameKana,
		Code:         req.Code,
		ContactName:  req.ContactName,
		ContactPhone: req.ContactPhone,
		Description:  req.Description,
	}
	if req.CompanyType != nil {
		t := company.Type(*req.CompanyType)
		in.Type = &t
	}
	if req.Status != nil {
		s := company.Status(*req.Status)
		in.Status = &s
	}

	var err error
	if in.BillingRateDefault, in.BillingRateDefaultSet, err = int64Patch("billing_rate_default", req.BillingRateDefault, req.ClearFields); err != nil {
		return nil, err
	}

	updated, err := h.svc.UpdateCompany(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.UpdateCompanyResponse{Company: toProtoCompany(updated)}, nil
}

// DeactivateCompany は会社を取引停止にします。
func (h *CompanyGrpcHandler) DeactivateCompany(ctx context.Context, req *staffingv1.DeactivateCompanyRequest) (*staffingv1.DeactivateCompanyResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}

	deactivated, err := h.svc.DeactivateCompany(ctx, company.DeactivateCompanyInput{ID: req.ID})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.DeactivateCompanyResponse{Company: toProtoCompany(deactivated)}, nil
}

func toProtoCompany(c *company.Company) *staffingv1.Company {
	if c == nil {
		return nil
	}

	var description *string
	if c.Description != nil {
		value := *c.Description
		description = &value
	}

	return &staffingv1.Company{
		ID:                 c.ID,
		Name:               c.Name,
		NameKana:           c.NameKana,
		Code:               c.Code,
		CompanyType:        string(c.Type),
		BillingRateDefault: c.BillingRateDefault,
		ContactName:        c.ContactName,
		ContactPhone:       c.ContactPhone,
		Status:             string(c.Status),
		Description:        description,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}
