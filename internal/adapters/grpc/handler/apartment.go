package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/staffing-workflow/internal/adapters/grpc/staffingv1"
	"github.com/ogurasousui/staffing-workflow/internal/core/apartment"
)

// ApartmentGrpcHandler は ApartmentService の gRPC 実装です。
type ApartmentGrpcHandler struct {
	svc apartment.UseCase
	staffingv1.UnimplementedApartmentServiceServer
}

// NewApartmentGrpcHandler は ApartmentGrpcHandler を生成します。
func NewApartmentGrpcHandler(svc apartment.UseCase) *ApartmentGrpcHandler {
	return &ApartmentGrpcHandler{svc: svc}
}

// CreateApartment は社宅を登録します。
func (h *ApartmentGrpcHandler) CreateApartment(ctx context.Context, req *staffingv1.CreateApartmentRequest) (*staffingv1.CreateApartmentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}

	created, err := h.svc.CreateApartment(ctx, apartment.CreateApartmentInput{
		Name:        req.Name,
		PostalCode:  req.PostalCode,
		Address:     req.Address,
		RoomNumber:  req.RoomNumber,
		Capacity:    int(req.Capacity),
		MonthlyRent: req.MonthlyRent,
		Notes:       req.Notes,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.CreateApartmentResponse{Apartment: toProtoApartment(created)}, nil
}

// GetApartment は社宅を取得します。
func (h *ApartmentGrpcHandler) GetApartment(ctx context.Context, req *staffingv1.GetApartmentRequest) (*staffingv1.GetApartmentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	found, err := h.svc.GetApartment(ctx, apartment.GetApartmentInput{ID: req.ID})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.GetApartmentResponse{Apartment: toProtoApartment(found)}, nil
}

// ListApartments は社宅の一覧を取得します。
func (h *ApartmentGrpcHandler) ListApartments(ctx context.Context, req *staffingv1.ListApartmentsRequest) (*staffingv1.ListApartmentsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.ListApartments(ctx, apartment.ListApartmentsInput{
		PageSize:   int(req.PageSize),
		PageToken:  req.PageToken,
		ActiveOnly: req.ActiveOnly,
		VacantOnly: req.VacantOnly,
		Search:     optionalString(req.Search),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	apartments := make([]*staffingv1.Apartment, 0, len(result.Apartments))
	for _, a := range result.Apartments {
		apartments = append(apartments, toProtoApartment(a))
	}

	return &staffingv1.ListApartmentsResponse{Apartments: apartments, NextPageToken: result.NextPageToken}, nil
}

// UpdateApartment は社宅情報を更新します。
func (h *ApartmentGrpcHandler) UpdateApartment(ctx context.Context, req *staffingv1.UpdateApartmentRequest) (*staffingv1.UpdateApartmentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}

	in := apartment.UpdateApartmentInput{
		ID:         req.ID,
		Name:       req.Name,
		PostalCode: req.PostalCode,
		Address:    req.Address,
		RoomNumber: req.RoomNumber,
		Notes:      req.Notes,
		IsActive:   req.IsActive,
	}
	if req.Capacity != nil {
		capacity := int(*req.Capacity)
		in.Capacity = &capacity
	}

	var err error
	if in.MonthlyRent, in.MonthlyRentSet, err = int64Patch("monthly_rent", req.MonthlyRent, req.ClearFields); err != nil {
		return nil, err
	}

	updated, err := h.svc.UpdateApartment(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.UpdateApartmentResponse{Apartment: toProtoApartment(updated)}, nil
}

// DeactivateApartment は社宅を利用停止にします。
func (h *ApartmentGrpcHandler) DeactivateApartment(ctx context.Context, req *staffingv1.DeactivateApartmentRequest) (*staffingv1.DeactivateApartmentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if _, err := actorFromContext(ctx); err != nil {
		return nil, err
	}

	deactivated, err := h.svc.DeactivateApartment(ctx, apartment.DeactivateApartmentInput{ID: req.ID})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &staffingv1.DeactivateApartmentResponse{Apartment: toProtoApartment(deactivated)}, nil
}

// ListOccupants は社宅に入居中の社員を取得します。
func (h *ApartmentGrpcHandler) ListOccupants(ctx context.Context, req *staffingv1.ListOccupantsRequest) (*staffingv1.ListOccupantsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.svc.ListOccupants(ctx, apartment.ListOccupantsInput{ApartmentID: req.ApartmentID})
	if err != nil {
		return nil, toStatusError(err)
	}

	occupants := make([]*staffingv1.Occupant, 0, len(result.Occupants))
	for _, o := range result.Occupants {
		occupants = append(occupants, &staffingv1.Occupant{
			EmployeeID:     o.EmployeeID,
			EmployeeNumber: o.EmployeeNumber,
			FullName:       o.FullName,
			NameKana:       o.NameKana,
			Office:         o.Office,
			HireDate:       o.HireDate,
		})
	}

	return &staffingv1.ListOccupantsResponse{Apartment: toProtoApartment(result.Apartment), Occupants: occupants}, nil
}

func toProtoApartment(a *apartment.Apartment) *staffingv1.Apartment {
	if a == nil {
		return nil
	}

	return &staffingv1.Apartment{
		ID:               a.ID,
		Name:             a.Name,
		PostalCode:       a.PostalCode,
		Address:          a.Address,
		RoomNumber:       a.RoomNumber,
		Capacity:         int32(a.Capacity),
		CurrentOccupants: int32(a.CurrentOccupants),
		Vacancies:        int32(a.Vacancies()),
		MonthlyRent:      a.MonthlyRent,
		IsActive:         a.IsActive,
		Notes:            a.Notes,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}
