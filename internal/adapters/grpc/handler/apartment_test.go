package handler

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ogurasousui/staffing-workflow/internal/adapters/grpc/staffingv1"
	"github.com/ogurasousui/staffing-workflow/internal/core/apartment"
)

type stubApartmentUseCase struct {
	createInput apartment.CreateApartmentInput
	createOut   *apartment.Apartment
	createErr   error

	getOut *apartment.Apartment
	getErr error

	listInput apartment.ListApartmentsInput
	listOut   *apartment.ListApartmentsResult
	listErr   error

	updateInput apartment.UpdateApartmentInput
	updateOut   *apartment.Apartment
	updateErr   error

	deactivateInput apartment.DeactivateApartmentInput
	deactivateOut   *apartment.Apartment
	deactivateErr   error

	occupantsInput apartment.ListOccupantsInput
	occupantsOut   *apartment.ListOccupantsResult
	occupantsErr   error
}

func (s *stubApartmentUseCase) CreateApartment(ctx context.Context, in apartment.CreateApartmentInput) (*apartment.Apartment, error) {
	s.createInput = in
	return s.createOut, s.createErr
}

func (s *stubApartmentUseCase) GetApartment(ctx context.Context, in apartment.GetApartmentInput) (*apartment.Apartment, error) {
	return s.getOut, s.getErr
}

func (s *stubApartmentUseCase) ListApartments(ctx context.Context, in apartment.ListApartmentsInput) (*apartment.ListApartmentsResult, error) {
	s.listInput = in
	return s.listOut, s.listErr
}

func (s *stubApartmentUseCase) UpdateApartment(ctx context.Context, in apartment.UpdateApartmentInput) (*apartment.Apartment, error) {
	s.updateInput = in
	return s.updateOut, s.updateErr
}

func (s *stubApartmentUseCase) DeactivateApartment(ctx context.Context, in apartment.DeactivateApartmentInput) (*apartment.Apartment, error) {
	s.deactivateInput = in
	return s.deactivateOut, s.deactivateErr
}

func (s *stubApartmentUseCase) ListOccupants(ctx context.Context, in apartment.ListOccupantsInput) (*apartment.ListOccupantsResult, error) {
	s.occupantsInput = in
	return s.occupantsOut, s.occupantsErr
}

func TestApartmentGrpcHandler_CreateApartment(t *testing.T) {
	t.Parallel()

	stub := &stubApartmentUseCase{createOut: &apartment.Apartment{ID: "apt-1", Name: "社宅A", Capacity: 3, CurrentOccupants: 1, IsActive: true}}
	h := NewApartmentGrpcHandler(stub)

	resp, err := h.CreateApartment(actorContext("staff-1"), &staffingv1.CreateApartmentRequest{Name: "社宅A", Capacity: 3})
	if err != nil {
		t.Fatalf("CreateApartment returned error: %v", err)
	}
	if stub.createInput.Capacity != 3 {
		t.Fatalf("expected capacity 3, got %d", stub.createInput.Capacity)
	}
	if resp.Apartment.Vacancies != 2 || resp.Apartment.CurrentOccupants != 1 {
		t.Fatalf("unexpected occupancy in response: %+v", resp.Apartment)
	}
}

func TestApartmentGrpcHandler_ListApartments_VacantOnly(t *testing.T) {
	t.Parallel()

	stub := &stubApartmentUseCase{listOut: &apartment.ListApartmentsResult{Apartments: []*apartment.Apartment{{ID: "apt-1", Capacity: 2}}}}
	h := NewApartmentGrpcHandler(stub)

	resp, err := h.ListApartments(context.Background(), &staffingv1.ListApartmentsRequest{VacantOnly: true, Search: " 岡崎 "})
	if err != nil {
		t.Fatalf("ListApartments returned error: %v", err)
	}
	if !stub.listInput.VacantOnly {
		t.Fatalf("expected vacant_only to be passed through")
	}
	if stub.listInput.Search == nil || *stub.listInput.Search != "岡崎" {
		t.Fatalf("expected trimmed search term, got %v", stub.listInput.Search)
	}
	if len(resp.Apartments) != 1 {
		t.Fatalf("expected 1 apartment, got %d", len(resp.Apartments))
	}
}

func TestApartmentGrpcHandler_UpdateApartment(t *testing.T) {
	t.Parallel()

	stub := &stubApartmentUseCase{updateOut: &apartment.Apartment{ID: "apt-1", Capacity: 4}}
	h := NewApartmentGrpcHandler(stub)

	capacity := int32(4)
	_, err := h.UpdateApartment(actorContext("staff-1"), &staffingv1.UpdateApartmentRequest{
		ID:          "apt-1",
		Capacity:    &capacity,
		ClearFields: []string{"monthly_rent"},
	})
	if err != nil {
		t.Fatalf("UpdateApartment returned error: %v", err)
	}
	in := stub.updateInput
	if in.Capacity == nil || *in.Capacity != 4 {
		t.Fatalf("expected capacity 4, got %v", in.Capacity)
	}
	if !in.MonthlyRentSet || in.MonthlyRent != nil {
		t.Fatalf("expected monthly rent to be cleared")
	}
}

func TestApartmentGrpcHandler_DeactivateApartment_Occupied(t *testing.T) {
	t.Parallel()

	h := NewApartmentGrpcHandler(&stubApartmentUseCase{deactivateErr: apartment.ErrApartmentOccupied})

	_, err := h.DeactivateApartment(actorContext("staff-1"), &staffingv1.DeactivateApartmentRequest{ID: "apt-1"})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", status.Code(err))
	}
}

func TestApartmentGrpcHandler_GetApartment_RequiresNoActor(t *testing.T) {
	t.Parallel()

	h := NewApartmentGrpcHandler(&stubApartmentUseCase{getOut: &apartment.Apartment{ID: "apt-1"}})

	resp, err := h.GetApartment(context.Background(), &staffingv1.GetApartmentRequest{ID: "apt-1"})
	if err != nil {
		t.Fatalf("GetApartment returned error: %v", err)
	}
	if resp.Apartment.ID != "apt-1" {
		t.Fatalf("unexpected response: %+v", resp.Apartment)
	}
}

func TestApartmentGrpcHandler_ListOccupants(t *testing.T) {
	t.Parallel()

	stub := &stubApartmentUseCase{occupantsOut: &apartment.ListOccupantsResult{
		Apartment: &apartment.Apartment{ID: "apt-1", Capacity: 3, CurrentOccupants: 2, IsActive: true},
		Occupants: []apartment.Occupant{
			{EmployeeID: "emp-1", EmployeeNumber: 1, FullName: "NGUYEN VAN A"},
			{EmployeeID: "emp-2", EmployeeNumber: 2, FullName: "LE THI B", Office: "岡崎営業所"},
		},
	}}
	h := NewApartmentGrpcHandler(stub)

	resp, err := h.ListOccupants(context.Background(), &staffingv1.ListOccupantsRequest{ApartmentID: "apt-1"})
	if err != nil {
		t.Fatalf("ListOccupants returned error: %v", err)
	}
	if stub.occupantsInput.ApartmentID != "apt-1" {
		t.Fatalf("unexpected input: %+v", stub.occupantsInput)
	}
	if resp.Apartment.Vacancies != 1 || len(resp.Occupants) != 2 || resp.Occupants[1].Office != "岡崎営業所" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestApartmentGrpcHandler_ListOccupants_NotFound(t *testing.T) {
	t.Parallel()

	h := NewApartmentGrpcHandler(&stubApartmentUseCase{occupantsErr: apartment.ErrApartmentNotFound})

	_, err := h.ListOccupants(context.Background(), &staffingv1.ListOccupantsRequest{ApartmentID: "apt-404"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", status.Code(err))
	}
}
