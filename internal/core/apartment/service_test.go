package apartment

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

type stubClock struct {
	now time.Time
}

func (s *stubClock) Now() time.Time {
	return s.now
}

type fakeRepo struct {
	apartments map[string]*Apartment
	order      []string
	occupants  map[string][]Occupant
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{apartments: make(map[string]*Apartment)}
}

func (r *fakeRepo) Create(_ context.Context, a *Apartment) (*Apartment, error) {
	clone := *a
	clone.ID = uuid.NewString()
	r.apartments[clone.ID] = &clone
	r.order = append(r.order, clone.ID)
	out := clone
	return &out, nil
}

func (r *fakeRepo) Update(_ context.Context, a *Apartment) (*Apartment, error) {
	if _, ok := r.apartments[a.ID]; !ok {
		return nil, ErrApartmentNotFound
	}
	clone := *a
	r.apartments[a.ID] = &clone
	out := clone
	return &out, nil
}

func (r *fakeRepo) FindByID(_ context.Context, id string) (*Apartment, error) {
	a, ok := r.apartments[id]
	if !ok {
		return nil, ErrApartmentNotFound
	}
	out := *a
	return &out, nil
}

func (r *fakeRepo) FindByIDForUpdate(ctx context.Context, id string) (*Apartment, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeRepo) List(_ context.Context, filter ListApartmentsFilter) ([]*Apartment, string, error) {
	var filtered []*Apartment
	for _, id := range r.order {
		a := r.apartments[id]
		if filter.ActiveOnly && !a.IsActive {
			continue
		}
		if filter.VacantOnly && !a.HasVacancy() {
			continue
		}
		if filter.Search != nil && !strings.Contains(a.Name+" "+a.Address, *filter.Search) {
			continue
		}
		out := *a
		filtered = append(filtered, &out)
	}

	if filter.Offset > len(filtered) {
		return []*Apartment{}, "", nil
	}
	end := filter.Offset + filter.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	var nextToken string
	if end < len(filtered) {
		nextToken = strconv.Itoa(end)
	}
	return filtered[filter.Offset:end], nextToken, nil
}

func (r *fakeRepo) Occupy(_ context.Context, id string) (*Apartment, error) {
	a, ok := r.apartments[id]
	if !ok {
		return nil, ErrApartmentNotFound
	}
	if !a.HasVacancy() {
		return nil, ErrNoVacancy
	}
	a.CurrentOccupants++
	out := *a
	return &out, nil
}

func (r *fakeRepo) Release(_ context.Context, id string) (*Apartment, error) {
	a, ok := r.apartments[id]
	if !ok {
		return nil, ErrApartmentNotFound
	}
	if a.CurrentOccupants > 0 {
		a.CurrentOccupants--
	}
	out := *a
	return &out, nil
}

func (r *fakeRepo) ListOccupants(_ context.Context, apartmentID string) ([]Occupant, error) {
	return r.occupants[apartmentID], nil
}

func TestService_CreateApartment(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	svc := NewService(newFakeRepo(), &stubClock{now: now}, nil)

	rent := int64(42000)
	created, err := svc.CreateApartment(context.Background(), CreateApartmentInput{
		Name:        " レオパレス岡崎 ",
		RoomNumber:  " 203 ",
		Capacity:    3,
		MonthlyRent: &rent,
	})
	if err != nil {
		t.Fatalf("CreateApartment returned error: %v", err)
	}

	if created.Name != "レオパレス岡崎" || created.RoomNumber != "203" {
		t.Fatalf("expected trimmed fields, got %+v", created)
	}
	if !created.IsActive || created.CurrentOccupants != 0 || created.Vacancies() != 3 {
		t.Fatalf("unexpected occupancy state: %+v", created)
	}
	if !created.CreatedAt.Equal(now) {
		t.Fatalf("expected created_at from clock")
	}

	if _, err := svc.CreateApartment(context.Background(), CreateApartmentInput{Name: "A", Capacity: 0}); !errors.Is(err, ErrInvalidCapacity) {
		t.Fatalf("expected ErrInvalidCapacity, got %v", err)
	}
	if _, err := svc.CreateApartment(context.Background(), CreateApartmentInput{Name: " ", Capacity: 1}); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestService_DeactivateApartment_RefusedWhileOccupied(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewService(repo, nil, nil)

	created, err := svc.CreateApartment(context.Background(), CreateApartmentInput{Name: "社宅A", Capacity: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Occupy(context.Background(), created.ID); err != nil {
		t.Fatalf("occupy: %v", err)
	}

	if _, err := svc.DeactivateApartment(context.Background(), DeactivateApartmentInput{ID: created.ID}); !errors.Is(err, ErrApartmentOccupied) {
		t.Fatalf("expected ErrApartmentOccupied, got %v", err)
	}

	if _, err := repo.Release(context.Background(), created.ID); err != nil {
		t.Fatalf("release: %v", err)
	}

	deactivated, err := svc.DeactivateApartment(context.Background(), DeactivateApartmentInput{ID: created.ID})
	if err != nil {
		t.Fatalf("DeactivateApartment returned error: %v", err)
	}
	if deactivated.IsActive || deactivated.HasVacancy() {
		t.Fatalf("expected inactive apartment without vacancy, got %+v", deactivated)
	}
}

func TestService_UpdateApartment_CapacityBelowOccupancy(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewService(repo, nil, nil)

	created, err := svc.CreateApartment(context.Background(), CreateApartmentInput{Name: "社宅B", Capacity: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := repo.Occupy(context.Background(), created.ID); err != nil {
			t.Fatalf("occupy: %v", err)
		}
	}

	one := 1
	if _, err := svc.UpdateApartment(context.Background(), UpdateApartmentInput{ID: created.ID, Capacity: &one}); !errors.Is(err, ErrCapacityBelowOccupancy) {
		t.Fatalf("expected ErrCapacityBelowOccupancy, got %v", err)
	}

	two := 2
	updated, err := svc.UpdateApartment(context.Background(), UpdateApartmentInput{ID: created.ID, Capacity: &two})
	if err != nil {
		t.Fatalf("UpdateApartment returned error: %v", err)
	}
	if updated.HasVacancy() {
		t.Fatalf("expected apartment to be full after shrinking capacity")
	}
}

func TestService_ListApartments_VacantOnly(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewService(repo, nil, nil)

	full, err := svc.CreateApartment(context.Background(), CreateApartmentInput{Name: "満室", Capacity: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := repo.Occupy(context.Background(), full.ID); err != nil {
		t.Fatalf("occupy: %v", err)
	}
	if _, err := svc.CreateApartment(context.Background(), CreateApartmentInput{Name: "空室", Capacity: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	res, err := svc.ListApartments(context.Background(), ListApartmentsInput{VacantOnly: true})
	if err != nil {
		t.Fatalf("ListApartments returned error: %v", err)
	}
	if len(res.Apartments) != 1 || res.Apartments[0].Name != "空室" {
		t.Fatalf("expected only the vacant apartment, got %+v", res.Apartments)
	}

	all, err := svc.ListApartments(context.Background(), ListApartmentsInput{})
	if err != nil {
		t.Fatalf("ListApartments returned error: %v", err)
	}
	if len(all.Apartments) != 2 {
		t.Fatalf("expected 2 apartments, got %d", len(all.Apartments))
	}
}

func TestService_GetApartment_InvalidID(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeRepo(), nil, nil)
	if _, err := svc.GetApartment(context.Background(), GetApartmentInput{ID: "apt-1"}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestService_ListApartments_Search(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewService(repo, nil, nil)

	for _, in := range []CreateApartmentInput{
		{Name: "レオパレス岡崎", Address: "愛知県岡崎市康生町1-1", Capacity: 2},
		{Name: "コーポ豊田", Address: "愛知県豊田市元町2-2", Capacity: 3},
		{Name: "ハイツ浜松", Address: "静岡県浜松市中区3-3", Capacity: 2},
	} {
		if _, err := svc.CreateApartment(context.Background(), in); err != nil {
			t.Fatalf("CreateApartment returned error: %v", err)
		}
	}

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{name: "matches address", search: " 愛知県 ", want: []string{"レオパレス岡崎", "コーポ豊田"}},
		{name: "matches name", search: "浜松", want: []string{"ハイツ浜松"}},
		{name: "blank means no filter", search: "  ", want: []string{"レオパレス岡崎", "コーポ豊田", "ハイツ浜松"}},
	}

	for _, tt := range tests {
		search := tt.search
		res, err := svc.ListApartments(context.Background(), ListApartmentsInput{Search: &search})
		if err != nil {
			t.Fatalf("%s: ListApartments returned error: %v", tt.name, err)
		}
		var got []string
		for _, a := range res.Apartments {
			got = append(got, a.Name)
		}
		if strings.Join(got, ",") != strings.Join(tt.want, ",") {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestService_ListOccupants(t *testing.T) {
	t.Parallel()

	repo := newFakeRepo()
	svc := NewService(repo, nil, nil)

	apt, err := svc.CreateApartment(context.Background(), CreateApartmentInput{Name: "レオパレス岡崎", Capacity: 2})
	if err != nil {
		t.Fatalf("CreateApartment returned error: %v", err)
	}
	repo.occupants = map[string][]Occupant{
		apt.ID: {
			{EmployeeID: "emp-1", EmployeeNumber: 1, FullName: "NGUYEN VAN A"},
			{EmployeeID: "emp-2", EmployeeNumber: 2, FullName: "LE THI B"},
		},
	}

	res, err := svc.ListOccupants(context.Background(), ListOccupantsInput{ApartmentID: " " + apt.ID + " "})
	if err != nil {
		t.Fatalf("ListOccupants returned error: %v", err)
	}
	if res.Apartment.ID != apt.ID || len(res.Occupants) != 2 || res.Occupants[1].EmployeeNumber != 2 {
		t.Fatalf("unexpected occupants: %+v", res)
	}

	if _, err := svc.ListOccupants(context.Background(), ListOccupantsInput{ApartmentID: uuid.NewString()}); !errors.Is(err, ErrApartmentNotFound) {
		t.Fatalf("expected ErrApartmentNotFound, got %v", err)
	}
	if _, err := svc.ListOccupants(context.Background(), ListOccupantsInput{ApartmentID: "apt-1"}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}
