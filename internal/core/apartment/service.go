package apartment

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

// Service は社宅管理のユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
}

// UseCase は社宅ユースケースの公開インターフェースです。
type UseCase interface {
	CreateApartment(ctx context.Context, in CreateApartmentInput) (*Apartment, error)
	GetApartment(ctx context.Context, in GetApartmentInput) (*Apartment, error)
	ListApartments(ctx context.Context, in ListApartmentsInput) (*ListApartmentsResult, error)
	UpdateApartment(ctx context.Context, in UpdateApartmentInput) (*Apartment, error)
	DeactivateApartment(ctx context.Context, in DeactivateApartmentInput) (*Apartment, error)
	ListOccupants(ctx context.Context, in ListOccupantsInput) (*ListOccupantsResult, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, clock: clock, tx: tx}
}

// CreateApartmentInput は社宅登録時の入力です。
type CreateApartmentInput struct {
	Name        string
	PostalCode  string
	Address     string
	RoomNumber  string
	Capacity    int
	MonthlyRent *int64
	Notes       string
}

// GetApartmentInput は社宅取得時の入力です。
type GetApartmentInput struct {
	ID string
}

// ListApartmentsInput は一覧取得時の入力です。
type ListApartmentsInput struct {
	PageSize   int
	PageToken  string
	ActiveOnly bool
	VacantOnly bool
	// Search は名称・住所の部分一致検索語です。
	Search *string
}

// ListApartmentsResult は一覧取得結果を表します。
type ListApartmentsResult struct {
	Apartments    []*Apartment
	NextPageToken string
}

// UpdateApartmentInput は社宅更新時の入力です。
type UpdateApartmentInput struct {
	ID             string
	Name           *string
	PostalCode     *string
	Address        *string
	RoomNumber     *string
	Capacity       *int
	MonthlyRent    *int64
	MonthlyRentSet bool
	Notes          *string
	IsActive       *bool
}

// DeactivateApartmentInput は社宅の利用停止時の入力です。
type DeactivateApartmentInput struct {
	ID string
}

// ListOccupantsInput は入居者一覧取得時の入力です。
type ListOccupantsInput struct {
	ApartmentID string
}

// ListOccupantsResult は社宅と入居者の組です。
type ListOccupantsResult struct {
	Apartment *Apartment
	Occupants []Occupant
}

// CreateApartment は社宅を登録します。
func (s *Service) CreateApartment(ctx context.Context, in CreateApartmentInput) (*Apartment, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if in.Capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	if in.MonthlyRent != nil && *in.MonthlyRent < 0 {
		return nil, ErrInvalidRent
	}

	var created *Apartment
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		result, err := s.repo.Create(txCtx, &Apartment{
			Name:        name,
			PostalCode:  strings.TrimSpace(in.PostalCode),
			Address:     strings.TrimSpace(in.Address),
			RoomNumber:  strings.TrimSpace(in.RoomNumber),
			Capacity:    in.Capacity,
			MonthlyRent: in.MonthlyRent,
			IsActive:    true,
			Notes:       strings.TrimSpace(in.Notes),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return err
		}
		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// GetApartment は社宅を取得します。
func (s *Service) GetApartment(ctx context.Context, in GetApartmentInput) (*Apartment, error) {
	id, err := normalizeID(in.ID)
	if err != nil {
		return nil, err
	}

	var found *Apartment
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		found = result
		return nil
	}); err != nil {
		return nil, err
	}

	return found, nil
}

// ListApartments は社宅の一覧を取得します。VacantOnly は有効かつ空きのある社宅に限定します。
func (s *Service) ListApartments(ctx context.Context, in ListApartmentsInput) (*ListApartmentsResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	var result ListApartmentsResult
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		apartments, token, err := s.repo.List(txCtx, ListApartmentsFilter{
			ActiveOnly: in.ActiveOnly || in.VacantOnly,
			VacantOnly: in.VacantOnly,
			Search:     normalizeSearch(in.Search),
			Limit:      limit,
			Offset:     offset,
		})
		if err != nil {
			return err
		}
		result.Apartments = apartments
		result.NextPageToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdateApartment は社宅情報を更新します。定員は現入居者数を下回れません。
func (s *Service) UpdateApartment(ctx context.Context, in UpdateApartmentInput) (*Apartment, error) {
	id, err := normalizeID(in.ID)
	if err != nil {
		return nil, err
	}

	var updated *Apartment
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return ErrInvalidName
			}
			existing.Name = name
		}
		if in.PostalCode != nil {
			existing.PostalCode = strings.TrimSpace(*in.PostalCode)
		}
		if in.Address != nil {
			existing.Address = strings.TrimSpace(*in.Address)
		}
		if in.RoomNumber != nil {
			existing.RoomNumber = strings.TrimSpace(*in.RoomNumber)
		}
		if in.Capacity != nil {
			if *in.Capacity <= 0 {
				return ErrInvalidCapacity
			}
			if *in.Capacity < existing.CurrentOccupants {
				return ErrCapacityBelowOccupancy
			}
			existing.Capacity = *in.Capacity
		}
		if in.MonthlyRentSet {
			if in.MonthlyRent != nil && *in.MonthlyRent < 0 {
				return ErrInvalidRent
			}
			existing.MonthlyRent = in.MonthlyRent
		}
		if in.Notes != nil {
			existing.Notes = strings.TrimSpace(*in.Notes)
		}
		if in.IsActive != nil {
			if !*in.IsActive && existing.CurrentOccupants > 0 {
				return ErrApartmentOccupied
			}
			existing.IsActive = *in.IsActive
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

// DeactivateApartment は社宅を利用停止にします。入居者がいる場合は ErrApartmentOccupied を返します。
func (s *Service) DeactivateApartment(ctx context.Context, in DeactivateApartmentInput) (*Apartment, error) {
	inactive := false
	return s.UpdateApartment(ctx, UpdateApartmentInput{ID: in.ID, IsActive: &inactive})
}

// ListOccupants は社宅に入居中の社員を返します。社宅が存在しない場合は ErrApartmentNotFound です。
func (s *Service) ListOccupants(ctx context.Context, in ListOccupantsInput) (*ListOccupantsResult, error) {
	id, err := normalizeID(in.ApartmentID)
	if err != nil {
		return nil, err
	}

	var result ListOccupantsResult
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		occupants, err := s.repo.ListOccupants(txCtx, found.ID)
		if err != nil {
			return err
		}
		result.Apartment = found
		result.Occupants = occupants
		return nil
	}); err != nil {
		return nil, err
	}

	return &result, nil
}

func normalizeID(raw string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("id: %w", ErrInvalidID)
	}
	return parsed.String(), nil
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
