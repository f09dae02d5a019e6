package apartment

import "context"

// Repository は社宅永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, a *Apartment) (*Apartment, error)
	Update(ctx context.Context, a *Apartment) (*Apartment, error)
	FindByID(ctx context.Context, id string) (*Apartment, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Apartment, error)
	List(ctx context.Context, filter ListApartmentsFilter) ([]*Apartment, string, error)
	// Occupy は有効かつ空きのある社宅の入居者数を 1 増やします。空きがなければ ErrNoVacancy を返します。
	Occupy(ctx context.Context, id string) (*Apartment, error)
	// Release は入居者数を 1 減らします。0 未満にはなりません。
	Release(ctx context.Context, id string) (*Apartment, error)
	// ListOccupants は社宅に入居中 (在籍 active) の社員を社員番号順に返します。
	ListOccupants(ctx context.Context, apartmentID string) ([]Occupant, error)
}

// ListApartmentsFilter は一覧取得用フィルタです。
type ListApartmentsFilter struct {
	ActiveOnly bool
	VacantOnly bool
	Search     *string
	Limit      int
	Offset     int
}
