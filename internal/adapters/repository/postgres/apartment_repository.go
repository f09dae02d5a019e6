package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ogurasousui/staffing-workflow/internal/core/apartment"
	pgdb "github.com/ogurasousui/staffing-workflow/internal/platform/db/postgres"
)

const apartmentColumns = `id, name, postal_code, address, room_number, capacity, current_occupants, monthly_rent, is_active, notes, created_at, updated_at`

// ApartmentRepository は PostgreSQL を利用した社宅永続化の実装です。
type ApartmentRepository struct {
	pool pgdb.Queryer
}

// NewApartmentRepository は ApartmentRepository を生成します。
func NewApartmentRepository(pool pgdb.Queryer) *ApartmentRepository {
	return &ApartmentRepository{pool: pool}
}

// Create は社宅を登録します。
func (r *ApartmentRepository) Create(ctx context.Context, a *apartment.Apartment) (*apartment.Apartment, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO company_apartments (name, postal_code, address, room_number, capacity, current_occupants, monthly_rent, is_active, notes, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING `+apartmentColumns,
		a.Name, a.PostalCode, a.Address, a.RoomNumber, a.Capacity, a.CurrentOccupants,
		nullableInt64(a.MonthlyRent), a.IsActive, a.Notes, a.CreatedAt, a.UpdatedAt,
	)

	created, err := scanApartment(row)
	if err != nil {
		return nil, translateApartmentPgError(err)
	}
	return created, nil
}

// Update は社宅情報を更新します。入居者数は Occupy / Release でのみ変更します。
func (r *ApartmentRepository) Update(ctx context.Context, a *apartment.Apartment) (*apartment.Apartment, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE company_apartments
           SET name = $1,
               postal_code = $2,
               address = $3,
               room_number = $4,
               capacity = $5,
               monthly_rent = $6,
               is_active = $7,
               notes = $8,
               updated_at = $9
         WHERE id = $10
        RETURNING `+apartmentColumns,
		a.Name, a.PostalCode, a.Address, a.RoomNumber, a.Capacity,
		nullableInt64(a.MonthlyRent), a.IsActive, a.Notes, a.UpdatedAt, a.ID,
	)

	updated, err := scanApartment(row)
	if err != nil {
		return nil, translateApartmentPgError(err)
	}
	return updated, nil
}

// FindByID は ID で社宅を取得します。
func (r *ApartmentRepository) FindByID(ctx context.Context, id string) (*apartment.Apartment, error) {
	return r.findOne(ctx, `SELECT `+apartmentColumns+` FROM company_apartments WHERE id = $1`, id)
}

// FindByIDForUpdate は行ロックを取得して社宅を取得します。
func (r *ApartmentRepository) FindByIDForUpdate(ctx context.Context, id string) (*apartment.Apartment, error) {
	return r.findOne(ctx, `SELECT `+apartmentColumns+` FROM company_apartments WHERE id = $1 FOR UPDATE`, id)
}

func (r *ApartmentRepository) findOne(ctx context.Context, query string, args ...any) (*apartment.Apartment, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	found, err := scanApartment(exec.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateApartmentPgError(err)
	}
	return found, nil
}

// List は社宅の一覧を名前順に取得します。
func (r *ApartmentRepository) List(ctx context.Context, filter apartment.ListApartmentsFilter) ([]*apartment.Apartment, string, error) {
	if filter.Limit <= 0 {
		return nil, "", apartment.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", apartment.ErrInvalidPageToken
	}

	var q listQuery
	if filter.ActiveOnly {
		q.whereRaw("is_active")
	}
	if filter.VacantOnly {
		q.whereRaw("current_occupants < capacity")
	}
	if filter.Search != nil {
		q.whereSearch(*filter.Search, "name", "address")
	}
	query := q.build(`SELECT `+apartmentColumns+` FROM company_apartments`, "name ASC, id ASC", filter.Limit, filter.Offset)

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, q.args...)
	if err != nil {
		return nil, "", translateApartmentPgError(err)
	}

	apartments, nextToken, err := collectPage(rows, scanApartment, filter.Limit, filter.Offset)
	if err != nil {
		return nil, "", translateApartmentPgError(err)
	}
	return apartments, nextToken, nil
}

// Occupy は空きがある場合に限り入居者数を 1 増やします。条件付き UPDATE のため同時実行でも定員を超えません。
func (r *ApartmentRepository) Occupy(ctx context.Context, id string) (*apartment.Apartment, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE company_apartments
           SET current_occupants = current_occupants + 1,
               updated_at = now()
         WHERE id = $1 AND is_active AND current_occupants < capacity
        RETURNING `+apartmentColumns, id)

	occupied, err := scanApartment(row)
	if errors.Is(err, apartment.ErrApartmentNotFound) {
		if _, findErr := r.FindByID(ctx, id); findErr != nil {
			return nil, findErr
		}
		return nil, apartment.ErrNoVacancy
	}
	if err != nil {
		return nil, translateApartmentPgError(err)
	}
	return occupied, nil
}

// Release は入居者数を 1 減らします。0 未満にはなりません。
func (r *ApartmentRepository) Release(ctx context.Context, id string) (*apartment.Apartment, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE company_apartments
           SET current_occupants = GREATEST(current_occupants - 1, 0),
               updated_at = now()
         WHERE id = $1
        RETURNING `+apartmentColumns, id)

	released, err := scanApartment(row)
	if err != nil {
		return nil, translateApartmentPgError(err)
	}
	return released, nil
}

// ListOccupants は社宅に入居中の在籍社員を社員番号順に取得します。
func (r *ApartmentRepository) ListOccupants(ctx context.Context, apartmentID string) ([]apartment.Occupant, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `
        SELECT id, employee_number, full_name, name_kana, office, hire_date
          FROM employees
         WHERE apartment_id = $1 AND status = 'active'
         ORDER BY employee_number ASC`, apartmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	occupants := make([]apartment.Occupant, 0)
	for rows.Next() {
		var (
			o        apartment.Occupant
			hireDate sql.NullTime
		)
		if err := rows.Scan(&o.EmployeeID, &o.EmployeeNumber, &o.FullName, &o.NameKana, &o.Office, &hireDate); err != nil {
			return nil, err
		}
		o.HireDate = datePtr(hireDate)
		occupants = append(occupants, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return occupants, nil
}

func scanApartment(row pgx.Row) (*apartment.Apartment, error) {
	var (
		a           apartment.Apartment
		monthlyRent sql.NullInt64
		createdAt   time.Time
		updatedAt   time.Time
	)

	if err := row.Scan(&a.ID, &a.Name, &a.PostalCode, &a.Address, &a.RoomNumber, &a.Capacity, &a.CurrentOccupants, &monthlyRent, &a.IsActive, &a.Notes, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apartment.ErrApartmentNotFound
		}
		return nil, err
	}

	a.MonthlyRent = int64Ptr(monthlyRent)
	a.CreatedAt = createdAt
	a.UpdatedAt = updatedAt
	return &a, nil
}

func translateApartmentPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == checkViolationCode {
		switch pgErr.ConstraintName {
		case "company_apartments_occupancy_check":
			return apartment.ErrCapacityBelowOccupancy
		case "company_apartments_capacity_check":
			return apartment.ErrInvalidCapacity
		case "company_apartments_monthly_rent_check":
			return apartment.ErrInvalidRent
		}
	}
	return err
}
