package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ogurasousui/staffing-workflow/internal/core/company"
	pgdb "github.com/ogurasousui/staffing-workflow/internal/platform/db/postgres"
)

const companyColumns = `id, name, name_kana, code, company_type, billing_rate_default, contact_name, contact_phone, status, description, created_at, updated_at`

// CompanyRepository は PostgreSQL を利用した派遣先企業永続化の実装です。
type CompanyRepository struct {
	pool pgdb.Queryer
}

// NewCompanyRepository は CompanyRepository を生成します。
func NewCompanyRepository(pool pgdb.Queryer) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

// Create は会社を新規作成します。
func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) (*company.Company, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO client_companies (name, name_kana, code, company_type, billing_rate_default, contact_name, contact_phone, status, description, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING `+companyColumns,
		c.Name, c.NameKana, c.Code, nullableCompanyType(c.Type), nullableInt64(c.BillingRateDefault),
		c.ContactName, c.ContactPhone, string(c.Status), nullableString(c.Description), c.CreatedAt, c.UpdatedAt,
	)

	created, err := scanCompany(row)
	if err != nil {
		return nil, translateCompanyPgError(err)
	}
	return created, nil
}

// Update は会社情報を更新します。
func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) (*company.Company, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE client_companies
           SET name = $1,
               name_kana = $2,
               code = $3,
               company_type = $4,
               billing_rate_default = $5,
               contact_name = $6,
               contact_phone = $7,
               status = $8,
               description = $9,
               updated_at = $10
         WHERE id = $11
        RETURNING `+companyColumns,
		c.Name, c.NameKana, c.Code, nullableCompanyType(c.Type), nullableInt64(c.BillingRateDefault),
		c.ContactName, c.ContactPhone, string(c.Status), nullableString(c.Description), c.UpdatedAt, c.ID,
	)

	updated, err := scanCompany(row)
	if err != nil {
		return nil, translateCompanyPgError(err)
	}
	return updated, nil
}

// FindByID は ID で会社を取得します。
func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*company.Company, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `SELECT `+companyColumns+` FROM client_companies WHERE id = $1`, id)

	found, err := scanCompany(row)
	if err != nil {
		return nil, translateCompanyPgError(err)
	}
	return found, nil
}

// FindByCode はコードで会社を取得します。
func (r *CompanyRepository) FindByCode(ctx context.Context, code string) (*company.Company, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `SELECT `+companyColumns+` FROM client_companies WHERE code = $1`, code)

	found, err := scanCompany(row)
	if err != nil {
		return nil, translateCompanyPgError(err)
	}
	return found, nil
}

// List は会社の一覧を取得します。
func (r *CompanyRepository) List(ctx context.Context, filter company.ListCompaniesFilter) ([]*company.Company, string, error) {
	if filter.Limit <= 0 {
		return nil, "", company.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", company.ErrInvalidPageToken
	}

	var q listQuery
	if filter.Status != nil {
		q.where("status", string(*filter.Status))
	}
	if filter.Type != nil {
		q.where("company_type", string(*filter.Type))
	}
	query := q.build(`SELECT `+companyColumns+` FROM client_companies`, "created_at DESC, id DESC", filter.Limit, filter.Offset)

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, q.args...)
	if err != nil {
		return nil, "", translateCompanyPgError(err)
	}

	companies, nextToken, err := collectPage(rows, scanCompany, filter.Limit, filter.Offset)
	if err != nil {
		return nil, "", translateCompanyPgError(err)
	}
	return companies, nextToken, nil
}

func scanCompany(row pgx.Row) (*company.Company, error) {
	var (
		id                   string
		name                 string
		nameKana             string
		code                 string
		companyType          sql.NullString
		billingRate          sql.NullInt64
		contactName          string
		contactPhone         string
		status               string
		description          sql.NullString
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(&id, &name, &nameKana, &code, &companyType, &billingRate, &contactName, &contactPhone, &status, &description, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, company.ErrCompanyNotFound
		}
		return nil, err
	}

	return &company.Company{
		ID:                 id,
		Name:               name,
		NameKana:           nameKana,
		Code:               code,
		Type:               company.Type(companyType.String),
		BillingRateDefault: int64Ptr(billingRate),
		ContactName:        contactName,
		ContactPhone:       contactPhone,
		Status:             company.Status(status),
		Description:        stringPtr(description),
		CreatedAt:          createdAt,
		UpdatedAt:          updatedAt,
	}, nil
}

func translateCompanyPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return company.ErrCodeAlreadyExists
		case checkViolationCode:
			if pgErr.ConstraintName == "client_companies_company_type_check" {
				return company.ErrInvalidType
			}
			return company.ErrInvalidBillingRate
		}
	}
	return err
}

func nullableCompanyType(t company.Type) any {
	if t == "" {
		return nil
	}
	return string(t)
}
