package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ogurasousui/staffing-workflow/internal/core/candidate"
	"github.com/ogurasousui/staffing-workflow/internal/core/company"
	"github.com/ogurasousui/staffing-workflow/internal/core/placement"
	pgdb "github.com/ogurasousui/staffing-workflow/internal/platform/db/postgres"
)

const applicationColumns = `id, candidate_id, company_id, company_name, presented_at, status, result_at, result_notes, created_by, created_at, updated_at`

// ApplicationRepository は PostgreSQL を利用した応募永続化の実装です。
type ApplicationRepository struct {
	pool pgdb.Queryer
}

// NewApplicationRepository は ApplicationRepository を生成します。
func NewApplicationRepository(pool pgdb.Queryer) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

// Create は応募を登録します。候補者ごとに pending の応募は 1 件までです。
func (r *ApplicationRepository) Create(ctx context.Context, a *placement.Application) (*placement.Application, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO applications (candidate_id, company_id, company_name, presented_at, status, result_at, result_notes, created_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING `+applicationColumns,
		a.CandidateID, nullableString(a.CompanyID), a.CompanyName, a.PresentedAt, string(a.Status),
		nullableTimestamp(a.ResultAt), a.ResultNotes, a.CreatedBy, a.CreatedAt, a.UpdatedAt,
	)

	created, err := scanApplication(row)
	if err != nil {
		return nil, translateApplicationPgError(err)
	}
	return created, nil
}

// Update は応募の結果を更新します。
func (r *ApplicationRepository) Update(ctx context.Context, a *placement.Application) (*placement.Application, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE applications
           SET status = $1,
               result_at = $2,
               result_notes = $3,
               updated_at = $4
         WHERE id = $5
        RETURNING `+applicationColumns,
		string(a.Status), nullableTimestamp(a.ResultAt), a.ResultNotes, a.UpdatedAt, a.ID,
	)

	updated, err := scanApplication(row)
	if err != nil {
		return nil, translateApplicationPgError(err)
	}
	return updated, nil
}

// FindByID は ID で応募を取得します。
func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*placement.Application, error) {
	return r.findOne(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
}

// FindByIDForUpdate は行ロックを取得して応募を取得します。
func (r *ApplicationRepository) FindByIDForUpdate(ctx context.Context, id string) (*placement.Application, error) {
	return r.findOne(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1 FOR UPDATE`, id)
}

func (r *ApplicationRepository) findOne(ctx context.Context, query string, args ...any) (*placement.Application, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	found, err := scanApplication(exec.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateApplicationPgError(err)
	}
	return found, nil
}

// List は応募の一覧を紹介日時の新しい順に取得します。
func (r *ApplicationRepository) List(ctx context.Context, filter placement.ListApplicationsFilter) ([]*placement.Application, string, error) {
	if filter.Limit <= 0 {
		return nil, "", placement.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", placement.ErrInvalidPageToken
	}

	var q listQuery
	if filter.CandidateID != nil {
		q.where("candidate_id", *filter.CandidateID)
	}
	if filter.Status != nil {
		q.where("status", string(*filter.Status))
	}
	query := q.build(`SELECT `+applicationColumns+` FROM applications`, "presented_at DESC, id DESC", filter.Limit, filter.Offset)

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, q.args...)
	if err != nil {
		return nil, "", translateApplicationPgError(err)
	}

	apps, nextToken, err := collectPage(rows, scanApplication, filter.Limit, filter.Offset)
	if err != nil {
		return nil, "", translateApplicationPgError(err)
	}
	return apps, nextToken, nil
}

func scanApplication(row pgx.Row) (*placement.Application, error) {
	var (
		a         placement.Application
		companyID sql.NullString
		status    string
		resultAt  sql.NullTime
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(&a.ID, &a.CandidateID, &companyID, &a.CompanyName, &a.PresentedAt, &status, &resultAt, &a.ResultNotes, &a.CreatedBy, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, placement.ErrApplicationNotFound
		}
		return nil, err
	}

	a.CompanyID = stringPtr(companyID)
	a.Status = placement.ApplicationStatus(status)
	a.ResultAt = timestampPtr(resultAt)
	a.CreatedAt = createdAt
	a.UpdatedAt = updatedAt
	return &a, nil
}

func translateApplicationPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			if pgErr.ConstraintName == "applications_one_pending_per_candidate" {
				return placement.ErrPendingApplicationExists
			}
		case foreignKeyViolationCode:
			switch pgErr.ConstraintName {
			case "applications_candidate_id_fkey":
				return candidate.ErrCandidateNotFound
			case "applications_company_id_fkey":
				return company.ErrCompanyNotFound
			}
		}
	}
	return err
}
