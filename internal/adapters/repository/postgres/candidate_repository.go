package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/ogurasousui/staffing-workflow/internal/core/candidate"
	pgdb "github.com/ogurasousui/staffing-workflow/internal/platform/db/postgres"
)

const candidateColumns = `id, full_name, name_kana, name_romaji, gender, nationality, birth_date, postal_code, address, building_name, phone, mobile, email, visa_type, visa_expiry, residence_card_number, passport_number, passport_expiry, notes, status, created_by, created_at, updated_at`

// CandidateRepository は PostgreSQL を利用した候補者永続化の実装です。
type CandidateRepository struct {
	pool pgdb.Queryer
}

// NewCandidateRepository は CandidateRepository を生成します。
func NewCandidateRepository(pool pgdb.Queryer) *CandidateRepository {
	return &CandidateRepository{pool: pool}
}

// Create は候補者を登録します。
func (r *CandidateRepository) Create(ctx context.Context, c *candidate.Candidate) (*candidate.Candidate, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO candidates (full_name, name_kana, name_romaji, gender, nationality, birth_date, postal_code, address, building_name, phone, mobile, email, visa_type, visa_expiry, residence_card_number, passport_number, passport_expiry, notes, status, created_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
        RETURNING `+candidateColumns,
		c.FullName, c.NameKana, c.NameRomaji, c.Gender, c.Nationality, nullableTime(c.BirthDate),
		c.PostalCode, c.Address, c.BuildingName, c.Phone, c.Mobile, c.Email,
		c.VisaType, nullableTime(c.VisaExpiry), c.ResidenceCardNumber, c.PassportNumber, nullableTime(c.PassportExpiry),
		c.Notes, string(c.Status), c.CreatedBy, c.CreatedAt, c.UpdatedAt,
	)

	created, err := scanCandidate(row)
	if err != nil {
		return nil, translateCandidatePgError(err)
	}
	return created, nil
}

// Update は候補者のプロフィールと状態を更新します。
func (r *CandidateRepository) Update(ctx context.Context, c *candidate.Candidate) (*candidate.Candidate, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE candidates
           SET full_name = $1, name_kana = $2, name_romaji = $3, gender = $4, nationality = $5, birth_date = $6,
               postal_code = $7, address = $8, building_name = $9, phone = $10, mobile = $11, email = $12,
               visa_type = $13, visa_expiry = $14, residence_card_number = $15, passport_number = $16, passport_expiry = $17,
               notes = $18, status = $19, updated_at = $20
         WHERE id = $21
        RETURNING `+candidateColumns,
		c.FullName, c.NameKana, c.NameRomaji, c.Gender, c.Nationality, nullableTime(c.BirthDate),
		c.PostalCode, c.Address, c.BuildingName, c.Phone, c.Mobile, c.Email,
		c.VisaType, nullableTime(c.VisaExpiry), c.ResidenceCardNumber, c.PassportNumber, nullableTime(c.PassportExpiry),
		c.Notes, string(c.Status), c.UpdatedAt, c.ID,
	)

	updated, err := scanCandidate(row)
	if err != nil {
		return nil, translateCandidatePgError(err)
	}
	return updated, nil
}

// FindByID は ID で候補者を取得します。
func (r *CandidateRepository) FindByID(ctx context.Context, id string) (*candidate.Candidate, error) {
	return r.findOne(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, id)
}

// FindByIDForUpdate は行ロックを取得して候補者を取得します。
func (r *CandidateRepository) FindByIDForUpdate(ctx context.Context, id string) (*candidate.Candidate, error) {
	return r.findOne(ctx, `SELECT `+candidateColumns+` FROM candidates WHERE id = $1 FOR UPDATE`, id)
}

func (r *CandidateRepository) findOne(ctx context.Context, query string, args ...any) (*candidate.Candidate, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	found, err := scanCandidate(exec.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateCandidatePgError(err)
	}
	return found, nil
}

// List は候補者の一覧を登録日時の新しい順に取得します。
func (r *CandidateRepository) List(ctx context.Context, filter candidate.ListCandidatesFilter) ([]*candidate.Candidate, string, error) {
	if filter.Limit <= 0 {
		return nil, "", candidate.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", candidate.ErrInvalidPageToken
	}

	var q listQuery
	if filter.Status != nil {
		q.where("status", string(*filter.Status))
	}
	if filter.Search != nil {
		q.whereSearch(*filter.Search, "full_name", "name_kana", "nationality")
	}
	query := q.build(`SELECT `+candidateColumns+` FROM candidates`, "created_at DESC, id DESC", filter.Limit, filter.Offset)

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, q.args...)
	if err != nil {
		return nil, "", translateCandidatePgError(err)
	}

	candidates, nextToken, err := collectPage(rows, scanCandidate, filter.Limit, filter.Offset)
	if err != nil {
		return nil, "", translateCandidatePgError(err)
	}
	return candidates, nextToken, nil
}

func scanCandidate(row pgx.Row) (*candidate.Candidate, error) {
	var (
		c                    candidate.Candidate
		status               string
		birthDate            sql.NullTime
		visaExpiry           sql.NullTime
		passportExpiry       sql.NullTime
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(
		&c.ID, &c.FullName, &c.NameKana, &c.NameRomaji, &c.Gender, &c.Nationality, &birthDate,
		&c.PostalCode, &c.Address, &c.BuildingName, &c.Phone, &c.Mobile, &c.Email,
		&c.VisaType, &visaExpiry, &c.ResidenceCardNumber, &c.PassportNumber, &passportExpiry,
		&c.Notes, &status, &c.CreatedBy, &createdAt, &updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, candidate.ErrCandidateNotFound
		}
		return nil, err
	}

	c.Status = candidate.Status(status)
	c.BirthDate = datePtr(birthDate)
	c.VisaExpiry = datePtr(visaExpiry)
	c.PassportExpiry = datePtr(passportExpiry)
	c.CreatedAt = createdAt
	c.UpdatedAt = updatedAt
	return &c, nil
}

func translateCandidatePgError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return candidate.ErrCandidateNotFound
	}
	return err
}
