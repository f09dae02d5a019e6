package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ogurasousui/staffing-workflow/internal/core/apartment"
	"github.com/ogurasousui/staffing-workflow/internal/core/candidate"
	"github.com/ogurasousui/staffing-workflow/internal/core/company"
	"github.com/ogurasousui/staffing-workflow/internal/core/employee"
	"github.com/ogurasousui/staffing-workflow/internal/core/placement"
	pgdb "github.com/ogurasousui/staffing-workflow/internal/platform/db/postgres"
)

const noticeColumns = `id, candidate_id, application_id, employment_type, full_name, name_kana, gender, nationality, birth_date, visa_type, visa_expiry, postal_code, address, building_name, housing_type, apartment_id, move_in_date, assignment_company_id, assignment_company, assignment_location, assignment_line, job_description, hourly_rate, billing_rate, bank_account_name, bank_name, branch_number, branch_name, account_number, status, submitted_at, approved_at, approved_by, rejection_reason, created_by, created_at, updated_at`

// NoticeRepository は PostgreSQL を利用した入社連絡票永続化の実装です。
type NoticeRepository struct {
	pool pgdb.Queryer
}

// NewNoticeRepository は NoticeRepository を生成します。
func NewNoticeRepository(pool pgdb.Queryer) *NoticeRepository {
	return &NoticeRepository{pool: pool}
}

// Create は入社連絡票を登録します。
func (r *NoticeRepository) Create(ctx context.Context, n *placement.JoiningNotice) (*placement.JoiningNotice, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	args := append([]any{n.CandidateID, nullableString(n.ApplicationID), string(n.EmploymentType)}, noticeFieldArgs(n.NoticeFields)...)
	args = append(args, string(n.Status), nullableTimestamp(n.SubmittedAt), nullableTimestamp(n.ApprovedAt),
		nullableString(n.ApprovedBy), nullableString(n.RejectionReason), n.CreatedBy, n.CreatedAt, n.UpdatedAt)

	row := exec.QueryRow(ctx, `
        INSERT INTO joining_notices (candidate_id, application_id, employment_type, full_name, name_kana, gender, nationality, birth_date, visa_type, visa_expiry, postal_code, address, building_name, housing_type, apartment_id, move_in_date, assignment_company_id, assignment_company, assignment_location, assignment_line, job_description, hourly_rate, billing_rate, bank_account_name, bank_name, branch_number, branch_name, account_number, status, submitted_at, approved_at, approved_by, rejection_reason, created_by, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35, $36)
        RETURNING `+noticeColumns, args...)

	created, err := scanNotice(row)
	if err != nil {
		return nil, translateNoticePgError(err)
	}
	return created, nil
}

// Update は入社連絡票の記載項目と承認状態を更新します。候補者・雇用形態は変更しません。
func (r *NoticeRepository) Update(ctx context.Context, n *placement.JoiningNotice) (*placement.JoiningNotice, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	args := noticeFieldArgs(n.NoticeFields)
	args = append(args, string(n.Status), nullableTimestamp(n.SubmittedAt), nullableTimestamp(n.ApprovedAt),
		nullableString(n.ApprovedBy), nullableString(n.RejectionReason), n.UpdatedAt, n.ID)

	row := exec.QueryRow(ctx, `
        UPDATE joining_notices
           SET full_name = $1, name_kana = $2, gender = $3, nationality = $4, birth_date = $5, visa_type = $6, visa_expiry = $7,
               postal_code = $8, address = $9, building_name = $10,
               housing_type = $11, apartment_id = $12, move_in_date = $13,
               assignment_company_id = $14, assignment_company = $15, assignment_location = $16, assignment_line = $17, job_description = $18,
               hourly_rate = $19, billing_rate = $20,
               bank_account_name = $21, bank_name = $22, branch_number = $23, branch_name = $24, account_number = $25,
               status = $26, submitted_at = $27, approved_at = $28, approved_by = $29, rejection_reason = $30, updated_at = $31
         WHERE id = $32
        RETURNING `+noticeColumns, args...)

	updated, err := scanNotice(row)
	if err != nil {
		return nil, translateNoticePgError(err)
	}
	return updated, nil
}

// FindByID は ID で入社連絡票を取得します。
func (r *NoticeRepository) FindByID(ctx context.Context, id string) (*placement.JoiningNotice, error) {
	return r.findOne(ctx, `SELECT `+noticeColumns+` FROM joining_notices WHERE id = $1`, id)
}

// FindByIDForUpdate は行ロックを取得して入社連絡票を取得します。
func (r *NoticeRepository) FindByIDForUpdate(ctx context.Context, id string) (*placement.JoiningNotice, error) {
	return r.findOne(ctx, `SELECT `+noticeColumns+` FROM joining_notices WHERE id = $1 FOR UPDATE`, id)
}

func (r *NoticeRepository) findOne(ctx context.Context, query string, args ...any) (*placement.JoiningNotice, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	found, err := scanNotice(exec.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateNoticePgError(err)
	}
	return found, nil
}

// List は入社連絡票の一覧を作成日時の新しい順に取得します。
func (r *NoticeRepository) List(ctx context.Context, filter placement.ListNoticesFilter) ([]*placement.JoiningNotice, string, error) {
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
	query := q.build(`SELECT `+noticeColumns+` FROM joining_notices`, "created_at DESC, id DESC", filter.Limit, filter.Offset)

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, q.args...)
	if err != nil {
		return nil, "", translateNoticePgError(err)
	}

	notices, nextToken, err := collectPage(rows, scanNotice, filter.Limit, filter.Offset)
	if err != nil {
		return nil, "", translateNoticePgError(err)
	}
	return notices, nextToken, nil
}

// noticeFieldArgs は記載項目を列順 (full_name から account_number まで) の引数に変換します。
func noticeFieldArgs(f placement.NoticeFields) []any {
	return []any{
		f.FullName, f.NameKana, f.Gender, f.Nationality, nullableTime(f.BirthDate), f.VisaType, nullableTime(f.VisaExpiry),
		f.PostalCode, f.Address, f.BuildingName,
		string(f.HousingType), nullableString(f.ApartmentID), nullableTime(f.MoveInDate),
		nullableString(f.AssignmentCompanyID), f.AssignmentCompany, f.AssignmentLocation, f.AssignmentLine, f.JobDescription,
		nullableInt64(f.HourlyRate), nullableInt64(f.BillingRate),
		f.BankAccountName, f.BankName, f.BranchNumber, f.BranchName, f.AccountNumber,
	}
}

func scanNotice(row pgx.Row) (*placement.JoiningNotice, error) {
	var (
		n                   placement.JoiningNotice
		applicationID       sql.NullString
		employmentType      string
		birthDate           sql.NullTime
		visaExpiry          sql.NullTime
		housingType         string
		apartmentID         sql.NullString
		moveInDate          sql.NullTime
		assignmentCompanyID sql.NullString
		hourlyRate          sql.NullInt64
		billingRate         sql.NullInt64
		status              string
		submittedAt         sql.NullTime
		approvedAt          sql.NullTime
		approvedBy          sql.NullString
		rejectionReason     sql.NullString
		createdAt           time.Time
		updatedAt           time.Time
	)

	if err := row.Scan(
		&n.ID, &n.CandidateID, &applicationID, &employmentType,
		&n.FullName, &n.NameKana, &n.Gender, &n.Nationality, &birthDate, &n.VisaType, &visaExpiry,
		&n.PostalCode, &n.Address, &n.BuildingName,
		&housingType, &apartmentID, &moveInDate,
		&assignmentCompanyID, &n.AssignmentCompany, &n.AssignmentLocation, &n.AssignmentLine, &n.JobDescription,
		&hourlyRate, &billingRate,
		&n.BankAccountName, &n.BankName, &n.BranchNumber, &n.BranchName, &n.AccountNumber,
		&status, &submittedAt, &approvedAt, &approvedBy, &rejectionReason,
		&n.CreatedBy, &createdAt, &updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, placement.ErrNoticeNotFound
		}
		return nil, err
	}

	n.ApplicationID = stringPtr(applicationID)
	n.EmploymentType = employee.EmploymentType(employmentType)
	n.BirthDate = datePtr(birthDate)
	n.VisaExpiry = datePtr(visaExpiry)
	n.HousingType = employee.HousingType(housingType)
	n.ApartmentID = stringPtr(apartmentID)
	n.MoveInDate = datePtr(moveInDate)
	n.AssignmentCompanyID = stringPtr(assignmentCompanyID)
	n.HourlyRate = int64Ptr(hourlyRate)
	n.BillingRate = int64Ptr(billingRate)
	n.Status = placement.NoticeStatus(status)
	n.SubmittedAt = timestampPtr(submittedAt)
	n.ApprovedAt = timestampPtr(approvedAt)
	n.ApprovedBy = stringPtr(approvedBy)
	n.RejectionReason = stringPtr(rejectionReason)
	n.CreatedAt = createdAt
	n.UpdatedAt = updatedAt
	return &n, nil
}

func translateNoticePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolationCode:
			switch pgErr.ConstraintName {
			case "joining_notices_candidate_id_fkey":
				return candidate.ErrCandidateNotFound
			case "joining_notices_application_id_fkey":
				return placement.ErrApplicationNotFound
			case "joining_notices_apartment_id_fkey":
				return apartment.ErrApartmentNotFound
			case "joining_notices_assignment_company_id_fkey":
				return company.ErrCompanyNotFound
			}
		case checkViolationCode:
			if pgErr.ConstraintName == "joining_notices_housing_type_check" {
				return placement.ErrInvalidHousingType
			}
			return placement.ErrInvalidRate
		}
	}
	return err
}
