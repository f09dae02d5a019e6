package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ogurasousui/staffing-workflow/internal/core/employee"
	pgdb "github.com/ogurasousui/staffing-workflow/internal/platform/db/postgres"
)

const (
	hakenAssignmentColumns = `id, employee_id, client_company_id, client_company, location, line, job_description, hourly_rate, billing_rate, move_in_date, start_date, end_date, status, created_at, updated_at`
	ukeoiAssignmentColumns = `id, employee_id, job_type, hourly_rate, move_in_date, start_date, end_date, bank_account_name, bank_name, branch_number, branch_name, account_number, status, created_at, updated_at`
)

// AssignmentRepository は派遣・請負の配属情報を PostgreSQL に永続化します。
// 社員 1 人につきどちらか一方のテーブルにだけ行が存在します。
type AssignmentRepository struct {
	pool pgdb.Queryer
}

// NewAssignmentRepository は AssignmentRepository を生成します。
func NewAssignmentRepository(pool pgdb.Queryer) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

// CreateAssignment は雇用形態に応じたテーブルへ配属情報を登録します。
func (r *AssignmentRepository) CreateAssignment(ctx context.Context, a employee.Assignment) (employee.Assignment, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)

	switch v := a.(type) {
	case *employee.HakenAssignment:
		row := exec.QueryRow(ctx, `
        INSERT INTO haken_assignments (employee_id, client_company_id, client_company, location, line, job_description, hourly_rate, billing_rate, move_in_date, start_date, end_date, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING `+hakenAssignmentColumns,
			v.EmployeeID, nullableString(v.ClientCompanyID), v.ClientCompany, v.Location, v.Line, v.JobDescription,
			nullableInt64(v.HourlyRate), nullableInt64(v.BillingRate),
			nullableTime(v.MoveInDate), nullableTime(v.StartDate), nullableTime(v.EndDate),
			string(v.Status), v.CreatedAt, v.UpdatedAt,
		)
		created, err := scanHakenAssignment(row)
		if err != nil {
			return nil, translateAssignmentPgError(err)
		}
		return created, nil
	case *employee.UkeoiAssignment:
		row := exec.QueryRow(ctx, `
        INSERT INTO ukeoi_assignments (employee_id, job_type, hourly_rate, move_in_date, start_date, end_date, bank_account_name, bank_name, branch_number, branch_name, account_number, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING `+ukeoiAssignmentColumns,
			v.EmployeeID, v.JobType, nullableInt64(v.HourlyRate),
			nullableTime(v.MoveInDate), nullableTime(v.StartDate), nullableTime(v.EndDate),
			v.BankAccountName, v.BankName, v.BranchNumber, v.BranchName, v.AccountNumber,
			string(v.Status), v.CreatedAt, v.UpdatedAt,
		)
		created, err := scanUkeoiAssignment(row)
		if err != nil {
			return nil, translateAssignmentPgError(err)
		}
		return created, nil
	default:
		return nil, employee.ErrInvalidEmploymentType
	}
}

// FindAssignmentByEmployeeID は社員の配属情報を取得します。
func (r *AssignmentRepository) FindAssignmentByEmployeeID(ctx context.Context, employeeID string) (employee.Assignment, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)

	haken, err := scanHakenAssignment(exec.QueryRow(ctx, `SELECT `+hakenAssignmentColumns+` FROM haken_assignments WHERE employee_id = $1`, employeeID))
	if err == nil {
		return haken, nil
	}
	if !errors.Is(err, employee.ErrAssignmentNotFound) {
		return nil, translateAssignmentPgError(err)
	}

	ukeoi, err := scanUkeoiAssignment(exec.QueryRow(ctx, `SELECT `+ukeoiAssignmentColumns+` FROM ukeoi_assignments WHERE employee_id = $1`, employeeID))
	if err != nil {
		return nil, translateAssignmentPgError(err)
	}
	return ukeoi, nil
}

// EndAssignment は配属を ended にし、終了日を記録します。
func (r *AssignmentRepository) EndAssignment(ctx context.Context, employeeID string, endDate, now time.Time) (employee.Assignment, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)

	haken, err := scanHakenAssignment(exec.QueryRow(ctx, `
        UPDATE haken_assignments
           SET status = $1, end_date = $2, updated_at = $3
         WHERE employee_id = $4
        RETURNING `+hakenAssignmentColumns,
		string(employee.AssignmentEnded), nullableTime(&endDate), now, employeeID,
	))
	if err == nil {
		return haken, nil
	}
	if !errors.Is(err, employee.ErrAssignmentNotFound) {
		return nil, translateAssignmentPgError(err)
	}

	ukeoi, err := scanUkeoiAssignment(exec.QueryRow(ctx, `
        UPDATE ukeoi_assignments
           SET status = $1, end_date = $2, updated_at = $3
         WHERE employee_id = $4
        RETURNING `+ukeoiAssignmentColumns,
		string(employee.AssignmentEnded), nullableTime(&endDate), now, employeeID,
	))
	if err != nil {
		return nil, translateAssignmentPgError(err)
	}
	return ukeoi, nil
}

func scanHakenAssignment(row pgx.Row) (*employee.HakenAssignment, error) {
	var (
		a                    employee.HakenAssignment
		clientCompanyID      sql.NullString
		hourlyRate           sql.NullInt64
		billingRate          sql.NullInt64
		moveInDate           sql.NullTime
		startDate            sql.NullTime
		endDate              sql.NullTime
		status               string
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(
		&a.ID, &a.EmployeeID, &clientCompanyID, &a.ClientCompany, &a.Location, &a.Line, &a.JobDescription,
		&hourlyRate, &billingRate, &moveInDate, &startDate, &endDate, &status, &createdAt, &updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrAssignmentNotFound
		}
		return nil, err
	}

	a.ClientCompanyID = stringPtr(clientCompanyID)
	a.HourlyRate = int64Ptr(hourlyRate)
	a.BillingRate = int64Ptr(billingRate)
	a.MoveInDate = datePtr(moveInDate)
	a.StartDate = datePtr(startDate)
	a.EndDate = datePtr(endDate)
	a.Status = employee.AssignmentStatus(status)
	a.CreatedAt = createdAt
	a.UpdatedAt = updatedAt
	return &a, nil
}

func scanUkeoiAssignment(row pgx.Row) (*employee.UkeoiAssignment, error) {
	var (
		a                    employee.UkeoiAssignment
		hourlyRate           sql.NullInt64
		moveInDate           sql.NullTime
		startDate            sql.NullTime
		endDate              sql.NullTime
		status               string
		createdAt, updatedAt time.Time
	)

	if err := row.Scan(
		&a.ID, &a.EmployeeID, &a.JobType, &hourlyRate, &moveInDate, &startDate, &endDate,
		&a.BankAccountName, &a.BankName, &a.BranchNumber, &a.BranchName, &a.AccountNumber,
		&status, &createdAt, &updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrAssignmentNotFound
		}
		return nil, err
	}

	a.HourlyRate = int64Ptr(hourlyRate)
	a.MoveInDate = datePtr(moveInDate)
	a.StartDate = datePtr(startDate)
	a.EndDate = datePtr(endDate)
	a.Status = employee.AssignmentStatus(status)
	a.CreatedAt = createdAt
	a.UpdatedAt = updatedAt
	return &a, nil
}

func translateAssignmentPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return employee.ErrAssignmentAlreadyExists
		case foreignKeyViolationCode:
			if pgErr.ConstraintName == "haken_assignments_employee_id_fkey" || pgErr.ConstraintName == "ukeoi_assignments_employee_id_fkey" {
				return employee.ErrEmployeeNotFound
			}
		}
	}
	return err
}
