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

const employeeColumns = `id, employee_number, joining_notice_id, candidate_id, full_name, name_kana, gender, nationality, birth_date, postal_code, address, building_name, visa_type, visa_expiry, employment_type, housing_type, apartment_id, office, status, hire_date, termination_date, created_at, updated_at`

// EmployeeRepository は PostgreSQL を利用した社員永続化の実装です。
type EmployeeRepository struct {
	pool pgdb.Queryer
}

// NewEmployeeRepository は EmployeeRepository を生成します。
func NewEmployeeRepository(pool pgdb.Queryer) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// Create は社員を新規作成します。
func (r *EmployeeRepository) Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO employees (employee_number, joining_notice_id, candidate_id, full_name, name_kana, gender, nationality, birth_date, postal_code, address, building_name, visa_type, visa_expiry, employment_type, housing_type, apartment_id, office, status, hire_date, termination_date, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
        RETURNING `+employeeColumns,
		e.EmployeeNumber,
		nullableString(e.JoiningNoticeID),
		nullableString(e.CandidateID),
		e.FullName,
		e.NameKana,
		e.Gender,
		e.Nationality,
		nullableTime(e.BirthDate),
		e.PostalCode,
		e.Address,
		e.BuildingName,
		e.VisaType,
		nullableTime(e.VisaExpiry),
		string(e.EmploymentType),
		string(e.HousingType),
		nullableString(e.ApartmentID),
		e.Office,
		string(e.Status),
		nullableTime(e.HireDate),
		nullableTime(e.TerminationDate),
		e.CreatedAt,
		e.UpdatedAt,
	)

	created, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return created, nil
}

// Update は社員情報を更新します。社員番号・雇用形態・作成元の参照は変更しません。
func (r *EmployeeRepository) Update(ctx context.Context, e *employee.Employee) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        UPDATE employees
           SET full_name = $1,
               name_kana = $2,
               postal_code = $3,
               address = $4,
               building_name = $5,
               visa_type = $6,
               visa_expiry = $7,
               housing_type = $8,
               apartment_id = $9,
               office = $10,
               status = $11,
               hire_date = $12,
               termination_date = $13,
               updated_at = $14
         WHERE id = $15
        RETURNING `+employeeColumns,
		e.FullName,
		e.NameKana,
		e.PostalCode,
		e.Address,
		e.BuildingName,
		e.VisaType,
		nullableTime(e.VisaExpiry),
		string(e.HousingType),
		nullableString(e.ApartmentID),
		e.Office,
		string(e.Status),
		nullableTime(e.HireDate),
		nullableTime(e.TerminationDate),
		e.UpdatedAt,
		e.ID,
	)

	updated, err := scanEmployee(row)
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return updated, nil
}

// FindByID は ID で社員を取得します。
func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return r.findOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
}

// FindByIDForUpdate は行ロックを取得して社員を取得します。
func (r *EmployeeRepository) FindByIDForUpdate(ctx context.Context, id string) (*employee.Employee, error) {
	return r.findOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1 FOR UPDATE`, id)
}

// FindByCandidateID は候補者から作成された社員を取得します。
func (r *EmployeeRepository) FindByCandidateID(ctx context.Context, candidateID string) (*employee.Employee, error) {
	return r.findOne(ctx, `SELECT `+employeeColumns+` FROM employees WHERE candidate_id = $1`, candidateID)
}

func (r *EmployeeRepository) findOne(ctx context.Context, query string, args ...any) (*employee.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	found, err := scanEmployee(exec.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateEmployeePgError(err)
	}
	return found, nil
}

// List は社員の一覧を社員番号順に取得します。
func (r *EmployeeRepository) List(ctx context.Context, filter employee.ListEmployeesFilter) ([]*employee.Employee, string, error) {
	if filter.Limit <= 0 {
		return nil, "", employee.ErrInvalidPageSize
	}
	if filter.Offset < 0 {
		return nil, "", employee.ErrInvalidPageToken
	}

	var q listQuery
	if filter.EmploymentType != nil {
		q.where("employment_type", string(*filter.EmploymentType))
	}
	if filter.Status != nil {
		q.where("status", string(*filter.Status))
	}
	if filter.Search != nil {
		q.whereSearch(*filter.Search, "full_name", "name_kana", "employee_number::text")
	}
	query := q.build(`SELECT `+employeeColumns+` FROM employees`, "employee_number ASC", filter.Limit, filter.Offset)

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, q.args...)
	if err != nil {
		return nil, "", translateEmployeePgError(err)
	}

	employees, nextToken, err := collectPage(rows, scanEmployee, filter.Limit, filter.Offset)
	if err != nil {
		return nil, "", translateEmployeePgError(err)
	}
	return employees, nextToken, nil
}

func scanEmployee(row pgx.Row) (*employee.Employee, error) {
	var (
		e               employee.Employee
		joiningNoticeID sql.NullString
		candidateID     sql.NullString
		birthDate       sql.NullTime
		visaExpiry      sql.NullTime
		employmentType  string
		housingType     string
		apartmentID     sql.NullString
		status          string
		hireDate        sql.NullTime
		terminationDate sql.NullTime
		createdAt       time.Time
		updatedAt       time.Time
	)

	if err := row.Scan(
		&e.ID,
		&e.EmployeeNumber,
		&joiningNoticeID,
		&candidateID,
		&e.FullName,
		&e.NameKana,
		&e.Gender,
		&e.Nationality,
		&birthDate,
		&e.PostalCode,
		&e.Address,
		&e.BuildingName,
		&e.VisaType,
		&visaExpiry,
		&employmentType,
		&housingType,
		&apartmentID,
		&e.Office,
		&status,
		&hireDate,
		&terminationDate,
		&createdAt,
		&updatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, err
	}

	e.JoiningNoticeID = stringPtr(joiningNoticeID)
	e.CandidateID = stringPtr(candidateID)
	e.BirthDate = datePtr(birthDate)
	e.VisaExpiry = datePtr(visaExpiry)
	e.EmploymentType = employee.EmploymentType(employmentType)
	e.HousingType = employee.HousingType(housingType)
	e.ApartmentID = stringPtr(apartmentID)
	e.Status = employee.Status(status)
	e.HireDate = datePtr(hireDate)
	e.TerminationDate = datePtr(terminationDate)
	e.CreatedAt = createdAt
	e.UpdatedAt = updatedAt
	return &e, nil
}

func translateEmployeePgError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			switch pgErr.ConstraintName {
			case "employees_employee_number_key":
				return employee.ErrEmployeeNumberExists
			case "employees_candidate_id_key", "employees_joining_notice_id_key":
				return employee.ErrCandidateAlreadyEmployed
			default:
				return err
			}
		case checkViolationCode:
			if pgErr.ConstraintName == "employees_employment_period_check" {
				return employee.ErrInvalidDateRange
			}
		}
	}

	return err
}
