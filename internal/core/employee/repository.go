package employee

import (
	"context"
	"time"

	"github.com/ogurasousui/staffing-workflow/internal/core/apartment"
)

// Repository は社員永続化の抽象です。
type Repository interface {
	Create(ctx context.Context, employee *Employee) (*Employee, error)
	Update(ctx context.Context, employee *Employee) (*Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Employee, error)
	FindByCandidateID(ctx context.Context, candidateID string) (*Employee, error)
	List(ctx context.Context, filter ListEmployeesFilter) ([]*Employee, string, error)
}

// ListEmployeesFilter は一覧取得用フィルタです。
type ListEmployeesFilter struct {
	EmploymentType *EmploymentType
	Status         *Status
	Search         *string
	Limit          int
	Offset         int
}

// AssignmentRepository は配属情報の永続化を扱います。
type AssignmentRepository interface {
	CreateAssignment(ctx context.Context, a Assignment) (Assignment, error)
	FindAssignmentByEmployeeID(ctx context.Context, employeeID string) (Assignment, error)
	// EndAssignment は社員の配属を終了日付きで ended にします。
	EndAssignment(ctx context.Context, employeeID string, endDate time.Time, now time.Time) (Assignment, error)
}

// HousingReleaser は退社時に社宅の入居枠を返却します。
type HousingReleaser interface {
	Release(ctx context.Context, apartmentID string) (*apartment.Apartment, error)
}
