package placement

import (
	"context"

	"github.com/ogurasousui/staffing-workflow/internal/core/apartment"
	"github.com/ogurasousui/staffing-workflow/internal/core/candidate"
	"github.com/ogurasousui/staffing-workflow/internal/core/company"
	"github.com/ogurasousui/staffing-workflow/internal/core/employee"
)

// ApplicationRepository は応募の永続化を扱います。
type ApplicationRepository interface {
	Create(ctx context.Context, a *Application) (*Application, error)
	Update(ctx context.Context, a *Application) (*Application, error)
	FindByID(ctx context.Context, id string) (*Application, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Application, error)
	List(ctx context.Context, filter ListApplicationsFilter) ([]*Application, string, error)
}

// ListApplicationsFilter は応募一覧の検索条件です。
type ListApplicationsFilter struct {
	CandidateID *string
	Status      *ApplicationStatus
	Limit       int
	Offset      int
}

// NoticeRepository は入社連絡票の永続化を扱います。
type NoticeRepository interface {
	Create(ctx context.Context, n *JoiningNotice) (*JoiningNotice, error)
	Update(ctx context.Context, n *JoiningNotice) (*JoiningNotice, error)
	FindByID(ctx context.Context, id string) (*JoiningNotice, error)
	FindByIDForUpdate(ctx context.Context, id string) (*JoiningNotice, error)
	List(ctx context.Context, filter ListNoticesFilter) ([]*JoiningNotice, string, error)
}

// ListNoticesFilter は入社連絡票一覧の検索条件です。
type ListNoticesFilter struct {
	CandidateID *string
	Status      *NoticeStatus
	Limit       int
	Offset      int
}

// CandidateStore はワークフローが候補者に対して必要とする操作です。
type CandidateStore interface {
	FindByID(ctx context.Context, id string) (*candidate.Candidate, error)
	FindByIDForUpdate(ctx context.Context, id string) (*candidate.Candidate, error)
	Update(ctx context.Context, c *candidate.Candidate) (*candidate.Candidate, error)
}

// CompanyFinder は紹介先企業の参照を提供します。
type CompanyFinder interface {
	FindByID(ctx context.Context, id string) (*company.Company, error)
}

// ApartmentStore は社宅の空き確認と入居枠の確保を提供します。
type ApartmentStore interface {
	FindByID(ctx context.Context, id string) (*apartment.Apartment, error)
	// Occupy は空きがあれば入居者数を 1 増やします。空きがない場合は apartment.ErrNoVacancy を返します。
	Occupy(ctx context.Context, id string) (*apartment.Apartment, error)
}

// EmployeeStore は承認時の社員作成に必要な操作です。
type EmployeeStore interface {
	Create(ctx context.Context, e *employee.Employee) (*employee.Employee, error)
	// FindByCandidateID は候補者から作成済みの社員を返します。存在しない場合は employee.ErrEmployeeNotFound を返します。
	FindByCandidateID(ctx context.Context, candidateID string) (*employee.Employee, error)
}

// AssignmentStore は配属情報の作成を提供します。
type AssignmentStore interface {
	CreateAssignment(ctx context.Context, a employee.Assignment) (employee.Assignment, error)
}

// NumberAllocator は社員番号を採番します。
// 実装は呼び出し元のトランザクション内で採番し、コミットまで同じ番号を他へ払い出してはいけません。
type NumberAllocator interface {
	NextEmployeeNumber(ctx context.Context) (int64, error)
}
