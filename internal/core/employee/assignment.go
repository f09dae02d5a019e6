package employee

import "time"

// AssignmentStatus は配属の状態です。
type AssignmentStatus string

const (
	AssignmentActive AssignmentStatus = "active"
	AssignmentEnded  AssignmentStatus = "ended"
)

// Assignment は雇用形態ごとの配属情報です。社員 1 人につき HakenAssignment か UkeoiAssignment のどちらか一方だけが存在します。
type Assignment interface {
	EmploymentType() EmploymentType
	AssignedEmployeeID() string
	isAssignment()
}

// HakenAssignment は派遣社員の派遣先情報です。
type HakenAssignment struct {
	ID              string
	EmployeeID      string
	ClientCompanyID *string
	ClientCompany   string
	Location        string
	Line            string
	JobDescription  string
	HourlyRate      *int64
	BillingRate     *int64
	MoveInDate      *time.Time
	StartDate       *time.Time
	EndDate         *time.Time
	Status          AssignmentStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EmploymentType は EmploymentTypeHaken を返します。
func (a *HakenAssignment) EmploymentType() EmploymentType { return EmploymentTypeHaken }

// AssignedEmployeeID は配属先の社員 ID を返します。
func (a *HakenAssignment) AssignedEmployeeID() string { return a.EmployeeID }

func (*HakenAssignment) isAssignment() {}

// UkeoiAssignment は請負社員の業務・給与振込情報です。
type UkeoiAssignment struct {
	ID              string
	EmployeeID      string
	JobType         string
	HourlyRate      *int64
	MoveInDate      *time.Time
	StartDate       *time.Time
	EndDate         *time.Time
	BankAccountName string
	BankName        string
	BranchNumber    string
	BranchName      string
	AccountNumber   string
	Status          AssignmentStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EmploymentType は EmploymentTypeUkeoi を返します。
func (a *UkeoiAssignment) EmploymentType() EmploymentType { return EmploymentTypeUkeoi }

// AssignedEmployeeID は配属先の社員 ID を返します。
func (a *UkeoiAssignment) AssignedEmployeeID() string { return a.EmployeeID }

func (*UkeoiAssignment) isAssignment() {}
