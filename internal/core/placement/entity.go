package placement

import (
	"time"

	"github.com/ogurasousui/staffing-workflow/internal/core/candidate"
	"github.com/ogurasousui/staffing-workflow/internal/core/employee"
)

// ApplicationStatus は紹介 (応募) の結果状態です。
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Application は候補者を企業へ紹介した 1 回分の記録です。結果記録後は変更されません。
type Application struct {
	ID          string
	CandidateID string
	CompanyID   *string
	CompanyName string
	PresentedAt time.Time
	Status      ApplicationStatus
	ResultAt    *time.Time
	ResultNotes string
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NoticeStatus は入社連絡票の承認状態です。
type NoticeStatus string

const (
	NoticeDraft    NoticeStatus = "draft"
	NoticePending  NoticeStatus = "pending"
	NoticeApproved NoticeStatus = "approved"
	NoticeRejected NoticeStatus = "rejected"
)

// NoticeFields は入社連絡票の記載項目です。
type NoticeFields struct {
	FullName    string
	NameKana    string
	Gender      string
	Nationality string
	BirthDate   *time.Time
	VisaType    string
	VisaExpiry  *time.Time

	PostalCode   string
	Address      string
	BuildingName string

	HousingType employee.HousingType
	ApartmentID *string
	MoveInDate  *time.Time

	AssignmentCompanyID *string
	AssignmentCompany   string
	AssignmentLocation  string
	AssignmentLine      string
	JobDescription      string

	HourlyRate  *int64
	BillingRate *int64

	BankAccountName string
	BankName        string
	BranchNumber    string
	BranchName      string
	AccountNumber   string
}

// JoiningNotice は入社連絡票です。承認されると社員レコードの作成元になります。
type JoiningNotice struct {
	ID             string
	CandidateID    string
	ApplicationID  *string
	EmploymentType employee.EmploymentType
	NoticeFields
	Status          NoticeStatus
	SubmittedAt     *time.Time
	ApprovedAt      *time.Time
	ApprovedBy      *string
	RejectionReason *string
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ApprovalResult は承認で更新・作成されたエンティティの組です。
type ApprovalResult struct {
	Notice     *JoiningNotice
	Candidate  *candidate.Candidate
	Employee   *employee.Employee
	Assignment employee.Assignment
}

// PresentationResult は紹介で作成された応募と更新後の候補者です。
type PresentationResult struct {
	Application *Application
	Candidate   *candidate.Candidate
}

// NoticeResult は入社連絡票と、その遷移で更新された候補者です。
type NoticeResult struct {
	Notice    *JoiningNotice
	Candidate *candidate.Candidate
}
