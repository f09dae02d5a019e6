package employee

import "time"

// Status は社員の在籍状態です。値は自由記述で、以下は業務上の既定値です。
type Status string

const (
	StatusActive     Status = "active"
	StatusOnLeave    Status = "on_leave"
	StatusTerminated Status = "terminated"
)

// EmploymentType は雇用形態 (派遣 / 請負) です。
type EmploymentType string

const (
	EmploymentTypeHaken EmploymentType = "haken"
	EmploymentTypeUkeoi EmploymentType = "ukeoi"
)

// Valid は定義済みの雇用形態かを返します。
func (t EmploymentType) Valid() bool {
	return t == EmploymentTypeHaken || t == EmploymentTypeUkeoi
}

// HousingType は住居区分です。
type HousingType string

const (
	HousingShataku HousingType = "shataku"
	HousingOwn     HousingType = "own"
	HousingRental  HousingType = "rental"
	HousingOther   HousingType = "other"
)

// Valid は定義済みの住居区分かを返します。
func (t HousingType) Valid() bool {
	switch t {
	case HousingShataku, HousingOwn, HousingRental, HousingOther:
		return true
	default:
		return false
	}
}

// Employee は社員台帳のエンティティです。入社連絡票の承認時に一度だけ作成されます。
type Employee struct {
	ID              string
	EmployeeNumber  int64
	JoiningNoticeID *string
	CandidateID     *string
	FullName        string
	NameKana        string
	Gender          string
	Nationality     string
	BirthDate       *time.Time
	PostalCode      string
	Address         string
	BuildingName    string
	VisaType        string
	VisaExpiry      *time.Time
	EmploymentType  EmploymentType
	HousingType     HousingType
	ApartmentID     *string
	Office          string
	Status          Status
	HireDate        *time.Time
	TerminationDate *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
