package staffingv1

import "time"

// CandidateProfile は候補者の履歴書情報です。
type CandidateProfile struct {
	FullName            string `json:"full_name"`
	NameKana            string `json:"name_kana,omitempty"`
	NameRomaji          string `json:"name_romaji,omitempty"`
	Gender              string `json:"gender,omitempty"`
	Nationality         string `json:"nationality,omitempty"`
	BirthDate           string `json:"birth_date,omitempty"`
	PostalCode          string `json:"postal_code,omitempty"`
	Address             string `json:"address,omitempty"`
	BuildingName        string `json:"building_name,omitempty"`
	Phone               string `json:"phone,omitempty"`
	Mobile              string `json:"mobile,omitempty"`
	Email               string `json:"email,omitempty"`
	VisaType            string `json:"visa_type,omitempty"`
	VisaExpiry          string `json:"visa_expiry,omitempty"`
	ResidenceCardNumber string `json:"residence_card_number,omitempty"`
	PassportNumber      string `json:"passport_number,omitempty"`
	PassportExpiry      string `json:"passport_expiry,omitempty"`
	Notes               string `json:"notes,omitempty"`
}

// CandidateProfilePatch は部分更新です。日付を消去する場合は ClearFields に列名を指定します。
type CandidateProfilePatch struct {
	FullName            *string  `json:"full_name,omitempty"`
	NameKana            *string  `json:"name_kana,omitempty"`
	NameRomaji          *string  `json:"name_romaji,omitempty"`
	Gender              *string  `json:"gender,omitempty"`
	Nationality         *string  `json:"nationality,omitempty"`
	BirthDate           *string  `json:"birth_date,omitempty"`
	PostalCode          *string  `json:"postal_code,omitempty"`
	Address             *string  `json:"address,omitempty"`
	BuildingName        *string  `json:"building_name,omitempty"`
	Phone               *string  `json:"phone,omitempty"`
	Mobile              *string  `json:"mobile,omitempty"`
	Email               *string  `json:"email,omitempty"`
	VisaType            *string  `json:"visa_type,omitempty"`
	VisaExpiry          *string  `json:"visa_expiry,omitempty"`
	ResidenceCardNumber *string  `json:"residence_card_number,omitempty"`
	PassportNumber      *string  `json:"passport_number,omitempty"`
	PassportExpiry      *string  `json:"passport_expiry,omitempty"`
	Notes               *string  `json:"notes,omitempty"`
	ClearFields         []string `json:"clear_fields,omitempty"`
}

type Candidate struct {
	ID                 string           `json:"id"`
	Profile            CandidateProfile `json:"profile"`
	Status             string           `json:"status"`
	// AllowedTransitions は現在の状態から要求できる遷移の名前です。
	AllowedTransitions []string         `json:"allowed_transitions,omitempty"`
	CreatedBy          string           `json:"created_by,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

type Application struct {
	ID                 string     `json:"id"`
	CandidateID        string     `json:"candidate_id"`
	CompanyID          string     `json:"company_id,omitempty"`
	CompanyName        string     `json:"company_name"`
	PresentedAt        time.Time  `json:"presented_at"`
	Status             string     `json:"status"`
	AllowedTransitions []string   `json:"allowed_transitions,omitempty"`
	ResultAt           *time.Time `json:"result_at,omitempty"`
	ResultNotes        string     `json:"result_notes,omitempty"`
	CreatedBy          string     `json:"created_by,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// NoticeFields は入社連絡票の記載項目です。
type NoticeFields struct {
	FullName    string `json:"full_name,omitempty"`
	NameKana    string `json:"name_kana,omitempty"`
	Gender      string `json:"gender,omitempty"`
	Nationality string `json:"nationality,omitempty"`
	BirthDate   string `json:"birth_date,omitempty"`
	VisaType    string `json:"visa_type,omitempty"`
	VisaExpiry  string `json:"visa_expiry,omitempty"`

	PostalCode   string `json:"postal_code,omitempty"`
	Address      string `json:"address,omitempty"`
	BuildingName string `json:"building_name,omitempty"`

	HousingType string `json:"housing_type,omitempty"`
	ApartmentID string `json:"apartment_id,omitempty"`
	MoveInDate  string `json:"move_in_date,omitempty"`

	AssignmentCompanyID string `json:"assignment_company_id,omitempty"`
	AssignmentCompany   string `json:"assignment_company,omitempty"`
	AssignmentLocation  string `json:"assignment_location,omitempty"`
	AssignmentLine      string `json:"assignment_line,omitempty"`
	JobDescription      string `json:"job_description,omitempty"`

	HourlyRate  *int64 `json:"hourly_rate,omitempty"`
	BillingRate *int64 `json:"billing_rate,omitempty"`

	BankAccountName string `json:"bank_account_name,omitempty"`
	BankName        string `json:"bank_name,omitempty"`
	BranchNumber    string `json:"branch_number,omitempty"`
	BranchName      string `json:"branch_name,omitempty"`
	AccountNumber   string `json:"account_number,omitempty"`
}

// NoticeFieldsPatch は入社連絡票の部分更新です。
// nil のフィールドは変更しません。値を消去する場合は ClearFields に列名を指定します。
type NoticeFieldsPatch struct {
	FullName    *string `json:"full_name,omitempty"`
	NameKana    *string `json:"name_kana,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	Nationality *string `json:"nationality,omitempty"`
	BirthDate   *string `json:"birth_date,omitempty"`
	VisaType    *string `json:"visa_type,omitempty"`
	VisaExpiry  *string `json:"visa_expiry,omitempty"`

	PostalCode   *string `json:"postal_code,omitempty"`
	Address      *string `json:"address,omitempty"`
	BuildingName *string `json:"building_name,omitempty"`

	HousingType *string `json:"housing_type,omitempty"`
	ApartmentID *string `json:"apartment_id,omitempty"`
	MoveInDate  *string `json:"move_in_date,omitempty"`

	AssignmentCompanyID *string `json:"assignment_company_id,omitempty"`
	AssignmentCompany   *string `json:"assignment_company,omitempty"`
	AssignmentLocation  *string `json:"assignment_location,omitempty"`
	AssignmentLine      *string `json:"assignment_line,omitempty"`
	JobDescription      *string `json:"job_description,omitempty"`

	HourlyRate  *int64 `json:"hourly_rate,omitempty"`
	BillingRate *int64 `json:"billing_rate,omitempty"`

	BankAccountName *string `json:"bank_account_name,omitempty"`
	BankName        *string `json:"bank_name,omitempty"`
	BranchNumber    *string `json:"branch_number,omitempty"`
	BranchName      *string `json:"branch_name,omitempty"`
	AccountNumber   *string `json:"account_number,omitempty"`

	ClearFields []string `json:"clear_fields,omitempty"`
}

type JoiningNotice struct {
	ID             string `json:"id"`
	CandidateID    string `json:"candidate_id"`
	ApplicationID  string `json:"application_id,omitempty"`
	EmploymentType string `json:"employment_type"`
	NoticeFields
	Status             string     `json:"status"`
	AllowedTransitions []string   `json:"allowed_transitions,omitempty"`
	SubmittedAt        *time.Time `json:"submitted_at,omitempty"`
	ApprovedAt         *time.Time `json:"approved_at,omitempty"`
	ApprovedBy         string     `json:"approved_by,omitempty"`
	RejectionReason    string     `json:"rejection_reason,omitempty"`
	CreatedBy          string     `json:"created_by,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type Employee struct {
	ID              string    `json:"id"`
	EmployeeNumber  int64     `json:"employee_number"`
	JoiningNoticeID string    `json:"joining_notice_id,omitempty"`
	CandidateID     string    `json:"candidate_id,omitempty"`
	FullName        string    `json:"full_name"`
	NameKana        string    `json:"name_kana,omitempty"`
	Gender          string    `json:"gender,omitempty"`
	Nationality     string    `json:"nationality,omitempty"`
	BirthDate       string    `json:"birth_date,omitempty"`
	PostalCode      string    `json:"postal_code,omitempty"`
	Address         string    `json:"address,omitempty"`
	BuildingName    string    `json:"building_name,omitempty"`
	VisaType        string    `json:"visa_type,omitempty"`
	VisaExpiry      string    `json:"visa_expiry,omitempty"`
	EmploymentType  string    `json:"employment_type"`
	HousingType     string    `json:"housing_type,omitempty"`
	ApartmentID     string    `json:"apartment_id,omitempty"`
	Office          string    `json:"office,omitempty"`
	Status          string    `json:"status"`
	HireDate        string    `json:"hire_date,omitempty"`
	TerminationDate string    `json:"termination_date,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Assignment は Haken と Ukeoi のどちらか一方だけを持ちます。
type Assignment struct {
	Haken *HakenAssignment `json:"haken,omitempty"`
	Ukeoi *UkeoiAssignment `json:"ukeoi,omitempty"`
}

type HakenAssignment struct {
	ID              string    `json:"id"`
	EmployeeID      string    `json:"employee_id"`
	ClientCompanyID string    `json:"client_company_id,omitempty"`
	ClientCompany   string    `json:"client_company,omitempty"`
	Location        string    `json:"location,omitempty"`
	Line            string    `json:"line,omitempty"`
	JobDescription  string    `json:"job_description,omitempty"`
	HourlyRate      *int64    `json:"hourly_rate,omitempty"`
	BillingRate     *int64    `json:"billing_rate,omitempty"`
	MoveInDate      string    `json:"move_in_date,omitempty"`
	StartDate       string    `json:"start_date,omitempty"`
	EndDate         string    `json:"end_date,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type UkeoiAssignment struct {
	ID              string    `json:"id"`
	EmployeeID      string    `json:"employee_id"`
	JobType         string    `json:"job_type,omitempty"`
	HourlyRate      *int64    `json:"hourly_rate,omitempty"`
	MoveInDate      string    `json:"move_in_date,omitempty"`
	StartDate       string    `json:"start_date,omitempty"`
	EndDate         string    `json:"end_date,omitempty"`
	BankAccountName string    `json:"bank_account_name,omitempty"`
	BankName        string    `json:"bank_name,omitempty"`
	BranchNumber    string    `json:"branch_number,omitempty"`
	BranchName      string    `json:"branch_name,omitempty"`
	AccountNumber   string    `json:"account_number,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Company struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	NameKana           string    `json:"name_kana,omitempty"`
	Code               string    `json:"code"`
	CompanyType        string    `json:"company_type,omitempty"`
	BillingRateDefault *int64    `json:"billing_rate_default,omitempty"`
	ContactName        string    `json:"contact_name,omitempty"`
	ContactPhone       string    `json:"contact_phone,omitempty"`
	Status             string    `json:"status"`
	Description        *string   `json:"description,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type Apartment struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	PostalCode       string    `json:"postal_code,omitempty"`
	Address          string    `json:"address,omitempty"`
	RoomNumber       string    `json:"room_number,omitempty"`
	Capacity         int32     `json:"capacity"`
	CurrentOccupants int32     `json:"current_occupants"`
	Vacancies        int32     `json:"vacancies"`
	MonthlyRent      *int64    `json:"monthly_rent,omitempty"`
	IsActive         bool      `json:"is_active"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Occupant は社宅に入居中の社員の要約です。
type Occupant struct {
	EmployeeID     string     `json:"employee_id"`
	EmployeeNumber int64      `json:"employee_number"`
	FullName       string     `json:"full_name"`
	NameKana       string     `json:"name_kana,omitempty"`
	Office         string     `json:"office,omitempty"`
	HireDate       *time.Time `json:"hire_date,omitempty"`
}
