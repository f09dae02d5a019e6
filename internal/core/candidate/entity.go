package candidate

import "time"

// Status は候補者の選考状態を表します。
type Status string

const (
	StatusRegistered Status = "registered"
	StatusPresented  Status = "presented"
	StatusAccepted   Status = "accepted"
	StatusRejected   Status = "rejected"
	StatusProcessing Status = "processing"
	StatusHired      Status = "hired"
)

// Profile は候補者の個人情報です。ワークフローはこの内容を解釈しません。
type Profile struct {
	FullName            string
	NameKana            string
	NameRomaji          string
	Gender              string
	Nationality         string
	BirthDate           *time.Time
	PostalCode          string
	Address             string
	BuildingName        string
	Phone               string
	Mobile              string
	Email               string
	VisaType            string
	VisaExpiry          *time.Time
	ResidenceCardNumber string
	PassportNumber      string
	PassportExpiry      *time.Time
	Notes               string
}

// Candidate は候補者エンティティです。
type Candidate struct {
	ID string
	Profile
	Status    Status
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
