package company

import "time"

// Status は派遣先企業の取引状態を表します。
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Type は企業との契約形態です。空の場合は未設定を表します。
type Type string

const (
	TypeHaken Type = "haken"
	TypeUkeoi Type = "ukeoi"
)

// Company は派遣先・請負先企業のマスタです。
type Company struct {
	ID                 string
	Name               string
	NameKana           string
	Code               string
	Type               Type
	BillingRateDefault *int64
	ContactName        string
	ContactPhone       string
	Status             Status
	Description        *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsActive は取引中の企業かを返します。
func (c *Company) IsActive() bool {
	return c != nil && c.Status == StatusActive
}
