package apartment

import "time"

// Apartment は社宅 (会社借上げ住居) です。
type Apartment struct {
	ID               string
	Name             string
	PostalCode       string
	Address          string
	RoomNumber       string
	Capacity         int
	CurrentOccupants int
	MonthlyRent      *int64
	IsActive         bool
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasVacancy は入居可能な空きがあるかを返します。
func (a *Apartment) HasVacancy() bool {
	return a != nil && a.IsActive && a.CurrentOccupants < a.Capacity
}

// Vacancies は空き床数を返します。
func (a *Apartment) Vacancies() int {
	if a == nil || a.CurrentOccupants >= a.Capacity {
		return 0
	}
	return a.Capacity - a.CurrentOccupants
}

// Occupant は社宅の入居者 (社員) の要約です。
type Occupant struct {
	EmployeeID     string
	EmployeeNumber int64
	FullName       string
	NameKana       string
	Office         string
	HireDate       *time.Time
}
