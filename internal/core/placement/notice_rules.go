package placement

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ogurasousui/staffing-workflow/internal/core/apartment"
	"github.com/ogurasousui/staffing-workflow/internal/core/candidate"
	"github.com/ogurasousui/staffing-workflow/internal/core/employee"
)

// NoticePatch は下書き中の入社連絡票に対する部分更新です。nil のフィールドは変更しません。
// 日付・金額・参照 ID は *Set フラグが true の場合に限り、nil で値を消去します。
type NoticePatch struct {
	FullName    *string
	NameKana    *string
	Gender      *string
	Nationality *string
	VisaType    *string

	BirthDate     *time.Time
	BirthDateSet  bool
	VisaExpiry    *time.Time
	VisaExpirySet bool

	PostalCode   *string
	Address      *string
	BuildingName *string

	HousingType    *employee.HousingType
	ApartmentID    *string
	ApartmentIDSet bool
	MoveInDate     *time.Time
	MoveInDateSet  bool

	AssignmentCompanyID    *string
	AssignmentCompanyIDSet bool
	AssignmentCompany      *string
	AssignmentLocation     *string
	AssignmentLine         *string
	JobDescription         *string

	HourlyRate     *int64
	HourlyRateSet  bool
	BillingRate    *int64
	BillingRateSet bool

	BankAccountName *string
	BankName        *string
	BranchNumber    *string
	BranchName      *string
	AccountNumber   *string
}

// apply は patch を fields に上書きします。
func (p NoticePatch) apply(fields *NoticeFields) {
	for _, f := range []struct {
		dst *string
		src *string
	}{
		{&fields.FullName, p.FullName},
		{&fields.NameKana, p.NameKana},
		{&fields.Gender, p.Gender},
		{&fields.Nationality, p.Nationality},
		{&fields.VisaType, p.VisaType},
		{&fields.PostalCode, p.PostalCode},
		{&fields.Address, p.Address},
		{&fields.BuildingName, p.BuildingName},
		{&fields.AssignmentCompany, p.AssignmentCompany},
		{&fields.AssignmentLocation, p.AssignmentLocation},
		{&fields.AssignmentLine, p.AssignmentLine},
		{&fields.JobDescription, p.JobDescription},
		{&fields.BankAccountName, p.BankAccountName},
		{&fields.BankName, p.BankName},
		{&fields.BranchNumber, p.BranchNumber},
		{&fields.BranchName, p.BranchName},
		{&fields.AccountNumber, p.AccountNumber},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}

	if p.BirthDateSet {
		fields.BirthDate = cloneTime(p.BirthDate)
	}
	if p.VisaExpirySet {
		fields.VisaExpiry = cloneTime(p.VisaExpiry)
	}
	if p.HousingType != nil {
		fields.HousingType = *p.HousingType
	}
	if p.ApartmentIDSet {
		fields.ApartmentID = cloneString(p.ApartmentID)
	}
	if p.MoveInDateSet {
		fields.MoveInDate = cloneTime(p.MoveInDate)
	}
	if p.AssignmentCompanyIDSet {
		fields.AssignmentCompanyID = cloneString(p.AssignmentCompanyID)
	}
	if p.HourlyRateSet {
		fields.HourlyRate = cloneInt64(p.HourlyRate)
	}
	if p.BillingRateSet {
		fields.BillingRate = cloneInt64(p.BillingRate)
	}
}

// normalizeNoticeFields は文字列の前後空白と日付の時刻部分を取り除き、形式だけを検証します。
// 必須項目の有無は提出時に検証します。
func normalizeNoticeFields(fields *NoticeFields) error {
	for _, s := range []*string{
		&fields.FullName, &fields.NameKana, &fields.Gender, &fields.Nationality, &fields.VisaType,
		&fields.PostalCode, &fields.Address, &fields.BuildingName,
		&fields.AssignmentCompany, &fields.AssignmentLocation, &fields.AssignmentLine, &fields.JobDescription,
		&fields.BankAccountName, &fields.BankName, &fields.BranchNumber, &fields.BranchName, &fields.AccountNumber,
	} {
		*s = strings.TrimSpace(*s)
	}

	fields.BirthDate = normalizeDate(fields.BirthDate)
	fields.VisaExpiry = normalizeDate(fields.VisaExpiry)
	fields.MoveInDate = normalizeDate(fields.MoveInDate)

	if fields.HousingType != "" && !fields.HousingType.Valid() {
		return ErrInvalidHousingType
	}

	var err error
	if fields.ApartmentID, err = normalizeOptionalID(fields.ApartmentID); err != nil {
		return fmt.Errorf("apartment_id: %w", err)
	}
	if fields.AssignmentCompanyID, err = normalizeOptionalID(fields.AssignmentCompanyID); err != nil {
		return fmt.Errorf("assignment_company_id: %w", err)
	}

	for _, rate := range []*int64{fields.HourlyRate, fields.BillingRate} {
		if rate != nil && *rate < 0 {
			return ErrInvalidRate
		}
	}
	return nil
}

// prefillFromProfile は未入力の個人情報を候補者のプロフィールから補います。
func prefillFromProfile(fields *NoticeFields, p candidate.Profile) {
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&fields.FullName, p.FullName},
		{&fields.NameKana, p.NameKana},
		{&fields.Gender, p.Gender},
		{&fields.Nationality, p.Nationality},
		{&fields.VisaType, p.VisaType},
		{&fields.PostalCode, p.PostalCode},
		{&fields.Address, p.Address},
		{&fields.BuildingName, p.BuildingName},
	} {
		if *f.dst == "" {
			*f.dst = f.src
		}
	}
	if fields.BirthDate == nil {
		fields.BirthDate = normalizeDate(p.BirthDate)
	}
	if fields.VisaExpiry == nil {
		fields.VisaExpiry = normalizeDate(p.VisaExpiry)
	}
}

// validateForSubmission は提出可能かを検証し、違反したすべての項目を *ValidationError にまとめます。
func (s *Service) validateForSubmission(ctx context.Context, n *JoiningNotice) error {
	verr := &ValidationError{}

	if n.FullName == "" {
		verr.add("full_name", "required")
	}
	if !n.EmploymentType.Valid() {
		verr.add("employment_type", "required")
	}

	switch {
	case n.HousingType == "":
		verr.add("housing_type", "required")
	case !n.HousingType.Valid():
		verr.add("housing_type", "unknown housing type")
	case n.HousingType == employee.HousingShataku:
		if n.ApartmentID == nil {
			verr.add("apartment_id", "required for shataku")
			break
		}
		apt, err := s.apartments.FindByID(ctx, *n.ApartmentID)
		switch {
		case errors.Is(err, apartment.ErrApartmentNotFound):
			verr.add("apartment_id", "apartment not found")
		case err != nil:
			return err
		case !apt.HasVacancy():
			verr.add("apartment_id", "apartment has no vacancy")
		}
	}

	if n.EmploymentType == employee.EmploymentTypeUkeoi {
		if n.BankAccountName == "" {
			verr.add("bank_account_name", "required for ukeoi")
		}
		if n.AccountNumber == "" {
			verr.add("account_number", "required for ukeoi")
		}
	}

	return verr.orNil()
}
