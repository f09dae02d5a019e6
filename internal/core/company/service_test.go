package company

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
)

type fixedClock time.Time

func (c *fixedClock) Now() time.Time { return time.Time(*c) }

func (c *fixedClock) advance(d time.Duration) { *c = fixedClock(time.Time(*c).Add(d)) }

// memRepo は登録順を保持するスライスで会社を管理します。
type memRepo struct {
	rows []Company
}

func (r *memRepo) indexOf(match func(Company) bool) int {
	return slices.IndexFunc(r.rows, match)
}

func (r *memRepo) Create(_ context.Context, c *Company) (*Company, error) {
	if r.indexOf(func(x Company) bool { return x.Code == c.Code }) >= 0 {
		return nil, ErrCodeAlreadyExists
	}
	row := *c
	row.ID = uuid.NewString()
	r.rows = append(r.rows, row)
	return snapshot(row), nil
}

func (r *memRepo) Update(_ context.Context, c *Company) (*Company, error) {
	i := r.indexOf(func(x Company) bool { return x.ID == c.ID })
	if i < 0 {
		return nil, ErrCompanyNotFound
	}
	if r.indexOf(func(x Company) bool { return x.ID != c.ID && x.Code == c.Code }) >= 0 {
		return nil, ErrCodeAlreadyExists
	}
	r.rows[i] = *c
	return snapshot(r.rows[i]), nil
}

func (r *memRepo) FindByID(_ context.Context, id string) (*Company, error) {
	if i := r.indexOf(func(x Company) bool { return x.ID == id }); i >= 0 {
		return snapshot(r.rows[i]), nil
	}
	return nil, ErrCompanyNotFound
}

func (r *memRepo) FindByCode(_ context.Context, code string) (*Company, error) {
	if i := r.indexOf(func(x Company) bool { return x.Code == code }); i >= 0 {
		return snapshot(r.rows[i]), nil
	}
	return nil, ErrCompanyNotFound
}

func (r *memRepo) List(_ context.Context, filter ListCompaniesFilter) ([]*Company, string, error) {
	var matched []*Company
	for _, row := range r.rows {
		if filter.Status != nil && row.Status != *filter.Status {
			continue
		}
		if filter.Type != nil && row.Type != *filter.Type {
			continue
		}
		matched = append(matched, snapshot(row))
	}

	start := min(filter.Offset, len(matched))
	end := min(start+filter.Limit, len(matched))
	var next string
	if end < len(matched) {
		next = strconv.Itoa(end)
	}
	return matched[start:end], next, nil
}

func snapshot(c Company) *Company {
	c.BillingRateDefault = cloneInt64(c.BillingRateDefault)
	if c.Description != nil {
		d := *c.Description
		c.Description = &d
	}
	return &c
}

// recordingTx は呼び出されたトランザクション種別を記録します。
type recordingTx struct {
	calls []string
}

func (r *recordingTx) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	r.calls = append(r.calls, "ro")
	return fn(ctx)
}

func (r *recordingTx) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	r.calls = append(r.calls, "rw")
	return fn(ctx)
}

func newTestService(t *testing.T) (*Service, *memRepo, *fixedClock) {
	t.Helper()
	clk := fixedClock(time.Date(2025, 1, 6, 9, 0, 0, 0, time.UTC))
	repo := &memRepo{}
	return NewService(repo, &clk, nil), repo, &clk
}

func mustCreate(t *testing.T, svc *Service, in CreateCompanyInput) *Company {
	t.Helper()
	created, err := svc.CreateCompany(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateCompany(%s) returned error: %v", in.Code, err)
	}
	return created
}

func TestService_CreateCompany_NormalizesInput(t *testing.T) {
	t.Parallel()

	svc, _, clk := newTestService(t)
	desc := "  自動車部品の組立ライン "
	rate := int64(1850)

	created := mustCreate(t, svc, CreateCompanyInput{
		Name:               "  高雄工業株式会社  ",
		NameKana:           " タカオコウギョウ ",
		Code:               " Takao-Kogyo ",
		Type:               " HAKEN ",
		BillingRateDefault: &rate,
		Description:        &desc,
	})

	rate = 0
	switch {
	case created.Name != "高雄工業株式会社", created.NameKana != "タカオコウギョウ":
		t.Errorf("expected trimmed names, got %q / %q", created.Name, created.NameKana)
	case created.Code != "takao-kogyo":
		t.Errorf("expected lower-cased code, got %s", created.Code)
	case created.Type != TypeHaken:
		t.Errorf("expected haken, got %q", created.Type)
	case created.BillingRateDefault == nil || *created.BillingRateDefault != 1850:
		t.Errorf("billing rate must be copied from input, got %v", created.BillingRateDefault)
	case created.Description == nil || *created.Description != "自動車部品の組立ライン":
		t.Errorf("expected trimmed description, got %v", created.Description)
	case !created.IsActive():
		t.Errorf("new company must be active, got %s", created.Status)
	case !created.CreatedAt.Equal(clk.Now()) || !created.UpdatedAt.Equal(clk.Now()):
		t.Errorf("timestamps must come from clock: %v / %v", created.CreatedAt, created.UpdatedAt)
	}
}

func TestService_CreateCompany_Rejects(t *testing.T) {
	t.Parallel()

	negative := int64(-1)
	cases := map[string]struct {
		in   CreateCompanyInput
		want error
	}{
		"blank name":    {CreateCompanyInput{Name: " ", Code: "a"}, ErrInvalidName},
		"blank code":    {CreateCompanyInput{Name: "A", Code: "  "}, ErrInvalidCode},
		"code spaces":   {CreateCompanyInput{Name: "A", Code: "Invalid Code"}, ErrInvalidCode},
		"unknown type":  {CreateCompanyInput{Name: "A", Code: "a", Type: "seiki"}, ErrInvalidType},
		"negative rate": {CreateCompanyInput{Name: "A", Code: "a", BillingRateDefault: &negative}, ErrInvalidBillingRate},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			svc, repo, _ := newTestService(t)
			if _, err := svc.CreateCompany(context.Background(), tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if len(repo.rows) != 0 {
				t.Fatalf("rejected input must not be stored")
			}
		})
	}
}

func TestService_CodeUniqueness(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	first := mustCreate(t, svc, CreateCompanyInput{Name: "First", Code: "dup"})
	second := mustCreate(t, svc, CreateCompanyInput{Name: "Second", Code: "other"})

	if _, err := svc.CreateCompany(context.Background(), CreateCompanyInput{Name: "Another", Code: "DUP"}); !errors.Is(err, ErrCodeAlreadyExists) {
		t.Errorf("create with case-folded duplicate: expected ErrCodeAlreadyExists, got %v", err)
	}

	taken := first.Code
	if _, err := svc.UpdateCompany(context.Background(), UpdateCompanyInput{ID: second.ID, Code: &taken}); !errors.Is(err, ErrCodeAlreadyExists) {
		t.Errorf("update to taken code: expected ErrCodeAlreadyExists, got %v", err)
	}

	same := " DUP "
	if _, err := svc.UpdateCompany(context.Background(), UpdateCompanyInput{ID: first.ID, Code: &same}); err != nil {
		t.Errorf("re-submitting own code must succeed, got %v", err)
	}
}

func TestService_UpdateCompany_Patch(t *testing.T) {
	t.Parallel()

	svc, _, clk := newTestService(t)
	rate := int64(1500)
	created := mustCreate(t, svc, CreateCompanyInput{Name: "Test", Code: "test", BillingRateDefault: &rate, ContactName: "佐藤"})

	newName := "New Name"
	ukeoi := TypeUkeoi
	empty := ""
	phone := " 0564-00-0000 "
	clk.advance(time.Hour)

	updated, err := svc.UpdateCompany(context.Background(), UpdateCompanyInput{
		ID:                    created.ID,
		Name:                  &newName,
		Type:                  &ukeoi,
		BillingRateDefaultSet: true,
		ContactPhone:          &phone,
		Description:           &empty,
	})
	if err != nil {
		t.Fatalf("UpdateCompany returned error: %v", err)
	}

	if updated.Name != newName || updated.Type != TypeUkeoi || updated.ContactPhone != "0564-00-0000" {
		t.Errorf("patch not applied: %+v", updated)
	}
	if updated.BillingRateDefault != nil {
		t.Errorf("expected billing rate cleared, got %d", *updated.BillingRateDefault)
	}
	if updated.ContactName != "佐藤" {
		t.Errorf("untouched contact name changed to %q", updated.ContactName)
	}
	if updated.Description != nil {
		t.Errorf("blank description must clear the field")
	}
	if !updated.UpdatedAt.Equal(clk.Now()) || updated.CreatedAt.Equal(updated.UpdatedAt) {
		t.Errorf("expected only updated_at to move, got created=%v updated=%v", updated.CreatedAt, updated.UpdatedAt)
	}

	bogus := Status("closed")
	if _, err := svc.UpdateCompany(context.Background(), UpdateCompanyInput{ID: created.ID, Status: &bogus}); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestService_DeactivateCompany_KeepsRecord(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestService(t)
	created := mustCreate(t, svc, CreateCompanyInput{Name: "Test", Code: "test"})

	deactivated, err := svc.DeactivateCompany(context.Background(), DeactivateCompanyInput{ID: created.ID})
	if err != nil {
		t.Fatalf("DeactivateCompany returned error: %v", err)
	}
	if deactivated.IsActive() {
		t.Fatalf("expected company to be inactive")
	}
	if len(repo.rows) != 1 || repo.rows[0].Status != StatusInactive {
		t.Fatalf("deactivation must keep the record, rows=%+v", repo.rows)
	}

	if _, err := svc.DeactivateCompany(context.Background(), DeactivateCompanyInput{ID: "company-1"}); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}

func TestService_GetCompany(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	created := mustCreate(t, svc, CreateCompanyInput{Name: "Test", Code: "test"})

	cases := []struct {
		id      string
		wantErr error
	}{
		{" " + created.ID + " ", nil},
		{"   ", ErrInvalidID},
		{uuid.NewString(), ErrCompanyNotFound},
	}
	for _, tc := range cases {
		found, err := svc.GetCompany(context.Background(), GetCompanyInput{ID: tc.id})
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("GetCompany(%q): expected %v, got %v", tc.id, tc.wantErr, err)
			continue
		}
		if tc.wantErr == nil && found.ID != created.ID {
			t.Errorf("GetCompany(%q) returned %s", tc.id, found.ID)
		}
	}
}

func TestService_ListCompanies_PagesByType(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	for i, companyType := range []Type{TypeHaken, TypeUkeoi, TypeHaken} {
		mustCreate(t, svc, CreateCompanyInput{
			Name: fmt.Sprintf("Company %d", i),
			Code: fmt.Sprintf("company-%d", i),
			Type: companyType,
		})
	}

	haken := TypeHaken
	var (
		token string
		codes []string
	)
	for page := 0; page < 3; page++ {
		res, err := svc.ListCompanies(context.Background(), ListCompaniesInput{PageSize: 1, PageToken: token, Type: &haken})
		if err != nil {
			t.Fatalf("ListCompanies page %d returned error: %v", page, err)
		}
		for _, c := range res.Companies {
			codes = append(codes, c.Code)
		}
		token = res.NextPageToken
		if token == "" {
			break
		}
	}
	if !slices.Equal(codes, []string{"company-0", "company-2"}) {
		t.Fatalf("unexpected haken companies across pages: %v", codes)
	}

	for name, in := range map[string]ListCompaniesInput{
		"oversized page": {PageSize: maxListPageSize + 1},
		"bad token":      {PageToken: "abc"},
		"negative token": {PageToken: "-3"},
	} {
		if _, err := svc.ListCompanies(context.Background(), in); !errors.Is(err, ErrInvalidPageSize) && !errors.Is(err, ErrInvalidPageToken) {
			t.Errorf("%s: expected page error, got %v", name, err)
		}
	}
}

func TestService_UsesTransactionKinds(t *testing.T) {
	t.Parallel()

	tx := &recordingTx{}
	svc := NewService(&memRepo{}, nil, tx)

	created, err := svc.CreateCompany(context.Background(), CreateCompanyInput{Name: "Tx", Code: "tx"})
	if err != nil {
		t.Fatalf("CreateCompany returned error: %v", err)
	}
	if _, err := svc.GetCompany(context.Background(), GetCompanyInput{ID: created.ID}); err != nil {
		t.Fatalf("GetCompany returned error: %v", err)
	}
	if _, err := svc.ListCompanies(context.Background(), ListCompaniesInput{}); err != nil {
		t.Fatalf("ListCompanies returned error: %v", err)
	}
	if _, err := svc.DeactivateCompany(context.Background(), DeactivateCompanyInput{ID: created.ID}); err != nil {
		t.Fatalf("DeactivateCompany returned error: %v", err)
	}

	if want := []string{"rw", "ro", "ro", "rw"}; !slices.Equal(tx.calls, want) {
		t.Fatalf("expected transaction kinds %v, got %v", want, tx.calls)
	}
}
