package company

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type utcClock struct{}

func (utcClock) Now() time.Time { return time.Now().UTC() }

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

// directTx はトランザクションを張らずに fn をそのまま実行します。
type directTx struct{}

func (directTx) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	return directTx{}.run(ctx, fn)
}

func (directTx) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	return directTx{}.run(ctx, fn)
}

func (directTx) run(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

const (
	defaultListPageSize = 50
	maxListPageSize     = 200
)

// 会社コードは請求書や連絡票の表示に使うため小文字英数字とハイフン、アンダースコアに限定します。
var codePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Service は派遣先企業マスタに関するユースケースをまとめます。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
}

// UseCase は会社ユースケースの公開インターフェースです。
type UseCase interface {
	CreateCompany(ctx context.Context, in CreateCompanyInput) (*Company, error)
	GetCompany(ctx context.Context, in GetCompanyInput) (*Company, error)
	ListCompanies(ctx context.Context, in ListCompaniesInput) (*ListCompaniesResult, error)
	UpdateCompany(ctx context.Context, in UpdateCompanyInput) (*Company, error)
	DeactivateCompany(ctx context.Context, in DeactivateCompanyInput) (*Company, error)
}

// NewService は Service を生成します。clock と tx は nil を許容します。
func NewService(repo Repository, clock Clock, tx TransactionManager) *Service {
	s := &Service{repo: repo, clock: clock, tx: tx}
	if s.clock == nil {
		s.clock = utcClock{}
	}
	if s.tx == nil {
		s.tx = directTx{}
	}
	return s
}

// CreateCompanyInput は会社作成時の入力です。
type CreateCompanyInput struct {
	Name               string
	NameKana           string
	Code               string
	Type               Type
	BillingRateDefault *int64
	ContactName        string
	ContactPhone       string
	Description        *string
}

// UpdateCompanyInput は会社更新時の入力です。
// BillingRateDefaultSet が true で BillingRateDefault が nil の場合、既定単価を未設定に戻します。
type UpdateCompanyInput struct {
	ID                    string
	Name                  *string
	NameKana              *string
	Code                  *string
	Type                  *Type
	BillingRateDefault    *int64
	BillingRateDefaultSet bool
	ContactName           *string
	ContactPhone          *string
	Status                *Status
	Description           *string
}

// DeactivateCompanyInput は取引停止時の入力です。
type DeactivateCompanyInput struct {
	ID string
}

// GetCompanyInput は会社取得時の入力です。
type GetCompanyInput struct {
	ID string
}

// ListCompaniesInput は一覧取得時の入力です。
type ListCompaniesInput struct {
	PageSize  int
	PageToken string
	Status    *Status
	Type      *Type
}

// ListCompaniesResult は一覧取得結果を表します。
type ListCompaniesResult struct {
	Companies     []*Company
	NextPageToken string
}

// CreateCompany は新しい会社を取引中の状態で登録します。
func (s *Service) CreateCompany(ctx context.Context, in CreateCompanyInput) (*Company, error) {
	draft := &Company{
		NameKana:           strings.TrimSpace(in.NameKana),
		BillingRateDefault: cloneInt64(in.BillingRateDefault),
		ContactName:        strings.TrimSpace(in.ContactName),
		ContactPhone:       strings.TrimSpace(in.ContactPhone),
		Status:             StatusActive,
		Description:        normalizeDescription(in.Description),
	}

	var err error
	if draft.Name, err = normalizeName(in.Name); err != nil {
		return nil, err
	}
	if draft.Code, err = normalizeCode(in.Code); err != nil {
		return nil, err
	}
	if draft.Type, err = normalizeType(in.Type); err != nil {
		return nil, err
	}
	if err := validateBillingRate(in.BillingRateDefault); err != nil {
		return nil, err
	}

	return inTx(ctx, s.tx.WithinReadWrite, func(txCtx context.Context) (*Company, error) {
		if err := s.ensureCodeAvailable(txCtx, draft.Code); err != nil {
			return nil, err
		}
		draft.CreatedAt = s.clock.Now()
		draft.UpdatedAt = draft.CreatedAt
		return s.repo.Create(txCtx, draft)
	})
}

// UpdateCompany は会社情報を部分更新します。
func (s *Service) UpdateCompany(ctx context.Context, in UpdateCompanyInput) (*Company, error) {
	id, err := normalizeID(in.ID)
	if err != nil {
		return nil, err
	}

	return inTx(ctx, s.tx.WithinReadWrite, func(txCtx context.Context) (*Company, error) {
		existing, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return nil, err
		}
		if err := s.applyUpdate(txCtx, existing, in); err != nil {
			return nil, err
		}
		existing.UpdatedAt = s.clock.Now()
		return s.repo.Update(txCtx, existing)
	})
}

func (s *Service) applyUpdate(ctx context.Context, c *Company, in UpdateCompanyInput) error {
	if in.Name != nil {
		name, err := normalizeName(*in.Name)
		if err != nil {
			return err
		}
		c.Name = name
	}

	if in.Code != nil {
		code, err := normalizeCode(*in.Code)
		if err != nil {
			return err
		}
		if code != c.Code {
			if err := s.ensureCodeAvailable(ctx, code); err != nil {
				return err
			}
			c.Code = code
		}
	}

	if in.Type != nil {
		companyType, err := normalizeType(*in.Type)
		if err != nil {
			return err
		}
		c.Type = companyType
	}

	if in.BillingRateDefaultSet {
		if err := validateBillingRate(in.BillingRateDefault); err != nil {
			return err
		}
		c.BillingRateDefault = cloneInt64(in.BillingRateDefault)
	}

	if in.Status != nil {
		if !isValidStatus(*in.Status) {
			return ErrInvalidStatus
		}
		c.Status = *in.Status
	}

	for _, f := range []struct {
		dst *string
		src *string
	}{
		{&c.NameKana, in.NameKana},
		{&c.ContactName, in.ContactName},
		{&c.ContactPhone, in.ContactPhone},
	} {
		if f.src != nil {
			*f.dst = strings.TrimSpace(*f.src)
		}
	}

	if in.Description != nil {
		c.Description = normalizeDescription(in.Description)
	}
	return nil
}

// DeactivateCompany は企業を取引停止にします。過去の紹介履歴が参照するため物理削除はしません。
func (s *Service) DeactivateCompany(ctx context.Context, in DeactivateCompanyInput) (*Company, error) {
	inactive := StatusInactive
	return s.UpdateCompany(ctx, UpdateCompanyInput{ID: in.ID, Status: &inactive})
}

// GetCompany は ID で会社を取得します。
func (s *Service) GetCompany(ctx context.Context, in GetCompanyInput) (*Company, error) {
	id, err := normalizeID(in.ID)
	if err != nil {
		return nil, err
	}
	return inTx(ctx, s.tx.WithinReadOnly, func(txCtx context.Context) (*Company, error) {
		return s.repo.FindByID(txCtx, id)
	})
}

// ListCompanies は会社の一覧を登録日時の新しい順に取得します。
func (s *Service) ListCompanies(ctx context.Context, in ListCompaniesInput) (*ListCompaniesResult, error) {
	limit, offset, err := pageWindow(in.PageSize, in.PageToken)
	if err != nil {
		return nil, err
	}

	filter := ListCompaniesFilter{Limit: limit, Offset: offset}
	if in.Status != nil {
		if !isValidStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		status := *in.Status
		filter.Status = &status
	}
	if in.Type != nil {
		companyType, err := normalizeType(*in.Type)
		if err != nil {
			return nil, err
		}
		if companyType != "" {
			filter.Type = &companyType
		}
	}

	return inTx(ctx, s.tx.WithinReadOnly, func(txCtx context.Context) (*ListCompaniesResult, error) {
		companies, token, err := s.repo.List(txCtx, filter)
		if err != nil {
			return nil, err
		}
		return &ListCompaniesResult{Companies: companies, NextPageToken: token}, nil
	})
}

func (s *Service) ensureCodeAvailable(ctx context.Context, code string) error {
	found, err := s.repo.FindByCode(ctx, code)
	switch {
	case errors.Is(err, ErrCompanyNotFound):
		return nil
	case err != nil:
		return err
	case found != nil:
		return ErrCodeAlreadyExists
	}
	return nil
}

// inTx は within で fn を実行し、その結果を返します。
func inTx[T any](ctx context.Context, within func(context.Context, func(context.Context) error) error, fn func(context.Context) (T, error)) (T, error) {
	var out T
	err := within(ctx, func(txCtx context.Context) error {
		v, err := fn(txCtx)
		if err != nil {
			return err
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func normalizeID(raw string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("id: %w", ErrInvalidID)
	}
	return parsed.String(), nil
}

func normalizeType(raw Type) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(string(raw)))); t {
	case "", TypeHaken, TypeUkeoi:
		return t, nil
	default:
		return "", ErrInvalidType
	}
}

func validateBillingRate(rate *int64) error {
	if rate != nil && *rate < 0 {
		return ErrInvalidBillingRate
	}
	return nil
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func normalizeName(raw string) (string, error) {
	if name := strings.TrimSpace(raw); name != "" {
		return name, nil
	}
	return "", ErrInvalidName
}

func normalizeCode(raw string) (string, error) {
	code := strings.ToLower(strings.TrimSpace(raw))
	if !codePattern.MatchString(code) {
		return "", ErrInvalidCode
	}
	return code, nil
}

func normalizeDescription(raw *string) *string {
	if raw == nil {
		return nil
	}
	desc := strings.TrimSpace(*raw)
	if desc == "" {
		return nil
	}
	return &desc
}

func isValidStatus(status Status) bool {
	return status == StatusActive || status == StatusInactive
}

// pageWindow はページサイズとページトークンを LIMIT/OFFSET に変換します。
func pageWindow(size int, token string) (limit, offset int, err error) {
	switch {
	case size <= 0:
		limit = defaultListPageSize
	case size > maxListPageSize:
		return 0, 0, ErrInvalidPageSize
	default:
		limit = size
	}

	if strings.TrimSpace(token) == "" {
		return limit, 0, nil
	}
	offset, err = strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, 0, ErrInvalidPageToken
	}
	return limit, offset, nil
}
