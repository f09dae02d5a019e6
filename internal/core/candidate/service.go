package candidate

import (
	"context"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

const (
	defaultListPageSize = 50
	maxListPageSize     = 200
)

// Service は候補者の登録と参照を扱います。状態遷移は placement パッケージが担います。
type Service struct {
	repo  Repository
	clock Clock
	tx    TransactionManager
}

// UseCase は候補者ユースケースの公開インターフェースです。
type UseCase interface {
	RegisterCandidate(ctx context.Context, in RegisterCandidateInput) (*Candidate, error)
	GetCandidate(ctx context.Context, in GetCandidateInput) (*Candidate, error)
	ListCandidates(ctx context.Context, in ListCandidatesInput) (*ListCandidatesResult, error)
	UpdateProfile(ctx context.Context, in UpdateProfileInput) (*Candidate, error)
}

// NewService は Service を生成します。
func NewService(repo Repository, clock Clock, tx TransactionManager) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	return &Service{repo: repo, clock: clock, tx: tx}
}

// RegisterCandidateInput は候補者登録時の入力です。
type RegisterCandidateInput struct {
	Profile Profile
	Actor   string
}

// GetCandidateInput は候補者取得時の入力です。
type GetCandidateInput struct {
	ID string
}

// ListCandidatesInput は一覧取得時の入力です。
type ListCandidatesInput struct {
	PageSize  int
	PageToken string
	Status    *Status
	// Search は氏名・カナ・国籍に対する部分一致検索語です。空白のみの場合は指定なしと同じです。
	Search *string
}

// ListCandidatesResult は一覧取得結果を表します。
type ListCandidatesResult struct {
	Candidates    []*Candidate
	NextPageToken string
}

// ProfilePatch はプロフィールの部分更新です。nil のフィールドは変更しません。
// 日付は *Set が true の場合のみ反映され、nil を指定すると値を消去します。
type ProfilePatch struct {
	FullName            *string
	NameKana            *string
	NameRomaji          *string
	Gender              *string
	Nationality         *string
	BirthDate           *time.Time
	BirthDateSet        bool
	PostalCode          *string
	Address             *string
	BuildingName        *string
	Phone               *string
	Mobile              *string
	Email               *string
	VisaType            *string
	VisaExpiry          *time.Time
	VisaExpirySet       bool
	ResidenceCardNumber *string
	PassportNumber      *string
	PassportExpiry      *time.Time
	PassportExpirySet   bool
	Notes               *string
}

// UpdateProfileInput はプロフィール更新時の入力です。
type UpdateProfileInput struct {
	ID    string
	Patch ProfilePatch
}

// RegisterCandidate は候補者を registered 状態で登録します。
func (s *Service) RegisterCandidate(ctx context.Context, in RegisterCandidateInput) (*Candidate, error) {
	actor := strings.TrimSpace(in.Actor)
	if actor == "" {
		return nil, ErrInvalidActor
	}

	profile, err := normalizeProfile(in.Profile)
	if err != nil {
		return nil, err
	}

	var created *Candidate
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		now := s.clock.Now()
		result, err := s.repo.Create(txCtx, &Candidate{
			Profile:   profile,
			Status:    StatusRegistered,
			CreatedBy: actor,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return err
		}
		created = result
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// GetCandidate は候補者を取得します。
func (s *Service) GetCandidate(ctx context.Context, in GetCandidateInput) (*Candidate, error) {
	id, err := normalizeID(in.ID)
	if err != nil {
		return nil, err
	}

	var found *Candidate
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.repo.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		found = result
		return nil
	}); err != nil {
		return nil, err
	}

	return found, nil
}

// ListCandidates は候補者の一覧を取得します。
func (s *Service) ListCandidates(ctx context.Context, in ListCandidatesInput) (*ListCandidatesResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}

	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}

	var statusPtr *Status
	if in.Status != nil {
		if !IsValidStatus(*in.Status) {
			return nil, ErrInvalidStatus
		}
		status := *in.Status
		statusPtr = &status
	}

	var result ListCandidatesResult
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		candidates, token, err := s.repo.List(txCtx, ListCandidatesFilter{
			Status: statusPtr,
			Search: normalizeSearch(in.Search),
			Limit:  limit,
			Offset: offset,
		})
		if err != nil {
			return err
		}
		result.Candidates = candidates
		result.NextPageToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdateProfile は候補者のプロフィールを部分更新します。状態は変更しません。
func (s *Service) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*Candidate, error) {
	id, err := normalizeID(in.ID)
	if err != nil {
		return nil, err
	}

	var updated *Candidate
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.FindByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}

		profile := in.Patch.applyTo(existing.Profile)
		profile, err = normalizeProfile(profile)
		if err != nil {
			return err
		}

		existing.Profile = profile
		existing.UpdatedAt = s.clock.Now()

		result, err := s.repo.Update(txCtx, existing)
		if err != nil {
			return err
		}
		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

func (p ProfilePatch) applyTo(profile Profile) Profile {
	assign := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	assign(&profile.FullName, p.FullName)
	assign(&profile.NameKana, p.NameKana)
	assign(&profile.NameRomaji, p.NameRomaji)
	assign(&profile.Gender, p.Gender)
	assign(&profile.Nationality, p.Nationality)
	assign(&profile.PostalCode, p.PostalCode)
	assign(&profile.Address, p.Address)
	assign(&profile.BuildingName, p.BuildingName)
	assign(&profile.Phone, p.Phone)
	assign(&profile.Mobile, p.Mobile)
	assign(&profile.Email, p.Email)
	assign(&profile.VisaType, p.VisaType)
	assign(&profile.ResidenceCardNumber, p.ResidenceCardNumber)
	assign(&profile.PassportNumber, p.PassportNumber)
	assign(&profile.Notes, p.Notes)

	if p.BirthDateSet {
		profile.BirthDate = p.BirthDate
	}
	if p.VisaExpirySet {
		profile.VisaExpiry = p.VisaExpiry
	}
	if p.PassportExpirySet {
		profile.PassportExpiry = p.PassportExpiry
	}

	return profile
}

func normalizeProfile(p Profile) (Profile, error) {
	p.FullName = strings.TrimSpace(p.FullName)
	if p.FullName == "" {
		return Profile{}, ErrInvalidFullName
	}

	for _, field := range []*string{
		&p.NameKana, &p.NameRomaji, &p.Gender, &p.Nationality, &p.PostalCode, &p.Address,
		&p.BuildingName, &p.Phone, &p.Mobile, &p.VisaType, &p.ResidenceCardNumber, &p.PassportNumber,
	} {
		*field = strings.TrimSpace(*field)
	}

	if email := strings.TrimSpace(p.Email); email != "" {
		addr, err := mail.ParseAddress(email)
		if err != nil || addr.Address != email {
			return Profile{}, ErrInvalidEmail
		}
		p.Email = strings.ToLower(email)
	} else {
		p.Email = ""
	}

	p.BirthDate = normalizeDate(p.BirthDate)
	p.VisaExpiry = normalizeDate(p.VisaExpiry)
	p.PassportExpiry = normalizeDate(p.PassportExpiry)

	return p, nil
}

// IsValidStatus は status が定義済みの候補者状態かを判定します。
func IsValidStatus(status Status) bool {
	switch status {
	case StatusRegistered, StatusPresented, StatusAccepted, StatusRejected, StatusProcessing, StatusHired:
		return true
	default:
		return false
	}
}

func normalizeID(raw string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("id: %w", ErrInvalidID)
	}
	return parsed.String(), nil
}

func normalizeDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	normalized := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &normalized
}

func normalizePageSize(pageSize int) (int, error) {
	if pageSize <= 0 {
		return defaultListPageSize, nil
	}
	if pageSize > maxListPageSize {
		return 0, ErrInvalidPageSize
	}
	return pageSize, nil
}

func parsePageToken(token string) (int, error) {
	if strings.TrimSpace(token) == "" {
		return 0, nil
	}

	offset, err := strconv.Atoi(token)
	if err != nil || offset < 0 {
		return 0, ErrInvalidPageToken
	}

	return offset, nil
}

func normalizeSearch(raw *string) *string {
	if raw == nil {
		return nil
	}
	term := strings.TrimSpace(*raw)
	if term == "" {
		return nil
	}
	return &term
}
