package placement

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ogurasousui/staffing-workflow/internal/core/candidate"
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
// 同時更新による競合は ErrConflict をラップして返す必要があります。
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

// Dependencies はワークフローが利用する永続化ポートの集合です。
type Dependencies struct {
	Candidates   CandidateStore
	Companies    CompanyFinder
	Apartments   ApartmentStore
	Employees    EmployeeStore
	Assignments  AssignmentStore
	Applications ApplicationRepository
	Notices      NoticeRepository
	Numbers      NumberAllocator
}

// Service は紹介から入社承認までの状態遷移を実行するワークフローエンジンです。
// すべての遷移は読み書きトランザクション内で対象を読み直してから検証します。
type Service struct {
	candidates   CandidateStore
	companies    CompanyFinder
	apartments   ApartmentStore
	employees    EmployeeStore
	assignments  AssignmentStore
	applications ApplicationRepository
	notices      NoticeRepository
	numbers      NumberAllocator

	clock  Clock
	tx     TransactionManager
	events EventPublisher
	logger *slog.Logger
}

// UseCase はワークフローの公開インターフェースです。
type UseCase interface {
	PresentCandidate(ctx context.Context, in PresentCandidateInput) (*PresentationResult, error)
	RecordResult(ctx context.Context, in RecordResultInput) (*PresentationResult, error)
	GetApplication(ctx context.Context, in GetApplicationInput) (*Application, error)
	ListApplications(ctx context.Context, in ListApplicationsInput) (*ListApplicationsResult, error)

	CreateNotice(ctx context.Context, in CreateNoticeInput) (*NoticeResult, error)
	UpdateNotice(ctx context.Context, in UpdateNoticeInput) (*JoiningNotice, error)
	SubmitNotice(ctx context.Context, in SubmitNoticeInput) (*JoiningNotice, error)
	ApproveNotice(ctx context.Context, in ApproveNoticeInput) (*ApprovalResult, error)
	RejectNotice(ctx context.Context, in RejectNoticeInput) (*NoticeResult, error)
	GetNotice(ctx context.Context, in GetNoticeInput) (*JoiningNotice, error)
	ListNotices(ctx context.Context, in ListNoticesInput) (*ListNoticesResult, error)
}

// Option は Service の任意設定です。
type Option func(*Service)

// WithEventPublisher はコミット後のイベント配信先を設定します。
func WithEventPublisher(p EventPublisher) Option {
	return func(s *Service) {
		if p != nil {
			s.events = p
		}
	}
}

// WithLogger は遷移ログの出力先を設定します。
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService は Service を生成します。
func NewService(deps Dependencies, clock Clock, tx TransactionManager, opts ...Option) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if tx == nil {
		tx = noopTransactionManager{}
	}
	s := &Service{
		candidates:   deps.Candidates,
		companies:    deps.Companies,
		apartments:   deps.Apartments,
		employees:    deps.Employees,
		assignments:  deps.Assignments,
		applications: deps.Applications,
		notices:      deps.Notices,
		numbers:      deps.Numbers,
		clock:        clock,
		tx:           tx,
		events:       noopPublisher{},
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PresentCandidateInput は候補者を企業へ紹介する際の入力です。CompanyID と CompanyName の少なくとも一方が必要です。
type PresentCandidateInput struct {
	CandidateID string
	CompanyID   *string
	CompanyName string
	Actor       string
}

// RecordResultInput は紹介結果の記録時の入力です。Outcome は accepted か rejected です。
type RecordResultInput struct {
	ApplicationID string
	Outcome       ApplicationStatus
	Notes         string
	Actor         string
}

// GetApplicationInput は応募取得時の入力です。
type GetApplicationInput struct {
	ID string
}

// ListApplicationsInput は応募一覧取得時の入力です。
type ListApplicationsInput struct {
	PageSize    int
	PageToken   string
	CandidateID *string
	Status      *ApplicationStatus
}

// ListApplicationsResult は応募一覧の取得結果です。
type ListApplicationsResult struct {
	Applications  []*Application
	NextPageToken string
}

// PresentCandidate は候補者を企業へ紹介し、pending の応募を作成します。候補者は presented に遷移します。
func (s *Service) PresentCandidate(ctx context.Context, in PresentCandidateInput) (*PresentationResult, error) {
	candidateID, err := normalizeID(in.CandidateID)
	if err != nil {
		return nil, err
	}
	actor, err := normalizeActor(in.Actor)
	if err != nil {
		return nil, err
	}
	companyID, err := normalizeOptionalID(in.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("company_id: %w", err)
	}
	companyName := strings.TrimSpace(in.CompanyName)
	if companyID == nil && companyName == "" {
		return nil, ErrCompanyRequired
	}

	var result *PresentationResult
	if err := s.withinReadWrite(ctx, "present_candidate", func(txCtx context.Context) error {
		c, err := s.candidates.FindByIDForUpdate(txCtx, candidateID)
		if err != nil {
			return err
		}
		if err := advanceCandidate(c, TransitionPresent); err != nil {
			return err
		}

		name := companyName
		if companyID != nil {
			co, err := s.companies.FindByID(txCtx, *companyID)
			if err != nil {
				return err
			}
			if !co.IsActive() {
				return preconditionf("company %s is %s", co.ID, co.Status)
			}
			if name == "" {
				name = co.Name
			}
		}

		now := s.clock.Now()
		app, err := s.applications.Create(txCtx, &Application{
			CandidateID: c.ID,
			CompanyID:   companyID,
			CompanyName: name,
			PresentedAt: now,
			Status:      ApplicationPending,
			CreatedBy:   actor,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return err
		}

		c.UpdatedAt = now
		updated, err := s.candidates.Update(txCtx, c)
		if err != nil {
			return err
		}

		result = &PresentationResult{Application: app, Candidate: updated}
		return nil
	}); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "candidate presented",
		slog.String("candidate_id", result.Candidate.ID),
		slog.String("application_id", result.Application.ID),
		slog.String("actor", actor),
	)
	s.publish(ctx, EventCandidatePresented, actor, map[string]string{
		"candidate_id":   result.Candidate.ID,
		"application_id": result.Application.ID,
		"company_name":   result.Application.CompanyName,
	})

	return result, nil
}

// RecordResult は pending の応募に結果を記録し、候補者を accepted または rejected に遷移させます。
func (s *Service) RecordResult(ctx context.Context, in RecordResultInput) (*PresentationResult, error) {
	applicationID, err := normalizeID(in.ApplicationID)
	if err != nil {
		return nil, err
	}
	actor, err := normalizeActor(in.Actor)
	if err != nil {
		return nil, err
	}

	var transition Transition
	switch in.Outcome {
	case ApplicationAccepted:
		transition = TransitionAccept
	case ApplicationRejected:
		transition = TransitionReject
	default:
		return nil, ErrInvalidOutcome
	}
	notes := strings.TrimSpace(in.Notes)

	var result *PresentationResult
	if err := s.withinReadWrite(ctx, "record_result", func(txCtx context.Context) error {
		app, err := s.applications.FindByIDForUpdate(txCtx, applicationID)
		if err != nil {
			return err
		}
		next, err := Advance(KindApplication, string(app.Status), transition)
		if err != nil {
			return err
		}

		c, err := s.candidates.FindByIDForUpdate(txCtx, app.CandidateID)
		if err != nil {
			return err
		}
		if err := advanceCandidate(c, transition); err != nil {
			return fmt.Errorf("%w: %w", ErrPreconditionFailed, err)
		}

		now := s.clock.Now()
		app.Status = ApplicationStatus(next)
		app.ResultAt = &now
		app.ResultNotes = notes
		app.UpdatedAt = now
		updatedApp, err := s.applications.Update(txCtx, app)
		if err != nil {
			return err
		}

		c.UpdatedAt = now
		updatedCandidate, err := s.candidates.Update(txCtx, c)
		if err != nil {
			return err
		}

		result = &PresentationResult{Application: updatedApp, Candidate: updatedCandidate}
		return nil
	}); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "application result recorded",
		slog.String("application_id", result.Application.ID),
		slog.String("outcome", string(result.Application.Status)),
		slog.String("actor", actor),
	)
	s.publish(ctx, EventApplicationResultRecorded, actor, map[string]string{
		"application_id": result.Application.ID,
		"candidate_id":   result.Candidate.ID,
		"outcome":        string(result.Application.Status),
	})

	return result, nil
}

// GetApplication は応募を取得します。
func (s *Service) GetApplication(ctx context.Context, in GetApplicationInput) (*Application, error) {
	id, err := normalizeID(in.ID)
	if err != nil {
		return nil, err
	}

	var found *Application
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.applications.FindByID(txCtx, id)
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

// ListApplications は応募の一覧を紹介日時の新しい順に取得します。
func (s *Service) ListApplications(ctx context.Context, in ListApplicationsInput) (*ListApplicationsResult, error) {
	limit, err := normalizePageSize(in.PageSize)
	if err != nil {
		return nil, err
	}
	offset, err := parsePageToken(in.PageToken)
	if err != nil {
		return nil, err
	}
	candidateID, err := normalizeOptionalID(in.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("candidate_id: %w", err)
	}
	if in.Status != nil {
		switch *in.Status {
		case ApplicationPending, ApplicationAccepted, ApplicationRejected:
		default:
			return nil, ErrInvalidStatus
		}
	}

	var result ListApplicationsResult
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		apps, token, err := s.applications.List(txCtx, ListApplicationsFilter{
			CandidateID: candidateID,
			Status:      in.Status,
			Limit:       limit,
			Offset:      offset,
		})
		if err != nil {
			return err
		}
		result.Applications = apps
		result.NextPageToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &result, nil
}

// withinReadWrite は fn を読み書きトランザクションで実行し、競合で失敗した場合は一度だけ再実行します。
// fn は再実行時に対象を読み直すため、外側の状態に依存してはいけません。
func (s *Service) withinReadWrite(ctx context.Context, operation string, fn func(context.Context) error) error {
	err := s.tx.WithinReadWrite(ctx, fn)
	if err == nil || !errors.Is(err, ErrConflict) {
		return err
	}

	s.logger.WarnContext(ctx, "transaction conflict, retrying",
		slog.String("operation", operation),
		slog.Any("error", err),
	)
	return s.tx.WithinReadWrite(ctx, fn)
}

func (s *Service) publish(ctx context.Context, eventType, actor string, attrs map[string]string) {
	event := Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Actor:      actor,
		OccurredAt: s.clock.Now(),
		Attributes: attrs,
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "publish workflow event failed",
			slog.String("event_type", eventType),
			slog.String("event_id", event.ID),
			slog.Any("error", err),
		)
	}
}

func advanceCandidate(c *candidate.Candidate, t Transition) error {
	next, err := Advance(KindCandidate, string(c.Status), t)
	if err != nil {
		return err
	}
	c.Status = candidate.Status(next)
	return nil
}

func normalizeID(raw string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("id: %w", ErrInvalidID)
	}
	return parsed.String(), nil
}

func normalizeOptionalID(raw *string) (*string, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		return nil, ErrInvalidID
	}
	id := parsed.String()
	return &id, nil
}

func normalizeActor(raw string) (string, error) {
	actor := strings.TrimSpace(raw)
	if actor == "" {
		return "", ErrInvalidActor
	}
	return actor, nil
}

func normalizeDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}

	normalized := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &normalized
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func cloneTime(v *time.Time) *time.Time {
	if v == nil {
		return nil
	}
	out := *v
	return &out
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
