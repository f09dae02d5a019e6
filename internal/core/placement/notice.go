package placement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ogurasousui/staffing-workflow/internal/core/employee"
)

// CreateNoticeInput は入社連絡票の作成時の入力です。Fields の未入力の個人情報は候補者から補完されます。
type CreateNoticeInput struct {
	CandidateID    string
	ApplicationID  *string
	EmploymentType employee.EmploymentType
	Fields         NoticeFields
	Actor          string
}

// UpdateNoticeInput は下書きの入社連絡票の更新時の入力です。雇用形態は変更できません。
type UpdateNoticeInput struct {
	ID    string
	Patch NoticePatch
	Actor string
}

// SubmitNoticeInput は承認申請時の入力です。
type SubmitNoticeInput struct {
	ID    string
	Actor string
}

// ApproveNoticeInput は承認時の入力です。Actor は承認者として記録されます。
type ApproveNoticeInput struct {
	ID    string
	Actor string
}

// RejectNoticeInput は差し戻し時の入力です。Reason は必須です。
type RejectNoticeInput struct {
	ID     string
	Actor  string
	Reason string
}

// GetNoticeInput は入社連絡票の取得時の入力です。
type GetNoticeInput struct {
	ID string
}

// ListNoticesInput は入社連絡票一覧の取得時の入力です。
type ListNoticesInput struct {
	PageSize    int
	PageToken   string
	CandidateID *string
	Status      *NoticeStatus
}

// ListNoticesResult は入社連絡票一覧の取得結果です。
type ListNoticesResult struct {
	Notices       []*JoiningNotice
	NextPageToken string
}

// CreateNotice は accepted の候補者に対して下書きの入社連絡票を作成し、候補者を processing に遷移させます。
func (s *Service) CreateNotice(ctx context.Context, in CreateNoticeInput) (*NoticeResult, error) {
	candidateID, err := normalizeID(in.CandidateID)
	if err != nil {
		return nil, err
	}
	actor, err := normalizeActor(in.Actor)
	if err != nil {
		return nil, err
	}
	if !in.EmploymentType.Valid() {
		return nil, ErrInvalidEmploymentType
	}
	applicationID, err := normalizeOptionalID(in.ApplicationID)
	if err != nil {
		return nil, fmt.Errorf("application_id: %w", err)
	}
	fields := in.Fields
	if err := normalizeNoticeFields(&fields); err != nil {
		return nil, err
	}

	var result *NoticeResult
	if err := s.withinReadWrite(ctx, "create_notice", func(txCtx context.Context) error {
		c, err := s.candidates.FindByIDForUpdate(txCtx, candidateID)
		if err != nil {
			return err
		}
		if err := advanceCandidate(c, TransitionStartProcessing); err != nil {
			return fmt.Errorf("%w: %w", ErrPreconditionFailed, err)
		}

		if applicationID != nil {
			app, err := s.applications.FindByID(txCtx, *applicationID)
			if err != nil {
				return err
			}
			if app.CandidateID != c.ID {
				return preconditionf("application %s belongs to another candidate", app.ID)
			}
			if app.Status != ApplicationAccepted {
				return preconditionf("application %s is %s, must be accepted", app.ID, app.Status)
			}
		}

		noticeFields := fields
		prefillFromProfile(&noticeFields, c.Profile)

		now := s.clock.Now()
		created, err := s.notices.Create(txCtx, &JoiningNotice{
			CandidateID:    c.ID,
			ApplicationID:  applicationID,
			EmploymentType: in.EmploymentType,
			NoticeFields:   noticeFields,
			Status:         NoticeDraft,
			CreatedBy:      actor,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			return err
		}

		c.UpdatedAt = now
		updated, err := s.candidates.Update(txCtx, c)
		if err != nil {
			return err
		}

		result = &NoticeResult{Notice: created, Candidate: updated}
		return nil
	}); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "joining notice created",
		slog.String("notice_id", result.Notice.ID),
		slog.String("candidate_id", result.Candidate.ID),
		slog.String("employment_type", string(result.Notice.EmploymentType)),
	)
	s.publish(ctx, EventNoticeCreated, actor, map[string]string{
		"notice_id":       result.Notice.ID,
		"candidate_id":    result.Candidate.ID,
		"employment_type": string(result.Notice.EmploymentType),
	})

	return result, nil
}

// UpdateNotice は下書きの入社連絡票を部分更新します。下書き以外は ErrInvalidState を返します。
func (s *Service) UpdateNotice(ctx context.Context, in UpdateNoticeInput) (*JoiningNotice, error) {
	id, err := normalizeID(in.ID)
	if err != nil {
		return nil, err
	}
	actor, err := normalizeActor(in.Actor)
	if err != nil {
		return nil, err
	}

	var updated *JoiningNotice
	if err := s.withinReadWrite(ctx, "update_notice", func(txCtx context.Context) error {
		n, err := s.notices.FindByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		if err := CanTransition(KindJoiningNotice, string(n.Status), TransitionEdit); err != nil {
			return err
		}

		in.Patch.apply(&n.NoticeFields)
		if err := normalizeNoticeFields(&n.NoticeFields); err != nil {
			return err
		}
		n.UpdatedAt = s.clock.Now()

		result, err := s.notices.Update(txCtx, n)
		if err != nil {
			return err
		}
		updated = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.publish(ctx, EventNoticeUpdated, actor, map[string]string{
		"notice_id": updated.ID,
	})

	return updated, nil
}

// SubmitNotice は下書きを検証して承認待ちにします。検証に失敗した場合は *ValidationError を返し、状態は変わりません。
func (s *Service) SubmitNotice(ctx context.Context, in SubmitNoticeInput) (*JoiningNotice, error) {
	id, err := normalizeID(in.ID)
	if err != nil {
		return nil, err
	}
	actor, err := normalizeActor(in.Actor)
	if err != nil {
		return nil, err
	}

	var submitted *JoiningNotice
	if err := s.withinReadWrite(ctx, "submit_notice", func(txCtx context.Context) error {
		n, err := s.notices.FindByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		next, err := Advance(KindJoiningNotice, string(n.Status), TransitionSubmit)
		if err != nil {
			return err
		}
		if err := s.validateForSubmission(txCtx, n); err != nil {
			return err
		}

		now := s.clock.Now()
		n.Status = NoticeStatus(next)
		n.SubmittedAt = &now
		n.UpdatedAt = now

		result, err := s.notices.Update(txCtx, n)
		if err != nil {
			return err
		}
		submitted = result
		return nil
	}); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "joining notice submitted",
		slog.String("notice_id", submitted.ID),
		slog.String("actor", actor),
	)
	s.publish(ctx, EventNoticeSubmitted, actor, map[string]string{
		"notice_id":    submitted.ID,
		"candidate_id": submitted.CandidateID,
	})

	return submitted, nil
}

// RejectNotice は承認待ちの入社連絡票を差し戻します。候補者は accepted に戻り、新しい連絡票を作成できます。
func (s *Service) RejectNotice(ctx context.Context, in RejectNoticeInput) (*NoticeResult, error) {
	id, err := normalizeID(in.ID)
	if err != nil {
		return nil, err
	}
	actor, err := normalizeActor(in.Actor)
	if err != nil {
		return nil, err
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, ErrRejectionReasonRequired
	}

	var result *NoticeResult
	if err := s.withinReadWrite(ctx, "reject_notice", func(txCtx context.Context) error {
		n, err := s.notices.FindByIDForUpdate(txCtx, id)
		if err != nil {
			return err
		}
		next, err := Advance(KindJoiningNotice, string(n.Status), TransitionReject)
		if err != nil {
			return err
		}

		c, err := s.candidates.FindByIDForUpdate(txCtx, n.CandidateID)
		if err != nil {
			return err
		}
		if err := advanceCandidate(c, TransitionReopen); err != nil {
			return fmt.Errorf("%w: %w", ErrPreconditionFailed, err)
		}

		now := s.clock.Now()
		n.Status = NoticeStatus(next)
		n.RejectionReason = &reason
		n.ApprovedBy = &actor
		n.UpdatedAt = now
		rejected, err := s.notices.Update(txCtx, n)
		if err != nil {
			return err
		}

		c.UpdatedAt = now
		reopened, err := s.candidates.Update(txCtx, c)
		if err != nil {
			return err
		}

		result = &NoticeResult{Notice: rejected, Candidate: reopened}
		return nil
	}); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "joining notice rejected",
		slog.String("notice_id", result.Notice.ID),
		slog.String("candidate_id", result.Candidate.ID),
		slog.String("actor", actor),
	)
	s.publish(ctx, EventNoticeRejected, actor, map[string]string{
		"notice_id":    result.Notice.ID,
		"candidate_id": result.Candidate.ID,
		"reason":       reason,
	})

	return result, nil
}

// GetNotice は入社連絡票を取得します。
func (s *Service) GetNotice(ctx context.Context, in GetNoticeInput) (*JoiningNotice, error) {
	id, err := normalizeID(in.ID)
	if err != nil {
		return nil, err
	}

	var found *JoiningNotice
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		result, err := s.notices.FindByID(txCtx, id)
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

// ListNotices は入社連絡票の一覧を作成日時の新しい順に取得します。承認待ちの一覧は Status に pending を指定します。
func (s *Service) ListNotices(ctx context.Context, in ListNoticesInput) (*ListNoticesResult, error) {
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
		case NoticeDraft, NoticePending, NoticeApproved, NoticeRejected:
		default:
			return nil, ErrInvalidStatus
		}
	}

	var result ListNoticesResult
	if err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		notices, token, err := s.notices.List(txCtx, ListNoticesFilter{
			CandidateID: candidateID,
			Status:      in.Status,
			Limit:       limit,
			Offset:      offset,
		})
		if err != nil {
			return err
		}
		result.Notices = notices
		result.NextPageToken = token
		return nil
	}); err != nil {
		return nil, err
	}

	return &result, nil
}
