package placement

import (
	"context"
	"time"
)

// ワークフローイベントの種別です。
const (
	EventCandidatePresented        = "candidate.presented"
	EventApplicationResultRecorded = "application.result_recorded"
	EventNoticeCreated             = "notice.created"
	EventNoticeUpdated             = "notice.updated"
	EventNoticeSubmitted           = "notice.submitted"
	EventNoticeApproved            = "notice.approved"
	EventNoticeRejected            = "notice.rejected"
)

// Event はコミット済みの状態遷移を外部へ通知するためのメッセージです。
type Event struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	Actor      string            `json:"actor"`
	OccurredAt time.Time         `json:"occurred_at"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// EventPublisher はイベントの配信先です。配信はコミット後に行われ、失敗しても遷移は取り消されません。
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, Event) error { return nil }
