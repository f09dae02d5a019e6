package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ogurasousui/staffing-workflow/internal/core/placement"
)

// DefaultChannelPrefix は channel_prefix 未設定時のチャンネル接頭辞です。
const DefaultChannelPrefix = "staffing."

// Client は Publisher が利用する Redis コマンドの部分集合です。*goredis.Client が満たします。
type Client interface {
	Publish(ctx context.Context, channel string, message any) *goredis.IntCmd
}

// Publisher はワークフローイベントを Redis Pub/Sub に JSON で配信します。
// チャンネル名は接頭辞とイベント種別を連結したもの (例: staffing.notice.approved) です。
type Publisher struct {
	client Client
	prefix string
}

// NewPublisher は Publisher を生成します。
func NewPublisher(client Client, prefix string) *Publisher {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = DefaultChannelPrefix
	}
	return &Publisher{client: client, prefix: prefix}
}

// Channel はイベント種別に対応するチャンネル名を返します。
func (p *Publisher) Channel(eventType string) string {
	return p.prefix + eventType
}

// Publish はイベントを配信します。
func (p *Publisher) Publish(ctx context.Context, event placement.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("events: marshal %s: %w", event.Type, err)
	}

	if err := p.client.Publish(ctx, p.Channel(event.Type), payload).Err(); err != nil {
		return fmt.Errorf("events: publish %s: %w", event.Type, err)
	}
	return nil
}
