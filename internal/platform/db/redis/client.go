package redis

import (
	"context"
	"fmt"

	"github.com/ogurasousui/staffing-workflow/internal/platform/config"
	goredis "github.com/redis/go-redis/v9"
)

// NewClient は Redis クライアントを生成し疎通確認を行います。
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: parse url: %w", err)
	}

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}

	return client, nil
}
