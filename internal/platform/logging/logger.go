package logging

import (
	"io"
	"log/slog"

	"github.com/ogurasousui/staffing-workflow/internal/platform/config"
)

// New は設定に従って構造化ロガーを生成します。
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}

	var h slog.Handler
	switch cfg.Format {
	case config.LogFormatJSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h)
}
