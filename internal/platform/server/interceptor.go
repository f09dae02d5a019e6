package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/tap"

	"github.com/ogurasousui/staffing-workflow/internal/adapters/grpc/codec"
	"github.com/ogurasousui/staffing-workflow/internal/adapters/grpc/staffingv1"
)

const (
	staffingMethodPrefix = "/staffing.v1."
	grpcContentType      = "application/grpc"
)

// UnaryLoggingInterceptor は RPC ごとにメソッド・ステータス・所要時間を記録します。
// Internal と Unknown は Error、それ以外の失敗は Warn で出力します。
func UnaryLoggingInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		attrs := []any{
			"method", info.FullMethod,
			"code", code.String(),
			"duration", time.Since(start),
		}
		if actor := actorFromMetadata(ctx); actor != "" {
			attrs = append(attrs, "actor", actor)
		}

		switch code {
		case codes.OK:
			logger.InfoContext(ctx, "rpc completed", attrs...)
		case codes.Internal, codes.Unknown:
			logger.ErrorContext(ctx, "rpc failed", append(attrs, "error", err)...)
		default:
			logger.WarnContext(ctx, "rpc rejected", append(attrs, "error", err)...)
		}

		return resp, err
	}
}

func actorFromMetadata(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(staffingv1.ActorMetadataKey); len(values) > 0 {
		return values[0]
	}
	return ""
}

// ContentSubtypeTap は staffing.v1 の RPC を content-subtype "json" 以外で受けた場合に、
// 本文の復号前に InvalidArgument で拒否します。ヘルスチェックなど他のサービスは対象外です。
func ContentSubtypeTap(logger *slog.Logger) tap.ServerInHandle {
	return func(ctx context.Context, info *tap.Info) (context.Context, error) {
		if !strings.HasPrefix(info.FullMethodName, staffingMethodPrefix) {
			return ctx, nil
		}

		var contentType string
		if values := info.Header.Get("content-type"); len(values) > 0 {
			contentType = values[0]
		}
		if subtype := contentSubtype(contentType); subtype != codec.Name {
			logger.WarnContext(ctx, "rpc rejected", "method", info.FullMethodName, "content_type", contentType)
			return ctx, status.Errorf(codes.InvalidArgument,
				"%s requires content-subtype %q (grpc.CallContentSubtype(%q)), got %q",
				info.FullMethodName, codec.Name, codec.Name, contentType)
		}
		return ctx, nil
	}
}

// contentSubtype は "application/grpc+json" から "json" を取り出します。指定がなければ空文字です。
func contentSubtype(contentType string) string {
	rest, ok := strings.CutPrefix(strings.ToLower(strings.TrimSpace(contentType)), grpcContentType)
	if !ok || rest == "" {
		return ""
	}
	switch rest[0] {
	case '+', ';':
		return rest[1:]
	default:
		return ""
	}
}
