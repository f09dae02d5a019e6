// Package staffingv1 は staffing.v1 の gRPC サービス定義とメッセージです。
// メッセージは JSON で符号化され、content-subtype "json" (internal/adapters/grpc/codec) で送受信されます。
// 日付は "YYYY-MM-DD"、日時は RFC 3339 です。
package staffingv1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/ogurasousui/staffing-workflow/internal/adapters/grpc/codec"
)

// ActorMetadataKey は操作者 ID を運ぶメタデータのキーです。更新系 RPC では必須です。
const ActorMetadataKey = "x-actor-id"

func fullMethod(service, method string) string {
	return "/" + service + "/" + method
}

// unaryMethod はサーバーインターフェースのメソッド式から grpc.MethodDesc を組み立てます。
func unaryMethod[S, Req, Resp any](service, method string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	full := fullMethod(service, method)

	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(S), ctx, in)
			}

			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(S), ctx, req.(*Req))
			}
			return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: full}, handler)
		},
	}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(codec.Name)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, callOpts...); err != nil {
		return nil, err
	}
	return out, nil
}
