package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/ogurasousui/staffing-workflow/internal/adapters/grpc/codec"
	"github.com/ogurasousui/staffing-workflow/internal/adapters/grpc/staffingv1"
)

// Handlers はサーバーへ登録する各サービスの実装です。nil のサービスは登録しません。
type Handlers struct {
	Candidates staffingv1.CandidateServiceServer
	Placement  staffingv1.PlacementServiceServer
	Employees  staffingv1.EmployeeServiceServer
	Companies  staffingv1.CompanyServiceServer
	Apartments staffingv1.ApartmentServiceServer
}

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr string
	grpcServer *grpc.Server
	health     *health.Server
	logger     *slog.Logger
}

// New は指定されたアドレスで待ち受ける gRPC サーバーを構築します。
func New(listenAddr string, h Handlers, logger *slog.Logger, opts ...grpc.ServerOption) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(UnaryLoggingInterceptor(logger)),
		grpc.InTapHandle(ContentSubtypeTap(logger)),
	}, opts...)
	srv := grpc.NewServer(opts...)

	var services []string
	if h.Candidates != nil {
		staffingv1.RegisterCandidateServiceServer(srv, h.Candidates)
		services = append(services, staffingv1.CandidateServiceName)
	}
	if h.Placement != nil {
		staffingv1.RegisterPlacementServiceServer(srv, h.Placement)
		services = append(services, staffingv1.PlacementServiceName)
	}
	if h.Employees != nil {
		staffingv1.RegisterEmployeeServiceServer(srv, h.Employees)
		services = append(services, staffingv1.EmployeeServiceName)
	}
	if h.Companies != nil {
		staffingv1.RegisterCompanyServiceServer(srv, h.Companies)
		services = append(services, staffingv1.CompanyServiceName)
	}
	if h.Apartments != nil {
		staffingv1.RegisterApartmentServiceServer(srv, h.Apartments)
		services = append(services, staffingv1.ApartmentServiceName)
	}

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	for _, name := range services {
		healthSrv.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}
	healthpb.RegisterHealthServer(srv, healthSrv)

	return &Server{
		listenAddr: listenAddr,
		grpcServer: srv,
		health:     healthSrv,
		logger:     logger,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}

	s.logger.Info("gRPC server listening", "addr", lis.Addr().String(), "content_subtype", codec.Name)
	return s.Serve(ctx, lis)
}

// Serve は与えられたリスナーで待ち受けます。Serve が返った時点で停止監視の goroutine も終了しています。
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
			s.GracefulStop()
		case <-done:
		}
	}()

	err := s.grpcServer.Serve(lis)
	close(done)
	<-stopped

	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop はヘルスチェックを NOT_SERVING にしてからサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}
