package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/staffing-workflow/internal/adapters/events/redis"
	"github.com/ogurasousui/staffing-workflow/internal/adapters/grpc/handler"
	"github.com/ogurasousui/staffing-workflow/internal/adapters/repository/postgres"
	"github.com/ogurasousui/staffing-workflow/internal/core/apartment"
	"github.com/ogurasousui/staffing-workflow/internal/core/candidate"
	"github.com/ogurasousui/staffing-workflow/internal/core/company"
	"github.com/ogurasousui/staffing-workflow/internal/core/employee"
	"github.com/ogurasousui/staffing-workflow/internal/core/placement"
	"github.com/ogurasousui/staffing-workflow/internal/platform/config"
	pg "github.com/ogurasousui/staffing-workflow/internal/platform/db/postgres"
	redisdb "github.com/ogurasousui/staffing-workflow/internal/platform/db/redis"
	"github.com/ogurasousui/staffing-workflow/internal/platform/logging"
	"github.com/ogurasousui/staffing-workflow/internal/platform/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("failed to load config", "path", cfgPath, "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Log, os.Stdout)
	slog.SetDefault(logger)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	txManager := pg.NewTransactionManager(dbPool, pg.WithConflictError(placement.ErrConflict))

	placementOpts := []placement.Option{placement.WithLogger(logger.With("component", "placement"))}
	if cfg.Redis.Enabled() {
		redisClient, err := redisdb.NewClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		publisher := redis.NewPublisher(redisClient, cfg.Redis.ChannelPrefix)
		placementOpts = append(placementOpts, placement.WithEventPublisher(publisher))
		logger.Info("placement events enabled", "channel_prefix", cfg.Redis.ChannelPrefix)
	}

	candidateRepo := postgres.NewCandidateRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	apartmentRepo := postgres.NewApartmentRepository(dbPool)
	employeeRepo := postgres.NewEmployeeRepository(dbPool)
	assignmentRepo := postgres.NewAssignmentRepository(dbPool)

	candidateSvc := candidate.NewService(candidateRepo, nil, txManager)
	companySvc := company.NewService(companyRepo, nil, txManager)
	apartmentSvc := apartment.NewService(apartmentRepo, nil, txManager)
	employeeSvc := employee.NewService(employeeRepo, assignmentRepo, apartmentRepo, nil, txManager)
	placementSvc := placement.NewService(placement.Dependencies{
		Candidates:   candidateRepo,
		Companies:    companyRepo,
		Apartments:   apartmentRepo,
		Employees:    employeeRepo,
		Assignments:  assignmentRepo,
		Applications: postgres.NewApplicationRepository(dbPool),
		Notices:      postgres.NewNoticeRepository(dbPool),
		Numbers:      postgres.NewEmployeeNumberAllocator(dbPool),
	}, nil, txManager, placementOpts...)

	grpcServer := server.New(cfg.Server.ListenAddr, server.Handlers{
		Candidates: handler.NewCandidateGrpcHandler(candidateSvc),
		Placement:  handler.NewPlacementGrpcHandler(placementSvc),
		Employees:  handler.NewEmployeeGrpcHandler(employeeSvc),
		Companies:  handler.NewCompanyGrpcHandler(companySvc),
		Apartments: handler.NewApartmentGrpcHandler(apartmentSvc),
	}, logger)

	return grpcServer.Run(ctx)
}
