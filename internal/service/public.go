package service

//go:generate mockgen -source=public.go -destination=mock_public.go -package=service

import (
	"context"
	"fmt"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"guild-service/internal/config"
	"guild-service/internal/guild"
	"guild-service/internal/utils/grpczap"
	"net"
	"sync"
)

// Engine is the guild workflow the service exposes.
type Engine interface {
	CreateGuild(ctx context.Context, playerId string, guildName string) (*guild.CreateResult, error)
	RequestToJoin(ctx context.Context, playerId string, guildId string) error
	ListJoinRequests(ctx context.Context, playerId string) ([]guild.Application, error)
	ApproveJoinRequest(ctx context.Context, approverId string, applicantId string) error
	DeclineJoinRequest(ctx context.Context, approverId string, applicantId string) error
	ChangeGuildRole(ctx context.Context, requestorId string, targetId string, newRole guild.Role) error
	BanGuildMember(ctx context.Context, requestorId string, targetId string) error
	LeaveGuild(ctx context.Context, playerId string) error
	RecordAttendance(ctx context.Context, playerId string) (*guild.AttendanceResult, error)
	UpdateGuildNotice(ctx context.Context, playerId string, notice string) error
	SearchGuilds(ctx context.Context, query string) ([]guild.SearchResult, error)
	GetGuild(ctx context.Context, playerId string) (*guild.Details, error)
}

func RunServices(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, cfg *config.Config,
	svc GuildServiceServer) {

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		logger.Fatalw("failed to listen", "error", err)
	}

	s, healthSrv := newServer(logger, svc)
	logger.Infow("listening for gRPC requests", "port", cfg.GRPCPort)

	go func() {
		if err := s.Serve(lis); err != nil {
			logger.Fatalw("failed to serve", "error", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		healthSrv.Shutdown()
		s.GracefulStop()
	}()
}

func newServer(logger *zap.SugaredLogger, svc GuildServiceServer) (*grpc.Server, *health.Server) {
	opts := []logging.Option{
		logging.WithLogOnEvents(logging.StartCall, logging.FinishCall),
	}

	recoveryHandler := recovery.WithRecoveryHandler(func(p any) error {
		logger.Errorw("recovered from panic in gRPC handler", "panic", p)
		return status.Error(codes.Internal, "internal error")
	})

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(
		logging.UnaryServerInterceptor(grpczap.InterceptorLogger(logger.Desugar()), opts...),
		recovery.UnaryServerInterceptor(recoveryHandler),
	))

	RegisterGuildServiceServer(s, svc)

	healthSrv := health.NewServer()
	grpc_health_v1.RegisterHealthServer(s, healthSrv)
	healthSrv.SetServingStatus(ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return s, healthSrv
}
