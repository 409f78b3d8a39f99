package app

import (
	"context"
	"go.uber.org/zap"
	"guild-service/internal/config"
	"guild-service/internal/gateway"
	"guild-service/internal/guild"
	"guild-service/internal/kafka/notifier"
	"guild-service/internal/objectstore"
	"guild-service/internal/repository"
	"guild-service/internal/service"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

func Run(cfg *config.Config, logger *zap.SugaredLogger) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	wg := &sync.WaitGroup{}

	// Storage and messaging outlive the servers so in-flight requests can finish.
	delayedCtx, delayedCancel := context.WithCancel(context.Background())
	delayedWg := &sync.WaitGroup{}

	repo, err := repository.NewMongoRepository(delayedCtx, logger, delayedWg, cfg.MongoDB)
	if err != nil {
		logger.Fatalw("failed to create repository", "error", err)
	}

	redisClient, err := objectstore.NewRedisClient(delayedCtx, logger, delayedWg, cfg.Redis)
	if err != nil {
		logger.Fatalw("failed to connect to redis", "error", err)
	}

	notif := notifier.NewKafkaNotifier(delayedCtx, delayedWg, logger, cfg.Kafka)

	engine := guild.NewEngine(logger, cfg.Guild, repo,
		objectstore.NewRedisStore(redisClient), objectstore.NewRedisRegistry(redisClient), notif)
	svc := service.NewGuildService(logger, engine)

	service.RunServices(ctx, logger, wg, cfg, svc)
	gateway.Run(ctx, logger, wg, cfg, svc)

	wg.Wait()
	logger.Info("shutting down")

	logger.Info("shutting down delayed services")
	delayedCancel()
	delayedWg.Wait()
}
