package cmd

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	config "taskphoto.com/taskphoto/internal/configs"
	"taskphoto.com/taskphoto/internal/fixtures"
	"taskphoto.com/taskphoto/internal/queue"
	repository "taskphoto.com/taskphoto/internal/repositories"
	"taskphoto.com/taskphoto/internal/services"
)

const loginGuardPrefix = "taskphoto:login:"

// coreModule provides the store, repositories and services shared by every command.
var coreModule = fx.Options(
	fx.Provide(
		config.Load,
		provideLogger,
		provideDatabase,
		repository.NewTaskRepository,
		repository.NewUserRepository,
		repository.NewNotificationRepository,
		provideLoginGuard,
		provideNotificationService,
		provideTaskService,
		provideUserService,
		provideAuthService,
	),
	fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: logger.Named("fx")}
	}),
	fx.Invoke(seedFixtures),
)

func provideLogger(lc fx.Lifecycle, cfg config.Config) (*zap.Logger, error) {
	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		_ = logger.Sync()
	}))
	return logger, nil
}

func provideDatabase(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := config.New(cfg.DatabaseDSN, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}))
	return db, nil
}

// provideLoginGuard uses Redis when REDIS_ADDR is set so that several instances
// share in-flight login state; otherwise the guard lives in process memory.
func provideLoginGuard(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (queue.LoginGuard, error) {
	if cfg.RedisAddr == "" {
		logger.Info("using in-memory login guard")
		return queue.NewMemoryLoginGuard(cfg.LoginLockTTL), nil
	}

	client, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(client.Close))

	logger.Info("using redis login guard", zap.String("addr", cfg.RedisAddr))
	return queue.NewRedisLoginGuard(client, loginGuardPrefix, cfg.LoginLockTTL), nil
}

func provideNotificationService(
	lc fx.Lifecycle,
	cfg config.Config,
	repo *repository.NotificationRepository,
	logger *zap.Logger,
) *services.NotificationService {
	svc := services.NewNotificationService(repo, cfg.NotifyWorkers, cfg.NotifyQueueSize, logger)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			svc.Shutdown(ctx)
			return nil
		},
	})
	return svc
}

func provideTaskService(repo *repository.TaskRepository, notifications *services.NotificationService) *services.TaskService {
	return services.NewTaskService(repo, notifications)
}

func provideUserService(cfg config.Config, repo *repository.UserRepository) *services.UserService {
	return services.NewUserService(repo, cfg.BcryptCost)
}

func provideAuthService(
	cfg config.Config,
	repo *repository.UserRepository,
	guard queue.LoginGuard,
	logger *zap.Logger,
) *services.AuthService {
	return services.NewAuthService(repo, guard, cfg.LoginDelay, logger)
}

type seedParams struct {
	fx.In

	Config        config.Config
	Logger        *zap.Logger
	Tasks         *repository.TaskRepository
	Users         *repository.UserRepository
	Notifications *repository.NotificationRepository
}

func seedFixtures(lc fx.Lifecycle, p seedParams) {
	if !p.Config.SeedFixtures {
		return
	}

	seeder := fixtures.NewSeeder(p.Tasks, p.Users, p.Notifications, p.Config.BcryptCost)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			seeded, err := seeder.Seed(ctx)
			if err != nil {
				return err
			}
			if seeded {
				p.Logger.Info("fixtures seeded")
			}
			return nil
		},
	})
}
