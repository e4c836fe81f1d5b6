// Package server implements the server CLI command.
package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	reminderUsecases "github.com/replenish-inc/replenish/internal/application/reminder/usecases"
	"github.com/replenish-inc/replenish/internal/infrastructure/config"
	"github.com/replenish-inc/replenish/internal/infrastructure/database"
	"github.com/replenish-inc/replenish/internal/infrastructure/directory"
	"github.com/replenish-inc/replenish/internal/infrastructure/email"
	"github.com/replenish-inc/replenish/internal/infrastructure/migration"
	"github.com/replenish-inc/replenish/internal/infrastructure/repository"
	"github.com/replenish-inc/replenish/internal/infrastructure/scheduler"
	"github.com/replenish-inc/replenish/internal/infrastructure/token"
	httpRouter "github.com/replenish-inc/replenish/internal/interfaces/http"
	"github.com/replenish-inc/replenish/internal/shared/biztime"
	"github.com/replenish-inc/replenish/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the reminder HTTP server and the daily reminder sweep.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	logger.Info("starting server",
		"environment", env,
		"auto_migrate", autoMigrate)

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if env == "production" {
			logger.Warn("auto-migration is enabled in production environment - this is not recommended!")
		}
		migrationManager := migration.NewManager(env)
		if err := migrationManager.Migrate(database.Get(), migration.AutoMigrateModels()...); err != nil {
			return fmt.Errorf("auto-migration failed: %w", err)
		}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	subscriptionRepo := repository.NewSubscriptionRepository(database.Get(), log.Named("subscription_repo"))
	confirmationRepo := repository.NewConfirmationRepository(database.Get(), log.Named("confirmation_repo"))
	dir := directory.NewGormDirectory(database.Get(), log.Named("directory"))
	tokenGen := token.NewGenerator()
	notifier := email.NewSMTPNotificationService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
	})

	sendRemindersUC := reminderUsecases.NewSendPendingRemindersUseCase(
		subscriptionRepo,
		confirmationRepo,
		tokenGen,
		notifier,
		dir,
		dir,
		cfg.Reminder,
		time.Duration(cfg.Email.SendTimeout)*time.Second,
		log.Named("send_reminders"),
	)
	purgeUC := reminderUsecases.NewPurgeExpiredConfirmationsUseCase(
		confirmationRepo,
		time.Duration(cfg.Reminder.RetentionDays)*24*time.Hour,
		log.Named("purge_confirmations"),
	)

	reminderScheduler := scheduler.NewReminderScheduler(sendRemindersUC, purgeUC, cfg.Reminder.SweepHour, log.Named("scheduler"))
	schedulerCtx, cancelScheduler := context.WithCancel(context.Background())
	reminderScheduler.Start(schedulerCtx)
	defer func() {
		cancelScheduler()
		reminderScheduler.Stop()
	}()

	router := httpRouter.NewRouter(httpRouter.RouterDeps{
		Config:      cfg,
		DB:          database.Get(),
		RedisClient: redisClient,
		Logger:      log,
	})

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
