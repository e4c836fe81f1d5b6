// Package sweep implements the one-shot reminder sweep CLI command.
package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	reminderUsecases "github.com/replenish-inc/replenish/internal/application/reminder/usecases"
	"github.com/replenish-inc/replenish/internal/infrastructure/config"
	"github.com/replenish-inc/replenish/internal/infrastructure/database"
	"github.com/replenish-inc/replenish/internal/infrastructure/directory"
	"github.com/replenish-inc/replenish/internal/infrastructure/email"
	"github.com/replenish-inc/replenish/internal/infrastructure/repository"
	"github.com/replenish-inc/replenish/internal/infrastructure/token"
	"github.com/replenish-inc/replenish/internal/shared/biztime"
	"github.com/replenish-inc/replenish/internal/shared/logger"
)

var (
	env     string
	forDate string
)

// NewCommand returns a one-shot sweep command for cron-driven deployments.
// The sweep is idempotent, so running it alongside a server instance or
// re-running it after a partial failure is safe.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run one reminder sweep and exit",
		Long:  `Issue confirmations and dispatch reminder emails for subscriptions due a reminder, then exit.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVar(&forDate, "date", "", "Sweep as-of date in YYYY-MM-DD (default: today)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	today := biztime.NowUTC()
	if forDate != "" {
		today, err = biztime.ParseDate(forDate)
		if err != nil {
			return fmt.Errorf("invalid --date value: %w", err)
		}
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	subscriptionRepo := repository.NewSubscriptionRepository(database.Get(), log.Named("subscription_repo"))
	confirmationRepo := repository.NewConfirmationRepository(database.Get(), log.Named("confirmation_repo"))
	dir := directory.NewGormDirectory(database.Get(), log.Named("directory"))
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
		token.NewGenerator(),
		notifier,
		dir,
		dir,
		cfg.Reminder,
		time.Duration(cfg.Email.SendTimeout)*time.Second,
		log.Named("send_reminders"),
	)

	sent, err := sendRemindersUC.Execute(context.Background(), today)
	if err != nil {
		return fmt.Errorf("sweep failed: %w", err)
	}

	log.Infow("sweep completed", "date", biztime.FormatDate(today), "sent", sent)
	return nil
}
