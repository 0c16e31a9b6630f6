package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/simplysrv/WA-Driving-Test-Prep/internal/bot"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/storage/cache"
	"github.com/spf13/cobra"

	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Telegram study bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.cfg.ValidateBot(); err != nil {
			return err
		}

		tgBot, err := bot.NewTelegramAPI(
			a.cfg.Bot.Token,
			a.cfg.Bot.OwnerID,
			a.cfg.Bot.Debug || a.cfg.Env == "development",
			a.services,
			cache.NewCache(),
			a.log,
		)
		if err != nil {
			a.log.Error("failed init telegram bot", zap.Error(err))
			return err
		}

		a.log.Info("bot started", zap.String("env", a.cfg.Env))
		tgBot.Start(ctx)
		a.log.Info("bot stopped")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
