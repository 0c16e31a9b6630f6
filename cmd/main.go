package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/catalog"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/config"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/repository"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/service"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/storage/db"
	"github.com/simplysrv/WA-Driving-Test-Prep/internal/storage/snapshot"
	"github.com/spf13/cobra"

	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "drivetest",
	Short: "Driver knowledge test study bot",
	Long: `drivetest runs a Telegram study bot for the driver knowledge test:
flashcards, practice quizzes, a 40-question practice test and progress
tracking. The other commands inspect and maintain the stored state.`,
	SilenceUsage: true,
}

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

// app is the wired service with the resources it holds.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	db       *sqlx.DB
	rdb      *redis.Client
	repos    repository.Repository
	catalog  *catalog.Catalog
	services *service.Service
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Init()
	if err != nil {
		return nil, fmt.Errorf("failed load config: %w", err)
	}

	a := &app{cfg: cfg, log: setupLogger(cfg.Env)}

	a.catalog, err = catalog.LoadDir(cfg.Catalog.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed load catalog: %w", err)
	}
	a.log.Info("catalog loaded", zap.Int("questions", a.catalog.Count()), zap.Ints("chapters", a.catalog.Chapters()))

	a.db, err = db.InitDB(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed init db: %w", err)
	}
	a.repos = repository.NewRepository(a.db)

	var snapshots service.RepositoryI = a.repos
	if cfg.Redis.Enabled {
		a.rdb = snapshot.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := a.rdb.Ping(ctx).Err(); err != nil {
			a.close()
			return nil, fmt.Errorf("failed connect redis: %w", err)
		}
		snapshots = snapshot.NewRedisStore(a.rdb, cfg.Redis.TTL)
	}

	a.services = service.InitServices(a.catalog, a.repos, snapshots, service.Options{
		UserID:       cfg.App.UserID,
		Buffer:       cfg.Persist.Buffer,
		WriteTimeout: cfg.App.Timeout,
	}, a.log)

	loadCtx, cancel := context.WithTimeout(ctx, cfg.App.Timeout)
	defer cancel()
	if err := a.services.Load(loadCtx); err != nil {
		a.close()
		return nil, fmt.Errorf("failed load state: %w", err)
	}

	return a, nil
}

// close flushes pending writes and releases connections.
func (a *app) close() {
	if a.services != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Persist.FlushTimeout)
		defer cancel()
		if err := a.services.Close(ctx); err != nil {
			a.log.Error("pending writes lost", zap.Error(err))
		}
	}
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			a.log.Warn("failed close redis", zap.Error(err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn("failed close db", zap.Error(err))
		}
	}
	_ = a.log.Sync()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
