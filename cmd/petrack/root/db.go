package root

import (
	"context"
	"log/slog"
	"os"

	"petrack/internal/config"
	"petrack/internal/engine"
	"petrack/internal/events"
	"petrack/internal/storage"
)

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("PETRACK_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func openService(ctx context.Context) (*engine.Service, config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	path, err := storage.ResolveDBPath(cfg.DBPath)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	logger := newLogger()
	svc := engine.NewService(db, events.NewBus(logger), engine.Options{
		Logger:               logger,
		NotificationDuration: cfg.NotificationDuration,
		DecayInterval:        cfg.DecayInterval,
	})
	cleanup := func() {
		svc.Notifier().Close()
		_ = db.Close()
	}
	return svc, cfg, cleanup, nil
}
