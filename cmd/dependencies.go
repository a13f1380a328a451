package cmd

import (
	"barbellfx-relay/config"
	"barbellfx-relay/internal/service"
	"barbellfx-relay/pkg/cache"
	"barbellfx-relay/pkg/logger"
	"barbellfx-relay/pkg/telegram"
	"time"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AppDependency struct {
	cfg       *config.Config
	log       *logger.Logger
	validator *goValidator.Validate
	echo      *echo.Echo
	cache     cache.Cache
}

func NewAppDependency() (*AppDependency, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		return nil, err
	}

	return &AppDependency{
		cfg:       cfg,
		log:       log,
		validator: goValidator.New(),
		echo:      echo.New(),
		cache:     cache.NewCache(cache.NoExpiration, 10*time.Minute),
	}, nil
}

// SignalNotifier returns the Telegram notifier, or nil when Telegram is
// not configured.
func (d *AppDependency) SignalNotifier() (service.SignalNotifier, error) {
	if !d.cfg.Telegram.Enabled() {
		d.log.Info("Telegram notifications disabled")
		return nil, nil
	}

	bot, err := telegram.NewBot(&d.cfg.Telegram)
	if err != nil {
		d.log.Error("Failed to create telegram bot", zap.Error(err))
		return nil, err
	}
	return telegram.NewSignalNotifier(&d.cfg.Telegram, d.log.Named("telegram"), bot), nil
}

func (d *AppDependency) Close() error {
	d.log.Info("Closing app dependency")
	// Sync fails on stdout/stderr for some platforms; nothing to act on.
	_ = d.log.Sync()
	return nil
}
