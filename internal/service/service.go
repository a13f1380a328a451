package service

import (
	"path/filepath"

	"barbellfx-relay/config"
	"barbellfx-relay/internal/repository"
	"barbellfx-relay/pkg/logger"
)

type Service struct {
	SignalService SignalService
}

func NewService(
	log *logger.Logger,
	repo *repository.Repository,
	notifier SignalNotifier,
) *Service {
	return &Service{
		SignalService: NewSignalService(log.Named("signal"), repo.SignalRepo, notifier),
	}
}

// NewFetcherService wires the file sink to the API repository. filesDir is
// the already resolved MQL5/Files folder.
func NewFetcherService(cfg *config.Config, log *logger.Logger, repo *repository.Repository, filesDir string) SignalFetcherService {
	path := filepath.Join(filesDir, cfg.Fetcher.FileName)
	return NewSignalFetcherService(log.Named("fetcher"), repo.SignalAPIRepo, path, cfg.Fetcher.Interval)
}
