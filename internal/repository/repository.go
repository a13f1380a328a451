package repository

import (
	"barbellfx-relay/config"
	"barbellfx-relay/pkg/cache"
	"barbellfx-relay/pkg/logger"
)

type Repository struct {
	SignalRepo    SignalRepository
	SignalAPIRepo SignalAPIRepository
}

func NewRepository(cfg *config.Config, inmemoryCache cache.Cache, log *logger.Logger) *Repository {
	return &Repository{
		SignalRepo:    NewSignalRepository(inmemoryCache),
		SignalAPIRepo: NewSignalAPIRepository(cfg, log),
	}
}
