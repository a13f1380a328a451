package repository

import (
	"barbellfx-relay/internal/model"
	"barbellfx-relay/pkg/cache"
)

const latestSignalKey = "signal:latest"

// SignalRepository is a single-slot register for the current signal.
type SignalRepository interface {
	// Set replaces the current signal.
	Set(signal model.Signal)
	// Get returns the current signal, or false if none was ever set.
	Get() (model.Signal, bool)
}

type signalRepository struct {
	inmemoryCache cache.Cache
}

// NewSignalRepository keeps the signal in inmemoryCache under a single
// key that never expires. The cache must not be shared with callers that
// Flush it.
func NewSignalRepository(inmemoryCache cache.Cache) SignalRepository {
	return &signalRepository{inmemoryCache: inmemoryCache}
}

func (r *signalRepository) Set(signal model.Signal) {
	// Stored by value, so readers get their own copy.
	r.inmemoryCache.Set(latestSignalKey, signal, cache.NoExpiration)
}

func (r *signalRepository) Get() (model.Signal, bool) {
	return cache.GetAs[model.Signal](r.inmemoryCache, latestSignalKey)
}
