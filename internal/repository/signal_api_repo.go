package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"barbellfx-relay/config"
	"barbellfx-relay/internal/model"
	"barbellfx-relay/pkg/httpclient"
	"barbellfx-relay/pkg/logger"
)

// ErrSignalNotFound is returned when the API has no signal yet.
var ErrSignalNotFound = errors.New("signal not found")

const fetcherUserAgent = "barbellfx-signal-fetcher"

// SignalAPIRepository reads the current signal from a running relay API.
type SignalAPIRepository interface {
	GetLatest(ctx context.Context) (model.Signal, error)
}

type signalAPIRepository struct {
	httpClient httpclient.HTTPClient
	logger     *logger.Logger
}

func NewSignalAPIRepository(cfg *config.Config, log *logger.Logger) SignalAPIRepository {
	return &signalAPIRepository{
		httpClient: httpclient.New(cfg.Fetcher.BaseURL, cfg.Fetcher.Timeout, fetcherUserAgent),
		logger:     log,
	}
}

func (r *signalAPIRepository) GetLatest(ctx context.Context) (model.Signal, error) {
	var signal model.Signal
	resp, err := r.httpClient.Get(ctx, "/signal", nil, nil, &signal)
	if err != nil {
		return model.Signal{}, fmt.Errorf("failed to fetch signal: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return model.Signal{}, ErrSignalNotFound
	case resp.StatusCode != http.StatusOK:
		r.logger.Error("Signal API returned Non-OK status",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", string(resp.Body)))
		return model.Signal{}, fmt.Errorf("signal api returned status: %d", resp.StatusCode)
	}

	return signal, nil
}
