package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"barbellfx-relay/config"
	"barbellfx-relay/internal/model"
	"barbellfx-relay/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPIRepo(t *testing.T, handler http.HandlerFunc) SignalAPIRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{Fetcher: config.Fetcher{BaseURL: srv.URL, Timeout: time.Second}}
	return NewSignalAPIRepository(cfg, logger.NewNop())
}

func TestSignalAPIRepository_GetLatest(t *testing.T) {
	repo := newTestAPIRepo(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/signal", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pair":"XAUUSD","action":"BUY","entry_min":1950,"entry_max":1955,
			"stop_loss":1940,"tp1":1970,"tp2":0,"tp_full":1990,"confidence":80,"setup":"OB retest","timestamp":"t"}`))
	})

	got, err := repo.GetLatest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Signal{
		Pair: "XAUUSD", Action: "BUY", EntryMin: 1950, EntryMax: 1955, StopLoss: 1940,
		TP1: 1970, TP2: 0, TPFull: 1990, Confidence: 80, Setup: "OB retest", Timestamp: "t",
	}, got)
}

func TestSignalAPIRepository_NotFound(t *testing.T) {
	repo := newTestAPIRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":404,"message":"no signal yet"}`))
	})

	_, err := repo.GetLatest(context.Background())
	assert.ErrorIs(t, err, ErrSignalNotFound)
}

func TestSignalAPIRepository_ServerError(t *testing.T) {
	repo := newTestAPIRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := repo.GetLatest(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSignalNotFound)
}
