package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"barbellfx-relay/internal/model"
	"barbellfx-relay/internal/repository"
	"barbellfx-relay/pkg/logger"
	"barbellfx-relay/pkg/mt5"

	"github.com/robfig/cron/v3"
)

// FormatSignalLine renders signal as the single comma separated line the
// Expert Advisor parses:
//
//	pair,action,entry_min,entry_max,stop_loss,tp1,tp2,tp_full,confidence,setup,timestamp
//
// Commas in setup become semicolons and line breaks in any text field
// become spaces; the format has no escaping. A signal without a pair
// renders as an empty line, which the EA reads as "no signal".
func FormatSignalLine(signal model.Signal) string {
	if signal.Pair == "" {
		return ""
	}

	fields := []string{
		singleLine(signal.Pair),
		singleLine(signal.Action),
		formatPrice(signal.EntryMin),
		formatPrice(signal.EntryMax),
		formatPrice(signal.StopLoss),
		formatPrice(signal.TP1),
		formatPrice(signal.TP2),
		formatPrice(signal.TPFull),
		formatPrice(signal.Confidence),
		strings.ReplaceAll(singleLine(signal.Setup), ",", ";"),
		singleLine(signal.Timestamp),
	}
	return strings.Join(fields, ",")
}

var lineBreakReplacer = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func singleLine(s string) string {
	return lineBreakReplacer.Replace(s)
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type SignalFetcherService interface {
	// Start polls until ctx is cancelled.
	Start(ctx context.Context) error
	// Sync fetches the signal once and rewrites the file.
	Sync(ctx context.Context) error
	FilePath() string
}

type signalFetcherService struct {
	log      *logger.Logger
	apiRepo  repository.SignalAPIRepository
	filePath string
	interval time.Duration

	mu       sync.Mutex
	lastLine string
}

func NewSignalFetcherService(log *logger.Logger, apiRepo repository.SignalAPIRepository, filePath string, interval time.Duration) SignalFetcherService {
	return &signalFetcherService{
		log:      log,
		apiRepo:  apiRepo,
		filePath: filePath,
		interval: interval,
	}
}

func (s *signalFetcherService) FilePath() string {
	return s.filePath
}

func (s *signalFetcherService) Sync(ctx context.Context) error {
	line := ""
	signal, fetchErr := s.apiRepo.GetLatest(ctx)
	switch {
	case fetchErr == nil:
		line = FormatSignalLine(signal)
	case errors.Is(fetchErr, repository.ErrSignalNotFound):
		fetchErr = nil
	default:
		// An unreachable API clears the file so the EA stops acting on a
		// signal it can no longer confirm.
	}

	if err := mt5.WriteFile(s.filePath, line); err != nil {
		return fmt.Errorf("failed to write signal file: %w", err)
	}

	s.mu.Lock()
	changed := line != s.lastLine
	s.lastLine = line
	s.mu.Unlock()

	if changed {
		if line == "" {
			s.log.InfoContext(ctx, "Signal cleared", logger.StringField("file", s.filePath))
		} else {
			s.log.InfoContext(ctx, "Signal updated",
				logger.StringField("pair", signal.Pair),
				logger.StringField("action", signal.Action),
				logger.StringField("file", s.filePath),
			)
		}
	}
	return fetchErr
}

func (s *signalFetcherService) Start(ctx context.Context) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	schedule := fmt.Sprintf("@every %s", s.interval)
	if _, err := c.AddFunc(schedule, func() { s.syncLogged(ctx) }); err != nil {
		return fmt.Errorf("failed to schedule signal fetcher: %w", err)
	}

	s.log.InfoContext(ctx, "Starting signal fetcher",
		logger.StringField("file", s.filePath),
		logger.StringField("interval", s.interval.String()),
	)
	s.syncLogged(ctx)
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	s.log.Info("Signal fetcher stopped")
	return nil
}

func (s *signalFetcherService) syncLogged(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if err := s.Sync(ctx); err != nil {
		s.log.ErrorContext(ctx, "Signal fetcher sync failed", logger.ErrorField(err))
	}
}
