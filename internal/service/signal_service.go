package service

import (
	"context"

	"barbellfx-relay/internal/model"
	"barbellfx-relay/internal/repository"
	"barbellfx-relay/pkg/logger"
	"barbellfx-relay/pkg/utils"
)

// SignalNotifier is told about every accepted signal.
type SignalNotifier interface {
	NotifySignal(ctx context.Context, signal model.Signal) error
}

type SignalService interface {
	Submit(ctx context.Context, signal model.Signal) model.Signal
	Latest(ctx context.Context) (model.Signal, bool)
}

type signalService struct {
	log        *logger.Logger
	signalRepo repository.SignalRepository
	notifier   SignalNotifier
}

func NewSignalService(log *logger.Logger, signalRepo repository.SignalRepository, notifier SignalNotifier) SignalService {
	return &signalService{
		log:        log,
		signalRepo: signalRepo,
		notifier:   notifier,
	}
}

// Submit normalizes and stores signal, replacing the previous one, and
// returns what was stored.
func (s *signalService) Submit(ctx context.Context, signal model.Signal) model.Signal {
	normalized, scaled := NormalizePrices(signal)
	if scaled {
		s.log.InfoContext(ctx, "Gold prices normalized",
			logger.StringField("pair", signal.Pair),
			logger.Float64Field("multiplier", GoldScaleMultiplier),
		)
	}

	s.signalRepo.Set(normalized)

	s.log.InfoContext(ctx, "New signal received",
		logger.StringField("pair", normalized.Pair),
		logger.StringField("action", normalized.Action),
		logger.Float64Field("entry_min", normalized.EntryMin),
		logger.Float64Field("entry_max", normalized.EntryMax),
		logger.Float64Field("stop_loss", normalized.StopLoss),
		logger.Float64Field("tp1", normalized.TP1),
		logger.Float64Field("tp2", normalized.TP2),
		logger.Float64Field("tp_full", normalized.TPFull),
		logger.Float64Field("confidence", normalized.Confidence),
		logger.StringField("timestamp", normalized.Timestamp),
	)

	if s.notifier != nil {
		notifyCtx := context.WithoutCancel(ctx)
		utils.GoSafe(s.log, func() {
			if err := s.notifier.NotifySignal(notifyCtx, normalized); err != nil {
				s.log.WarnContext(notifyCtx, "Failed to notify signal", logger.ErrorField(err))
			}
		})
	}

	return normalized
}

func (s *signalService) Latest(ctx context.Context) (model.Signal, bool) {
	return s.signalRepo.Get()
}
