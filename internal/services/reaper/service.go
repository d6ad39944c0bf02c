package reaper

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"batepapo/internal/dependencies/clock"
	"batepapo/internal/model"
	"batepapo/internal/storage"
)

// Config holds the reaper cadence.
//
// The sweep interval is deliberately 1.5x the staleness threshold:
// eviction is slack, not exact real-time.
type Config struct {
	SweepInterval      time.Duration
	StalenessThreshold time.Duration
}

// DefaultConfig returns the reference cadence
func DefaultConfig() Config {
	return Config{
		SweepInterval:      15 * time.Second,
		StalenessThreshold: 10 * time.Second,
	}
}

// Service periodically demotes stale participants to departed, recording
// a broadcast status message for each eviction. It shares only the store
// with request handlers and never blocks them.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	cfg     Config
	logger  *slog.Logger
}

// New creates a new reaper service. Zero config fields fall back to
// the defaults independently, so a partial Config never yields a zero
// staleness threshold.
func New(storage storage.Storage, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	defaults := DefaultConfig()
	if cfg.SweepInterval == 0 {
		cfg.SweepInterval = defaults.SweepInterval
	}
	if cfg.StalenessThreshold == 0 {
		cfg.StalenessThreshold = defaults.StalenessThreshold
	}
	return &Service{
		storage: storage,
		clock:   clock,
		cfg:     cfg,
		logger:  logger,
	}
}

// Run sweeps on a fixed cadence until ctx is cancelled. Intended to run
// as a single coordinator goroutine alongside the HTTP server.
func (s *Service) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	s.logger.Info("reaper started",
		slog.Duration("sweep_interval", s.cfg.SweepInterval),
		slog.Duration("staleness_threshold", s.cfg.StalenessThreshold),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reaper stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep evicts every participant whose last heartbeat is older than the
// staleness threshold. Failures are per-participant: one bad eviction is
// logged and the rest of the sweep proceeds.
func (s *Service) Sweep(ctx context.Context) {
	participants, err := s.storage.ListParticipants(ctx)
	if err != nil {
		s.logger.Error("sweep: listing participants", slog.String("error", err.Error()))
		return
	}

	now := s.clock.Now()
	for _, p := range participants {
		if now.Sub(p.LastSeenAt) <= s.cfg.StalenessThreshold {
			continue
		}

		if err := s.storage.DeleteParticipant(ctx, p.Name); err != nil {
			s.logger.Error("sweep: evicting participant",
				slog.String("participant", p.Name),
				slog.String("error", err.Error()),
			)
			continue
		}

		left := &model.Message{
			ID:   uuid.NewString(),
			From: p.Name,
			To:   model.BroadcastTarget,
			Text: "left",
			Type: model.MessageTypeStatus,
			Time: now.Format(model.TimeLayout),
		}
		if err := s.storage.AppendMessage(ctx, left); err != nil {
			s.logger.Error("sweep: recording departure",
				slog.String("participant", p.Name),
				slog.String("error", err.Error()),
			)
			continue
		}

		s.logger.Info("participant evicted", slog.String("participant", p.Name))
	}
}
