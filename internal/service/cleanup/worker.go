package cleanup

import (
	"context"
	"time"

	"github.com/iamasit07/4-in-a-row/engine/internal/service/game"
	"github.com/rs/zerolog"
)

type Worker struct {
	SessionManager *game.SessionManager
	MaxIdle        time.Duration
	Interval       time.Duration
	logger         zerolog.Logger
}

const defaultInterval = 5 * time.Minute

// NewWorker falls back to a five minute interval when interval is not positive.
func NewWorker(sm *game.SessionManager, maxIdle, interval time.Duration, logger zerolog.Logger) *Worker {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Worker{
		SessionManager: sm,
		MaxIdle:        maxIdle,
		Interval:       interval,
		logger:         logger.With().Str("component", "cleanup").Logger(),
	}
}

// Start runs a cleanup immediately and then every Interval until ctx is done.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info().Dur("interval", w.Interval).Msg("background worker started")
	w.runCleanup()

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("background worker stopped")
			return
		case <-ticker.C:
			w.runCleanup()
		}
	}
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup() {
	if removed := w.SessionManager.CleanupIdleSessions(w.MaxIdle); removed > 0 {
		w.logger.Info().Int("removed", removed).Msg("removed idle sessions")
	}
}
