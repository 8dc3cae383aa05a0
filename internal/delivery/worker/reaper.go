// Package worker hosts the background deliveries that run beside the HTTP
// server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"bazaar/internal/delivery"
	"bazaar/internal/domain/repository"

	"go.uber.org/fx"
)

// defaultReapInterval bounds how long an expired session row can linger.
// Lookups already treat expired rows as absent; the reaper only frees memory.
const defaultReapInterval = 10 * time.Minute

// sessionReaper periodically deletes expired session rows.
type sessionReaper struct {
	sessionRepo repository.SessionRepository
	logger      *slog.Logger
	interval    time.Duration
	stop        chan struct{}
	done        chan struct{}
}

// ReaperParams holds dependencies for the session reaper, injected by Fx.
type ReaperParams struct {
	fx.In
	fx.Lifecycle

	SessionRepo repository.SessionRepository
	Logger      *slog.Logger
}

// NewSessionReaper creates the background session reaper delivery.
func NewSessionReaper(params ReaperParams) (delivery.Delivery, error) {
	reaper := &sessionReaper{
		sessionRepo: params.SessionRepo,
		logger:      params.Logger,
		interval:    defaultReapInterval,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: reaper.shutdown,
	})

	return reaper, nil
}

// Serve runs the reap loop until the delivery is stopped.
func (r *sessionReaper) Serve(ctx context.Context) error {
	defer close(r.done)

	r.logger.Info("Starting session reaper", slog.Duration("interval", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.reap(ctx)
		case <-r.stop:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (r *sessionReaper) reap(ctx context.Context) {
	removed, err := r.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		r.logger.Error("Failed to reap expired sessions", slog.Any("error", err))

		return
	}

	if removed > 0 {
		r.logger.Debug("Reaped expired sessions", slog.Int("removed", removed))
	}
}

func (r *sessionReaper) shutdown(ctx context.Context) error {
	r.logger.Info("Shutting down session reaper")
	close(r.stop)

	select {
	case <-r.done:
	case <-ctx.Done():
	}

	return nil
}
