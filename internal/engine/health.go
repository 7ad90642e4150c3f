package engine

import (
	"context"
	"time"

	"petrack/internal/events"
	"petrack/internal/storage"
)

// DefaultDecayInterval is the reference decay cadence. It is deliberately a
// tunable (Options.DecayInterval / PETRACK_DECAY_INTERVAL); a production
// deployment would run a much slower clock.
const DefaultDecayInterval = 10 * time.Second

// Health returns the current pet health, clamped to [0,100].
func (s *Service) Health(ctx context.Context) (int, error) {
	h, err := s.state.Health(ctx)
	if err != nil {
		return 0, err
	}
	return ClampHealth(h), nil
}

// DecayOnce subtracts one health point, clamped at zero, and broadcasts the
// change.
func (s *Service) DecayOnce(ctx context.Context) (int, error) {
	h, err := s.state.Health(ctx)
	if err != nil {
		return 0, err
	}
	h = ClampHealth(ClampHealth(h) - 1)
	if err := s.state.SetHealth(ctx, h); err != nil {
		return 0, err
	}
	s.publish(events.Event{Type: events.StateChanged, Key: storage.KeyPetHealth})
	return h, nil
}

// DecayLoop ticks the health decay at the configured interval until ctx is
// cancelled. The ticker is stopped on return so teardown never leaks it.
func (s *Service) DecayLoop(ctx context.Context) {
	ticker := time.NewTicker(s.decayInterval)
	defer ticker.Stop()

	s.logger.Debug("health decay started", "interval", s.decayInterval)
	for {
		select {
		case <-ctx.Done():
			s.logger.Debug("health decay stopped")
			return
		case <-ticker.C:
			if _, err := s.DecayOnce(ctx); err != nil {
				s.logger.Error("health decay tick failed", "error", err)
			}
		}
	}
}
