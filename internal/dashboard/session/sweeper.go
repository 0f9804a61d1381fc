package session

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/coursework-hub/instructor-dashboard/internal/logging"
)

// Sweepable is a store that needs expired entries reclaimed explicitly.
type Sweepable interface {
	Sweep() int
}

// Sweeper runs Sweep on a cron schedule such as "@every 10m".
type Sweeper struct {
	cron  *cron.Cron
	store Sweepable
}

func NewSweeper(store Sweepable, schedule string) (*Sweeper, error) {
	s := &Sweeper{cron: cron.New(), store: store}
	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}
	return s, nil
}

func (s *Sweeper) run() {
	removed := s.store.Sweep()
	if removed > 0 {
		logging.NewLogger(context.Background()).LogInfof("session_sweep", "evicted %d expired sessions", removed)
	}
}

func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}
