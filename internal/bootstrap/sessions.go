package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/coursework-hub/instructor-dashboard/internal/dashboard/session"
)

type SessionOptions struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
	SweepSchedule string
}

// Sessions is the opened session store plus whatever must be closed with it.
type Sessions struct {
	Store   session.Store
	sweeper *session.Sweeper
	closeFn func() error
}

// OpenSessions uses Redis when an address is configured and the in-memory
// store otherwise. The in-memory store gets a sweeper; Redis expires keys
// on its own.
func OpenSessions(ctx context.Context, opt SessionOptions) (*Sessions, error) {
	if opt.RedisAddr != "" {
		client, err := OpenRedis(ctx, RedisOptions{Addr: opt.RedisAddr, Password: opt.RedisPassword, DB: opt.RedisDB})
		if err != nil {
			return nil, err
		}
		slog.Info("session store: redis", "addr", opt.RedisAddr)
		return &Sessions{Store: session.NewRedisStore(client, opt.TTL), closeFn: client.Close}, nil
	}

	mem := session.NewMemoryStore(opt.TTL)
	sweeper, err := session.NewSweeper(mem, opt.SweepSchedule)
	if err != nil {
		return nil, err
	}
	sweeper.Start()
	slog.Info("session store: memory", "sweep", opt.SweepSchedule)
	return &Sessions{Store: mem, sweeper: sweeper}, nil
}

func (s *Sessions) Close(ctx context.Context) error {
	if s.sweeper != nil {
		s.sweeper.Stop(ctx)
	}
	if s.closeFn != nil {
		return s.closeFn()
	}
	return nil
}
