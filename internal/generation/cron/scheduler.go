package cronjob

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/realty-decks/deck-backend/internal/logging"
)

// Sweeper fails jobs whose worker disappeared.
type Sweeper interface {
	SweepStale(ctx context.Context, staleAfter time.Duration) (int, error)
}

type Scheduler struct {
	cron       *cron.Cron
	sweeper    Sweeper
	spec       string
	staleAfter time.Duration
}

func NewScheduler(sweeper Sweeper, spec string, staleAfter time.Duration) *Scheduler {
	return &Scheduler{
		cron:       cron.New(cron.WithSeconds()),
		sweeper:    sweeper,
		spec:       spec,
		staleAfter: staleAfter,
	}
}

// Start registers the stale job sweep and starts the scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	logging.L().Sugar().Infow("cron scheduler started", "spec", s.spec, "stale_after", s.staleAfter)
	return nil
}

// Stop halts scheduling and returns a context that is done once a running
// sweep has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := logging.NewLogger(ctx)
	n, err := s.sweeper.SweepStale(ctx, s.staleAfter)
	if err != nil {
		logger.LogError("sweep_stale_jobs", err)
		return
	}
	if n > 0 {
		logger.LogWarnf("sweep_stale_jobs", "marked %d stale jobs failed", n)
	}
}
