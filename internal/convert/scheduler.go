package convert

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type rateRefresher interface {
	RefreshRates(ctx context.Context) error
}

// Scheduler periodically re-fetches the exchange rate snapshot so that
// steady-state currency requests rarely hit the synchronous-fetch path.
// A failed run is retried on the next tick.
type Scheduler struct {
	refresher rateRefresher
	interval  time.Duration
	// -----
	sched gocron.Scheduler
}

func NewScheduler(refresher rateRefresher, interval time.Duration) *Scheduler {
	return &Scheduler{refresher: refresher, interval: interval}
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if refreshErr := s.refresher.RefreshRates(jobCtx); refreshErr != nil {
			logrus.Errorf("Snapshot refresh job %s failed: %v", execID, refreshErr)
			return
		}
		logrus.Debugf("Snapshot refresh job %s completed", execID)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}
