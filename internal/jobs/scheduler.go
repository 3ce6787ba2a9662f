package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Amitjang/XAlISS-SERVER/pkg/metrics"
)

type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler runs jobs on cron specs in the configured time zone.
type Scheduler struct {
	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
}

func NewScheduler(loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	cronLogger := cron.PrintfLogger(zap.NewStdLog(zap.L()))
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc), cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger))),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Scheduler) Register(spec string, job Job) error {
	if _, err := s.cron.AddFunc(spec, func() { s.run(job) }); err != nil {
		zap.L().Error("failed to schedule job", zap.String("job", job.Name()), zap.String("schedule", spec), zap.Error(err))
		return err
	}
	zap.L().Info("scheduled job", zap.String("job", job.Name()), zap.String("schedule", spec))
	return nil
}

func (s *Scheduler) run(job Job) {
	started := time.Now()
	err := job.Run(s.ctx)
	result := "ok"
	if err != nil {
		result = "error"
		zap.L().Error("job failed", zap.String("job", job.Name()), zap.Error(err))
	}
	metrics.ObserveJob(job.Name(), result, time.Since(started))
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and cancels the running ones once ctx expires.
// It returns when all running jobs have finished.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.cancel()
		<-done.Done()
	}
	s.cancel()
}
