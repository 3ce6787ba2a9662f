package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Amitjang/XAlISS-SERVER/internal/schedule"
	"github.com/Amitjang/XAlISS-SERVER/internal/service/reconcileservice"
)

type Reconciler interface {
	RunMonthlyReconciliation(ctx context.Context) ([]reconcileservice.Outcome, error)
	RunForMonth(ctx context.Context, day time.Time) ([]reconcileservice.Outcome, error)
}

// MonthEndJob runs reconciliation when today is the last day of the month.
// The cron spec fires on days 28-31 so this check decides. Each run first
// revisits the previous month so steps that failed there are retried.
type MonthEndJob struct {
	reconciler Reconciler
	loc        *time.Location
	now        func() time.Time
}

func NewMonthEndJob(reconciler Reconciler, loc *time.Location) *MonthEndJob {
	if loc == nil {
		loc = time.UTC
	}
	return &MonthEndJob{
		reconciler: reconciler,
		loc:        loc,
		now:        time.Now,
	}
}

func (j *MonthEndJob) Name() string { return "month_end" }

func (j *MonthEndJob) Run(ctx context.Context) error {
	today := schedule.StartOfDay(j.now().In(j.loc))
	if !schedule.IsLastDayOfMonth(today) {
		return nil
	}

	previous := schedule.StartOfMonth(today).AddDate(0, 0, -1)
	outcomes, err := j.reconciler.RunForMonth(ctx, previous)
	if err != nil {
		zap.L().Warn("previous month retry failed", zap.String("month_end", previous.Format("2006-01-02")), zap.Error(err))
	} else {
		logOutcomes("previous month retry finished", outcomes)
	}

	outcomes, err = j.reconciler.RunMonthlyReconciliation(ctx)
	if err != nil {
		return err
	}
	logOutcomes("month-end job finished", outcomes)
	return nil
}

func logOutcomes(msg string, outcomes []reconcileservice.Outcome) {
	failed := 0
	for _, o := range outcomes {
		if o.FeeStatus == reconcileservice.StatusFailed || o.BonusStatus == reconcileservice.StatusFailed {
			failed++
		}
	}
	zap.L().Info(msg, zap.Int("contracts", len(outcomes)), zap.Int("failed", failed))
}
