package jobs

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Amitjang/XAlISS-SERVER/internal/domain"
)

//go:generate mockgen -source=duecollections.go -destination=mock_duecollections.go -package=jobs

type PendingLister interface {
	PendingCollections(ctx context.Context, today time.Time) ([]domain.Contract, error)
}

type AgentFinder interface {
	FindAgent(ctx context.Context, id int64) (*domain.Agent, error)
}

type Pusher interface {
	Push(ctx context.Context, n *domain.Notification) error
}

// DueCollectionsJob reminds every agent of the collections due today.
type DueCollectionsJob struct {
	collections PendingLister
	agents      AgentFinder
	notifier    Pusher
	workerPool  WorkerPoolI
	inFlight    sync.Map
	now         func() time.Time
}

func NewDueCollectionsJob(collections PendingLister, agents AgentFinder, notifier Pusher, workerPool WorkerPoolI) *DueCollectionsJob {
	return &DueCollectionsJob{
		collections: collections,
		agents:      agents,
		notifier:    notifier,
		workerPool:  workerPool,
		now:         time.Now,
	}
}

func (j *DueCollectionsJob) Name() string { return "due_collections" }

func (j *DueCollectionsJob) Run(ctx context.Context) error {
	contracts, err := j.collections.PendingCollections(ctx, j.now())
	if err != nil {
		return fmt.Errorf("list pending collections: %w", err)
	}

	var (
		g    errgroup.Group
		done sync.WaitGroup
	)
	for _, c := range contracts {
		c := c

		if _, loaded := j.inFlight.LoadOrStore(c.ID, struct{}{}); loaded {
			continue
		}

		done.Add(1)
		g.Go(func() error {
			err := j.workerPool.AddTask(ctx, func() error {
				defer done.Done()
				defer j.inFlight.Delete(c.ID)
				return j.notify(ctx, c)
			})
			if err != nil {
				done.Done()
				j.inFlight.Delete(c.ID)
				return err
			}
			return nil
		})
	}

	err = g.Wait()
	done.Wait()
	zap.L().Info("due collection reminders dispatched", zap.Int("contracts", len(contracts)))
	return err
}

func (j *DueCollectionsJob) notify(ctx context.Context, c domain.Contract) error {
	agent, err := j.agents.FindAgent(ctx, c.AgentID)
	if err != nil {
		return fmt.Errorf("find agent %d: %w", c.AgentID, err)
	}
	if !agent.CanReceivePush() {
		zap.L().Warn("agent has no device registered, reminder skipped",
			zap.Int64("agent_id", agent.ID),
			zap.Int64("contract_id", c.ID),
		)
		return nil
	}

	n := &domain.Notification{
		Recipient: domain.AgentParty(agent.ID),
		Title:     fmt.Sprintf("Today collection of: %sFR", c.Amount.String()),
		Body:      reminderBody(c),
		Data: map[string]string{
			"contract_id": strconv.FormatInt(c.ID, 10),
			"user_id":     strconv.FormatInt(c.UserID, 10),
		},
		DeviceToken: agent.DeviceToken,
		DeviceType:  agent.DeviceType,
	}
	return j.notifier.Push(ctx, n)
}

func reminderBody(c domain.Contract) string {
	body := fmt.Sprintf("Collect %sFR", c.Amount.String())
	if c.Address != "" {
		body += " from: " + c.Address
	}
	return body
}
