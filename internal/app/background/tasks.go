package background

import (
	"context"
	"log/slog"
	"time"
)

// PeriodicTask is a named unit of recurring work driven by a ticker.
type PeriodicTask interface {
	Name() string
	Run(ctx context.Context) error
}

type scheduledTask struct {
	task   PeriodicTask
	period time.Duration
}

// BackgroundTasks runs registered periodic tasks until the context is
// cancelled.
type BackgroundTasks struct {
	tasks []scheduledTask
}

func NewBackgroundTasks() *BackgroundTasks {
	return &BackgroundTasks{}
}

func (bt *BackgroundTasks) Register(task PeriodicTask, period time.Duration) {
	bt.tasks = append(bt.tasks, scheduledTask{task: task, period: period})
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	for _, scheduled := range bt.tasks {
		go bt.runLoop(ctx, scheduled)
	}
}

func (bt *BackgroundTasks) runLoop(ctx context.Context, scheduled scheduledTask) {
	ticker := time.NewTicker(scheduled.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := scheduled.task.Run(ctx); err != nil {
				slog.Error("periodic task failed", "task", scheduled.task.Name(), "error", err.Error())
			}
		}
	}
}
