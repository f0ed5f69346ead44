package jobs

import (
	"context"
	"log/slog"

	"kitchenpos/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultMenuAuditSchedule runs the audit at second 0 of every minute.
const DefaultMenuAuditSchedule = "0 * * * * *"

type MenuAuditHandler interface {
	Handle(ctx context.Context, cmd commands.HideMispricedMenusCommand) (int, error)
}

// MenuAuditJob periodically hides displayed menus whose price exceeds the
// current sum of their products.
type MenuAuditJob struct {
	handler  MenuAuditHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewMenuAuditJob creates the job. An empty schedule means DefaultMenuAuditSchedule.
func NewMenuAuditJob(handler MenuAuditHandler, schedule string, logger *slog.Logger) *MenuAuditJob {
	if schedule == "" {
		schedule = DefaultMenuAuditSchedule
	}
	return &MenuAuditJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "menu_audit_job"),
	}
}

// Start registers the audit on its schedule and starts the scheduler.
func (j *MenuAuditJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Menu audit job started", "schedule", j.schedule)
	return nil
}

// Run performs one audit. Errors are logged, the next tick retries.
func (j *MenuAuditJob) Run(ctx context.Context) {
	hidden, err := j.handler.Handle(ctx, commands.NewHideMispricedMenusCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Menu audit job failed", "error", err)
		return
	}
	if hidden > 0 {
		j.logger.InfoContext(ctx, "Hid mispriced menus", "count", hidden)
	}
}

// Stop stops the scheduler and waits for a running audit to finish.
func (j *MenuAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Menu audit job stopped")
}
