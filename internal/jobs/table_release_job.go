package jobs

import (
	"context"
	"log/slog"

	"kitchen/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultTableReleaseSchedule runs the release at the top of every minute.
const DefaultTableReleaseSchedule = "0 * * * * *"

// TableReleaser clears table pointers to served or deleted orders.
type TableReleaser interface {
	Handle(ctx context.Context, cmd commands.ReleaseTablesCommand) (int64, error)
}

// TableReleaseJob periodically frees tables whose order has been served or removed,
// so the floor plan never shows a table as taken by a finished order.
type TableReleaseJob struct {
	handler  TableReleaser
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewTableReleaseJob creates the job. schedule is a six-field cron expression
// (seconds first); an empty schedule means DefaultTableReleaseSchedule.
func NewTableReleaseJob(handler TableReleaser, schedule string, logger *slog.Logger) *TableReleaseJob {
	if schedule == "" {
		schedule = DefaultTableReleaseSchedule
	}
	return &TableReleaseJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "table_release_job"),
	}
}

// Start schedules the job. It fails when the schedule does not parse.
func (j *TableReleaseJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Table release job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single release pass and logs its outcome.
func (j *TableReleaseJob) RunOnce(ctx context.Context) {
	released, err := j.handler.Handle(ctx, commands.NewReleaseTablesCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Table release job failed", "error", err)
		return
	}
	if released > 0 {
		j.logger.InfoContext(ctx, "Released tables", "count", released)
	}
}

// Stop stops scheduling and waits for a running pass to finish.
func (j *TableReleaseJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Table release job stopped")
}

// ValidateSchedule reports whether schedule is a cron expression the job accepts.
func ValidateSchedule(schedule string) error {
	parser := cron.NewParser(
		cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
	)
	_, err := parser.Parse(schedule)
	return err
}
