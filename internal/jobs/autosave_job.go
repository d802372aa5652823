package jobs

import (
	"context"
	"log/slog"

	"station/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// AutosaveJob flushes the store periodically so a crash loses at most one
// interval of work.
type AutosaveJob struct {
	flusher  ports.Flusher
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewAutosaveJob(flusher ports.Flusher, schedule string, logger *slog.Logger) *AutosaveJob {
	logger = logger.With("component", "autosave_job")
	return &AutosaveJob{
		flusher:  flusher,
		schedule: schedule,
		cron:     newScheduler(logger),
		logger:   logger,
	}
}

func (j *AutosaveJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Autosave job started", "schedule", j.schedule)
	return nil
}

// Run flushes once. A failed flush is logged and retried on the next tick.
func (j *AutosaveJob) Run(ctx context.Context) {
	if err := j.flusher.Flush(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Autosave failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Autosave done")
}

func (j *AutosaveJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Autosave job stopped")
}
