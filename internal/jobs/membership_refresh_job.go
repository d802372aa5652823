package jobs

import (
	"context"
	"log/slog"

	"station/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// MembershipRecomputer runs one membership pass.
type MembershipRecomputer interface {
	Handle(ctx context.Context, cmd commands.RecomputeMembershipsCommand) (int, error)
}

// MembershipRefreshJob applies promotions and demotions without waiting for
// the operator to ask.
type MembershipRefreshJob struct {
	handler  MembershipRecomputer
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewMembershipRefreshJob(handler MembershipRecomputer, schedule string, logger *slog.Logger) *MembershipRefreshJob {
	logger = logger.With("component", "membership_refresh_job")
	return &MembershipRefreshJob{
		handler:  handler,
		schedule: schedule,
		cron:     newScheduler(logger),
		logger:   logger,
	}
}

func (j *MembershipRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Membership refresh job started", "schedule", j.schedule)
	return nil
}

// Run performs a single pass.
func (j *MembershipRefreshJob) Run(ctx context.Context) {
	changed, err := j.handler.Handle(ctx, commands.NewRecomputeMembershipsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Membership refresh failed", "error", err)
		return
	}
	if changed > 0 {
		j.logger.InfoContext(ctx, "Memberships refreshed", "changed", changed)
	}
}

// Stop waits for a running pass to finish.
func (j *MembershipRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Membership refresh job stopped")
}
