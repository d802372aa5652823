package jobs

import (
	"fmt"
	"log/slog"

	"station/internal/core/ports"
)

// Schedules holds one cron spec per job. Empty disables the job.
type Schedules struct {
	MembershipRefresh string
	Autosave          string
}

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	jobs    []job
	started []job
}

// NewJobManager validates the schedules up front so a typo fails at
// startup rather than on the first tick.
func NewJobManager(
	recompute MembershipRecomputer,
	flusher ports.Flusher,
	schedules Schedules,
	logger *slog.Logger,
) (*JobManager, error) {
	jm := &JobManager{}
	if schedules.MembershipRefresh != "" {
		if _, err := specParser.Parse(schedules.MembershipRefresh); err != nil {
			return nil, fmt.Errorf("invalid membership refresh schedule %q: %w", schedules.MembershipRefresh, err)
		}
		jm.jobs = append(jm.jobs, NewMembershipRefreshJob(recompute, schedules.MembershipRefresh, logger))
	}
	if schedules.Autosave != "" {
		if _, err := specParser.Parse(schedules.Autosave); err != nil {
			return nil, fmt.Errorf("invalid autosave schedule %q: %w", schedules.Autosave, err)
		}
		jm.jobs = append(jm.jobs, NewAutosaveJob(flusher, schedules.Autosave, logger))
	}

	return jm, nil
}

// StartAll starts all scheduled jobs. If one fails, the ones already
// started are stopped.
func (jm *JobManager) StartAll() error {
	for _, j := range jm.jobs {
		if err := j.Start(); err != nil {
			jm.StopAll()
			return fmt.Errorf("failed to start job: %w", err)
		}
		jm.started = append(jm.started, j)
	}
	return nil
}

// StopAll stops the started jobs and waits for running ones to return.
func (jm *JobManager) StopAll() {
	for _, j := range jm.started {
		j.Stop()
	}
	jm.started = nil
}

// Len reports how many jobs are configured.
func (jm *JobManager) Len() int {
	return len(jm.jobs)
}
