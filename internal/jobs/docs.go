// Package jobs provides scheduled background tasks for the station.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and run on their own
// goroutines. Every job goes through a command handler or the store, so
// they serialize with the operator's commands on the store mutex.
//
// # Available Jobs
//
// 1. MembershipRefreshJob - recomputes every user's tier (default "@daily")
// 2. AutosaveJob - flushes all collections to disk (default "@every 5m")
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(recomputeHandler, store, jobs.Schedules{
//		MembershipRefresh: "@daily",
//		Autosave:          "@every 5m",
//	}, logger)
//	if err != nil {
//		return err
//	}
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules accept five- or six-field cron syntax (seconds first) and the
// "@every <duration>" and "@daily"-style descriptors. An empty schedule
// disables the job. A run that is still going when the next one is due is
// skipped.
package jobs
