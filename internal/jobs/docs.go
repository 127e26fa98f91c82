// Package jobs provides scheduled background tasks for the dispatch engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the job lifecycle.
//
// # Available Jobs
//
// 1. ExpiryJob - Runs every minute to expire jobs whose acceptance window
// closed before any driver accepted them.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(jobRepo, expireHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The expiry job treats a job accepted between the scan and the expiry
// attempt as an expected race and skips it silently. Everything else is
// logged as a system issue.
package jobs
