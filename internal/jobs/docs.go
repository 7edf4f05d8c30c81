// Package jobs provides scheduled background tasks for the kitchen service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds-resolution schedules).
//
// # Available Jobs
//
// TableReleaseJob clears the order pointer of every table whose order has been
// served or deleted. Order deletion already frees its table in the same
// transaction; the job catches tables left behind by serving, which does not
// touch tables.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(releaseTablesHandler, "0 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed pass is logged and retried on the next tick. A schedule that does not
// parse makes StartAll fail.
package jobs
