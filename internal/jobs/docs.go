// Package jobs provides scheduled background tasks for the laundry service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and are managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(purgeHandler, jobs.PurgeSettings{
//		Schedule:  "0 0 3 * * *",
//		Retention: 30 * 24 * time.Hour,
//	}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// NotificationPurgeJob deletes read notifications whose last update is older
// than the retention period. Unread notifications are never purged.
//
// # Error Handling
//
// A failed purge is logged and retried on the next tick. A schedule that does
// not parse fails StartAll.
package jobs
