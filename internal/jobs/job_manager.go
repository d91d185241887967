package jobs

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	notificationPurgeJob *NotificationPurgeJob
}

// PurgeSettings configures the notification retention job.
type PurgeSettings struct {
	Schedule  string
	Retention time.Duration
}

func NewJobManager(purgeHandler purgeHandler, purge PurgeSettings, logger *zap.Logger) *JobManager {
	return &JobManager{
		notificationPurgeJob: NewNotificationPurgeJob(purgeHandler, purge.Schedule, purge.Retention, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.notificationPurgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start notification purge job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.notificationPurgeJob.Stop()
}
