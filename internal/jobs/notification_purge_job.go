package jobs

import (
	"context"
	"time"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type purgeHandler interface {
	Handle(ctx context.Context, cmd commands.PurgeReadNotificationsCommand) (int64, error)
}

// NotificationPurgeJob deletes read notifications older than the retention
// period on a cron schedule.
type NotificationPurgeJob struct {
	handler   purgeHandler
	schedule  string
	retention time.Duration
	timeout   time.Duration
	cron      *cron.Cron
	logger    *zap.Logger
}

// NewNotificationPurgeJob creates a purge job. The schedule takes a seconds
// field, for example "0 0 3 * * *" for 03:00 every day.
func NewNotificationPurgeJob(
	handler purgeHandler,
	schedule string,
	retention time.Duration,
	logger *zap.Logger,
) *NotificationPurgeJob {
	return &NotificationPurgeJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		timeout:   time.Minute,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With(zap.String("component", "notification_purge_job")),
	}
}

// Start registers the job and starts the scheduler.
func (j *NotificationPurgeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("notification purge job started",
		zap.String("schedule", j.schedule),
		zap.Duration("retention", j.retention),
	)
	return nil
}

// Stop stops the scheduler and waits for a running purge to finish.
func (j *NotificationPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("notification purge job stopped")
}

func (j *NotificationPurgeJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	cmd, err := commands.NewPurgeReadNotificationsCommand(j.retention)
	if err != nil {
		j.logger.Error("notification purge job misconfigured", zap.Error(err))
		return
	}

	purged, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.Error("notification purge job failed", zap.Error(err))
		return
	}
	if purged > 0 {
		j.logger.Info("read notifications purged", zap.Int64("count", purged))
	}
}
