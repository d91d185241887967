package commands

import (
	"context"
	"errors"
	"time"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrPurgeReadNotificationsCommandIsNotConstructed = errors.New(
		"PurgeReadNotificationsCommand must be created via NewPurgeReadNotificationsCommand constructor",
	)
)

// PurgeReadNotificationsCommand removes read notifications older than the
// retention period. It is triggered by the retention job.
type PurgeReadNotificationsCommand struct {
	retention time.Duration

	guard guard.ConstructorGuard
}

func NewPurgeReadNotificationsCommand(retention time.Duration) (PurgeReadNotificationsCommand, error) {
	if retention <= 0 {
		return PurgeReadNotificationsCommand{}, errs.NewValueIsInvalidError("retention")
	}

	return PurgeReadNotificationsCommand{retention: retention, guard: guard.NewConstructorGuard()}, nil
}

func (c PurgeReadNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeReadNotificationsCommandIsNotConstructed)
}

func (c PurgeReadNotificationsCommand) Retention() time.Duration {
	return c.retention
}

type PurgeReadNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewPurgeReadNotificationsCommandHandler(uowFactory NotificationUoWFactory) PurgeReadNotificationsCommandHandler {
	return PurgeReadNotificationsCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of purged notifications. Cached unread counts stay
// valid because only read notifications are removed.
func (h PurgeReadNotificationsCommandHandler) Handle(ctx context.Context, cmd PurgeReadNotificationsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	purged, err := uow.NotificationRepository().DeleteReadBefore(ctx, time.Now().UTC().Add(-cmd.Retention()))
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
