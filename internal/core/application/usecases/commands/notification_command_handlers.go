package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"go.uber.org/zap"
)

// notificationWriter runs one notification change in a transaction and drops
// the caller's cached unread count afterwards. A cache failure is only logged.
type notificationWriter struct {
	uowFactory NotificationUoWFactory
	counter    ports.UnreadCounter
	logger     *zap.Logger
}

func newNotificationWriter(
	uowFactory NotificationUoWFactory,
	counter ports.UnreadCounter,
	logger *zap.Logger,
) notificationWriter {
	return notificationWriter{
		uowFactory: uowFactory,
		counter:    counter,
		logger:     logger.With(zap.String("component", "notifications")),
	}
}

func (w notificationWriter) write(
	ctx context.Context,
	userID kernel.UUID,
	change func(repo ports.NotificationRepository) error,
) error {
	uow := w.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := change(uow.NotificationRepository()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	if err := w.counter.Invalidate(ctx, userID); err != nil {
		w.logger.Warn("unread counter was not invalidated",
			zap.String("userId", userID.String()), zap.Error(err))
	}
	return nil
}

// MarkNotificationReadCommandHandler marks one of the caller's notifications
// as read. Marking twice is harmless.
type MarkNotificationReadCommandHandler struct {
	writer notificationWriter
}

func NewMarkNotificationReadCommandHandler(
	uowFactory NotificationUoWFactory,
	counter ports.UnreadCounter,
	logger *zap.Logger,
) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{writer: newNotificationWriter(uowFactory, counter, logger)}
}

func (h MarkNotificationReadCommandHandler) Handle(
	ctx context.Context,
	cmd NotificationCommand,
) (*notification.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	userID := cmd.Actor().UserID()
	var marked *notification.Notification
	err := h.writer.write(ctx, userID, func(repo ports.NotificationRepository) error {
		n, err := repo.Get(ctx, cmd.NotificationID(), userID)
		if err != nil {
			return err
		}
		n.MarkRead(time.Now().UTC())
		if err = repo.Update(ctx, n); err != nil {
			return err
		}
		marked = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	return marked, nil
}

type DeleteNotificationCommandHandler struct {
	writer notificationWriter
}

func NewDeleteNotificationCommandHandler(
	uowFactory NotificationUoWFactory,
	counter ports.UnreadCounter,
	logger *zap.Logger,
) DeleteNotificationCommandHandler {
	return DeleteNotificationCommandHandler{writer: newNotificationWriter(uowFactory, counter, logger)}
}

// Handle returns ObjectNotFoundError for a missing or foreign notification.
func (h DeleteNotificationCommandHandler) Handle(ctx context.Context, cmd NotificationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	userID := cmd.Actor().UserID()
	return h.writer.write(ctx, userID, func(repo ports.NotificationRepository) error {
		return repo.Delete(ctx, cmd.NotificationID(), userID)
	})
}

type DeleteAllNotificationsCommandHandler struct {
	writer notificationWriter
}

func NewDeleteAllNotificationsCommandHandler(
	uowFactory NotificationUoWFactory,
	counter ports.UnreadCounter,
	logger *zap.Logger,
) DeleteAllNotificationsCommandHandler {
	return DeleteAllNotificationsCommandHandler{writer: newNotificationWriter(uowFactory, counter, logger)}
}

// Handle reports how many notifications were removed. Having nothing to delete
// is an ObjectNotFoundError.
func (h DeleteAllNotificationsCommandHandler) Handle(ctx context.Context, cmd DeleteAllNotificationsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	userID := cmd.Actor().UserID()
	var deleted int64
	err := h.writer.write(ctx, userID, func(repo ports.NotificationRepository) error {
		count, err := repo.DeleteAllByUser(ctx, userID)
		if err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("notifications", userID.String())
		}
		deleted = count
		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}
