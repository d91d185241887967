package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
)

type NotificationRepository interface {
	Add(ctx context.Context, aggregate *notification.Notification) error
	Update(ctx context.Context, aggregate *notification.Notification) error

	// Get returns the notification only if it belongs to userID.
	Get(ctx context.Context, id, userID kernel.UUID) (*notification.Notification, error)

	// Delete removes the notification of userID; a missing or foreign id is an
	// ObjectNotFoundError.
	Delete(ctx context.Context, id, userID kernel.UUID) error

	// DeleteAllByUser removes every notification of userID and reports how many.
	DeleteAllByUser(ctx context.Context, userID kernel.UUID) (int64, error)

	// DeleteReadBefore purges read notifications last touched before cutoff.
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
