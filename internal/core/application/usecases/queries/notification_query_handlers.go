package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ListNotificationsQueryHandler reads the notifications table.
type ListNotificationsQueryHandler struct {
	db *gorm.DB
}

func NewListNotificationsQueryHandler(db *gorm.DB) ListNotificationsQueryHandler {
	return ListNotificationsQueryHandler{db: db}
}

func (h ListNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListNotificationsQuery,
) ([]NotificationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			order_id,
			type,
			title,
			message,
			read,
			created_at,
			updated_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC, id
	`, query.actor.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]NotificationView, 0)
	for rows.Next() {
		var view NotificationView
		var id, userID uuid.UUID
		var orderID uuid.NullUUID

		err = rows.Scan(
			&id,
			&userID,
			&orderID,
			&view.Type,
			&view.Title,
			&view.Message,
			&view.Read,
			&view.CreatedAt,
			&view.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		if orderID.Valid {
			parsed, idErr := kernel.UUIDFromBytes(orderID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			view.OrderID = &parsed
		}

		notifications = append(notifications, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

// GetUnreadCountQueryHandler answers from the unread counter cache and falls
// back to counting rows. Cache failures never fail the query.
type GetUnreadCountQueryHandler struct {
	db      *gorm.DB
	counter ports.UnreadCounter
	logger  *zap.Logger
}

func NewGetUnreadCountQueryHandler(
	db *gorm.DB,
	counter ports.UnreadCounter,
	logger *zap.Logger,
) GetUnreadCountQueryHandler {
	return GetUnreadCountQueryHandler{
		db:      db,
		counter: counter,
		logger:  logger.With(zap.String("component", "unread_count_query")),
	}
}

func (h GetUnreadCountQueryHandler) Handle(ctx context.Context, query GetUnreadCountQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}
	userID := query.actor.UserID()

	count, ok, err := h.counter.Get(ctx, userID)
	if err != nil {
		h.logger.Warn("unread counter was not read", zap.Stringer("userId", userID), zap.Error(err))
	} else if ok {
		return count, nil
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM notifications
		WHERE user_id = ? AND read = false
	`, userID.Bytes()).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	if setErr := h.counter.Set(ctx, userID, count); setErr != nil {
		h.logger.Warn("unread counter was not stored", zap.Stringer("userId", userID), zap.Error(setErr))
	}

	return count, nil
}
