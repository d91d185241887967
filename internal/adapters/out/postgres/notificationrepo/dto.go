package notificationrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

// NotificationDTO represents the database structure for persisting notifications.
type NotificationDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	OrderID   *uuid.UUID `gorm:"type:uuid"`
	Type      string     `gorm:"size:16;not null"`
	Title     string     `gorm:"not null"`
	Message   string     `gorm:"type:text;not null"`
	Read      bool       `gorm:"not null;default:false"`
	CreatedAt time.Time  `gorm:"index"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(aggregate *notification.Notification) NotificationDTO {
	dto := NotificationDTO{
		ID:        aggregate.ID().Bytes(),
		UserID:    aggregate.UserID().Bytes(),
		Type:      aggregate.Type().String(),
		Title:     aggregate.Title(),
		Message:   aggregate.Message(),
		Read:      aggregate.IsRead(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
	if orderID := aggregate.OrderID(); orderID != nil {
		raw := orderID.Bytes()
		dto.OrderID = &raw
	}
	return dto
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		parsed, err := kernel.UUIDFromBytes(dto.OrderID[:])
		if err != nil {
			return nil, err
		}
		orderID = &parsed
	}

	typ, err := notification.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}

	return notification.RestoreNotification(
		id, userID, orderID, typ, dto.Title, dto.Message, dto.Read, dto.CreatedAt, dto.UpdatedAt,
	)
}
