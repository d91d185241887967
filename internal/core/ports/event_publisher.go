package ports

import (
	"context"
	"time"
)

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the message other services receive about an order. Name is
// also the routing key.
type OrderEvent struct {
	Name        string    `json:"event"`
	OrderID     string    `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	UserID      string    `json:"userId"`
	Status      string    `json:"status"`
	TotalAmount string    `json:"totalAmount"`
	OccurredAt  time.Time `json:"occurredAt"`
}

type EventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}
