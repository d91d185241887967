// Package notifier delivers order lifecycle news: a stored notification for
// the owner and an event on the message broker. Delivery is best effort, so
// every failure is logged and swallowed.
package notifier

import (
	"context"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

var _ commands.OrderNotifier = (*Emitter)(nil)

// Emitter implements commands.OrderNotifier.
//
// Example:
//
//	emitter := notifier.NewEmitter(uowFactory, publisher, counter, logger)
//	emitter.OrderStatusChanged(ctx, accepted) // never fails the caller
type Emitter struct {
	uowFactory commands.NotificationUoWFactory
	publisher  ports.EventPublisher
	counter    ports.UnreadCounter
	composer   services.NotificationComposer
	logger     *zap.Logger
}

func NewEmitter(
	uowFactory commands.NotificationUoWFactory,
	publisher ports.EventPublisher,
	counter ports.UnreadCounter,
	logger *zap.Logger,
) *Emitter {
	return &Emitter{
		uowFactory: uowFactory,
		publisher:  publisher,
		counter:    counter,
		composer:   services.NewNotificationComposer(),
		logger:     logger.With(zap.String("component", "notifier")),
	}
}

func (e *Emitter) OrderCreated(ctx context.Context, o *order.Order) {
	e.emit(ctx, o, ports.EventOrderCreated, e.composer.OrderCreated(o))
}

// OrderStatusChanged picks the wording from the order's new status.
func (e *Emitter) OrderStatusChanged(ctx context.Context, o *order.Order) {
	e.emit(ctx, o, ports.EventOrderStatusChanged, e.composer.ForStatus(o))
}

func (e *Emitter) emit(ctx context.Context, o *order.Order, event string, messages []services.Message) {
	log := e.logger.With(
		zap.String("event", event),
		zap.String("orderId", o.ID().String()),
		zap.String("userId", o.UserID().String()),
	)

	if len(messages) > 0 {
		if err := e.store(ctx, o, messages); err != nil {
			log.Warn("notification was not stored", zap.Error(err))
		} else if err = e.counter.Invalidate(ctx, o.UserID()); err != nil {
			log.Warn("unread counter was not invalidated", zap.Error(err))
		}
	}

	if err := e.publisher.Publish(ctx, ports.OrderEvent{
		Name:        event,
		OrderID:     o.ID().String(),
		OrderNumber: o.Number().String(),
		UserID:      o.UserID().String(),
		Status:      o.Status().String(),
		TotalAmount: o.TotalAmount().String(),
		OccurredAt:  o.UpdatedAt(),
	}); err != nil {
		log.Warn("order event was not published", zap.Error(err))
	}
}

func (e *Emitter) store(ctx context.Context, o *order.Order, messages []services.Message) error {
	uow := e.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return errors.Wrap(err, "begin")
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderID := o.ID()
	now := time.Now().UTC()
	repo := uow.NotificationRepository()
	for _, msg := range messages {
		n, err := notification.NewNotification(kernel.NewUUID(), o.UserID(), &orderID, msg.Type, msg.Title, msg.Body, now)
		if err != nil {
			return errors.Wrap(err, "compose")
		}
		if err = repo.Add(ctx, n); err != nil {
			return errors.Wrap(err, "add")
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return errors.Wrap(err, "commit")
	}
	return nil
}
