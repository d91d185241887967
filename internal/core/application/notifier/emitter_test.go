package notifier_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"laundry/internal/core/application/notifier"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockNotificationRepository struct {
	mock.Mock
	ports.NotificationRepository
}

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) NotificationRepository() ports.NotificationRepository {
	return m.Called().Get(0).(ports.NotificationRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.NotificationUoW {
	return m.Called().Get(0).(commands.NotificationUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, event ports.OrderEvent) error {
	return m.Called(ctx, event).Error(0)
}

type MockCounter struct {
	mock.Mock
	ports.UnreadCounter
}

func (m *MockCounter) Invalidate(ctx context.Context, userID kernel.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

func completedCashOrder(t *testing.T) *order.Order {
	t.Helper()
	kaos, err := catalog.NewLineItem("Kaos", 2, kernel.MustMoney(5000))
	require.NoError(t, err)
	line, err := catalog.NewServiceLine(catalog.Ironing, []catalog.LineItem{kaos})
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "ORD1759309200000042", order.Draft{
		UserID:         kernel.NewUUID(),
		Items:          []catalog.ServiceLine{line},
		DeliveryMethod: order.Direct,
		PaymentMethod:  order.Cash,
		DeliveryFee:    kernel.MustMoney(2000),
		TotalAmount:    kernel.MustMoney(12000),
	}, time.Now())
	require.NoError(t, err)
	require.NoError(t, o.Accept(time.Now()))
	require.NoError(t, o.Complete(time.Now()))
	return o
}

func TestEmitter_OrderStatusChanged(t *testing.T) {
	ctx := t.Context()
	o := completedCashOrder(t)

	repo := new(MockNotificationRepository)
	repo.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
		return n.UserID().IsEqual(o.UserID()) && n.OrderID() != nil && !n.IsRead()
	})).Return(nil).Twice()

	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("NotificationRepository").Return(repo).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	counter := new(MockCounter)
	counter.On("Invalidate", ctx, o.UserID()).Return(nil).Once()

	publisher := new(MockPublisher)
	publisher.On("Publish", ctx, mock.MatchedBy(func(e ports.OrderEvent) bool {
		return e.Name == ports.EventOrderStatusChanged && e.Status == "completed" && e.OrderNumber == "ORD1759309200000042"
	})).Return(nil).Once()

	notifier.NewEmitter(factory, publisher, counter, zap.NewNop()).OrderStatusChanged(ctx, o)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	counter.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestEmitter_SwallowsFailures(t *testing.T) {
	ctx := t.Context()
	o := completedCashOrder(t)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(errors.New("db down")).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	counter := new(MockCounter)
	publisher := new(MockPublisher)
	publisher.On("Publish", ctx, mock.Anything).Return(errors.New("broker down")).Once()

	core, logs := observer.New(zapcore.WarnLevel)

	assert.NotPanics(t, func() {
		notifier.NewEmitter(factory, publisher, counter, zap.New(core)).OrderCreated(ctx, o)
	})

	counter.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "notification was not stored", logs.All()[0].Message)
	assert.Equal(t, "order event was not published", logs.All()[1].Message)
}
