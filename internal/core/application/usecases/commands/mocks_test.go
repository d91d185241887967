package commands_test

import (
	"context"
	"sync"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/cart"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
)

type MockTx struct{ mock.Mock }

func (m *MockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// cart

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Get(ctx context.Context, userID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(*cart.Cart)
	return c, args.Error(1)
}
func (m *MockCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type MockCartUoW struct{ MockTx }

func (m *MockCartUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

// order

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockOrderUoW struct{ MockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderNotifier struct{ mock.Mock }

func (m *MockOrderNotifier) OrderCreated(ctx context.Context, o *order.Order) {
	m.Called(ctx, o)
}
func (m *MockOrderNotifier) OrderStatusChanged(ctx context.Context, o *order.Order) {
	m.Called(ctx, o)
}

// notification

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepository) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepository) Get(
	ctx context.Context,
	id, userID kernel.UUID,
) (*notification.Notification, error) {
	args := m.Called(ctx, id, userID)
	n, _ := args.Get(0).(*notification.Notification)
	return n, args.Error(1)
}
func (m *MockNotificationRepository) Delete(ctx context.Context, id, userID kernel.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}
func (m *MockNotificationRepository) DeleteAllByUser(ctx context.Context, userID kernel.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockNotificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockNotificationUoW struct{ MockTx }

func (m *MockNotificationUoW) NotificationRepository() ports.NotificationRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationRepository)
}

type MockNotificationUoWFactory struct{ mock.Mock }

func (m *MockNotificationUoWFactory) Create() commands.NotificationUoW {
	args := m.Called()
	return args.Get(0).(commands.NotificationUoW)
}

type MockUnreadCounter struct{ mock.Mock }

func (m *MockUnreadCounter) Get(ctx context.Context, userID kernel.UUID) (int64, bool, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}
func (m *MockUnreadCounter) Set(ctx context.Context, userID kernel.UUID, count int64) error {
	args := m.Called(ctx, userID, count)
	return args.Error(0)
}
func (m *MockUnreadCounter) Invalidate(ctx context.Context, userID kernel.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type fixedNumbers struct {
	mu      sync.Mutex
	numbers []order.Number
}

func (f *fixedNumbers) Next() order.Number {
	f.mu.Lock()
	defer f.mu.Unlock()
	next := f.numbers[0]
	if len(f.numbers) > 1 {
		f.numbers = f.numbers[1:]
	}
	return next
}

// memoryCarts is a compare-and-swap cart store shared by concurrent units of
// work. Each Save checks the version the cart was loaded with.
type memoryCarts struct {
	mu    sync.Mutex
	carts map[kernel.UUID]storedCart
}

type storedCart struct {
	items     []cart.Item
	version   int64
	createdAt time.Time
	updatedAt time.Time
}

func newMemoryCarts() *memoryCarts {
	return &memoryCarts{carts: make(map[kernel.UUID]storedCart)}
}

func (s *memoryCarts) Create() commands.CartUoW {
	return memoryCartUoW{store: s}
}

func (s *memoryCarts) Get(_ context.Context, userID kernel.UUID) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.carts[userID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("cart", userID.String())
	}
	return cart.RestoreCart(userID, stored.items, stored.version, stored.createdAt, stored.updatedAt)
}

func (s *memoryCarts) Save(_ context.Context, c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.carts[c.UserID()]
	if (ok && stored.version != c.Version()) || (!ok && c.Version() != 0) {
		return errs.NewVersionIsInvalidError("cart")
	}
	s.carts[c.UserID()] = storedCart{
		items:     c.Items(),
		version:   c.Version() + 1,
		createdAt: c.CreatedAt(),
		updatedAt: c.UpdatedAt(),
	}
	return nil
}

type memoryCartUoW struct {
	store *memoryCarts
}

func (u memoryCartUoW) Begin(context.Context) error    { return nil }
func (u memoryCartUoW) Commit(context.Context) error   { return nil }
func (u memoryCartUoW) Rollback(context.Context) error { return nil }
func (u memoryCartUoW) CartRepository() ports.CartRepository {
	return u.store
}
