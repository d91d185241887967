package queries_test

import (
	"context"
	"time"

	"laundry/internal/adapters/out/postgres/cartrepo"
	"laundry/internal/adapters/out/postgres/notificationrepo"
	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/identity"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// postgresSuite starts one container per suite and migrates every table the
// queries read, including a users table standing in for the auth service.
type postgresSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (s *postgresSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	err = db.AutoMigrate(&cartrepo.CartDTO{}, &orderrepo.OrderDTO{}, &notificationrepo.NotificationDTO{})
	s.Require().NoError(err)
	err = db.Exec(`CREATE TABLE IF NOT EXISTS users (id uuid PRIMARY KEY, name text NOT NULL, email text NOT NULL)`).Error
	s.Require().NoError(err)
}

func (s *postgresSuite) SetupTest() {
	err := s.db.Exec("TRUNCATE TABLE carts, orders, notifications, users").Error
	s.Require().NoError(err)
}

func (s *postgresSuite) TearDownSuite() {
	if s.container != nil {
		err := s.container.Terminate(context.Background())
		s.Require().NoError(err)
	}
}

func (s *postgresSuite) actor(role string) identity.Actor {
	actor, err := identity.NewActor(kernel.NewUUID(), role)
	s.Require().NoError(err)
	return actor
}

func (s *postgresSuite) line(service catalog.ServiceType, name string, quantity int, price int64) catalog.ServiceLine {
	item, err := catalog.NewLineItem(name, quantity, kernel.MustMoney(price))
	s.Require().NoError(err)
	line, err := catalog.NewServiceLine(service, []catalog.LineItem{item})
	s.Require().NoError(err)
	return line
}

// addOrder stores a direct cash order of 10000 created at createdAt.
func (s *postgresSuite) addOrder(userID kernel.UUID, number order.Number, createdAt time.Time) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), number, order.Draft{
		UserID:         userID,
		Items:          []catalog.ServiceLine{s.line(catalog.Ironing, "Kaos", 2, 5000)},
		DeliveryMethod: order.Direct,
		PaymentMethod:  order.Cash,
		DeliveryFee:    kernel.ZeroMoney(),
		TotalAmount:    kernel.MustMoney(10000),
	}, createdAt)
	s.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(s.db, noopTracker{})
	s.Require().NoError(repo.Add(context.Background(), o))
	return o
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// MockUnreadCounter is a mock implementation of ports.UnreadCounter.
type MockUnreadCounter struct {
	mock.Mock
}

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
