package cartrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/cartrepo"
	"laundry/internal/core/domain/model/cart"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type CartRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *cartrepo.GormCartRepository
	tracker    *MockAggregateTracker
}

func (suite *CartRepositoryIntegrationTestSuite) SetupSuite() {
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
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&cartrepo.CartDTO{}))
}

func (suite *CartRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE carts").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = cartrepo.NewGormCartRepository(suite.db, suite.tracker)
}

func (suite *CartRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CartRepositoryIntegrationTestSuite) newLine(service catalog.ServiceType, name string) catalog.ServiceLine {
	item, err := catalog.NewLineItem(name, 2, kernel.MustMoney(5000))
	suite.Require().NoError(err)
	line, err := catalog.NewServiceLine(service, []catalog.LineItem{item})
	suite.Require().NoError(err)
	return line
}

func (suite *CartRepositoryIntegrationTestSuite) TestGet_Missing_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CartRepositoryIntegrationTestSuite) TestSave_NewCart_RoundTrip() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	now := time.Now().UTC().Truncate(time.Millisecond)

	c, err := cart.NewCart(userID, now)
	suite.Require().NoError(err)
	added, err := c.AddItem(suite.newLine(catalog.Ironing, "Kaos"), now)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Save(ctx, c))

	loaded, err := suite.repository.Get(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), loaded.Version())
	suite.Require().Len(loaded.Items(), 1)
	suite.True(loaded.Items()[0].ID().IsEqual(added.ID()))
	suite.Equal(catalog.Ironing, loaded.Items()[0].Service())
	suite.True(loaded.TotalAmount().IsEqual(kernel.MustMoney(10000)))
}

func (suite *CartRepositoryIntegrationTestSuite) TestSave_StaleVersion_Conflict() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	now := time.Now().UTC()

	c, err := cart.NewCart(userID, now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, c))

	first, err := suite.repository.Get(ctx, userID)
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, userID)
	suite.Require().NoError(err)

	_, err = first.AddItem(suite.newLine(catalog.Ironing, "Kaos"), now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, first))

	_, err = second.AddItem(suite.newLine(catalog.ShoeCleaning, "Sneakers"), now)
	suite.Require().NoError(err)
	err = suite.repository.Save(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	loaded, err := suite.repository.Get(ctx, userID)
	suite.Require().NoError(err)
	suite.Equal(int64(2), loaded.Version())
	suite.Require().Len(loaded.Items(), 1)
	suite.Equal(catalog.Ironing, loaded.Items()[0].Service())
}

func (suite *CartRepositoryIntegrationTestSuite) TestSave_ConcurrentCreate_Conflict() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	first, err := cart.NewCart(userID, time.Now())
	suite.Require().NoError(err)
	second, err := cart.NewCart(userID, time.Now())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Save(ctx, first))
	err = suite.repository.Save(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)
}

func (suite *CartRepositoryIntegrationTestSuite) TestSave_ClearedCart_KeepsRow() {
	ctx := context.Background()
	userID := kernel.NewUUID()
	now := time.Now().UTC()

	c, err := cart.NewCart(userID, now)
	suite.Require().NoError(err)
	_, err = c.AddItem(suite.newLine(catalog.Bedding, "Sprei"), now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, c))

	loaded, err := suite.repository.Get(ctx, userID)
	suite.Require().NoError(err)
	loaded.Clear(now)
	suite.Require().NoError(suite.repository.Save(ctx, loaded))

	cleared, err := suite.repository.Get(ctx, userID)
	suite.Require().NoError(err)
	suite.True(cleared.IsEmpty())
}

func TestCartRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CartRepositoryIntegrationTestSuite))
}
