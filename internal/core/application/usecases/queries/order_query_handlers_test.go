package queries_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/identity"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type OrderQueryHandlersTestSuite struct {
	postgresSuite
}

func (suite *OrderQueryHandlersTestSuite) TestGetOrder_Owner_ReturnsOrder() {
	ctx := context.Background()
	owner := suite.actor("")
	stored := suite.addOrder(owner.UserID(), "ORD1759309200000001", time.Now().UTC())

	query, err := queries.NewGetOrderQuery(owner, stored.ID())
	suite.Require().NoError(err)
	view, err := queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(stored.ID(), view.ID)
	suite.Equal("ORD1759309200000001", view.OrderNumber)
	suite.Equal("pending", view.Status)
	suite.Equal("Dalam Proses", view.StatusLabel)
	suite.Equal("direct", view.DeliveryMethod)
	suite.Equal("cash", view.PaymentMethod)
	suite.Empty(view.DeliveryAddress)
	suite.True(view.Subtotal.Equal(decimal.NewFromInt(10000)))
	suite.Require().Len(view.Items, 1)
	suite.Equal("Setrika", view.Items[0].Service)
	suite.Equal(2, view.Items[0].Items[0].Quantity)
}

func (suite *OrderQueryHandlersTestSuite) TestGetOrder_ForeignCustomer_ReturnsNotFound() {
	stored := suite.addOrder(suite.actor("").UserID(), "ORD1759309200000002", time.Now().UTC())

	query, err := queries.NewGetOrderQuery(suite.actor(""), stored.ID())
	suite.Require().NoError(err)
	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueryHandlersTestSuite) TestGetOrder_Staff_SeesAnyOrder() {
	stored := suite.addOrder(suite.actor("").UserID(), "ORD1759309200000003", time.Now().UTC())

	query, err := queries.NewGetOrderQuery(suite.actor(identity.RoleStaff), stored.ID())
	suite.Require().NoError(err)
	view, err := queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(stored.ID(), view.ID)
}

func (suite *OrderQueryHandlersTestSuite) TestListOrders_NewestFirstAndScoped() {
	owner := suite.actor("")
	base := time.Now().UTC().Add(-time.Hour)
	older := suite.addOrder(owner.UserID(), "ORD1759309200000010", base)
	newer := suite.addOrder(owner.UserID(), "ORD1759309200000011", base.Add(time.Minute))
	suite.addOrder(suite.actor("").UserID(), "ORD1759309200000012", base.Add(2*time.Minute))

	query, err := queries.NewListOrdersQuery(owner)
	suite.Require().NoError(err)
	views, err := queries.NewListOrdersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(views, 2)
	suite.Equal(newer.ID(), views[0].ID)
	suite.Equal(older.ID(), views[1].ID)
}

func (suite *OrderQueryHandlersTestSuite) TestListOrders_None_ReturnsEmptySlice() {
	query, err := queries.NewListOrdersQuery(suite.actor(""))
	suite.Require().NoError(err)

	views, err := queries.NewListOrdersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(views)
	suite.Empty(views)
}

func (suite *OrderQueryHandlersTestSuite) TestListAllOrders_JoinsOwners() {
	known := suite.actor("")
	suite.Require().NoError(suite.db.Exec(
		"INSERT INTO users (id, name, email) VALUES (?, ?, ?)",
		known.UserID().Bytes(), "Siti", "siti@example.com",
	).Error)

	base := time.Now().UTC().Add(-time.Hour)
	withOwner := suite.addOrder(known.UserID(), "ORD1759309200000020", base)
	orphan := suite.addOrder(suite.actor("").UserID(), "ORD1759309200000021", base.Add(time.Minute))

	query, err := queries.NewListAllOrdersQuery(suite.actor(identity.RoleAdmin))
	suite.Require().NoError(err)
	views, err := queries.NewListAllOrdersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(views, 2)
	suite.Equal(orphan.ID(), views[0].ID)
	suite.Nil(views[0].User)
	suite.Equal(withOwner.ID(), views[1].ID)
	suite.Require().NotNil(views[1].User)
	suite.Equal("Siti", views[1].User.Name)
	suite.Equal("siti@example.com", views[1].User.Email)
}

func (suite *OrderQueryHandlersTestSuite) TestListAllOrders_WithoutUsersTable_ReturnsNullOwners() {
	suite.Require().NoError(suite.db.Exec("ALTER TABLE users RENAME TO users_elsewhere").Error)
	defer func() {
		suite.Require().NoError(suite.db.Exec("ALTER TABLE users_elsewhere RENAME TO users").Error)
	}()

	placed := suite.addOrder(suite.actor("").UserID(), "ORD1759309200000022", time.Now().UTC())

	query, err := queries.NewListAllOrdersQuery(suite.actor(identity.RoleAdmin))
	suite.Require().NoError(err)
	views, err := queries.NewListAllOrdersQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(views, 1)
	suite.Equal(placed.ID(), views[0].ID)
	suite.Nil(views[0].User)
}

func TestOrderQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueryHandlersTestSuite))
}
