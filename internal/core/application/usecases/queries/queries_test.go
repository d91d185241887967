package queries_test

import (
	"testing"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/identity"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	require.ErrorIs(t, queries.GetCartQuery{}.Validate(), queries.ErrGetCartQueryIsNotConstructed)
	require.ErrorIs(t, queries.GetOrderQuery{}.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
	require.ErrorIs(t, queries.ListOrdersQuery{}.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	require.ErrorIs(t, queries.ListAllOrdersQuery{}.Validate(), queries.ErrListAllOrdersQueryIsNotConstructed)
	require.ErrorIs(t, queries.ListNotificationsQuery{}.Validate(), queries.ErrListNotificationsQueryIsNotConstructed)
	require.ErrorIs(t, queries.GetUnreadCountQuery{}.Validate(), queries.ErrGetUnreadCountQueryIsNotConstructed)
}

func TestQueries_RequireActor(t *testing.T) {
	_, err := queries.NewGetCartQuery(identity.Actor{})
	require.ErrorIs(t, err, errs.ErrUnauthenticated)

	_, err = queries.NewListOrdersQuery(identity.Actor{})
	require.ErrorIs(t, err, errs.ErrUnauthenticated)

	_, err = queries.NewListNotificationsQuery(identity.Actor{})
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestNewGetOrderQuery(t *testing.T) {
	actor, err := identity.NewActor(kernel.NewUUID(), "")
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		query, err := queries.NewGetOrderQuery(actor, kernel.NewUUID())
		require.NoError(t, err)
		assert.NoError(t, query.Validate())
	})

	t.Run("missing order id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(actor, kernel.UUID{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewListAllOrdersQuery_RequiresStaff(t *testing.T) {
	customer, err := identity.NewActor(kernel.NewUUID(), identity.RoleCustomer)
	require.NoError(t, err)
	admin, err := identity.NewActor(kernel.NewUUID(), identity.RoleAdmin)
	require.NoError(t, err)

	_, err = queries.NewListAllOrdersQuery(customer)
	require.ErrorIs(t, err, errs.ErrForbidden)

	query, err := queries.NewListAllOrdersQuery(admin)
	require.NoError(t, err)
	assert.NoError(t, query.Validate())
}
