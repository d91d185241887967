package queries

import (
	"context"
	"database/sql"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order from the orders table.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError both for a missing order and for an
// order owned by someone else.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		WHERE o.id = ? AND (o.user_id = ? OR ?)
	`, query.orderID.Bytes(), query.actor.UserID().Bytes(), query.actor.IsStaff()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderView{}, err
		}
		return OrderView{}, errs.NewObjectNotFoundError("order", query.orderID.String())
	}

	return scanOrder(rows)
}

// ListOrdersQueryHandler lists a user's orders.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders o
		WHERE o.user_id = ?
		ORDER BY o.created_at DESC, o.order_number DESC
	`, query.actor.UserID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		view, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// usersTable belongs to the auth service.
const usersTable = "users"

// ListAllOrdersQueryHandler lists all orders joined with the users table of
// the auth service when it shares this database. Without that table every
// order comes back with a null owner.
type ListAllOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListAllOrdersQueryHandler(db *gorm.DB) ListAllOrdersQueryHandler {
	return ListAllOrdersQueryHandler{db: db}
}

func (h ListAllOrdersQueryHandler) Handle(ctx context.Context, query ListAllOrdersQuery) ([]AdminOrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	owners := `LEFT JOIN users u ON u.id = o.user_id`
	ownerColumns := `u.id, u.name, u.email`
	if !db.Migrator().HasTable(usersTable) {
		owners = ""
		ownerColumns = `NULL::uuid, NULL::text, NULL::text`
	}

	rows, err := db.Raw(`
		SELECT ` + orderColumns + `, ` + ownerColumns + `
		FROM orders o
		` + owners + `
		ORDER BY o.created_at DESC, o.order_number DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]AdminOrderView, 0)
	for rows.Next() {
		var ownerID uuid.NullUUID
		var name, email sql.NullString

		view, scanErr := scanOrder(rows, &ownerID, &name, &email)
		if scanErr != nil {
			return nil, scanErr
		}

		adminView := AdminOrderView{OrderView: view}
		if ownerID.Valid {
			id, idErr := kernel.UUIDFromBytes(ownerID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			adminView.User = &OwnerView{ID: id, Name: name.String, Email: email.String}
		}
		orders = append(orders, adminView)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
