package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemView is one priced garment inside a service line.
type LineItemView struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// ServiceLineView is a service with its items, as shown to clients.
type ServiceLineView struct {
	Service    string          `json:"service"`
	Items      []LineItemView  `json:"items"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// CartItemView is a cart entry; its ID is the serviceId used by the cart routes.
type CartItemView struct {
	ID kernel.UUID `json:"id"`
	ServiceLineView
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrderView is the client representation of an order. Status carries the
// canonical name, StatusLabel the Indonesian text.
type OrderView struct {
	ID                kernel.UUID       `json:"id"`
	OrderNumber       string            `json:"orderNumber"`
	UserID            kernel.UUID       `json:"userId"`
	Items             []ServiceLineView `json:"items"`
	Subtotal          decimal.Decimal   `json:"subtotal"`
	DeliveryFee       decimal.Decimal   `json:"deliveryFee"`
	TotalAmount       decimal.Decimal   `json:"totalAmount"`
	DeliveryMethod    string            `json:"deliveryMethod"`
	PaymentMethod     string            `json:"paymentMethod"`
	DeliveryAddress   string            `json:"deliveryAddress,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	Status            string            `json:"status"`
	StatusLabel       string            `json:"statusLabel"`
	EstimatedDoneDate time.Time         `json:"estimatedDoneDate"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}

// NotificationView is the client representation of a notification.
type NotificationView struct {
	ID        kernel.UUID  `json:"id"`
	UserID    kernel.UUID  `json:"userId"`
	OrderID   *kernel.UUID `json:"orderId,omitempty"`
	Type      string       `json:"type"`
	Title     string       `json:"title"`
	Message   string       `json:"message"`
	Read      bool         `json:"read"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// orderColumns is the select list scanned by scanOrder, prefixed by the
// orders table alias o.
const orderColumns = `
	o.id,
	o.order_number,
	o.user_id,
	o.items,
	o.subtotal,
	o.delivery_fee,
	o.total_amount,
	o.delivery_method,
	o.payment_method,
	o.delivery_address,
	o.notes,
	o.status,
	o.estimated_done_date,
	o.created_at,
	o.updated_at`

// scanOrder reads orderColumns plus any extra destinations appended after them.
func scanOrder(rows *sql.Rows, extra ...any) (OrderView, error) {
	var view OrderView
	var id, userID uuid.UUID
	var items []byte
	var deliveryAddress, notes sql.NullString

	dest := []any{
		&id,
		&view.OrderNumber,
		&userID,
		&items,
		&view.Subtotal,
		&view.DeliveryFee,
		&view.TotalAmount,
		&view.DeliveryMethod,
		&view.PaymentMethod,
		&deliveryAddress,
		&notes,
		&view.Status,
		&view.EstimatedDoneDate,
		&view.CreatedAt,
		&view.UpdatedAt,
	}
	if err := rows.Scan(append(dest, extra...)...); err != nil {
		return OrderView{}, err
	}

	var err error
	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, err
	}
	if view.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return OrderView{}, err
	}
	if view.Items, err = decodeLines(items); err != nil {
		return OrderView{}, err
	}
	view.DeliveryAddress = deliveryAddress.String
	view.Notes = notes.String

	if status, parseErr := order.ParseStatus(view.Status); parseErr == nil {
		view.StatusLabel = status.Label()
	}

	return view, nil
}

func decodeLines(raw []byte) ([]ServiceLineView, error) {
	lines := make([]ServiceLineView, 0)
	if len(raw) == 0 {
		return lines, nil
	}
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}
