package http

import (
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/cart"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/notification"
	"laundry/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// envelope is embedded in every response body.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func ok(message string) envelope {
	return envelope{Success: true, Message: message}
}

type cartResponse struct {
	envelope
	Items       []queries.CartItemView `json:"items"`
	TotalAmount decimal.Decimal        `json:"totalAmount"`
}

type orderResponse struct {
	envelope
	Order queries.OrderView `json:"order"`
}

type ordersResponse struct {
	envelope
	Orders []queries.OrderView `json:"orders"`
}

type adminOrdersResponse struct {
	envelope
	Orders []queries.AdminOrderView `json:"orders"`
}

type notificationResponse struct {
	envelope
	Notification queries.NotificationView `json:"notification"`
}

type notificationsResponse struct {
	envelope
	Notifications []queries.NotificationView `json:"notifications"`
}

type unreadCountResponse struct {
	envelope
	Count int64 `json:"count"`
}

type deletedResponse struct {
	envelope
	DeletedCount int64 `json:"deletedCount"`
}

func presentLine(line catalog.ServiceLine) queries.ServiceLineView {
	items := make([]queries.LineItemView, 0, len(line.Items()))
	for _, item := range line.Items() {
		items = append(items, queries.LineItemView{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price().Amount(),
		})
	}
	return queries.ServiceLineView{
		Service:    line.Service().String(),
		Items:      items,
		TotalPrice: line.TotalPrice().Amount(),
	}
}

func presentCart(message string, c *cart.Cart) cartResponse {
	items := make([]queries.CartItemView, 0, len(c.Items()))
	for _, item := range c.Items() {
		items = append(items, queries.CartItemView{
			ID:              item.ID(),
			ServiceLineView: presentLine(item.Line()),
			CreatedAt:       item.CreatedAt(),
			UpdatedAt:       item.UpdatedAt(),
		})
	}
	return cartResponse{
		envelope:    ok(message),
		Items:       items,
		TotalAmount: c.TotalAmount().Amount(),
	}
}

func presentOrder(o *order.Order) queries.OrderView {
	lines := make([]queries.ServiceLineView, 0, len(o.Items()))
	for _, line := range o.Items() {
		lines = append(lines, presentLine(line))
	}
	return queries.OrderView{
		ID:                o.ID(),
		OrderNumber:       o.Number().String(),
		UserID:            o.UserID(),
		Items:             lines,
		Subtotal:          o.Subtotal().Amount(),
		DeliveryFee:       o.DeliveryFee().Amount(),
		TotalAmount:       o.TotalAmount().Amount(),
		DeliveryMethod:    o.DeliveryMethod().String(),
		PaymentMethod:     o.PaymentMethod().String(),
		DeliveryAddress:   o.DeliveryAddress(),
		Notes:             o.Notes(),
		Status:            o.Status().String(),
		StatusLabel:       o.Status().Label(),
		EstimatedDoneDate: o.EstimatedDoneDate(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
	}
}

func presentNotification(n *notification.Notification) queries.NotificationView {
	return queries.NotificationView{
		ID:        n.ID(),
		UserID:    n.UserID(),
		OrderID:   n.OrderID(),
		Type:      n.Type().String(),
		Title:     n.Title(),
		Message:   n.Message(),
		Read:      n.IsRead(),
		CreatedAt: n.CreatedAt(),
		UpdatedAt: n.UpdatedAt(),
	}
}
