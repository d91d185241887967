package http

import (
	"time"

	"laundry/internal/core/domain/model/catalog"

	"github.com/shopspring/decimal"
)

type lineItemRequest struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type serviceLineRequest struct {
	Service    string            `json:"service"`
	Items      []lineItemRequest `json:"items"`
	TotalPrice *decimal.Decimal  `json:"totalPrice,omitempty"`
}

func (r serviceLineRequest) toInput() catalog.LineInput {
	items := make([]catalog.ItemInput, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, catalog.ItemInput{Name: item.Name, Quantity: item.Quantity, Price: item.Price})
	}
	return catalog.LineInput{Service: r.Service, Items: items, TotalPrice: r.TotalPrice}
}

type addCartItemRequest struct {
	serviceLineRequest
	IsEdit    bool    `json:"isEdit"`
	ServiceID *string `json:"serviceId,omitempty"`
}

type updateQuantityRequest struct {
	ServiceID string `json:"serviceId"`
	Service   string `json:"service,omitempty"`
	ItemName  string `json:"itemName"`
	Quantity  int    `json:"quantity"`
}

type createOrderRequest struct {
	DeliveryMethod    string               `json:"deliveryMethod"`
	PaymentMethod     string               `json:"paymentMethod"`
	Items             []serviceLineRequest `json:"items"`
	DeliveryAddress   string               `json:"deliveryAddress,omitempty"`
	Notes             string               `json:"notes,omitempty"`
	DeliveryFee       decimal.Decimal      `json:"deliveryFee"`
	Subtotal          *decimal.Decimal     `json:"subtotal,omitempty"`
	TotalAmount       decimal.Decimal      `json:"totalAmount"`
	EstimatedDoneDate *time.Time           `json:"estimatedDoneDate,omitempty"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}
