// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"laundry/internal/adapters/out/postgres/linedto"
	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// orderNumberIndex is the unique index guarding order numbers.
const orderNumberIndex = "idx_orders_order_number"

// OrderDTO represents the database structure for persisting order aggregates.
// Status and methods are stored by their canonical names so raw queries can
// filter and return them directly.
type OrderDTO struct {
	ID                uuid.UUID                `gorm:"type:uuid;primaryKey"`
	OrderNumber       string                   `gorm:"type:varchar(32);not null;uniqueIndex:idx_orders_order_number"`
	UserID            uuid.UUID                `gorm:"type:uuid;not null;index"`
	Items             []linedto.ServiceLineDTO `gorm:"type:jsonb;serializer:json;not null"`
	Subtotal          decimal.Decimal          `gorm:"type:numeric(14,2);not null"`
	DeliveryFee       decimal.Decimal          `gorm:"type:numeric(14,2);not null"`
	TotalAmount       decimal.Decimal          `gorm:"type:numeric(14,2);not null"`
	DeliveryMethod    string                   `gorm:"type:varchar(16);not null"`
	PaymentMethod     string                   `gorm:"type:varchar(16);not null"`
	DeliveryAddress   string                   `gorm:"type:text"`
	Notes             string                   `gorm:"type:text"`
	Status            string                   `gorm:"type:varchar(16);not null;index"`
	EstimatedDoneDate time.Time
	CreatedAt         time.Time `gorm:"index"`
	UpdatedAt         time.Time
	Version           int64 `gorm:"not null;default:1"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]linedto.ServiceLineDTO, 0, len(aggregate.Items()))
	for _, line := range aggregate.Items() {
		items = append(items, linedto.FromDomain(line))
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		OrderNumber:       aggregate.Number().String(),
		UserID:            aggregate.UserID().Bytes(),
		Items:             items,
		Subtotal:          aggregate.Subtotal().Amount(),
		DeliveryFee:       aggregate.DeliveryFee().Amount(),
		TotalAmount:       aggregate.TotalAmount().Amount(),
		DeliveryMethod:    aggregate.DeliveryMethod().String(),
		PaymentMethod:     aggregate.PaymentMethod().String(),
		DeliveryAddress:   aggregate.DeliveryAddress(),
		Notes:             aggregate.Notes(),
		Status:            aggregate.Status().String(),
		EstimatedDoneDate: aggregate.EstimatedDoneDate(),
		CreatedAt:         aggregate.CreatedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
		Version:           aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	number, err := order.NewNumber(dto.OrderNumber)
	if err != nil {
		return nil, err
	}

	lines := make([]catalog.ServiceLine, 0, len(dto.Items))
	for _, raw := range dto.Items {
		line, lineErr := linedto.ToDomain(raw)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	amounts := make([]kernel.Money, 0, 3)
	for _, amount := range []decimal.Decimal{dto.Subtotal, dto.DeliveryFee, dto.TotalAmount} {
		money, moneyErr := kernel.NewMoney(amount)
		if moneyErr != nil {
			return nil, moneyErr
		}
		amounts = append(amounts, money)
	}

	deliveryMethod, err := order.ParseDeliveryMethod(dto.DeliveryMethod)
	if err != nil {
		return nil, err
	}
	paymentMethod, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                id,
		Number:            number,
		UserID:            userID,
		Items:             lines,
		Subtotal:          amounts[0],
		DeliveryFee:       amounts[1],
		TotalAmount:       amounts[2],
		DeliveryMethod:    deliveryMethod,
		PaymentMethod:     paymentMethod,
		DeliveryAddress:   dto.DeliveryAddress,
		Notes:             dto.Notes,
		Status:            status,
		EstimatedDoneDate: dto.EstimatedDoneDate,
		CreatedAt:         dto.CreatedAt,
		UpdatedAt:         dto.UpdatedAt,
		Version:           dto.Version,
	})
}
