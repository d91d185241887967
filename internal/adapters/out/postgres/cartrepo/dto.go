// Package cartrepo persists carts as one row per user with the items in a
// jsonb column and a version column for compare-and-swap saves.
package cartrepo

import (
	"time"

	"laundry/internal/adapters/out/postgres/linedto"
	"laundry/internal/core/domain/model/cart"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting cart aggregates.
type CartDTO struct {
	UserID    uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Items     []CartItemDTO `gorm:"type:jsonb;serializer:json;not null"`
	Version   int64         `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO is one cart item inside the items document.
type CartItemDTO struct {
	ID uuid.UUID `json:"id"`
	linedto.ServiceLineDTO
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// fromDomain maps the cart for storage. The version is left to the caller,
// which writes the next one.
func fromDomain(aggregate *cart.Cart) CartDTO {
	items := make([]CartItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, CartItemDTO{
			ID:             item.ID().Bytes(),
			ServiceLineDTO: linedto.FromDomain(item.Line()),
			CreatedAt:      item.CreatedAt(),
			UpdatedAt:      item.UpdatedAt(),
		})
	}

	return CartDTO{
		UserID:    aggregate.UserID().Bytes(),
		Items:     items,
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

func toDomain(dto CartDTO) (*cart.Cart, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]cart.Item, 0, len(dto.Items))
	for _, raw := range dto.Items {
		id, err := kernel.UUIDFromBytes(raw.ID[:])
		if err != nil {
			return nil, err
		}
		line, err := linedto.ToDomain(raw.ServiceLineDTO)
		if err != nil {
			return nil, err
		}
		item, err := cart.RestoreItem(id, line, raw.CreatedAt, raw.UpdatedAt)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return cart.RestoreCart(userID, items, dto.Version, dto.CreatedAt, dto.UpdatedAt)
}
