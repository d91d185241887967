package queries

import (
	"context"
	"encoding/json"
	"time"

	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads carts straight from the carts table.
type GetCartQueryHandler struct {
	db *gorm.DB
}

func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// storedCartItem mirrors one element of carts.items.
type storedCartItem struct {
	ID uuid.UUID `json:"id"`
	ServiceLineView
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Handle returns the cart with totalAmount as the sum of the stored line totals.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{
		Items:       make([]CartItemView, 0),
		TotalAmount: decimal.Zero,
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT items
		FROM carts
		WHERE user_id = ?
	`, query.actor.UserID().Bytes()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	var raw []byte
	if rows.Next() {
		if err = rows.Scan(&raw); err != nil {
			return GetCartQueryResponse{}, err
		}
	}
	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}
	if len(raw) == 0 {
		return response, nil
	}

	var stored []storedCartItem
	if err = json.Unmarshal(raw, &stored); err != nil {
		return GetCartQueryResponse{}, err
	}

	for _, item := range stored {
		id, idErr := kernel.UUIDFromBytes(item.ID[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}
		response.Items = append(response.Items, CartItemView{
			ID:              id,
			ServiceLineView: item.ServiceLineView,
			CreatedAt:       item.CreatedAt,
			UpdatedAt:       item.UpdatedAt,
		})
		response.TotalAmount = response.TotalAmount.Add(item.TotalPrice)
	}

	return response, nil
}
