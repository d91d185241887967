package cart

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
)

// ErrItemIsNotConstructed is returned when validating a zero-value Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

// Item is one service line in a cart together with its server-assigned id
// and timestamps.
type Item struct {
	id        kernel.UUID
	line      catalog.ServiceLine
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewItem assigns a fresh id to a validated line.
func NewItem(line catalog.ServiceLine, now time.Time) (Item, error) {
	return RestoreItem(kernel.NewUUID(), line, now, now)
}

// RestoreItem rebuilds an item from persistence.
func RestoreItem(id kernel.UUID, line catalog.ServiceLine, createdAt, updatedAt time.Time) (Item, error) {
	if err := errors.Join(id.Validate(), line.Validate()); err != nil {
		return Item{}, err
	}
	return Item{
		id:            id,
		line:          line,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the item was created through a constructor.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i Item) ID() kernel.UUID {
	return i.id
}

func (i Item) Line() catalog.ServiceLine {
	return i.line
}

func (i Item) Service() catalog.ServiceType {
	return i.line.Service()
}

func (i Item) TotalPrice() kernel.Money {
	return i.line.TotalPrice()
}

func (i Item) CreatedAt() time.Time {
	return i.createdAt
}

func (i Item) UpdatedAt() time.Time {
	return i.updatedAt
}
