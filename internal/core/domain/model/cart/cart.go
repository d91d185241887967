package cart

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

const (
	// MinQuantity and MaxQuantity bound quantity updates on a cart sub-item.
	MinQuantity = 1
	MaxQuantity = 20
)

// ErrCartIsNotConstructed is returned when a Cart was not created through
// NewCart or RestoreCart.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")

// Cart is the aggregate root for a user's pending service selection.
//
// A new cart has version 0 and no row in storage; the repository inserts it on
// first save and increments the version on every later save.
type Cart struct {
	// userID is both the owner and the aggregate id
	userID kernel.UUID

	// items in insertion order
	items []Item

	// version is the stored revision this instance was loaded at
	version int64

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewCart creates an empty cart for userID.
//
// Example:
//
//	c, err := cart.NewCart(userID, time.Now())
//	if err != nil {
//	    return err
//	}
//	item, err := c.AddItem(line, time.Now())
func NewCart(userID kernel.UUID, now time.Time) (*Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	return &Cart{
		userID:        userID,
		items:         make([]Item, 0),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreCart rebuilds a cart loaded from storage. Duplicate service types in
// stored data are rejected so the invariant holds for every live instance.
func RestoreCart(
	userID kernel.UUID,
	items []Item,
	version int64,
	createdAt, updatedAt time.Time,
) (*Cart, error) {
	c, err := NewCart(userID, createdAt)
	if err != nil {
		return nil, err
	}
	seen := make(map[catalog.ServiceType]struct{}, len(items))
	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[item.Service()]; dup {
			return nil, errs.NewDuplicateServiceError(item.Service().String())
		}
		seen[item.Service()] = struct{}{}
		c.items = append(c.items, item)
	}
	c.version = version
	c.updatedAt = updatedAt
	return c, nil
}

// Validate ensures the cart was properly constructed.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

func (c *Cart) UserID() kernel.UUID {
	return c.userID
}

func (c *Cart) Version() int64 {
	return c.version
}

func (c *Cart) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Cart) UpdatedAt() time.Time {
	return c.updatedAt
}

// Items returns a copy of the cart items in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// TotalAmount is the sum of every item's total price.
func (c *Cart) TotalAmount() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range c.items {
		total = total.Add(item.TotalPrice())
	}
	return total
}

// Item returns the item with the given id.
func (c *Cart) Item(id kernel.UUID) (Item, error) {
	idx := c.indexOf(id)
	if idx < 0 {
		return Item{}, errs.NewObjectNotFoundError("cart item", id.String())
	}
	return c.items[idx], nil
}

// AddItem appends a new line. It fails with DuplicateServiceError when the cart
// already holds a line for the same service.
func (c *Cart) AddItem(line catalog.ServiceLine, now time.Time) (Item, error) {
	if err := line.Validate(); err != nil {
		return Item{}, err
	}
	if c.hasService(line.Service(), nil) {
		return Item{}, errs.NewDuplicateServiceError(line.Service().String())
	}

	item, err := NewItem(line, now)
	if err != nil {
		return Item{}, err
	}
	c.items = append(c.items, item)
	c.updatedAt = now
	return item, nil
}

// EditItem replaces the line of an existing item in place, keeping its id and
// creation time. Switching to a service another item already uses fails with
// DuplicateServiceError.
func (c *Cart) EditItem(id kernel.UUID, line catalog.ServiceLine, now time.Time) (Item, error) {
	if err := line.Validate(); err != nil {
		return Item{}, err
	}
	idx := c.indexOf(id)
	if idx < 0 {
		return Item{}, errs.NewObjectNotFoundError("cart item", id.String())
	}
	if c.hasService(line.Service(), &id) {
		return Item{}, errs.NewDuplicateServiceError(line.Service().String())
	}

	current := c.items[idx]
	edited, err := RestoreItem(current.id, line, current.createdAt, now)
	if err != nil {
		return Item{}, err
	}
	c.items[idx] = edited
	c.updatedAt = now
	return edited, nil
}

// UpdateQuantity sets the quantity of the sub-item itemName inside item id.
// When service is given it must match the item's service type.
//
// Returns:
//   - ValueIsOutOfRangeError when quantity is outside [MinQuantity, MaxQuantity]
//   - ObjectNotFoundError when the item, service match or sub-item is missing
func (c *Cart) UpdateQuantity(
	id kernel.UUID,
	service *catalog.ServiceType,
	itemName string,
	quantity int,
	now time.Time,
) (Item, error) {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	idx := c.indexOf(id)
	if idx < 0 {
		return Item{}, errs.NewObjectNotFoundError("cart item", id.String())
	}
	current := c.items[idx]
	if service != nil && *service != current.Service() {
		return Item{}, errs.NewObjectNotFoundErrorWithCause(
			"cart item", id.String(),
			fmt.Errorf("item is %s, not %s", current.Service(), *service),
		)
	}

	line, err := current.line.WithItemQuantity(itemName, quantity)
	if err != nil {
		return Item{}, err
	}
	updated, err := RestoreItem(current.id, line, current.createdAt, now)
	if err != nil {
		return Item{}, err
	}
	c.items[idx] = updated
	c.updatedAt = now
	return updated, nil
}

// RemoveItem drops the item with the given id. Removing an absent id is a
// no-op and reports false.
func (c *Cart) RemoveItem(id kernel.UUID, now time.Time) bool {
	idx := c.indexOf(id)
	if idx < 0 {
		return false
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	c.updatedAt = now
	return true
}

// Clear empties the cart. The cart itself keeps existing.
func (c *Cart) Clear(now time.Time) {
	c.items = make([]Item, 0)
	c.updatedAt = now
}

func (c *Cart) indexOf(id kernel.UUID) int {
	for idx, item := range c.items {
		if item.id.IsEqual(id) {
			return idx
		}
	}
	return -1
}

func (c *Cart) hasService(service catalog.ServiceType, except *kernel.UUID) bool {
	for _, item := range c.items {
		if except != nil && item.id.IsEqual(*except) {
			continue
		}
		if item.Service() == service {
			return true
		}
	}
	return false
}
