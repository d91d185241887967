package order

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/catalog"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// DefaultTurnaround is added to the creation time when no estimated done date
// is requested.
const DefaultTurnaround = 3 * 24 * time.Hour

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Draft carries everything a customer submits to place an order.
// Subtotal and EstimatedDoneDate are optional.
type Draft struct {
	UserID            kernel.UUID
	Items             []catalog.ServiceLine
	DeliveryMethod    DeliveryMethod
	PaymentMethod     PaymentMethod
	DeliveryAddress   string
	Notes             string
	DeliveryFee       kernel.Money
	Subtotal          *kernel.Money
	TotalAmount       kernel.Money
	EstimatedDoneDate *time.Time

	// ItemsTotal is the sum of the line totals as the client submitted them.
	// When nil the computed line totals are used.
	ItemsTotal *kernel.Money
}

// Order is an immutable snapshot of a placed laundry request plus its status.
// It is the aggregate root for the lifecycle handled by the state machine.
//
// Order follows these invariants:
//   - Must have a valid id, owner and order number
//   - Holds at least one service line, copied from the request
//   - A pickup order has a non-blank delivery address; a direct order has none
//   - At creation, |line totals + deliveryFee - totalAmount| <= 1, using the
//     line totals as submitted when the draft carries them
//   - Status transitions follow Status rules
type Order struct {
	id     kernel.UUID
	number Number
	userID kernel.UUID

	// items is a snapshot, never shared with the cart it came from
	items []catalog.ServiceLine

	subtotal    kernel.Money
	deliveryFee kernel.Money
	totalAmount kernel.Money

	deliveryMethod  DeliveryMethod
	paymentMethod   PaymentMethod
	deliveryAddress string
	notes           string

	status            Status
	estimatedDoneDate time.Time
	createdAt         time.Time
	updatedAt         time.Time

	// version is the stored revision this instance was loaded at; 0 until stored
	version int64

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder validates a draft and creates a Pending order.
//
// Parameters:
//   - id: unique identifier for the order
//   - number: a candidate order number, unique only once stored
//   - draft: the customer request
//   - now: creation time
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: every field problem joined, or a TotalMismatchError when the
//     fields are valid but the amounts do not add up
//
// The stored subtotal is always the computed one; the submitted totalAmount
// is stored unchanged once it reconciles.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), gen.Next(), draft, time.Now())
//	if errors.Is(err, errs.ErrTotalMismatch) {
//	    // reject the request, never correct it silently
//	}
func NewOrder(id kernel.UUID, number Number, draft Draft, now time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setUserID(draft.UserID),
		o.setItems(draft.Items),
		o.setDelivery(draft.DeliveryMethod, draft.DeliveryAddress),
		o.setPaymentMethod(draft.PaymentMethod),
		o.setAmounts(draft.DeliveryFee, draft.TotalAmount),
	); err != nil {
		return nil, err
	}

	if err := o.reconcile(draft.Subtotal, draft.ItemsTotal); err != nil {
		return nil, err
	}

	o.notes = strings.TrimSpace(draft.Notes)
	o.estimatedDoneDate = now.Add(DefaultTurnaround)
	if draft.EstimatedDoneDate != nil && !draft.EstimatedDoneDate.IsZero() {
		o.estimatedDoneDate = *draft.EstimatedDoneDate
	}

	return o, nil
}

// Snapshot is the full persisted state of an order.
type Snapshot struct {
	ID                kernel.UUID
	Number            Number
	UserID            kernel.UUID
	Items             []catalog.ServiceLine
	Subtotal          kernel.Money
	DeliveryFee       kernel.Money
	TotalAmount       kernel.Money
	DeliveryMethod    DeliveryMethod
	PaymentMethod     PaymentMethod
	DeliveryAddress   string
	Notes             string
	Status            Status
	EstimatedDoneDate time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Version           int64
}

// RestoreOrder rebuilds an order from storage. Field rules are re-checked,
// amount reconciliation is not: it only applies at creation time.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		subtotal:          s.Subtotal,
		notes:             s.Notes,
		estimatedDoneDate: s.EstimatedDoneDate,
		createdAt:         s.CreatedAt,
		updatedAt:         s.UpdatedAt,
		version:           s.Version,
		isConstructed:     true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setNumber(s.Number),
		o.setUserID(s.UserID),
		o.setItems(s.Items),
		o.setDelivery(s.DeliveryMethod, s.DeliveryAddress),
		o.setPaymentMethod(s.PaymentMethod),
		o.setAmounts(s.DeliveryFee, s.TotalAmount),
		o.setStatus(s.Status),
		s.Subtotal.Validate(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via NewOrder
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() Number {
	return o.number
}

func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns a copy of the service lines.
func (o *Order) Items() []catalog.ServiceLine {
	out := make([]catalog.ServiceLine, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

func (o *Order) DeliveryMethod() DeliveryMethod {
	return o.deliveryMethod
}

func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// DeliveryAddress is empty for direct orders.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) EstimatedDoneDate() time.Time {
	return o.estimatedDoneDate
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version is the stored revision the order was loaded at. Status writes only
// succeed while the stored row still holds it.
func (o *Order) Version() int64 {
	return o.version
}

// WithNumber returns a copy carrying a different order number. It is used
// when storage rejects a colliding candidate before the order was ever stored.
func (o *Order) WithNumber(number Number) (*Order, error) {
	clone := *o
	clone.items = o.Items()
	if err := clone.setNumber(number); err != nil {
		return nil, err
	}
	return &clone, nil
}

// Accept moves the order to Processing.
//
// Returns:
//   - nil on success
//   - InvalidTransitionError from Completed or Cancelled
func (o *Order) Accept(now time.Time) error {
	return o.apply(o.status.Accept, now)
}

// Complete moves the order to Completed. Only Processing orders can complete.
func (o *Order) Complete(now time.Time) error {
	return o.apply(o.status.Complete, now)
}

// Cancel moves the order to Cancelled. Completed and Cancelled orders cannot
// be cancelled.
//
// Example:
//
//	if err := o.Cancel(time.Now()); errors.Is(err, errs.ErrInvalidTransition) {
//	    // already finished
//	}
func (o *Order) Cancel(now time.Time) error {
	return o.apply(o.status.Cancel, now)
}

// SetStatus applies an administrative status change through the same guards.
// It reports whether the status actually changed.
func (o *Order) SetStatus(target Status, now time.Time) (bool, error) {
	previous := o.status
	err := o.apply(func() (Status, error) { return o.status.TransitionTo(target) }, now)
	if err != nil {
		return false, err
	}
	return previous != o.status, nil
}

func (o *Order) apply(transition func() (Status, error), now time.Time) error {
	newStatus, err := transition()
	if err != nil {
		return err
	}
	o.status = newStatus
	o.updatedAt = now
	return nil
}

func (o *Order) reconcile(submittedSubtotal, submittedItemsTotal *kernel.Money) error {
	computed := kernel.ZeroMoney()
	for _, line := range o.items {
		computed = computed.Add(line.TotalPrice())
	}
	o.subtotal = computed

	itemsTotal := computed
	if submittedItemsTotal != nil {
		if err := submittedItemsTotal.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", err)
		}
		itemsTotal = *submittedItemsTotal
	}

	if submittedSubtotal != nil {
		if err := submittedSubtotal.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("subtotal", err)
		}
		if err := kernel.Reconcile("subtotal", *submittedSubtotal, itemsTotal); err != nil {
			return err
		}
	}

	return kernel.Reconcile("totalAmount", o.totalAmount, itemsTotal.Add(o.deliveryFee))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number Number) error {
	n, err := NewNumber(number.String())
	if err != nil {
		return err
	}
	o.number = n
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []catalog.ServiceLine) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, line := range items {
		if err := line.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", err)
		}
	}
	o.items = make([]catalog.ServiceLine, len(items))
	copy(o.items, items)
	return nil
}

// setDelivery requires an address for pickup and drops it for direct orders.
func (o *Order) setDelivery(method DeliveryMethod, address string) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.deliveryMethod = method

	trimmed := strings.TrimSpace(address)
	if method == Direct {
		o.deliveryAddress = ""
		return nil
	}
	if trimmed == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = trimmed
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setAmounts(deliveryFee, totalAmount kernel.Money) error {
	var feeErr, totalErr error
	if err := deliveryFee.Validate(); err != nil {
		feeErr = errs.NewValueIsRequiredErrorWithCause("deliveryFee", err)
	}
	if err := totalAmount.Validate(); err != nil {
		totalErr = errs.NewValueIsRequiredErrorWithCause("totalAmount", err)
	}
	if err := errors.Join(feeErr, totalErr); err != nil {
		return err
	}
	o.deliveryFee = deliveryFee
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
