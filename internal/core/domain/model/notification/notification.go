// Package notification models the informational messages a customer receives
// when their order changes state. Notifications reference orders weakly and
// can be read or deleted without touching the order.
package notification

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// Type groups notifications for display.
type Type int

const (
	UnknownType Type = iota
	// OrderType covers order lifecycle messages.
	OrderType
	// PaymentType covers payment reminders.
	PaymentType
)

func (t Type) String() string {
	switch t {
	case OrderType:
		return "order"
	case PaymentType:
		return "payment"
	case UnknownType:
	}
	return "unknown"
}

func (t Type) Validate() error {
	if t != OrderType && t != PaymentType {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid notification type", t))
	}
	return nil
}

// ParseType accepts "order" and "payment". An empty string means OrderType.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "order":
		return OrderType, nil
	case "payment":
		return PaymentType, nil
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q must be one of order, payment", s))
}

// ErrNotificationIsNotConstructed is returned when a Notification was not
// created through NewNotification or RestoreNotification.
var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

// Notification is a message addressed to one user.
type Notification struct {
	id        kernel.UUID
	userID    kernel.UUID
	orderID   *kernel.UUID
	typ       Type
	title     string
	message   string
	read      bool
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewNotification creates an unread notification. orderID is optional.
func NewNotification(
	id kernel.UUID,
	userID kernel.UUID,
	orderID *kernel.UUID,
	typ Type,
	title, message string,
	now time.Time,
) (*Notification, error) {
	return RestoreNotification(id, userID, orderID, typ, title, message, false, now, now)
}

// RestoreNotification rebuilds a notification from storage.
func RestoreNotification(
	id kernel.UUID,
	userID kernel.UUID,
	orderID *kernel.UUID,
	typ Type,
	title, message string,
	read bool,
	createdAt, updatedAt time.Time,
) (*Notification, error) {
	n := &Notification{
		read:          read,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setUserID(userID),
		n.setOrderID(orderID),
		n.setType(typ),
		n.setText(title, message),
	); err != nil {
		return nil, err
	}

	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

func (n *Notification) UserID() kernel.UUID {
	return n.userID
}

// OrderID is nil for notifications not tied to an order.
func (n *Notification) OrderID() *kernel.UUID {
	return n.orderID
}

func (n *Notification) Type() Type {
	return n.typ
}

func (n *Notification) Title() string {
	return n.title
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) IsRead() bool {
	return n.read
}

func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *Notification) UpdatedAt() time.Time {
	return n.updatedAt
}

// MarkRead flags the notification as read. Marking twice is harmless.
func (n *Notification) MarkRead(now time.Time) {
	if n.read {
		return
	}
	n.read = true
	n.updatedAt = now
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	n.userID = userID
	return nil
}

func (n *Notification) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}
	id := *orderID
	n.orderID = &id
	return nil
}

func (n *Notification) setType(typ Type) error {
	if err := typ.Validate(); err != nil {
		return err
	}
	n.typ = typ
	return nil
}

func (n *Notification) setText(title, message string) error {
	title = strings.TrimSpace(title)
	message = strings.TrimSpace(message)
	var titleErr, messageErr error
	if title == "" {
		titleErr = errs.NewValueIsRequiredError("title")
	}
	if message == "" {
		messageErr = errs.NewValueIsRequiredError("message")
	}
	if err := errors.Join(titleErr, messageErr); err != nil {
		return err
	}
	n.title = title
	n.message = message
	return nil
}
