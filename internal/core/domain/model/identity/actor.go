// Package identity describes who performs an operation. The actor is verified
// by the inbound adapter and passed explicitly into every command and query.
package identity

import (
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
	RoleAdmin    = "admin"
)

// Actor is a verified user id plus the role claimed in its token.
type Actor struct {
	userID kernel.UUID
	role   string
}

// NewActor accepts any role string; only staff and admin unlock staff
// operations. A blank role falls back to customer.
func NewActor(userID kernel.UUID, role string) (Actor, error) {
	if err := userID.Validate(); err != nil {
		return Actor{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		role = RoleCustomer
	}

	return Actor{userID: userID, role: role}, nil
}

func (a Actor) UserID() kernel.UUID {
	return a.userID
}

func (a Actor) Role() string {
	return a.role
}

// IsStaff reports whether the actor may accept, complete or administer orders.
func (a Actor) IsStaff() bool {
	return a.role == RoleStaff || a.role == RoleAdmin
}

// Validate rejects the zero Actor.
func (a Actor) Validate() error {
	if err := a.userID.Validate(); err != nil {
		return errs.NewAuthError("actor is missing", err)
	}
	return nil
}

// RequireStaff returns a ForbiddenError naming action when the actor is not staff.
func (a Actor) RequireStaff(action string) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if !a.IsStaff() {
		return errs.NewForbiddenError(a.role, action)
	}
	return nil
}
