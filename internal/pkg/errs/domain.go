package errs

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateService     = errors.New("service is already in cart")
	ErrTotalMismatch        = errors.New("total does not match")
	ErrInvalidTransition    = errors.New("status transition is invalid")
	ErrDuplicateOrderNumber = errors.New("order number is duplicated")
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrForbidden            = errors.New("forbidden")
	ErrStore                = errors.New("store failure")
)

// DuplicateServiceError is returned when a cart already holds a line for the service.
type DuplicateServiceError struct {
	Service string
}

func NewDuplicateServiceError(service string) *DuplicateServiceError {
	return &DuplicateServiceError{Service: service}
}

func (e *DuplicateServiceError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDuplicateService, e.Service)
}

func (e *DuplicateServiceError) Unwrap() error {
	return ErrDuplicateService
}

// TotalMismatchError carries both sides of a failed reconciliation.
type TotalMismatchError struct {
	ParamName  string
	Submitted  any
	Calculated any
}

func NewTotalMismatchError(paramName string, submitted, calculated any) *TotalMismatchError {
	return &TotalMismatchError{ParamName: paramName, Submitted: submitted, Calculated: calculated}
}

func (e *TotalMismatchError) Error() string {
	return fmt.Sprintf("%s: %s is %v, calculated %v", ErrTotalMismatch, e.ParamName, e.Submitted, e.Calculated)
}

func (e *TotalMismatchError) Unwrap() error {
	return ErrTotalMismatch
}

type InvalidTransitionError struct {
	From   string
	Action string
}

func NewInvalidTransitionError(from, action string) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, Action: action}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s from %s", ErrInvalidTransition, e.Action, e.From)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

type DuplicateOrderNumberError struct {
	OrderNumber string
	Cause       error
}

func NewDuplicateOrderNumberError(orderNumber string, cause error) *DuplicateOrderNumberError {
	return &DuplicateOrderNumberError{OrderNumber: orderNumber, Cause: cause}
}

func (e *DuplicateOrderNumberError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrDuplicateOrderNumber, e.OrderNumber, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrDuplicateOrderNumber, e.OrderNumber)
}

func (e *DuplicateOrderNumberError) Unwrap() error {
	return ErrDuplicateOrderNumber
}

// AuthError covers a missing, malformed or expired identity.
type AuthError struct {
	Reason string
	Cause  error
}

func NewAuthError(reason string, cause error) *AuthError {
	return &AuthError{Reason: reason, Cause: cause}
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrUnauthenticated, e.Reason, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrUnauthenticated, e.Reason)
}

func (e *AuthError) Unwrap() error {
	return ErrUnauthenticated
}

// ForbiddenError is returned when a verified identity lacks the role an action needs.
type ForbiddenError struct {
	Role   string
	Action string
}

func NewForbiddenError(role, action string) *ForbiddenError {
	return &ForbiddenError{Role: role, Action: action}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: role %s cannot %s", ErrForbidden, e.Role, e.Action)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

type StoreError struct {
	Op    string
	Cause error
}

func NewStoreError(op string, cause error) *StoreError {
	return &StoreError{Op: op, Cause: cause}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %s (cause: %v)", ErrStore, e.Op, e.Cause)
}

// Unwrap exposes both the sentinel and the driver error.
func (e *StoreError) Unwrap() []error {
	return []error{ErrStore, e.Cause}
}
