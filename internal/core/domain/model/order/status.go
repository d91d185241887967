package order

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──accept──> Processing ──complete──> Completed
//	   │                  │   ↑
//	   │                  └───┘ accept (idempotent)
//	   │                  │
//	   └──────cancel──────┴──────cancel──────> Cancelled
//
// Completed and Cancelled are terminal. Business logic only ever branches on
// Status; the Indonesian text shown to customers comes from Label.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created order
	// ("Dalam Proses" for customers).
	Pending

	// Processing means staff accepted the order and work has started.
	Processing

	// Completed means the laundry is done. No further transitions.
	Completed

	// Cancelled means the order was withdrawn. No further transitions.
	Cancelled
)

// getStatusStrings returns the canonical wire and storage names.
func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// getStatusLabels returns the customer-facing Indonesian labels.
func getStatusLabels() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Dalam Proses",
		Processing: "Diproses",
		Completed:  "Selesai",
		Cancelled:  "Dibatalkan",
	}
}

// ParseStatus maps a canonical name such as "processing" to its Status.
// Matching is case-insensitive; display labels are not accepted.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for st, name := range getStatusStrings() {
		if name == normalized {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Processing, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name, or "unknown" for invalid values.
//
// Example:
//
//	fmt.Println(order.Status()) // Output: "processing"
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Label returns the customer-facing Indonesian label.
//
// Example:
//
//	order.Pending.Label() // "Dalam Proses"
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return "Tidak Diketahui"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Accept transitions the status to Processing.
//
// Valid transitions:
//   - Pending -> Processing
//   - Processing -> Processing (repeated accept is harmless)
//
// Returns:
//   - (Processing, nil) on valid transition
//   - (0, InvalidTransitionError) from any other status
func (s Status) Accept() (Status, error) {
	if s != Pending && s != Processing {
		return 0, errs.NewInvalidTransitionError(s.String(), "accept")
	}
	return Processing, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Processing -> Completed
//
// Invalid transitions:
//   - Pending -> Completed (must be accepted first)
//   - Completed or Cancelled -> Completed (terminal)
func (s Status) Complete() (Status, error) {
	if s != Processing {
		return 0, errs.NewInvalidTransitionError(s.String(), "complete")
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled. Only orders that are not yet
// finished can be cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Processing -> Cancelled
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Processing {
		return 0, errs.NewInvalidTransitionError(s.String(), "cancel")
	}
	return Cancelled, nil
}

// TransitionTo moves to target through the matching named transition, so an
// administrative status change obeys the same guards as accept, complete and
// cancel. Setting Pending is only accepted as a no-op on a pending order.
func (s Status) TransitionTo(target Status) (Status, error) {
	switch target {
	case Processing:
		return s.Accept()
	case Completed:
		return s.Complete()
	case Cancelled:
		return s.Cancel()
	case Pending:
		if s == Pending {
			return Pending, nil
		}
		return 0, errs.NewInvalidTransitionError(s.String(), "reopen")
	case Unknown:
	}
	return 0, target.Validate()
}
