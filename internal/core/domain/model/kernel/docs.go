// Package kernel provides the value objects shared by every laundry aggregate.
//
// The package includes:
//   - UUID: identifiers for users, cart lines, orders and notifications
//   - Money: non-negative rupiah amounts with the reconciliation tolerance
//
// Both are immutable and their zero values fail Validate, so aggregates can
// detect fields that were never set through a constructor.
package kernel
