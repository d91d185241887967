// Package order provides the Order aggregate and the status state machine
// that governs a laundry order after it leaves the cart.
//
// The package includes:
//   - Order: the aggregate root, an immutable snapshot of the request plus status
//   - Status: the canonical lifecycle enum with its transition rules
//   - Number: the customer-facing order reference and its generator
//   - DeliveryMethod, PaymentMethod: the closed option sets of an order
//
// Key business rules:
//   - Orders start Pending and follow Pending -> Processing -> Completed
//   - Pending and Processing orders can be cancelled; Completed and Cancelled are terminal
//   - Submitted totals are reconciled within kernel.ReconciliationTolerance and
//     rejected, never corrected, when they disagree
//   - Pickup orders need a delivery address; direct orders never keep one
package order
