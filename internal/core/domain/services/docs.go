// Package services provides domain services that work across aggregates in
// the laundry system.
//
// The package includes:
//   - NotificationComposer: turns an order state change into the customer
//     notifications it should produce
//
// Domain services are pure: they never persist or publish anything.
package services
