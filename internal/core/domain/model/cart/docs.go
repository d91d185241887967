// Package cart models a customer's pending selection of laundry services.
//
// A Cart is keyed by its owner and holds at most one Item per service type.
// Items keep their id across edits so clients can address them. The
// repository owns the version used for compare-and-swap; the aggregate only
// carries it between load and save.
//
// Invariants:
//   - Owner id is always valid
//   - No two items share a service type
//   - Every item's line was validated by the catalog
//   - Item quantities changed through UpdateQuantity stay within [MinQuantity, MaxQuantity]
package cart
