// Package catalog holds the laundry services the shop sells and the priced
// lines a customer builds from them. Everything here is pure: it validates
// and computes totals but never touches storage.
package catalog
