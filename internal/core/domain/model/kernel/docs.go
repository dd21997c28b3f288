// Package kernel provides core domain primitives shared by the order, supply
// and delivery aggregates.
//
// The package includes:
//   - ID: a store-assigned identifier of a persisted row
//   - DateRange: a value object for a delivery window
//   - money helpers that keep prices and totals at two decimal places
//
// Primitives are immutable value types and validate on construction.
package kernel
