// Package order provides the consumer order aggregate of the wholesale
// back office.
//
// The package includes:
//   - Order: the aggregate root owning its line items and the cached total
//   - LineItem: a product, quantity and discount priced from the catalog
//   - Status: a closed state machine new -> confirmed -> shipped -> completed
//   - PaymentType: cash, card or bank transfer
//
// Key business rules:
//   - An order references an existing customer, manager and delivery
//   - An order has at least one line item and no product appears twice
//   - TotalSum is always recomputed from line items and cannot be set directly
//   - Line items are replaced as a whole set
package order
