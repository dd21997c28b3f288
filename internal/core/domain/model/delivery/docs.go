// Package delivery holds the delivery document and delivery window records
// that an order depends on. Both are created before the order in the same
// transaction and removed after it.
package delivery
