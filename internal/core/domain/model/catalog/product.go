// Package catalog contains the reference data orders and supplies point at:
// products with their current prices and the customers placing orders.
package catalog

import (
	"wholesale/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Product is a catalog row as seen by the orchestrators. It is read-only here.
type Product struct {
	ID          kernel.ID
	Name        string
	SKU         string
	Price       decimal.Decimal
	Unit        string
	MinQuantity int
}
