package commands

import (
	"errors"
	"fmt"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// OrderLineItem is a requested order line. The price comes from the catalog.
type OrderLineItem struct {
	ProductID       kernel.ID
	Quantity        int
	DiscountPercent decimal.Decimal
}

// validateOrderLineItems checks the request before any store access: at
// least one line, each line well-formed, no product twice.
func validateOrderLineItems(items []OrderLineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}

	seen := make(map[kernel.ID]struct{}, len(items))
	var lineErrs []error
	for i, item := range items {
		if _, err := order.NewLineItem(item.ProductID, item.Quantity, item.DiscountPercent, decimal.Zero); err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("lineItems[%d]: %w", i, err))
			continue
		}
		if _, dup := seen[item.ProductID]; dup {
			lineErrs = append(lineErrs, errs.NewValueIsInvalidErrorWithCause(
				"lineItems",
				fmt.Errorf("product %s is listed more than once", item.ProductID),
			))
			continue
		}
		seen[item.ProductID] = struct{}{}
	}
	return errors.Join(lineErrs...)
}

func copyOrderLineItems(items []OrderLineItem) []OrderLineItem {
	return append([]OrderLineItem(nil), items...)
}
