package order

import (
	"errors"
	"fmt"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	minDiscount = decimal.Zero
	maxDiscount = decimal.NewFromInt(100)
)

// discountScale matches the discount_percent column.
const discountScale = 2

// LineItem is one product row of an order. Price is the effective unit price
// after discount, fixed when the item is priced from the catalog.
type LineItem struct {
	productID       kernel.ID
	quantity        int
	discountPercent decimal.Decimal
	price           decimal.Decimal
}

// NewLineItem prices a line from the current catalog price.
func NewLineItem(productID kernel.ID, quantity int, discountPercent, catalogPrice decimal.Decimal) (LineItem, error) {
	if err := errors.Join(
		productID.Validate("productId"),
		validateQuantity(quantity),
		validateDiscount(discountPercent),
		validateCatalogPrice(catalogPrice),
	); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		productID:       productID,
		quantity:        quantity,
		discountPercent: discountPercent,
		price:           kernel.ApplyDiscount(catalogPrice, discountPercent),
	}, nil
}

// RestoreLineItem rebuilds a stored line without repricing it.
func RestoreLineItem(productID kernel.ID, quantity int, discountPercent, price decimal.Decimal) LineItem {
	return LineItem{
		productID:       productID,
		quantity:        quantity,
		discountPercent: discountPercent,
		price:           price,
	}
}

func (li LineItem) ProductID() kernel.ID {
	return li.productID
}

func (li LineItem) Quantity() int {
	return li.quantity
}

func (li LineItem) DiscountPercent() decimal.Decimal {
	return li.discountPercent
}

func (li LineItem) Price() decimal.Decimal {
	return li.price
}

func (li LineItem) Total() decimal.Decimal {
	return kernel.LineTotal(li.price, li.quantity)
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	return nil
}

func validateDiscount(discount decimal.Decimal) error {
	if discount.LessThan(minDiscount) || discount.GreaterThan(maxDiscount) {
		return errs.NewValueIsOutOfRangeError("discountPercent", discount, minDiscount, maxDiscount)
	}
	if !discount.Equal(discount.Truncate(discountScale)) {
		return errs.NewValueIsInvalidErrorWithCause("discountPercent",
			fmt.Errorf("%s has more than %d decimal places", discount, discountScale))
	}
	return nil
}

func validateCatalogPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("price", price, 0, "unbounded")
	}
	return nil
}
