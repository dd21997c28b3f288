package commands

import (
	"errors"
	"fmt"
	"time"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/supply"
	"wholesale/internal/pkg/errs"
	"wholesale/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateSupplyCommandIsNotConstructed = errors.New(
	"CreateSupplyCommand must be created via NewCreateSupplyCommand constructor",
)

// SupplyLineItem is a requested supply line at the price agreed with the supplier.
type SupplyLineItem struct {
	ProductID kernel.ID
	Quantity  int
	Price     decimal.Decimal
}

// CreateSupplyCommand registers goods ordered from a supplier. A zero date
// means today; Unknown status means ordered.
//
// Example:
//
//	cmd, err := NewCreateSupplyCommand(supplierID, time.Now(), supply.Ordered,
//	    []SupplyLineItem{{ProductID: 7, Quantity: 100, Price: decimal.RequireFromString("4.20")}})
//	if err != nil {
//	    return err
//	}
//	supplyID, err := handler.Handle(ctx, cmd)
type CreateSupplyCommand struct { //nolint:recvcheck //using for validation
	supplierID kernel.ID
	date       time.Time
	status     supply.Status
	lineItems  []supply.LineItem

	guard guard.ConstructorGuard
}

func NewCreateSupplyCommand(
	supplierID kernel.ID,
	date time.Time,
	status supply.Status,
	lineItems []SupplyLineItem,
) (CreateSupplyCommand, error) {
	cmd := CreateSupplyCommand{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}
	if cmd.date.IsZero() {
		cmd.date = time.Now()
	}
	cmd.date = kernel.Day(cmd.date)

	if err := errors.Join(
		cmd.setSupplierID(supplierID),
		cmd.setStatus(status),
		cmd.setLineItems(lineItems),
	); err != nil {
		return CreateSupplyCommand{}, err
	}

	return cmd, nil
}

func (c CreateSupplyCommand) Validate() error {
	return c.guard.Validate(ErrCreateSupplyCommandIsNotConstructed)
}

func (c CreateSupplyCommand) SupplierID() kernel.ID {
	return c.supplierID
}

func (c CreateSupplyCommand) Date() time.Time {
	return c.date
}

func (c CreateSupplyCommand) Status() supply.Status {
	return c.status
}

func (c CreateSupplyCommand) LineItems() []supply.LineItem {
	return append([]supply.LineItem(nil), c.lineItems...)
}

func (c CreateSupplyCommand) ProductIDs() []kernel.ID {
	ids := make([]kernel.ID, 0, len(c.lineItems))
	for _, li := range c.lineItems {
		ids = append(ids, li.ProductID())
	}
	return ids
}

func (c *CreateSupplyCommand) setSupplierID(id kernel.ID) error {
	if err := id.Validate("supplierId"); err != nil {
		return err
	}
	c.supplierID = id
	return nil
}

func (c *CreateSupplyCommand) setStatus(status supply.Status) error {
	if status == supply.Unknown {
		status = supply.Ordered
	}
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *CreateSupplyCommand) setLineItems(requested []SupplyLineItem) error {
	if len(requested) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}

	seen := make(map[kernel.ID]struct{}, len(requested))
	items := make([]supply.LineItem, 0, len(requested))
	var lineErrs []error
	for i, r := range requested {
		item, err := supply.NewLineItem(r.ProductID, r.Quantity, r.Price)
		if err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("lineItems[%d]: %w", i, err))
			continue
		}
		if _, dup := seen[r.ProductID]; dup {
			lineErrs = append(lineErrs, errs.NewValueIsInvalidErrorWithCause(
				"lineItems",
				fmt.Errorf("product %s is listed more than once", r.ProductID),
			))
			continue
		}
		seen[r.ProductID] = struct{}{}
		items = append(items, item)
	}
	if err := errors.Join(lineErrs...); err != nil {
		return err
	}

	c.lineItems = items
	return nil
}
