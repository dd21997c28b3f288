package commands

import (
	"errors"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/guard"
)

var ErrReplaceOrderLineItemsCommandIsNotConstructed = errors.New(
	"ReplaceOrderLineItemsCommand must be created via NewReplaceOrderLineItemsCommand constructor",
)

// ReplaceOrderLineItemsCommand swaps the whole line item set of an order.
type ReplaceOrderLineItemsCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.ID
	lineItems []OrderLineItem

	guard guard.ConstructorGuard
}

func NewReplaceOrderLineItemsCommand(orderID kernel.ID, lineItems []OrderLineItem) (ReplaceOrderLineItemsCommand, error) {
	cmd := ReplaceOrderLineItemsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate("orderId"),
		validateOrderLineItems(lineItems),
	); err != nil {
		return ReplaceOrderLineItemsCommand{}, err
	}

	cmd.orderID = orderID
	cmd.lineItems = copyOrderLineItems(lineItems)
	return cmd, nil
}

func (c ReplaceOrderLineItemsCommand) Validate() error {
	return c.guard.Validate(ErrReplaceOrderLineItemsCommandIsNotConstructed)
}

func (c ReplaceOrderLineItemsCommand) OrderID() kernel.ID {
	return c.orderID
}

func (c ReplaceOrderLineItemsCommand) LineItems() []OrderLineItem {
	return copyOrderLineItems(c.lineItems)
}
