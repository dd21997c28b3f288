package commands

import (
	"errors"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places a new order together with its delivery.
//
// Example:
//
//	window, _ := kernel.NewDateRange(from, to)
//	cmd, err := NewCreateOrderCommand(customerID, managerID, order.PaymentCard, window,
//	    []OrderLineItem{{ProductID: 5, Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.ID
	managerID   kernel.ID
	paymentType order.PaymentType
	window      kernel.DateRange
	lineItems   []OrderLineItem

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	customerID, managerID kernel.ID,
	paymentType order.PaymentType,
	window kernel.DateRange,
	lineItems []OrderLineItem,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setManagerID(managerID),
		cmd.setPaymentType(paymentType),
		cmd.setWindow(window),
		cmd.setLineItems(lineItems),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.ID {
	return c.customerID
}

func (c CreateOrderCommand) ManagerID() kernel.ID {
	return c.managerID
}

func (c CreateOrderCommand) PaymentType() order.PaymentType {
	return c.paymentType
}

func (c CreateOrderCommand) DeliveryWindow() kernel.DateRange {
	return c.window
}

func (c CreateOrderCommand) LineItems() []OrderLineItem {
	return copyOrderLineItems(c.lineItems)
}

func (c *CreateOrderCommand) setCustomerID(id kernel.ID) error {
	if err := id.Validate("customerId"); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setManagerID(id kernel.ID) error {
	if err := id.Validate("managerId"); err != nil {
		return err
	}
	c.managerID = id
	return nil
}

func (c *CreateOrderCommand) setPaymentType(paymentType order.PaymentType) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}
	c.paymentType = paymentType
	return nil
}

func (c *CreateOrderCommand) setWindow(window kernel.DateRange) error {
	if err := window.Validate(); err != nil {
		return err
	}
	c.window = window
	return nil
}

func (c *CreateOrderCommand) setLineItems(items []OrderLineItem) error {
	if err := validateOrderLineItems(items); err != nil {
		return err
	}
	c.lineItems = copyOrderLineItems(items)
	return nil
}
