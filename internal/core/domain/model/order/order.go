package order

import (
	"errors"
	"fmt"
	"time"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrOrderIDIsAlreadySet   = errors.New("order id is already assigned")
)

// Order is the aggregate root of a consumer order.
type Order struct {
	id         kernel.ID
	customerID kernel.ID
	managerID  kernel.ID
	deliveryID kernel.ID

	date        time.Time
	status      Status
	paymentType PaymentType

	totalSum  decimal.Decimal
	lineItems []LineItem

	isConstructed bool
}

// NewOrder creates an order in New status. The order is not persisted yet, so
// its ID is zero until AssignID.
func NewOrder(
	customerID, managerID, deliveryID kernel.ID,
	paymentType PaymentType,
	date time.Time,
	lineItems []LineItem,
) (*Order, error) {
	o := &Order{
		status:        New,
		date:          date,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setManagerID(managerID),
		o.setDeliveryID(deliveryID),
		o.setPaymentType(paymentType),
		o.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a stored order. The total is recomputed from the items.
func RestoreOrder(
	id, customerID, managerID, deliveryID kernel.ID,
	date time.Time,
	status Status,
	paymentType PaymentType,
	lineItems []LineItem,
) (*Order, error) {
	if err := errors.Join(id.Validate("orderId"), status.Validate()); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		customerID:    customerID,
		managerID:     managerID,
		deliveryID:    deliveryID,
		date:          date,
		status:        status,
		paymentType:   paymentType,
		isConstructed: true,
	}
	o.lineItems = append([]LineItem(nil), lineItems...)
	o.recalculateTotal()

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

func (o *Order) ManagerID() kernel.ID {
	return o.managerID
}

func (o *Order) DeliveryID() kernel.ID {
	return o.deliveryID
}

func (o *Order) Date() time.Time {
	return o.date
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PaymentType() PaymentType {
	return o.paymentType
}

func (o *Order) TotalSum() decimal.Decimal {
	return o.totalSum
}

func (o *Order) LineItems() []LineItem {
	return append([]LineItem(nil), o.lineItems...)
}

// AssignID records the identifier generated by the store. It can be set once.
func (o *Order) AssignID(id kernel.ID) error {
	if !o.id.IsZero() {
		return ErrOrderIDIsAlreadySet
	}
	if err := id.Validate("orderId"); err != nil {
		return err
	}
	o.id = id
	return nil
}

// ReplaceLineItems swaps the whole item set and recomputes the total.
func (o *Order) ReplaceLineItems(lineItems []LineItem) error {
	return o.setLineItems(lineItems)
}

func (o *Order) ChangeStatus(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) recalculateTotal() {
	total := decimal.Zero
	for _, li := range o.lineItems {
		total = total.Add(li.Total())
	}
	o.totalSum = kernel.RoundMoney(total)
}

func (o *Order) setCustomerID(id kernel.ID) error {
	if err := id.Validate("customerId"); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setManagerID(id kernel.ID) error {
	if err := id.Validate("managerId"); err != nil {
		return err
	}
	o.managerID = id
	return nil
}

func (o *Order) setDeliveryID(id kernel.ID) error {
	if err := id.Validate("deliveryId"); err != nil {
		return err
	}
	o.deliveryID = id
	return nil
}

func (o *Order) setPaymentType(pt PaymentType) error {
	if err := pt.Validate(); err != nil {
		return err
	}
	o.paymentType = pt
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}

	seen := make(map[kernel.ID]struct{}, len(lineItems))
	for _, li := range lineItems {
		if _, dup := seen[li.ProductID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"lineItems", fmt.Errorf("product %s appears more than once", li.ProductID()))
		}
		seen[li.ProductID()] = struct{}{}
	}

	o.lineItems = append([]LineItem(nil), lineItems...)
	o.recalculateTotal()
	return nil
}
