package queries

import (
	"errors"
	"time"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery addresses a single order. It backs the order detail, line item
// and delivery reads.
type GetOrderQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.ID) (GetOrderQuery, error) {
	if err := orderID.Validate("orderId"); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

type OrderDetails struct {
	OrderSummary

	DeliveryID       kernel.ID
	DeliveryDateFrom time.Time
	DeliveryDateTo   time.Time
}
