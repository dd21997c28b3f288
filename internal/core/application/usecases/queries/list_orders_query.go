package queries

import (
	"errors"
	"time"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/pkg/errs"
	"wholesale/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery pages through orders, newest first. A zero status lists every order.
type ListOrdersQuery struct {
	status order.Status
	limit  int
	offset int

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(status order.Status, limit, offset int) (ListOrdersQuery, error) {
	if status != order.Unknown {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	limit, offset, err := page(limit, offset)
	if err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		status: status,
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OrderSummary is one row of the order list with the people involved resolved to names.
type OrderSummary struct {
	ID           kernel.ID
	Date         time.Time
	Status       order.Status
	PaymentType  order.PaymentType
	TotalSum     decimal.Decimal
	CustomerID   kernel.ID
	CustomerName string
	ManagerID    kernel.ID
	ManagerName  string
}

func page(limit, offset int) (int, int, error) {
	if limit == 0 {
		limit = DefaultPageSize
	}
	if limit < 0 || limit > MaxPageSize {
		return 0, 0, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageSize)
	}
	if offset < 0 {
		return 0, 0, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}
	return limit, offset, nil
}
