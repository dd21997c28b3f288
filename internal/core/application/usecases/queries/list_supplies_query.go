package queries

import (
	"errors"
	"time"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/supply"
	"wholesale/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListSuppliesQueryIsNotConstructed = errors.New(
		"ListSuppliesQuery must be created via NewListSuppliesQuery constructor",
	)
	ErrGetSupplyQueryIsNotConstructed = errors.New(
		"GetSupplyQuery must be created via NewGetSupplyQuery constructor",
	)
)

type ListSuppliesQuery struct {
	status supply.Status
	limit  int
	offset int

	guard guard.ConstructorGuard
}

func NewListSuppliesQuery(status supply.Status, limit, offset int) (ListSuppliesQuery, error) {
	if status != supply.Unknown {
		if err := status.Validate(); err != nil {
			return ListSuppliesQuery{}, err
		}
	}
	limit, offset, err := page(limit, offset)
	if err != nil {
		return ListSuppliesQuery{}, err
	}

	return ListSuppliesQuery{
		status: status,
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListSuppliesQuery) Validate() error {
	return q.guard.Validate(ErrListSuppliesQueryIsNotConstructed)
}

type SupplySummary struct {
	ID           kernel.ID
	SupplierID   kernel.ID
	SupplierName string
	DocumentID   kernel.ID
	Date         time.Time
	Status       supply.Status
	TotalCost    decimal.Decimal
}

type GetSupplyQuery struct {
	supplyID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetSupplyQuery(supplyID kernel.ID) (GetSupplyQuery, error) {
	if err := supplyID.Validate("supplyId"); err != nil {
		return GetSupplyQuery{}, err
	}
	return GetSupplyQuery{supplyID: supplyID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetSupplyQuery) Validate() error {
	return q.guard.Validate(ErrGetSupplyQueryIsNotConstructed)
}

type SupplyLineItemView struct {
	ProductID   kernel.ID
	ProductName string
	Unit        string
	Quantity    int
	Price       decimal.Decimal
	Total       decimal.Decimal
}
