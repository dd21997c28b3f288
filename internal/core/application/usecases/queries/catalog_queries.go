package queries

import (
	"errors"
	"time"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"
	"wholesale/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListWarehouseStockQueryIsNotConstructed = errors.New(
	"ListWarehouseStockQuery must be created via NewListWarehouseStockQuery constructor",
)

type CustomerView struct {
	ID           kernel.ID
	FirstName    string
	LastName     string
	MiddleName   string
	Phone        string
	Email        string
	Address      string
	RegisteredAt time.Time
}

type ManagerView struct {
	ID        kernel.ID
	FirstName string
	LastName  string
}

type ProductView struct {
	ID          kernel.ID
	Name        string
	SKU         string `gorm:"column:sku"`
	Price       decimal.Decimal
	Unit        string
	MinQuantity int
}

type SupplierView struct {
	ID        kernel.ID
	Name      string
	FirstName string
	LastName  string
	Phone     string
}

// ListWarehouseStockQuery lists stock per warehouse and product. A zero
// warehouse lists every warehouse; lowStockOnly keeps rows below the product
// minimum.
type ListWarehouseStockQuery struct {
	warehouseID  kernel.ID
	lowStockOnly bool

	guard guard.ConstructorGuard
}

func NewListWarehouseStockQuery(warehouseID kernel.ID, lowStockOnly bool) (ListWarehouseStockQuery, error) {
	if warehouseID < 0 {
		return ListWarehouseStockQuery{}, errs.NewValueIsOutOfRangeError("warehouseId", warehouseID, 0, "unbounded")
	}
	return ListWarehouseStockQuery{
		warehouseID:  warehouseID,
		lowStockOnly: lowStockOnly,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q ListWarehouseStockQuery) Validate() error {
	return q.guard.Validate(ErrListWarehouseStockQueryIsNotConstructed)
}

type WarehouseStockView struct {
	WarehouseID      kernel.ID
	WarehouseAddress string
	ProductID        kernel.ID
	ProductName      string
	Quantity         int
	MinQuantity      int
	LowStock         bool
}
