// Package catalogrepo persists reference data: customers, managers, suppliers,
// products and warehouse stock.
package catalogrepo

import (
	"time"

	"wholesale/internal/core/domain/model/catalog"
	"wholesale/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

type CustomerDTO struct {
	ID           int64     `gorm:"primaryKey"`
	FirstName    string    `gorm:"size:100;not null"`
	LastName     string    `gorm:"size:100;not null;index"`
	MiddleName   string    `gorm:"size:100"`
	Phone        string    `gorm:"size:32"`
	Email        string    `gorm:"size:255"`
	Address      string    `gorm:"size:255"`
	RegisteredAt time.Time `gorm:"type:date"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

type ManagerDTO struct {
	ID        int64  `gorm:"primaryKey"`
	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100;not null"`
}

func (ManagerDTO) TableName() string {
	return "managers"
}

type SupplierDTO struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	FirstName string `gorm:"size:100"`
	LastName  string `gorm:"size:100"`
	Phone     string `gorm:"size:32"`
}

func (SupplierDTO) TableName() string {
	return "suppliers"
}

type ProductDTO struct {
	ID          int64           `gorm:"primaryKey"`
	Name        string          `gorm:"size:255;not null"`
	SKU         string          `gorm:"column:sku;size:64;uniqueIndex"`
	Price       decimal.Decimal `gorm:"type:numeric(20,4);not null"`
	Unit        string          `gorm:"size:16"`
	MinQuantity int             `gorm:"not null;default:0"`
}

func (ProductDTO) TableName() string {
	return "products"
}

type WarehouseDTO struct {
	ID      int64  `gorm:"primaryKey"`
	Address string `gorm:"size:255;not null"`
}

func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// WarehouseProductDTO is the stock of one product in one warehouse.
type WarehouseProductDTO struct {
	WarehouseID int64         `gorm:"primaryKey;autoIncrement:false"`
	Warehouse   *WarehouseDTO `gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE"`
	ProductID   int64         `gorm:"primaryKey;autoIncrement:false"`
	Product     *ProductDTO   `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	Quantity    int           `gorm:"not null;default:0"`
}

func (WarehouseProductDTO) TableName() string {
	return "warehouse_products"
}

func productToDomain(dto ProductDTO) catalog.Product {
	return catalog.Product{
		ID:          kernel.ID(dto.ID),
		Name:        dto.Name,
		SKU:         dto.SKU,
		Price:       dto.Price,
		Unit:        dto.Unit,
		MinQuantity: dto.MinQuantity,
	}
}

func customerFromDomain(c *catalog.Customer) CustomerDTO {
	return CustomerDTO{
		ID:           c.ID().Int64(),
		FirstName:    c.FirstName(),
		LastName:     c.LastName(),
		MiddleName:   c.MiddleName(),
		Phone:        c.Phone(),
		Email:        c.Email(),
		Address:      c.Address(),
		RegisteredAt: c.RegisteredAt(),
	}
}
