package api

import (
	"github.com/shopspring/decimal"
)

// ID is a positive store identifier taken from the path.
type ID = int64

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	// Retryable marks transient store failures; the same request may succeed later.
	Retryable bool `json:"retryable,omitempty"`

	// CommitUnknown is set when the store rejected the commit and the change may
	// or may not have been applied.
	CommitUnknown bool `json:"commitUnknown,omitempty"`
}

type Success struct {
	Success bool `json:"success"`
}

type Created struct {
	ID int64 `json:"id"`
}

type CreatedWithSuccess struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

type StatusChange struct {
	Status string `json:"status" validate:"required"`
}

type DeliveryWindow struct {
	DateFrom string `json:"dateFrom" validate:"required,datetime=2006-01-02"`
	DateTo   string `json:"dateTo"   validate:"required,datetime=2006-01-02"`
}

type NewOrderLineItem struct {
	ProductID       int64           `json:"productId"       validate:"required,gt=0"`
	Quantity        int             `json:"quantity"        validate:"required,gt=0"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
}

type OrderLineItems struct {
	LineItems []NewOrderLineItem `json:"lineItems" validate:"required,min=1,dive"`
}

type NewOrder struct {
	CustomerID     int64              `json:"customerId"     validate:"required,gt=0"`
	ManagerID      int64              `json:"managerId"      validate:"required,gt=0"`
	PaymentType    string             `json:"paymentType"    validate:"required"`
	DeliveryWindow DeliveryWindow     `json:"deliveryWindow" validate:"required"`
	LineItems      []NewOrderLineItem `json:"lineItems"      validate:"required,min=1,dive"`
}

type NewSupplyLineItem struct {
	ProductID int64           `json:"productId" validate:"required,gt=0"`
	Quantity  int             `json:"quantity"  validate:"required,gt=0"`
	Price     decimal.Decimal `json:"price"`
}

type NewSupply struct {
	SupplierID int64               `json:"supplierId" validate:"required,gt=0"`
	Date       string              `json:"date"       validate:"omitempty,datetime=2006-01-02"`
	Status     string              `json:"status"`
	LineItems  []NewSupplyLineItem `json:"lineItems"  validate:"required,min=1,dive"`
}

type CustomerContact struct {
	FirstName  string `json:"firstName"  validate:"required,max=100"`
	LastName   string `json:"lastName"   validate:"required,max=100"`
	MiddleName string `json:"middleName" validate:"max=100"`
	Phone      string `json:"phone"      validate:"max=32"`
	Email      string `json:"email"      validate:"omitempty,email,max=255"`
	Address    string `json:"address"    validate:"max=255"`
}

type OrderSummary struct {
	ID           int64           `json:"id"`
	Date         string          `json:"date"`
	Status       string          `json:"status"`
	PaymentType  string          `json:"paymentType"`
	TotalSum     decimal.Decimal `json:"totalSum"`
	CustomerID   int64           `json:"customerId"`
	CustomerName string          `json:"customerName"`
	ManagerID    int64           `json:"managerId"`
	ManagerName  string          `json:"managerName"`
}

type OrderDetails struct {
	OrderSummary

	DeliveryID     int64          `json:"deliveryId"`
	DeliveryWindow DeliveryWindow `json:"deliveryWindow"`
}

type OrderLineItemView struct {
	ProductID       int64           `json:"productId"`
	ProductName     string          `json:"productName"`
	Unit            string          `json:"unit"`
	Quantity        int             `json:"quantity"`
	CatalogPrice    decimal.Decimal `json:"catalogPrice"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	Price           decimal.Decimal `json:"price"`
	Total           decimal.Decimal `json:"total"`
}

type OrderDelivery struct {
	DeliveryID        int64  `json:"deliveryId"`
	DateFrom          string `json:"dateFrom"`
	DateTo            string `json:"dateTo"`
	DocumentID        int64  `json:"documentId"`
	DocumentDate      string `json:"documentDate"`
	SignatureBase     bool   `json:"signatureBase"`
	SignatureCustomer bool   `json:"signatureCustomer"`
}

type SupplySummary struct {
	ID           int64           `json:"id"`
	SupplierID   int64           `json:"supplierId"`
	SupplierName string          `json:"supplierName"`
	DocumentID   int64           `json:"documentId"`
	Date         string          `json:"date"`
	Status       string          `json:"status"`
	TotalCost    decimal.Decimal `json:"totalCost"`
}

type SupplyLineItemView struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Unit        string          `json:"unit"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

type Customer struct {
	CustomerContact

	ID           int64  `json:"id"`
	RegisteredAt string `json:"registeredAt"`
}

type Manager struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	MinQuantity int             `json:"minQuantity"`
}

type Supplier struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type WarehouseStock struct {
	WarehouseID      int64  `json:"warehouseId"`
	WarehouseAddress string `json:"warehouseAddress"`
	ProductID        int64  `json:"productId"`
	ProductName      string `json:"productName"`
	Quantity         int    `json:"quantity"`
	MinQuantity      int    `json:"minQuantity"`
	LowStock         bool   `json:"lowStock"`
}

type ListOrdersParams struct {
	Status *string `form:"status" json:"status,omitempty"`
	Limit  *int    `form:"limit"  json:"limit,omitempty"`
	Offset *int    `form:"offset" json:"offset,omitempty"`
}

type ListSuppliesParams struct {
	Status *string `form:"status" json:"status,omitempty"`
	Limit  *int    `form:"limit"  json:"limit,omitempty"`
	Offset *int    `form:"offset" json:"offset,omitempty"`
}

type ListWarehouseStockParams struct {
	WarehouseID *int64 `form:"warehouseId" json:"warehouseId,omitempty"`
	LowStock    *bool  `form:"lowStock"    json:"lowStock,omitempty"`
}
