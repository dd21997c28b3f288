// Package orderrepo maps order aggregates onto the orders and order_line_items
// tables.
package orderrepo

import (
	"time"

	"wholesale/internal/adapters/out/postgres/catalogrepo"
	"wholesale/internal/adapters/out/postgres/deliveryrepo"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the order header. Foreign keys restrict deletes of the
// referenced customer, manager and delivery while the order exists.
type OrderDTO struct {
	ID          int64                     `gorm:"primaryKey"`
	CustomerID  int64                     `gorm:"not null;index"`
	Customer    *catalogrepo.CustomerDTO  `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	ManagerID   int64                     `gorm:"not null;index"`
	Manager     *catalogrepo.ManagerDTO   `gorm:"foreignKey:ManagerID;constraint:OnDelete:RESTRICT"`
	DeliveryID  int64                     `gorm:"not null;index"`
	Delivery    *deliveryrepo.DeliveryDTO `gorm:"foreignKey:DeliveryID;constraint:OnDelete:RESTRICT"`
	Date        time.Time                 `gorm:"type:date;not null"`
	Status      int                       `gorm:"not null;index"`
	PaymentType int                       `gorm:"not null"`
	TotalSum    decimal.Decimal           `gorm:"type:numeric(20,2);not null;default:0"`
	LineItems   []LineItemDTO             `gorm:"foreignKey:OrderID;constraint:OnDelete:RESTRICT"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO stores the price actually charged, discount already applied.
type LineItemDTO struct {
	OrderID         int64                   `gorm:"primaryKey;autoIncrement:false"`
	ProductID       int64                   `gorm:"primaryKey;autoIncrement:false"`
	Product         *catalogrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	Quantity        int                     `gorm:"not null;check:chk_order_line_items_quantity,quantity > 0"`
	DiscountPercent decimal.Decimal         `gorm:"type:numeric(5,2);not null;default:0"`
	Price           decimal.Decimal         `gorm:"type:numeric(20,2);not null"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:          o.ID().Int64(),
		CustomerID:  o.CustomerID().Int64(),
		ManagerID:   o.ManagerID().Int64(),
		DeliveryID:  o.DeliveryID().Int64(),
		Date:        o.Date(),
		Status:      int(o.Status()),
		PaymentType: int(o.PaymentType()),
		TotalSum:    o.TotalSum(),
	}
}

func lineItemsFromDomain(o *order.Order) []LineItemDTO {
	items := o.LineItems()
	dtos := make([]LineItemDTO, 0, len(items))
	for _, li := range items {
		dtos = append(dtos, LineItemDTO{
			OrderID:         o.ID().Int64(),
			ProductID:       li.ProductID().Int64(),
			Quantity:        li.Quantity(),
			DiscountPercent: li.DiscountPercent(),
			Price:           li.Price(),
		})
	}
	return dtos
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.LineItem, 0, len(dto.LineItems))
	for _, li := range dto.LineItems {
		items = append(items, order.RestoreLineItem(
			kernel.ID(li.ProductID), li.Quantity, li.DiscountPercent, li.Price,
		))
	}

	return order.RestoreOrder(
		kernel.ID(dto.ID),
		kernel.ID(dto.CustomerID),
		kernel.ID(dto.ManagerID),
		kernel.ID(dto.DeliveryID),
		dto.Date,
		order.Status(dto.Status),
		order.PaymentType(dto.PaymentType),
		items,
	)
}
