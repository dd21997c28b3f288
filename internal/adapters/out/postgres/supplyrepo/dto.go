// Package supplyrepo maps supply aggregates and their documents onto the
// supply_documents, supplies and supply_line_items tables.
package supplyrepo

import (
	"time"

	"wholesale/internal/adapters/out/postgres/catalogrepo"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/supply"

	"github.com/shopspring/decimal"
)

type DocumentDTO struct {
	ID   int64     `gorm:"primaryKey"`
	Date time.Time `gorm:"type:date;not null"`
}

func (DocumentDTO) TableName() string {
	return "supply_documents"
}

type SupplyDTO struct {
	ID         int64                    `gorm:"primaryKey"`
	SupplierID int64                    `gorm:"not null;index"`
	Supplier   *catalogrepo.SupplierDTO `gorm:"foreignKey:SupplierID;constraint:OnDelete:RESTRICT"`
	DocumentID int64                    `gorm:"not null;uniqueIndex"`
	Document   *DocumentDTO             `gorm:"foreignKey:DocumentID;constraint:OnDelete:RESTRICT"`
	Date       time.Time                `gorm:"type:date;not null"`
	Status     int                      `gorm:"not null;index"`
	TotalCost  decimal.Decimal          `gorm:"type:numeric(20,2);not null;default:0"`
	LineItems  []LineItemDTO            `gorm:"foreignKey:SupplyID;constraint:OnDelete:RESTRICT"`
}

func (SupplyDTO) TableName() string {
	return "supplies"
}

type LineItemDTO struct {
	SupplyID  int64                   `gorm:"primaryKey;autoIncrement:false"`
	ProductID int64                   `gorm:"primaryKey;autoIncrement:false"`
	Product   *catalogrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	Quantity  int                     `gorm:"not null;check:chk_supply_line_items_quantity,quantity > 0"`
	Price     decimal.Decimal         `gorm:"type:numeric(20,2);not null"`
}

func (LineItemDTO) TableName() string {
	return "supply_line_items"
}

func fromDomain(s *supply.Supply) SupplyDTO {
	return SupplyDTO{
		ID:         s.ID().Int64(),
		SupplierID: s.SupplierID().Int64(),
		DocumentID: s.DocumentID().Int64(),
		Date:       s.Date(),
		Status:     int(s.Status()),
		TotalCost:  s.TotalCost(),
	}
}

func lineItemsFromDomain(s *supply.Supply) []LineItemDTO {
	items := s.LineItems()
	dtos := make([]LineItemDTO, 0, len(items))
	for _, li := range items {
		dtos = append(dtos, LineItemDTO{
			SupplyID:  s.ID().Int64(),
			ProductID: li.ProductID().Int64(),
			Quantity:  li.Quantity(),
			Price:     li.Price(),
		})
	}
	return dtos
}

func toDomain(dto SupplyDTO) (*supply.Supply, error) {
	items := make([]supply.LineItem, 0, len(dto.LineItems))
	for _, li := range dto.LineItems {
		items = append(items, supply.RestoreLineItem(kernel.ID(li.ProductID), li.Quantity, li.Price))
	}

	return supply.RestoreSupply(
		kernel.ID(dto.ID),
		kernel.ID(dto.SupplierID),
		kernel.ID(dto.DocumentID),
		dto.Date,
		supply.Status(dto.Status),
		items,
	)
}
