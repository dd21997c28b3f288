package deliveryrepo

import (
	"time"

	"wholesale/internal/core/domain/model/delivery"
	"wholesale/internal/core/domain/model/kernel"
)

type DocumentDTO struct {
	ID                int64     `gorm:"primaryKey"`
	Date              time.Time `gorm:"type:date;not null"`
	SignatureBase     bool      `gorm:"not null;default:false"`
	SignatureCustomer bool      `gorm:"not null;default:false"`
}

func (DocumentDTO) TableName() string {
	return "delivery_documents"
}

// DeliveryDTO stores the delivery window. The document row must exist first.
type DeliveryDTO struct {
	ID         int64        `gorm:"primaryKey"`
	DocumentID int64        `gorm:"not null;index"`
	Document   *DocumentDTO `gorm:"foreignKey:DocumentID;constraint:OnDelete:RESTRICT"`
	DateFrom   time.Time    `gorm:"type:date;not null"`
	DateTo     time.Time    `gorm:"type:date;not null"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func documentFromDomain(doc *delivery.Document) DocumentDTO {
	return DocumentDTO{
		Date:              doc.Date(),
		SignatureBase:     doc.SignatureBase(),
		SignatureCustomer: doc.SignatureCustomer(),
	}
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:         d.ID().Int64(),
		DocumentID: d.DocumentID().Int64(),
		DateFrom:   d.Window().From(),
		DateTo:     d.Window().To(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	window, err := kernel.NewDateRange(dto.DateFrom, dto.DateTo)
	if err != nil {
		return nil, err
	}
	return delivery.RestoreDelivery(kernel.ID(dto.ID), kernel.ID(dto.DocumentID), window), nil
}
