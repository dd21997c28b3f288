package delivery

import (
	"errors"
	"time"

	"wholesale/internal/core/domain/model/kernel"
)

var (
	ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument constructor")
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
	ErrIDIsAlreadySet           = errors.New("delivery id is already assigned")
)

// Document is the paper trail of a delivery: its date and the two signatures
// (warehouse and customer).
type Document struct {
	id                kernel.ID
	date              time.Time
	signatureBase     bool
	signatureCustomer bool

	isConstructed bool
}

func NewDocument(date time.Time, signatureBase, signatureCustomer bool) (*Document, error) {
	if date.IsZero() {
		date = time.Now()
	}
	return &Document{
		date:              kernel.Day(date),
		signatureBase:     signatureBase,
		signatureCustomer: signatureCustomer,
		isConstructed:     true,
	}, nil
}

func RestoreDocument(id kernel.ID, date time.Time, signatureBase, signatureCustomer bool) *Document {
	return &Document{
		id:                id,
		date:              date,
		signatureBase:     signatureBase,
		signatureCustomer: signatureCustomer,
		isConstructed:     true,
	}
}

func (d *Document) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDocumentIsNotConstructed
	}
	return nil
}

func (d *Document) ID() kernel.ID           { return d.id }
func (d *Document) Date() time.Time         { return d.date }
func (d *Document) SignatureBase() bool     { return d.signatureBase }
func (d *Document) SignatureCustomer() bool { return d.signatureCustomer }

func (d *Document) AssignID(id kernel.ID) error {
	if !d.id.IsZero() {
		return ErrIDIsAlreadySet
	}
	if err := id.Validate("deliveryDocumentId"); err != nil {
		return err
	}
	d.id = id
	return nil
}

// Delivery is the window in which an order is delivered.
type Delivery struct {
	id         kernel.ID
	documentID kernel.ID
	window     kernel.DateRange

	isConstructed bool
}

func NewDelivery(documentID kernel.ID, window kernel.DateRange) (*Delivery, error) {
	if err := errors.Join(documentID.Validate("deliveryDocumentId"), window.Validate()); err != nil {
		return nil, err
	}
	return &Delivery{
		documentID:    documentID,
		window:        window,
		isConstructed: true,
	}, nil
}

func RestoreDelivery(id, documentID kernel.ID, window kernel.DateRange) *Delivery {
	return &Delivery{
		id:            id,
		documentID:    documentID,
		window:        window,
		isConstructed: true,
	}
}

func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

func (d *Delivery) ID() kernel.ID            { return d.id }
func (d *Delivery) DocumentID() kernel.ID    { return d.documentID }
func (d *Delivery) Window() kernel.DateRange { return d.window }

func (d *Delivery) AssignID(id kernel.ID) error {
	if !d.id.IsZero() {
		return ErrIDIsAlreadySet
	}
	if err := id.Validate("deliveryId"); err != nil {
		return err
	}
	d.id = id
	return nil
}
