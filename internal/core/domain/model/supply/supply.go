package supply

import (
	"errors"
	"fmt"
	"time"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrSupplyIsNotConstructed   = errors.New("Supply must be created via NewSupply constructor")
	ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument constructor")
	ErrIDIsAlreadySet           = errors.New("supply id is already assigned")
)

// Document is the supply's accompanying paperwork. It is created first and
// deleted last.
type Document struct {
	id   kernel.ID
	date time.Time

	isConstructed bool
}

func NewDocument(date time.Time) (*Document, error) {
	if date.IsZero() {
		return nil, errs.NewValueIsRequiredError("date")
	}
	return &Document{date: kernel.Day(date), isConstructed: true}, nil
}

func (d *Document) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDocumentIsNotConstructed
	}
	return nil
}

func (d *Document) ID() kernel.ID   { return d.id }
func (d *Document) Date() time.Time { return d.date }

func (d *Document) AssignID(id kernel.ID) error {
	if !d.id.IsZero() {
		return ErrIDIsAlreadySet
	}
	if err := id.Validate("supplyDocumentId"); err != nil {
		return err
	}
	d.id = id
	return nil
}

// LineItem is a product delivered by a supplier at the agreed price.
type LineItem struct {
	productID kernel.ID
	quantity  int
	price     decimal.Decimal
}

func NewLineItem(productID kernel.ID, quantity int, price decimal.Decimal) (LineItem, error) {
	var errQuantity, errPrice error
	if quantity <= 0 {
		errQuantity = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	if !price.IsPositive() {
		errPrice = errs.NewValueIsOutOfRangeError("price", price, "0 exclusive", "unbounded")
	}
	if err := errors.Join(productID.Validate("productId"), errQuantity, errPrice); err != nil {
		return LineItem{}, err
	}

	return LineItem{productID: productID, quantity: quantity, price: kernel.RoundMoney(price)}, nil
}

func RestoreLineItem(productID kernel.ID, quantity int, price decimal.Decimal) LineItem {
	return LineItem{productID: productID, quantity: quantity, price: price}
}

func (li LineItem) ProductID() kernel.ID {
	return li.productID
}

func (li LineItem) Quantity() int {
	return li.quantity
}

func (li LineItem) Price() decimal.Decimal {
	return li.price
}

func (li LineItem) Total() decimal.Decimal {
	return kernel.LineTotal(li.price, li.quantity)
}

// Supply is the aggregate root of a supplier delivery.
type Supply struct {
	id         kernel.ID
	supplierID kernel.ID
	documentID kernel.ID

	date      time.Time
	status    Status
	totalCost decimal.Decimal
	lineItems []LineItem

	isConstructed bool
}

func NewSupply(
	supplierID, documentID kernel.ID,
	date time.Time,
	status Status,
	lineItems []LineItem,
) (*Supply, error) {
	s := &Supply{
		date:          kernel.Day(date),
		isConstructed: true,
	}

	var errDate error
	if date.IsZero() {
		errDate = errs.NewValueIsRequiredError("date")
	}

	if err := errors.Join(
		s.setSupplierID(supplierID),
		s.setDocumentID(documentID),
		errDate,
		s.setStatus(status),
		s.setLineItems(lineItems),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func RestoreSupply(
	id, supplierID, documentID kernel.ID,
	date time.Time,
	status Status,
	lineItems []LineItem,
) (*Supply, error) {
	if err := errors.Join(id.Validate("supplyId"), status.Validate()); err != nil {
		return nil, err
	}

	s := &Supply{
		id:            id,
		supplierID:    supplierID,
		documentID:    documentID,
		date:          date,
		status:        status,
		lineItems:     append([]LineItem(nil), lineItems...),
		isConstructed: true,
	}
	s.recalculateTotal()
	return s, nil
}

func (s *Supply) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSupplyIsNotConstructed
	}
	return nil
}

func (s *Supply) ID() kernel.ID {
	return s.id
}

func (s *Supply) SupplierID() kernel.ID {
	return s.supplierID
}

func (s *Supply) DocumentID() kernel.ID {
	return s.documentID
}

func (s *Supply) Date() time.Time {
	return s.date
}

func (s *Supply) Status() Status {
	return s.status
}

func (s *Supply) TotalCost() decimal.Decimal {
	return s.totalCost
}

func (s *Supply) LineItems() []LineItem {
	return append([]LineItem(nil), s.lineItems...)
}

func (s *Supply) AssignID(id kernel.ID) error {
	if !s.id.IsZero() {
		return ErrIDIsAlreadySet
	}
	if err := id.Validate("supplyId"); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Supply) ChangeStatus(target Status) error {
	next, err := s.status.TransitionTo(target)
	if err != nil {
		return err
	}
	s.status = next
	return nil
}

func (s *Supply) recalculateTotal() {
	total := decimal.Zero
	for _, li := range s.lineItems {
		total = total.Add(li.Total())
	}
	s.totalCost = kernel.RoundMoney(total)
}

func (s *Supply) setSupplierID(id kernel.ID) error {
	if err := id.Validate("supplierId"); err != nil {
		return err
	}
	s.supplierID = id
	return nil
}

func (s *Supply) setDocumentID(id kernel.ID) error {
	if err := id.Validate("supplyDocumentId"); err != nil {
		return err
	}
	s.documentID = id
	return nil
}

func (s *Supply) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Supply) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}

	seen := make(map[kernel.ID]struct{}, len(lineItems))
	for _, li := range lineItems {
		if _, dup := seen[li.ProductID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"lineItems", fmt.Errorf("product %s appears more than once", li.ProductID()))
		}
		seen[li.ProductID()] = struct{}{}
	}

	s.lineItems = append([]LineItem(nil), lineItems...)
	s.recalculateTotal()
	return nil
}
