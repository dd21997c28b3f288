package commands

import (
	"errors"
	"time"

	"wholesale/internal/core/domain/model/catalog"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrUpdateCustomerCommandIsNotConstructed = errors.New(
		"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
	)
	ErrDeleteCustomerCommandIsNotConstructed = errors.New(
		"DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor",
	)
)

// CustomerContact is the editable part of a customer card.
type CustomerContact struct {
	FirstName  string
	LastName   string
	MiddleName string
	Phone      string
	Email      string
	Address    string
}

// newCustomer validates contact through the domain constructor.
func (c CustomerContact) newCustomer(registeredAt time.Time) (*catalog.Customer, error) {
	return catalog.NewCustomer(c.FirstName, c.LastName, c.MiddleName, c.Phone, c.Email, c.Address, registeredAt)
}

type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	contact CustomerContact

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(contact CustomerContact) (CreateCustomerCommand, error) {
	if _, err := contact.newCustomer(time.Now()); err != nil {
		return CreateCustomerCommand{}, err
	}
	return CreateCustomerCommand{contact: contact, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Contact() CustomerContact {
	return c.contact
}

type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID
	contact    CustomerContact

	guard guard.ConstructorGuard
}

func NewUpdateCustomerCommand(customerID kernel.ID, contact CustomerContact) (UpdateCustomerCommand, error) {
	_, errContact := contact.newCustomer(time.Now())
	if err := errors.Join(customerID.Validate("customerId"), errContact); err != nil {
		return UpdateCustomerCommand{}, err
	}
	return UpdateCustomerCommand{
		customerID: customerID,
		contact:    contact,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() kernel.ID {
	return c.customerID
}

func (c UpdateCustomerCommand) Contact() CustomerContact {
	return c.contact
}

type DeleteCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteCustomerCommand(customerID kernel.ID) (DeleteCustomerCommand, error) {
	if err := customerID.Validate("customerId"); err != nil {
		return DeleteCustomerCommand{}, err
	}
	return DeleteCustomerCommand{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

func (c DeleteCustomerCommand) CustomerID() kernel.ID {
	return c.customerID
}
