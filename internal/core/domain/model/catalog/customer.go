package catalog

import (
	"errors"
	"strings"
	"time"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

var validate = validator.New()

type Customer struct {
	id           kernel.ID
	firstName    string
	lastName     string
	middleName   string
	phone        string
	email        string
	address      string
	registeredAt time.Time

	isConstructed bool
}

// NewCustomer validates contact data. Names are required, email is optional
// but must parse when given.
func NewCustomer(firstName, lastName, middleName, phone, email, address string, registeredAt time.Time) (*Customer, error) {
	c := &Customer{
		middleName:    strings.TrimSpace(middleName),
		phone:         strings.TrimSpace(phone),
		address:       strings.TrimSpace(address),
		registeredAt:  kernel.Day(registeredAt),
		isConstructed: true,
	}
	if registeredAt.IsZero() {
		c.registeredAt = kernel.Day(time.Now())
	}

	if err := errors.Join(
		c.setFirstName(firstName),
		c.setLastName(lastName),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func RestoreCustomer(
	id kernel.ID,
	firstName, lastName, middleName, phone, email, address string,
	registeredAt time.Time,
) *Customer {
	return &Customer{
		id:            id,
		firstName:     firstName,
		lastName:      lastName,
		middleName:    middleName,
		phone:         phone,
		email:         email,
		address:       address,
		registeredAt:  registeredAt,
		isConstructed: true,
	}
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.ID           { return c.id }
func (c *Customer) FirstName() string       { return c.firstName }
func (c *Customer) LastName() string        { return c.lastName }
func (c *Customer) MiddleName() string      { return c.middleName }
func (c *Customer) Phone() string           { return c.phone }
func (c *Customer) Email() string           { return c.email }
func (c *Customer) Address() string         { return c.address }
func (c *Customer) RegisteredAt() time.Time { return c.registeredAt }

func (c *Customer) AssignID(id kernel.ID) error {
	if err := id.Validate("customerId"); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setFirstName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	c.firstName = name
	return nil
}

func (c *Customer) setLastName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	c.lastName = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		c.email = ""
		return nil
	}
	if err := validate.Var(email, "email"); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	c.email = email
	return nil
}
