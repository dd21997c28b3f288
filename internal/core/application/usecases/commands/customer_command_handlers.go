package commands

import (
	"context"
	"time"

	"wholesale/internal/core/domain/model/catalog"
	"wholesale/internal/core/domain/model/kernel"
)

// CustomerCommandHandler maintains customer cards. Deleting a customer that
// still has orders fails with errs.ConstraintViolationError.
type CustomerCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCustomerCommandHandler(uowFactory CatalogUoWFactory) CustomerCommandHandler {
	return CustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CustomerCommandHandler) Create(ctx context.Context, cmd CreateCustomerCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	customer, err := cmd.Contact().newCustomer(time.Now())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer uow.Rollback(ctx)

	if err = uow.CatalogRepository().AddCustomer(ctx, customer); err != nil {
		return 0, err
	}
	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return customer.ID(), nil
}

func (h *CustomerCommandHandler) Update(ctx context.Context, cmd UpdateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	contact := cmd.Contact()
	validated, err := contact.newCustomer(time.Now())
	if err != nil {
		return err
	}
	customer := catalog.RestoreCustomer(
		cmd.CustomerID(),
		validated.FirstName(),
		validated.LastName(),
		validated.MiddleName(),
		validated.Phone(),
		validated.Email(),
		validated.Address(),
		validated.RegisteredAt(),
	)

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback(ctx)

	if err = uow.CatalogRepository().UpdateCustomer(ctx, customer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *CustomerCommandHandler) Delete(ctx context.Context, cmd DeleteCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback(ctx)

	if err := uow.CatalogRepository().DeleteCustomer(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
