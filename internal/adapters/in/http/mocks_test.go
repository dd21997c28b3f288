package http_test

import (
	"context"

	"wholesale/internal/core/application/usecases/commands"
	"wholesale/internal/core/application/usecases/queries"
	"wholesale/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrderHandler struct {
	mock.Mock
}

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.ID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.ID), args.Error(1)
}

type MockDeleteOrderHandler struct {
	mock.Mock
}

func (m *MockDeleteOrderHandler) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockChangeOrderStatusHandler struct {
	mock.Mock
}

func (m *MockChangeOrderStatusHandler) Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateSupplyHandler struct {
	mock.Mock
}

func (m *MockCreateSupplyHandler) Handle(ctx context.Context, cmd commands.CreateSupplyCommand) (kernel.ID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.ID), args.Error(1)
}

type MockCustomerHandler struct {
	mock.Mock
}

func (m *MockCustomerHandler) Create(ctx context.Context, cmd commands.CreateCustomerCommand) (kernel.ID, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockCustomerHandler) Update(ctx context.Context, cmd commands.UpdateCustomerCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

func (m *MockCustomerHandler) Delete(ctx context.Context, cmd commands.DeleteCustomerCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockListOrdersHandler struct {
	mock.Mock
}

func (m *MockListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderSummary, error) {
	args := m.Called(ctx, query)
	o, _ := args.Get(0).([]queries.OrderSummary)
	return o, args.Error(1)
}
