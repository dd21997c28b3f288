package commands_test

import (
	"context"

	"wholesale/internal/core/application/usecases/commands"
	"wholesale/internal/core/domain/model/catalog"
	"wholesale/internal/core/domain/model/delivery"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/core/domain/model/supply"
	"wholesale/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) AddLineItems(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) DeleteLineItems(ctx context.Context, id kernel.ID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) AddDocument(ctx context.Context, doc *delivery.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.ID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*delivery.Delivery)
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) ListUnreferenced(ctx context.Context, limit int) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, limit)
	d, _ := args.Get(0).([]*delivery.Delivery)
	return d, args.Error(1)
}

func (m *MockDeliveryRepository) Delete(ctx context.Context, ids ...kernel.ID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDeliveryRepository) DeleteDocuments(ctx context.Context, ids ...kernel.ID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

type MockSupplyRepository struct{ mock.Mock }

func (m *MockSupplyRepository) AddDocument(ctx context.Context, doc *supply.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockSupplyRepository) Add(ctx context.Context, s *supply.Supply) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSupplyRepository) AddLineItems(ctx context.Context, s *supply.Supply) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSupplyRepository) Get(ctx context.Context, id kernel.ID) (*supply.Supply, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*supply.Supply)
	return s, args.Error(1)
}

func (m *MockSupplyRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*supply.Supply, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*supply.Supply)
	return s, args.Error(1)
}

func (m *MockSupplyRepository) Update(ctx context.Context, s *supply.Supply) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSupplyRepository) DeleteLineItems(ctx context.Context, id kernel.ID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupplyRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSupplyRepository) DeleteDocument(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) GetProducts(ctx context.Context, ids []kernel.ID) (map[kernel.ID]catalog.Product, error) {
	args := m.Called(ctx, ids)
	p, _ := args.Get(0).(map[kernel.ID]catalog.Product)
	return p, args.Error(1)
}

func (m *MockCatalogRepository) CustomerExists(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogRepository) ManagerExists(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogRepository) SupplierExists(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogRepository) AddCustomer(ctx context.Context, c *catalog.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateCustomer(ctx context.Context, c *catalog.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCatalogRepository) DeleteCustomer(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUoW implements every narrowed unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) SupplyRepository() ports.SupplyRepository {
	args := m.Called()
	return args.Get(0).(ports.SupplyRepository)
}

func (m *MockUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockSupplyUoWFactory struct{ mock.Mock }

func (m *MockSupplyUoWFactory) Create() commands.SupplyUoW {
	args := m.Called()
	return args.Get(0).(commands.SupplyUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}
