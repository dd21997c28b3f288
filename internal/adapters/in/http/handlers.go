package http

import (
	"context"

	"wholesale/internal/core/application/usecases/commands"
	"wholesale/internal/core/application/usecases/queries"
	"wholesale/internal/core/domain/model/kernel"
)

// Use case ports the server calls. Command handlers are passed by pointer,
// query handlers by value.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (kernel.ID, error)
	}
	ReplaceOrderLineItemsHandler interface {
		Handle(ctx context.Context, cmd commands.ReplaceOrderLineItemsCommand) error
	}
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
	}

	CreateSupplyHandler interface {
		Handle(ctx context.Context, cmd commands.CreateSupplyCommand) (kernel.ID, error)
	}
	DeleteSupplyHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteSupplyCommand) error
	}
	ChangeSupplyStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeSupplyStatusCommand) error
	}

	CustomerHandler interface {
		Create(ctx context.Context, cmd commands.CreateCustomerCommand) (kernel.ID, error)
		Update(ctx context.Context, cmd commands.UpdateCustomerCommand) error
		Delete(ctx context.Context, cmd commands.DeleteCustomerCommand) error
	}

	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderSummary, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderDetails, error)
	}
	GetOrderLineItemsHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) ([]queries.OrderLineItemView, error)
	}
	GetOrderDeliveryHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderDeliveryView, error)
	}
	ListSuppliesHandler interface {
		Handle(ctx context.Context, query queries.ListSuppliesQuery) ([]queries.SupplySummary, error)
	}
	GetSupplyLineItemsHandler interface {
		Handle(ctx context.Context, query queries.GetSupplyQuery) ([]queries.SupplyLineItemView, error)
	}

	CatalogReader interface {
		ListCustomers(ctx context.Context) ([]queries.CustomerView, error)
		ListManagers(ctx context.Context) ([]queries.ManagerView, error)
		ListProducts(ctx context.Context) ([]queries.ProductView, error)
		ListSuppliers(ctx context.Context) ([]queries.SupplierView, error)
		ListWarehouseStock(ctx context.Context, query queries.ListWarehouseStockQuery) ([]queries.WarehouseStockView, error)
	}
)

// Handlers bundles the use cases behind the API.
type Handlers struct {
	CreateOrder           CreateOrderHandler
	ReplaceOrderLineItems ReplaceOrderLineItemsHandler
	DeleteOrder           DeleteOrderHandler
	ChangeOrderStatus     ChangeOrderStatusHandler

	CreateSupply       CreateSupplyHandler
	DeleteSupply       DeleteSupplyHandler
	ChangeSupplyStatus ChangeSupplyStatusHandler

	Customers CustomerHandler

	ListOrders         ListOrdersHandler
	GetOrder           GetOrderHandler
	GetOrderLineItems  GetOrderLineItemsHandler
	GetOrderDelivery   GetOrderDeliveryHandler
	ListSupplies       ListSuppliesHandler
	GetSupplyLineItems GetSupplyLineItemsHandler
	Catalog            CatalogReader
}
