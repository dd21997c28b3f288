package cmd

import (
	"log/slog"

	httpin "wholesale/internal/adapters/in/http"
	"wholesale/internal/adapters/out/postgres"
	"wholesale/internal/adapters/out/postgres/pgerr"
	"wholesale/internal/core/application/usecases/commands"
	"wholesale/internal/core/application/usecases/queries"
	"wholesale/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs: configs,
		gormDB:  gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, postgres.UnitOfWorkConfig{
			MaxConcurrent:  configs.DBMaxConcurrent,
			AcquireTimeout: configs.DBAcquireTimeout,
		}, logger),
		logger: logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) supplyUoWFactory() commands.SupplyUoWFactory {
	return FuncSupplyUoWFactory(func() commands.SupplyUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateReplaceOrderLineItemsCommandHandler() *commands.ReplaceOrderLineItemsCommandHandler {
	h := commands.NewReplaceOrderLineItemsCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	h := commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() *commands.ChangeOrderStatusCommandHandler {
	h := commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateSupplyCommandHandler() *commands.CreateSupplyCommandHandler {
	h := commands.NewCreateSupplyCommandHandler(c.supplyUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteSupplyCommandHandler() *commands.DeleteSupplyCommandHandler {
	h := commands.NewDeleteSupplyCommandHandler(c.supplyUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateChangeSupplyStatusCommandHandler() *commands.ChangeSupplyStatusCommandHandler {
	h := commands.NewChangeSupplyStatusCommandHandler(c.supplyUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCustomerCommandHandler() *commands.CustomerCommandHandler {
	var f commands.CatalogUoWFactory = FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewCustomerCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateSweepOrphanDeliveriesCommandHandler() *commands.SweepOrphanDeliveriesCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewSweepOrphanDeliveriesCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB, pgerr.Classifier)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, pgerr.Classifier)
}

func (c *CompositionRoot) CreateGetOrderLineItemsQueryHandler() queries.GetOrderLineItemsQueryHandler {
	return queries.NewGetOrderLineItemsQueryHandler(c.gormDB, pgerr.Classifier)
}

func (c *CompositionRoot) CreateGetOrderDeliveryQueryHandler() queries.GetOrderDeliveryQueryHandler {
	return queries.NewGetOrderDeliveryQueryHandler(c.gormDB, pgerr.Classifier)
}

func (c *CompositionRoot) CreateListSuppliesQueryHandler() queries.ListSuppliesQueryHandler {
	return queries.NewListSuppliesQueryHandler(c.gormDB, pgerr.Classifier)
}

func (c *CompositionRoot) CreateGetSupplyLineItemsQueryHandler() queries.GetSupplyLineItemsQueryHandler {
	return queries.NewGetSupplyLineItemsQueryHandler(c.gormDB, pgerr.Classifier)
}

func (c *CompositionRoot) CreateCatalogQueryHandler() queries.CatalogQueryHandler {
	return queries.NewCatalogQueryHandler(c.gormDB, pgerr.Classifier)
}

func (c *CompositionRoot) CreateFindTotalsDriftQueryHandler() queries.FindTotalsDriftQueryHandler {
	return queries.NewFindTotalsDriftQueryHandler(c.gormDB, pgerr.Classifier)
}

// CreateHTTPHandlers bundles every use case the HTTP server exposes.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		ReplaceOrderLineItems: c.CreateReplaceOrderLineItemsCommandHandler(),
		DeleteOrder:           c.CreateDeleteOrderCommandHandler(),
		ChangeOrderStatus:     c.CreateChangeOrderStatusCommandHandler(),

		CreateSupply:       c.CreateCreateSupplyCommandHandler(),
		DeleteSupply:       c.CreateDeleteSupplyCommandHandler(),
		ChangeSupplyStatus: c.CreateChangeSupplyStatusCommandHandler(),

		Customers: c.CreateCustomerCommandHandler(),

		ListOrders:         c.CreateListOrdersQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		GetOrderLineItems:  c.CreateGetOrderLineItemsQueryHandler(),
		GetOrderDelivery:   c.CreateGetOrderDeliveryQueryHandler(),
		ListSupplies:       c.CreateListSuppliesQueryHandler(),
		GetSupplyLineItems: c.CreateGetSupplyLineItemsQueryHandler(),
		Catalog:            c.CreateCatalogQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateFindTotalsDriftQueryHandler(),
		c.CreateSweepOrphanDeliveriesCommandHandler(),
		jobs.Schedules{
			TotalsAudit:      c.configs.TotalsAuditSchedule,
			OrphanSweep:      c.configs.OrphanSweepSchedule,
			OrphanSweepBatch: c.configs.OrphanSweepBatchSize,
		},
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncSupplyUoWFactory func() commands.SupplyUoW

func (f FuncSupplyUoWFactory) Create() commands.SupplyUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
