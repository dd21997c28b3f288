package commands_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	postgres_adapter "wholesale/internal/adapters/out/postgres"
	"wholesale/internal/adapters/out/postgres/pgtest"
	"wholesale/internal/core/application/usecases/commands"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/core/domain/model/supply"
	"wholesale/internal/core/ports"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type orderUoWs struct{ f ports.UnitOfWorkFactory }

func (a orderUoWs) Create() commands.OrderUoW { return a.f.Create() }

type supplyUoWs struct{ f ports.UnitOfWorkFactory }

func (a supplyUoWs) Create() commands.SupplyUoW { return a.f.Create() }

type HandlersIntegrationTestSuite struct {
	suite.Suite
	pg       *pgtest.Database
	factory  ports.UnitOfWorkFactory
	customer kernel.ID
	manager  kernel.ID
	supplier kernel.ID
	product5 kernel.ID
	product6 kernel.ID
}

func (s *HandlersIntegrationTestSuite) SetupSuite() {
	pg, err := pgtest.Start(context.Background())
	s.Require().NoError(err)
	s.pg = pg
	s.factory = postgres_adapter.NewGormUnitOfWorkFactory(pg.DB, postgres_adapter.UnitOfWorkConfig{}, slog.Default())
}

func (s *HandlersIntegrationTestSuite) TearDownSuite() {
	s.Require().NoError(s.pg.Terminate(context.Background()))
}

func (s *HandlersIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.pg.Truncate())

	customer, err := s.pg.SeedCustomer("Petrov")
	s.Require().NoError(err)
	manager, err := s.pg.SeedManager("Orlova")
	s.Require().NoError(err)
	supplier, err := s.pg.SeedSupplier("Nord Trade")
	s.Require().NoError(err)
	p5, err := s.pg.SeedProduct("Copper wire", "100", 10)
	s.Require().NoError(err)
	p6, err := s.pg.SeedProduct("Steel bolt", "40", 100)
	s.Require().NoError(err)

	s.customer, s.manager, s.supplier = kernel.ID(customer), kernel.ID(manager), kernel.ID(supplier)
	s.product5, s.product6 = kernel.ID(p5), kernel.ID(p6)
}

func (s *HandlersIntegrationTestSuite) createOrder(items ...commands.OrderLineItem) (kernel.ID, error) {
	window, err := kernel.NewDateRange(time.Now(), time.Now().AddDate(0, 0, 3))
	s.Require().NoError(err)
	cmd, err := commands.NewCreateOrderCommand(s.customer, s.manager, order.PaymentCash, window, items)
	s.Require().NoError(err)

	h := commands.NewCreateOrderCommandHandler(orderUoWs{s.factory})
	return h.Handle(s.T().Context(), cmd)
}

func (s *HandlersIntegrationTestSuite) count(table string) int64 {
	n, err := s.pg.Count(table)
	s.Require().NoError(err)
	return n
}

func (s *HandlersIntegrationTestSuite) TestCreateOrder_TotalSumFromCatalog() {
	id, err := s.createOrder(commands.OrderLineItem{ProductID: s.product5, Quantity: 2})
	s.Require().NoError(err)

	var total decimal.Decimal
	s.Require().NoError(s.pg.DB.Raw(`SELECT total_sum FROM orders WHERE id = ?`, id.Int64()).Scan(&total).Error)
	s.Equal("200", total.String())
	s.Equal(int64(1), s.count("order_line_items"))
	s.Equal(int64(1), s.count("deliveries"))
	s.Equal(int64(1), s.count("delivery_documents"))
}

func (s *HandlersIntegrationTestSuite) TestCreateOrder_UnknownProductLeavesNothing() {
	_, err := s.createOrder(
		commands.OrderLineItem{ProductID: s.product5, Quantity: 2},
		commands.OrderLineItem{ProductID: 9999, Quantity: 1},
	)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)

	for _, table := range []string{"orders", "order_line_items", "deliveries", "delivery_documents"} {
		s.Zero(s.count(table), table)
	}
}

func (s *HandlersIntegrationTestSuite) TestReplaceOrderLineItems_RecomputesTotal() {
	id, err := s.createOrder(commands.OrderLineItem{ProductID: s.product5, Quantity: 2})
	s.Require().NoError(err)

	cmd, err := commands.NewReplaceOrderLineItemsCommand(id, []commands.OrderLineItem{
		{ProductID: s.product6, Quantity: 3, DiscountPercent: decimal.NewFromInt(50)},
	})
	s.Require().NoError(err)
	h := commands.NewReplaceOrderLineItemsCommandHandler(orderUoWs{s.factory})
	s.Require().NoError(h.Handle(s.T().Context(), cmd))

	var total decimal.Decimal
	s.Require().NoError(s.pg.DB.Raw(`SELECT total_sum FROM orders WHERE id = ?`, id.Int64()).Scan(&total).Error)
	s.Equal("60", total.String())
	s.Equal(int64(1), s.count("order_line_items"))
}

func (s *HandlersIntegrationTestSuite) TestDeleteOrder_CascadesAndRejectsRetry() {
	id, err := s.createOrder(
		commands.OrderLineItem{ProductID: s.product5, Quantity: 2},
		commands.OrderLineItem{ProductID: s.product6, Quantity: 1},
	)
	s.Require().NoError(err)

	cmd, err := commands.NewDeleteOrderCommand(id)
	s.Require().NoError(err)
	h := commands.NewDeleteOrderCommandHandler(orderUoWs{s.factory})
	s.Require().NoError(h.Handle(s.T().Context(), cmd))

	for _, table := range []string{"orders", "order_line_items", "deliveries", "delivery_documents"} {
		s.Zero(s.count(table), table)
	}

	err = h.Handle(s.T().Context(), cmd)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *HandlersIntegrationTestSuite) TestConcurrentCreatesAreIndependent() {
	const n = 8
	var wg sync.WaitGroup
	errCh := make(chan error, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.createOrder(commands.OrderLineItem{ProductID: s.product5, Quantity: 1})
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	for err := range errCh {
		s.Require().NoError(err)
	}
	s.Equal(int64(n), s.count("orders"))
	s.Equal(int64(n), s.count("order_line_items"))
}

func (s *HandlersIntegrationTestSuite) TestSupplyCreateAndDelete() {
	cmd, err := commands.NewCreateSupplyCommand(s.supplier, time.Now(), supply.Unknown, []commands.SupplyLineItem{
		{ProductID: s.product5, Quantity: 10, Price: decimal.RequireFromString("80")},
		{ProductID: s.product6, Quantity: 100, Price: decimal.RequireFromString("0.5")},
	})
	s.Require().NoError(err)
	create := commands.NewCreateSupplyCommandHandler(supplyUoWs{s.factory})
	id, err := create.Handle(s.T().Context(), cmd)
	s.Require().NoError(err)

	var total decimal.Decimal
	s.Require().NoError(s.pg.DB.Raw(`SELECT total_cost FROM supplies WHERE id = ?`, id.Int64()).Scan(&total).Error)
	s.Equal("850", total.String())

	del, err := commands.NewDeleteSupplyCommand(id)
	s.Require().NoError(err)
	h := commands.NewDeleteSupplyCommandHandler(supplyUoWs{s.factory})
	s.Require().NoError(h.Handle(s.T().Context(), del))

	for _, table := range []string{"supplies", "supply_line_items", "supply_documents"} {
		s.Zero(s.count(table), table)
	}
	s.Require().ErrorIs(h.Handle(s.T().Context(), del), errs.ErrObjectNotFound)
}

func TestHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersIntegrationTestSuite))
}
