package commands_test

import (
	"errors"
	"testing"
	"time"

	"wholesale/internal/core/application/usecases/commands"
	"wholesale/internal/core/domain/model/catalog"
	"wholesale/internal/core/domain/model/delivery"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, id kernel.ID, status order.Status) *order.Order {
	t.Helper()
	items := []order.LineItem{
		order.RestoreLineItem(5, 2, decimal.Zero, decimal.NewFromInt(100)),
		order.RestoreLineItem(6, 1, decimal.Zero, decimal.NewFromInt(40)),
	}
	o, err := order.RestoreOrder(id, 1, 1, 20, time.Now(), status, order.PaymentCash, items)
	require.NoError(t, err)
	return o
}

func TestReplaceOrderLineItemsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReplaceOrderLineItemsCommand(42, []commands.OrderLineItem{
		{ProductID: 7, Quantity: 4, DiscountPercent: decimal.NewFromInt(50)},
	})
	require.NoError(t, err)

	o := storedOrder(t, 42, order.Confirmed)
	orders := new(MockOrderRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, kernel.ID(42)).Return(o, nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetProducts", ctx, []kernel.ID{7}).Return(map[kernel.ID]catalog.Product{
			7: {ID: 7, Price: decimal.RequireFromString("30.00")},
		}, nil).Once(),
		orders.On("DeleteLineItems", ctx, kernel.ID(42)).Return(int64(2), nil).Once(),
		orders.On("AddLineItems", ctx, o).Return(nil).Once(),
		orders.On("Update", ctx, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return().Once(),
	)

	h := commands.NewReplaceOrderLineItemsCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Len(t, o.LineItems(), 1)
	assert.Equal(t, "60", o.TotalSum().String())
	uow.AssertExpectations(t)
	orders.AssertExpectations(t)
	catalogRepo.AssertExpectations(t)
}

func TestReplaceOrderLineItemsCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReplaceOrderLineItemsCommand(42, []commands.OrderLineItem{{ProductID: 7, Quantity: 1}})
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, kernel.ID(42)).Return(nil, errs.NewObjectNotFoundError("order", kernel.ID(42))).Once(),
		uow.On("Rollback", ctx).Return().Once(),
	)

	h := commands.NewReplaceOrderLineItemsCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orders.AssertNotCalled(t, "DeleteLineItems", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestReplaceOrderLineItemsCommandHandler_Handle_InsertFailsAfterDelete(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReplaceOrderLineItemsCommand(42, []commands.OrderLineItem{{ProductID: 7, Quantity: 1}})
	require.NoError(t, err)

	o := storedOrder(t, 42, order.New)
	orders := new(MockOrderRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, kernel.ID(42)).Return(o, nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("GetProducts", ctx, []kernel.ID{7}).Return(map[kernel.ID]catalog.Product{
			7: {ID: 7, Price: decimal.NewFromInt(1)},
		}, nil).Once(),
		orders.On("DeleteLineItems", ctx, kernel.ID(42)).Return(int64(2), nil).Once(),
		orders.On("AddLineItems", ctx, o).Return(errs.NewTransientStoreError("insert order line items", errors.New("deadlock"))).Once(),
		uow.On("Rollback", ctx).Return().Once(),
	)

	h := commands.NewReplaceOrderLineItemsCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrTransientStore)
	assert.True(t, errs.IsRetryable(err))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestNewReplaceOrderLineItemsCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewReplaceOrderLineItemsCommand(42, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestDeleteOrderCommandHandler_Handle_CascadesToDelivery(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteOrderCommand(42)
	require.NoError(t, err)

	o := storedOrder(t, 42, order.New)
	window, err := kernel.NewDateRange(time.Now(), time.Now())
	require.NoError(t, err)
	d := delivery.RestoreDelivery(20, 10, window)

	orders := new(MockOrderRepository)
	deliveries := new(MockDeliveryRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, kernel.ID(42)).Return(o, nil).Once(),
		orders.On("DeleteLineItems", ctx, kernel.ID(42)).Return(int64(2), nil).Once(),
		orders.On("Delete", ctx, kernel.ID(42)).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveries).Once(),
		deliveries.On("Get", ctx, kernel.ID(20)).Return(d, nil).Once(),
		deliveries.On("Delete", ctx, []kernel.ID{20}).Return(int64(1), nil).Once(),
		deliveries.On("DeleteDocuments", ctx, []kernel.ID{10}).Return(int64(1), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return().Once(),
	)

	h := commands.NewDeleteOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
	orders.AssertExpectations(t)
	deliveries.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_NotFoundDeletesNothing(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteOrderCommand(42)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, kernel.ID(42)).Return(nil, errs.NewObjectNotFoundError("order", kernel.ID(42))).Once(),
		uow.On("Rollback", ctx).Return().Once(),
	)

	h := commands.NewDeleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orders.AssertNotCalled(t, "DeleteLineItems", mock.Anything, mock.Anything)
	orders.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_MissingDeliveryStillCommits(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteOrderCommand(42)
	require.NoError(t, err)

	o := storedOrder(t, 42, order.New)
	orders := new(MockOrderRepository)
	deliveries := new(MockDeliveryRepository)
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("GetForUpdate", ctx, kernel.ID(42)).Return(o, nil).Once(),
		orders.On("DeleteLineItems", ctx, kernel.ID(42)).Return(int64(2), nil).Once(),
		orders.On("Delete", ctx, kernel.ID(42)).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveries).Once(),
		deliveries.On("Get", ctx, kernel.ID(20)).Return(nil, errs.NewObjectNotFoundError("delivery", kernel.ID(20))).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return().Once(),
	)

	h := commands.NewDeleteOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	deliveries.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle(t *testing.T) {
	testCases := []struct {
		name    string
		from    order.Status
		to      order.Status
		wantErr error
	}{
		{"new to confirmed", order.New, order.Confirmed, nil},
		{"shipped to completed", order.Shipped, order.Completed, nil},
		{"skipping a step", order.New, order.Shipped, errs.ErrValueIsInvalid},
		{"leaving completed", order.Completed, order.New, errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewChangeOrderStatusCommand(42, tc.to)
			require.NoError(t, err)

			o := storedOrder(t, 42, tc.from)
			orders := new(MockOrderRepository)
			uow := new(MockUoW)
			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(orders).Once()
			orders.On("GetForUpdate", ctx, kernel.ID(42)).Return(o, nil).Once()
			uow.On("Rollback", ctx).Return().Once()
			if tc.wantErr == nil {
				orders.On("Update", ctx, o).Return(nil).Once()
				uow.On("Commit", ctx).Return(nil).Once()
			}

			h := commands.NewChangeOrderStatusCommandHandler(factory)
			err = h.Handle(ctx, cmd)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Equal(t, tc.from, o.Status())
				orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.to, o.Status())
			}
			uow.AssertExpectations(t)
			orders.AssertExpectations(t)
		})
	}
}

func TestNewChangeOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(42, order.Unknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
