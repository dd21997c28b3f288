package commands_test

import (
	"testing"
	"time"

	"wholesale/internal/core/application/usecases/commands"
	"wholesale/internal/core/domain/model/catalog"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/supply"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateSupplyCommand_Defaults(t *testing.T) {
	cmd, err := commands.NewCreateSupplyCommand(3, time.Time{}, supply.Unknown, []commands.SupplyLineItem{
		{ProductID: 7, Quantity: 10, Price: decimal.RequireFromString("4.20")},
	})
	require.NoError(t, err)

	assert.Equal(t, supply.Ordered, cmd.Status())
	assert.Equal(t, kernel.Day(time.Now()), cmd.Date())
	assert.Equal(t, []kernel.ID{7}, cmd.ProductIDs())
}

func TestNewCreateSupplyCommand_InvalidInput(t *testing.T) {
	price := decimal.NewFromInt(1)
	testCases := []struct {
		name     string
		supplier kernel.ID
		items    []commands.SupplyLineItem
		target   error
	}{
		{"missing supplier", 0, []commands.SupplyLineItem{{ProductID: 1, Quantity: 1, Price: price}}, errs.ErrValueIsRequired},
		{"no items", 3, nil, errs.ErrValueIsRequired},
		{"zero price", 3, []commands.SupplyLineItem{{ProductID: 1, Quantity: 1, Price: decimal.Zero}}, errs.ErrValueIsOutOfRange},
		{"negative quantity", 3, []commands.SupplyLineItem{{ProductID: 1, Quantity: -2, Price: price}}, errs.ErrValueIsOutOfRange},
		{"duplicate product", 3, []commands.SupplyLineItem{
			{ProductID: 1, Quantity: 1, Price: price},
			{ProductID: 1, Quantity: 2, Price: price},
		}, errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := commands.NewCreateSupplyCommand(tc.supplier, time.Now(), supply.Ordered, tc.items)
			require.ErrorIs(t, err, tc.target)
		})
	}
}

func TestCreateSupplyCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateSupplyCommand(3, time.Now(), supply.Ordered, []commands.SupplyLineItem{
		{ProductID: 7, Quantity: 10, Price: decimal.RequireFromString("4.20")},
		{ProductID: 8, Quantity: 2, Price: decimal.RequireFromString("100")},
	})
	require.NoError(t, err)

	supplies := new(MockSupplyRepository)
	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)
	factory := new(MockSupplyUoWFactory)
	factory.On("Create").Return(uow).Once()

	var created *supply.Supply
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("SupplierExists", ctx, kernel.ID(3)).Return(true, nil).Once(),
		catalogRepo.On("GetProducts", ctx, []kernel.ID{7, 8}).Return(map[kernel.ID]catalog.Product{
			7: {ID: 7}, 8: {ID: 8},
		}, nil).Once(),
		uow.On("SupplyRepository").Return(supplies).Once(),
		supplies.On("AddDocument", ctx, mock.AnythingOfType("*supply.Document")).Run(func(args mock.Arguments) {
			require.NoError(t, args.Get(1).(*supply.Document).AssignID(11))
		}).Return(nil).Once(),
		supplies.On("Add", ctx, mock.MatchedBy(func(s *supply.Supply) bool {
			return s.DocumentID() == 11
		})).Run(func(args mock.Arguments) {
			created = args.Get(1).(*supply.Supply)
			require.NoError(t, created.AssignID(77))
		}).Return(nil).Once(),
		supplies.On("AddLineItems", ctx, mock.AnythingOfType("*supply.Supply")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return().Once(),
	)

	h := commands.NewCreateSupplyCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, kernel.ID(77), id)
	assert.Equal(t, "242", created.TotalCost().String())
	uow.AssertExpectations(t)
	supplies.AssertExpectations(t)
	catalogRepo.AssertExpectations(t)
}

func TestCreateSupplyCommandHandler_Handle_UnknownSupplier(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateSupplyCommand(3, time.Now(), supply.Ordered, []commands.SupplyLineItem{
		{ProductID: 7, Quantity: 1, Price: decimal.NewFromInt(1)},
	})
	require.NoError(t, err)

	catalogRepo := new(MockCatalogRepository)
	uow := new(MockUoW)
	factory := new(MockSupplyUoWFactory)
	factory.On("Create").Return(uow).Once()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CatalogRepository").Return(catalogRepo).Once(),
		catalogRepo.On("SupplierExists", ctx, kernel.ID(3)).Return(false, nil).Once(),
		uow.On("Rollback", ctx).Return().Once(),
	)

	h := commands.NewCreateSupplyCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "SupplyRepository")
	uow.AssertExpectations(t)
}

func TestDeleteSupplyCommandHandler_Handle_ThreeLineItems(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteSupplyCommand(77)
	require.NoError(t, err)

	items := []supply.LineItem{
		supply.RestoreLineItem(1, 1, decimal.NewFromInt(1)),
		supply.RestoreLineItem(2, 1, decimal.NewFromInt(1)),
		supply.RestoreLineItem(3, 1, decimal.NewFromInt(1)),
	}
	s, err := supply.RestoreSupply(77, 3, 11, time.Now(), supply.Ordered, items)
	require.NoError(t, err)

	supplies := new(MockSupplyRepository)
	uow := new(MockUoW)
	factory := new(MockSupplyUoWFactory)
	factory.On("Create").Return(uow).Once()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SupplyRepository").Return(supplies).Once(),
		supplies.On("GetForUpdate", ctx, kernel.ID(77)).Return(s, nil).Once(),
		supplies.On("DeleteLineItems", ctx, kernel.ID(77)).Return(int64(3), nil).Once(),
		supplies.On("Delete", ctx, kernel.ID(77)).Return(nil).Once(),
		supplies.On("DeleteDocument", ctx, kernel.ID(11)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return().Once(),
	)

	h := commands.NewDeleteSupplyCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
	supplies.AssertExpectations(t)
}

func TestDeleteSupplyCommandHandler_Handle_NotFoundBeforeAnyDelete(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteSupplyCommand(77)
	require.NoError(t, err)

	supplies := new(MockSupplyRepository)
	uow := new(MockUoW)
	factory := new(MockSupplyUoWFactory)
	factory.On("Create").Return(uow).Once()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SupplyRepository").Return(supplies).Once(),
		supplies.On("GetForUpdate", ctx, kernel.ID(77)).Return(nil, errs.NewObjectNotFoundError("supply", kernel.ID(77))).Once(),
		uow.On("Rollback", ctx).Return().Once(),
	)

	h := commands.NewDeleteSupplyCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	supplies.AssertNotCalled(t, "DeleteLineItems", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestChangeSupplyStatusCommandHandler_Handle(t *testing.T) {
	testCases := []struct {
		name    string
		from    supply.Status
		to      supply.Status
		wantErr bool
	}{
		{"ordered to shipped", supply.Ordered, supply.Shipped, false},
		{"ordered to cancelled", supply.Ordered, supply.Cancelled, false},
		{"shipped to delivered", supply.Shipped, supply.Delivered, false},
		{"ordered to delivered", supply.Ordered, supply.Delivered, true},
		{"cancelled is terminal", supply.Cancelled, supply.Shipped, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewChangeSupplyStatusCommand(77, tc.to)
			require.NoError(t, err)

			s, err := supply.RestoreSupply(77, 3, 11, time.Now(), tc.from,
				[]supply.LineItem{supply.RestoreLineItem(1, 1, decimal.NewFromInt(1))})
			require.NoError(t, err)

			supplies := new(MockSupplyRepository)
			uow := new(MockUoW)
			factory := new(MockSupplyUoWFactory)
			factory.On("Create").Return(uow).Once()

			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("SupplyRepository").Return(supplies).Once()
			supplies.On("GetForUpdate", ctx, kernel.ID(77)).Return(s, nil).Once()
			uow.On("Rollback", ctx).Return().Once()
			if !tc.wantErr {
				supplies.On("Update", ctx, s).Return(nil).Once()
				uow.On("Commit", ctx).Return(nil).Once()
			}

			h := commands.NewChangeSupplyStatusCommandHandler(factory)
			err = h.Handle(ctx, cmd)
			if tc.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.to, s.Status())
			}
			uow.AssertExpectations(t)
			supplies.AssertExpectations(t)
		})
	}
}
