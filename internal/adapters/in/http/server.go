package http

import (
	"net/http"
	"time"

	"wholesale/internal/adapters/in/http/api"
	"wholesale/internal/core/application/usecases/commands"
	"wholesale/internal/core/application/usecases/queries"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/core/domain/model/supply"
	"wholesale/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ api.ServerInterface = (*Server)(nil)

// Server implements api.ServerInterface on top of the command and query handlers.
// Handlers return errors as they are; ErrorHandler turns them into responses.
type Server struct {
	h Handlers
}

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(ctx echo.Context, params api.ListOrdersParams) error {
	status := order.Unknown
	if params.Status != nil && *params.Status != "" {
		parsed, err := order.ParseStatus(*params.Status)
		if err != nil {
			return err
		}
		status = parsed
	}

	query, err := queries.NewListOrdersQuery(status, deref(params.Limit), deref(params.Offset))
	if err != nil {
		return err
	}
	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]api.OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = toOrderSummary(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/orders. The delivery document, delivery window,
// order and its line items are created in one transaction.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req api.NewOrder
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	paymentType, err := order.ParsePaymentType(req.PaymentType)
	if err != nil {
		return err
	}
	window, err := parseWindow(req.DeliveryWindow)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.ID(req.CustomerID),
		kernel.ID(req.ManagerID),
		paymentType,
		window,
		toOrderLineItems(req.LineItems),
	)
	if err != nil {
		return err
	}

	id, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.Created{ID: id.Int64()})
}

// GetOrder handles GET /api/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id api.ID) error {
	query, err := queries.NewGetOrderQuery(kernel.ID(id))
	if err != nil {
		return err
	}
	details, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, api.OrderDetails{
		OrderSummary: toOrderSummary(details.OrderSummary),
		DeliveryID:   details.DeliveryID.Int64(),
		DeliveryWindow: api.DeliveryWindow{
			DateFrom: formatDate(details.DeliveryDateFrom),
			DateTo:   formatDate(details.DeliveryDateTo),
		},
	})
}

// ReplaceOrderLineItems handles PUT /api/orders/{id}.
func (s *Server) ReplaceOrderLineItems(ctx echo.Context, id api.ID) error {
	var req api.OrderLineItems
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewReplaceOrderLineItemsCommand(kernel.ID(id), toOrderLineItems(req.LineItems))
	if err != nil {
		return err
	}
	if err = s.h.ReplaceOrderLineItems.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.Success{Success: true})
}

// DeleteOrder handles DELETE /api/orders/{id}.
func (s *Server) DeleteOrder(ctx echo.Context, id api.ID) error {
	cmd, err := commands.NewDeleteOrderCommand(kernel.ID(id))
	if err != nil {
		return err
	}
	if err = s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.Success{Success: true})
}

// ChangeOrderStatus handles PATCH /api/orders/{id}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, id api.ID) error {
	var req api.StatusChange
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(kernel.ID(id), status)
	if err != nil {
		return err
	}
	if err = s.h.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.Success{Success: true})
}

// GetOrderLineItems handles GET /api/orders/{id}/products.
func (s *Server) GetOrderLineItems(ctx echo.Context, id api.ID) error {
	query, err := queries.NewGetOrderQuery(kernel.ID(id))
	if err != nil {
		return err
	}
	items, err := s.h.GetOrderLineItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]api.OrderLineItemView, len(items))
	for i, li := range items {
		response[i] = api.OrderLineItemView{
			ProductID:       li.ProductID.Int64(),
			ProductName:     li.ProductName,
			Unit:            li.Unit,
			Quantity:        li.Quantity,
			CatalogPrice:    li.CatalogPrice,
			DiscountPercent: li.DiscountPercent,
			Price:           li.Price,
			Total:           li.Total,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrderDelivery handles GET /api/orders/{id}/delivery.
func (s *Server) GetOrderDelivery(ctx echo.Context, id api.ID) error {
	query, err := queries.NewGetOrderQuery(kernel.ID(id))
	if err != nil {
		return err
	}
	d, err := s.h.GetOrderDelivery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, api.OrderDelivery{
		DeliveryID:        d.DeliveryID.Int64(),
		DateFrom:          formatDate(d.DateFrom),
		DateTo:            formatDate(d.DateTo),
		DocumentID:        d.DocumentID.Int64(),
		DocumentDate:      formatDate(d.DocumentDate),
		SignatureBase:     d.SignatureBase,
		SignatureCustomer: d.SignatureCustomer,
	})
}

// ListSupplies handles GET /api/supplies.
func (s *Server) ListSupplies(ctx echo.Context, params api.ListSuppliesParams) error {
	status := supply.Unknown
	if params.Status != nil && *params.Status != "" {
		parsed, err := supply.ParseStatus(*params.Status)
		if err != nil {
			return err
		}
		status = parsed
	}

	query, err := queries.NewListSuppliesQuery(status, deref(params.Limit), deref(params.Offset))
	if err != nil {
		return err
	}
	supplies, err := s.h.ListSupplies.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]api.SupplySummary, len(supplies))
	for i, sp := range supplies {
		response[i] = api.SupplySummary{
			ID:           sp.ID.Int64(),
			SupplierID:   sp.SupplierID.Int64(),
			SupplierName: sp.SupplierName,
			DocumentID:   sp.DocumentID.Int64(),
			Date:         formatDate(sp.Date),
			Status:       sp.Status.String(),
			TotalCost:    sp.TotalCost,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateSupply handles POST /api/supplies.
func (s *Server) CreateSupply(ctx echo.Context) error {
	var req api.NewSupply
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	status, err := supply.ParseStatus(req.Status)
	if err != nil {
		return err
	}
	var date time.Time
	if req.Date != "" {
		if date, err = parseDate("date", req.Date); err != nil {
			return err
		}
	}

	items := make([]commands.SupplyLineItem, len(req.LineItems))
	for i, li := range req.LineItems {
		items[i] = commands.SupplyLineItem{
			ProductID: kernel.ID(li.ProductID),
			Quantity:  li.Quantity,
			Price:     li.Price,
		}
	}

	cmd, err := commands.NewCreateSupplyCommand(kernel.ID(req.SupplierID), date, status, items)
	if err != nil {
		return err
	}
	id, err := s.h.CreateSupply.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.CreatedWithSuccess{Success: true, ID: id.Int64()})
}

// DeleteSupply handles DELETE /api/supplies/{id}.
func (s *Server) DeleteSupply(ctx echo.Context, id api.ID) error {
	cmd, err := commands.NewDeleteSupplyCommand(kernel.ID(id))
	if err != nil {
		return err
	}
	if err = s.h.DeleteSupply.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.Success{Success: true})
}

// ChangeSupplyStatus handles PATCH /api/supplies/{id}/status.
func (s *Server) ChangeSupplyStatus(ctx echo.Context, id api.ID) error {
	var req api.StatusChange
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	status, err := supply.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeSupplyStatusCommand(kernel.ID(id), status)
	if err != nil {
		return err
	}
	if err = s.h.ChangeSupplyStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.Success{Success: true})
}

// GetSupplyLineItems handles GET /api/supplies/{id}/products.
func (s *Server) GetSupplyLineItems(ctx echo.Context, id api.ID) error {
	query, err := queries.NewGetSupplyQuery(kernel.ID(id))
	if err != nil {
		return err
	}
	items, err := s.h.GetSupplyLineItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]api.SupplyLineItemView, len(items))
	for i, li := range items {
		response[i] = api.SupplyLineItemView{
			ProductID:   li.ProductID.Int64(),
			ProductName: li.ProductName,
			Unit:        li.Unit,
			Quantity:    li.Quantity,
			Price:       li.Price,
			Total:       li.Total,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) ListCustomers(ctx echo.Context) error {
	customers, err := s.h.Catalog.ListCustomers(ctx.Request().Context())
	if err != nil {
		return err
	}

	response := make([]api.Customer, len(customers))
	for i, c := range customers {
		response[i] = api.Customer{
			CustomerContact: api.CustomerContact{
				FirstName:  c.FirstName,
				LastName:   c.LastName,
				MiddleName: c.MiddleName,
				Phone:      c.Phone,
				Email:      c.Email,
				Address:    c.Address,
			},
			ID:           c.ID.Int64(),
			RegisteredAt: formatDate(c.RegisteredAt),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req api.CustomerContact
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateCustomerCommand(toCustomerContact(req))
	if err != nil {
		return err
	}
	id, err := s.h.Customers.Create(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.Created{ID: id.Int64()})
}

func (s *Server) UpdateCustomer(ctx echo.Context, id api.ID) error {
	var req api.CustomerContact
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCustomerCommand(kernel.ID(id), toCustomerContact(req))
	if err != nil {
		return err
	}
	if err = s.h.Customers.Update(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.Success{Success: true})
}

// DeleteCustomer fails with 409 while orders still reference the customer.
func (s *Server) DeleteCustomer(ctx echo.Context, id api.ID) error {
	cmd, err := commands.NewDeleteCustomerCommand(kernel.ID(id))
	if err != nil {
		return err
	}
	if err = s.h.Customers.Delete(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.Success{Success: true})
}

func (s *Server) ListManagers(ctx echo.Context) error {
	managers, err := s.h.Catalog.ListManagers(ctx.Request().Context())
	if err != nil {
		return err
	}

	response := make([]api.Manager, len(managers))
	for i, m := range managers {
		response[i] = api.Manager{ID: m.ID.Int64(), FirstName: m.FirstName, LastName: m.LastName}
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) ListProducts(ctx echo.Context) error {
	products, err := s.h.Catalog.ListProducts(ctx.Request().Context())
	if err != nil {
		return err
	}

	response := make([]api.Product, len(products))
	for i, p := range products {
		response[i] = api.Product{
			ID:          p.ID.Int64(),
			Name:        p.Name,
			SKU:         p.SKU,
			Price:       p.Price,
			Unit:        p.Unit,
			MinQuantity: p.MinQuantity,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) ListSuppliers(ctx echo.Context) error {
	suppliers, err := s.h.Catalog.ListSuppliers(ctx.Request().Context())
	if err != nil {
		return err
	}

	response := make([]api.Supplier, len(suppliers))
	for i, sp := range suppliers {
		response[i] = api.Supplier{
			ID:        sp.ID.Int64(),
			Name:      sp.Name,
			FirstName: sp.FirstName,
			LastName:  sp.LastName,
			Phone:     sp.Phone,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListWarehouseStock handles GET /api/warehouse-products.
func (s *Server) ListWarehouseStock(ctx echo.Context, params api.ListWarehouseStockParams) error {
	query, err := queries.NewListWarehouseStockQuery(kernel.ID(deref(params.WarehouseID)), deref(params.LowStock))
	if err != nil {
		return err
	}
	stock, err := s.h.Catalog.ListWarehouseStock(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]api.WarehouseStock, len(stock))
	for i, st := range stock {
		response[i] = api.WarehouseStock{
			WarehouseID:      st.WarehouseID.Int64(),
			WarehouseAddress: st.WarehouseAddress,
			ProductID:        st.ProductID.Int64(),
			ProductName:      st.ProductName,
			Quantity:         st.Quantity,
			MinQuantity:      st.MinQuantity,
			LowStock:         st.LowStock,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func bindAndValidate(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}
	return ctx.Validate(req)
}

func toOrderLineItems(items []api.NewOrderLineItem) []commands.OrderLineItem {
	result := make([]commands.OrderLineItem, len(items))
	for i, li := range items {
		result[i] = commands.OrderLineItem{
			ProductID:       kernel.ID(li.ProductID),
			Quantity:        li.Quantity,
			DiscountPercent: li.DiscountPercent,
		}
	}
	return result
}

func toOrderSummary(o queries.OrderSummary) api.OrderSummary {
	return api.OrderSummary{
		ID:           o.ID.Int64(),
		Date:         formatDate(o.Date),
		Status:       o.Status.String(),
		PaymentType:  o.PaymentType.String(),
		TotalSum:     o.TotalSum,
		CustomerID:   o.CustomerID.Int64(),
		CustomerName: o.CustomerName,
		ManagerID:    o.ManagerID.Int64(),
		ManagerName:  o.ManagerName,
	}
}

func toCustomerContact(req api.CustomerContact) commands.CustomerContact {
	return commands.CustomerContact{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
	}
}

func parseWindow(w api.DeliveryWindow) (kernel.DateRange, error) {
	from, err := parseDate("deliveryWindow.dateFrom", w.DateFrom)
	if err != nil {
		return kernel.DateRange{}, err
	}
	to, err := parseDate("deliveryWindow.dateTo", w.DateTo)
	if err != nil {
		return kernel.DateRange{}, err
	}
	return kernel.NewDateRange(from, to)
}

func parseDate(param, s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
