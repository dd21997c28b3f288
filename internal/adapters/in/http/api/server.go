package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface lists every operation of openapi.yaml.
type ServerInterface interface {
	// (GET /api/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /api/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/orders/{id})
	GetOrder(ctx echo.Context, id ID) error
	// (PUT /api/orders/{id})
	ReplaceOrderLineItems(ctx echo.Context, id ID) error
	// (DELETE /api/orders/{id})
	DeleteOrder(ctx echo.Context, id ID) error
	// (PATCH /api/orders/{id}/status)
	ChangeOrderStatus(ctx echo.Context, id ID) error
	// (GET /api/orders/{id}/products)
	GetOrderLineItems(ctx echo.Context, id ID) error
	// (GET /api/orders/{id}/delivery)
	GetOrderDelivery(ctx echo.Context, id ID) error

	// (GET /api/supplies)
	ListSupplies(ctx echo.Context, params ListSuppliesParams) error
	// (POST /api/supplies)
	CreateSupply(ctx echo.Context) error
	// (DELETE /api/supplies/{id})
	DeleteSupply(ctx echo.Context, id ID) error
	// (PATCH /api/supplies/{id}/status)
	ChangeSupplyStatus(ctx echo.Context, id ID) error
	// (GET /api/supplies/{id}/products)
	GetSupplyLineItems(ctx echo.Context, id ID) error

	// (GET /api/customers)
	ListCustomers(ctx echo.Context) error
	// (POST /api/customers)
	CreateCustomer(ctx echo.Context) error
	// (PUT /api/customers/{id})
	UpdateCustomer(ctx echo.Context, id ID) error
	// (DELETE /api/customers/{id})
	DeleteCustomer(ctx echo.Context, id ID) error

	// (GET /api/managers)
	ListManagers(ctx echo.Context) error
	// (GET /api/products)
	ListProducts(ctx echo.Context) error
	// (GET /api/suppliers)
	ListSuppliers(ctx echo.Context) error
	// (GET /api/warehouse-products)
	ListWarehouseStock(ctx echo.Context, params ListWarehouseStockParams) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams
	if err := bindQuery(ctx, "status", &params.Status); err != nil {
		return err
	}
	if err := bindQuery(ctx, "limit", &params.Limit); err != nil {
		return err
	}
	if err := bindQuery(ctx, "offset", &params.Offset); err != nil {
		return err
	}
	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	return withID(ctx, w.Handler.GetOrder)
}

func (w *ServerInterfaceWrapper) ReplaceOrderLineItems(ctx echo.Context) error {
	return withID(ctx, w.Handler.ReplaceOrderLineItems)
}

func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	return withID(ctx, w.Handler.DeleteOrder)
}

func (w *ServerInterfaceWrapper) ChangeOrderStatus(ctx echo.Context) error {
	return withID(ctx, w.Handler.ChangeOrderStatus)
}

func (w *ServerInterfaceWrapper) GetOrderLineItems(ctx echo.Context) error {
	return withID(ctx, w.Handler.GetOrderLineItems)
}

func (w *ServerInterfaceWrapper) GetOrderDelivery(ctx echo.Context) error {
	return withID(ctx, w.Handler.GetOrderDelivery)
}

func (w *ServerInterfaceWrapper) ListSupplies(ctx echo.Context) error {
	var params ListSuppliesParams
	if err := bindQuery(ctx, "status", &params.Status); err != nil {
		return err
	}
	if err := bindQuery(ctx, "limit", &params.Limit); err != nil {
		return err
	}
	if err := bindQuery(ctx, "offset", &params.Offset); err != nil {
		return err
	}
	return w.Handler.ListSupplies(ctx, params)
}

func (w *ServerInterfaceWrapper) CreateSupply(ctx echo.Context) error {
	return w.Handler.CreateSupply(ctx)
}

func (w *ServerInterfaceWrapper) DeleteSupply(ctx echo.Context) error {
	return withID(ctx, w.Handler.DeleteSupply)
}

func (w *ServerInterfaceWrapper) ChangeSupplyStatus(ctx echo.Context) error {
	return withID(ctx, w.Handler.ChangeSupplyStatus)
}

func (w *ServerInterfaceWrapper) GetSupplyLineItems(ctx echo.Context) error {
	return withID(ctx, w.Handler.GetSupplyLineItems)
}

func (w *ServerInterfaceWrapper) ListCustomers(ctx echo.Context) error {
	return w.Handler.ListCustomers(ctx)
}

func (w *ServerInterfaceWrapper) CreateCustomer(ctx echo.Context) error {
	return w.Handler.CreateCustomer(ctx)
}

func (w *ServerInterfaceWrapper) UpdateCustomer(ctx echo.Context) error {
	return withID(ctx, w.Handler.UpdateCustomer)
}

func (w *ServerInterfaceWrapper) DeleteCustomer(ctx echo.Context) error {
	return withID(ctx, w.Handler.DeleteCustomer)
}

func (w *ServerInterfaceWrapper) ListManagers(ctx echo.Context) error {
	return w.Handler.ListManagers(ctx)
}

func (w *ServerInterfaceWrapper) ListProducts(ctx echo.Context) error {
	return w.Handler.ListProducts(ctx)
}

func (w *ServerInterfaceWrapper) ListSuppliers(ctx echo.Context) error {
	return w.Handler.ListSuppliers(ctx)
}

func (w *ServerInterfaceWrapper) ListWarehouseStock(ctx echo.Context) error {
	var params ListWarehouseStockParams
	if err := bindQuery(ctx, "warehouseId", &params.WarehouseID); err != nil {
		return err
	}
	if err := bindQuery(ctx, "lowStock", &params.LowStock); err != nil {
		return err
	}
	return w.Handler.ListWarehouseStock(ctx, params)
}

func withID(ctx echo.Context, next func(echo.Context, ID) error) error {
	var id ID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return next(ctx, id)
}

func bindQuery(ctx echo.Context, name string, dest any) error {
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), dest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation on router. Paths are the contract
// paths with {id} written as :id.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	w := &ServerInterfaceWrapper{Handler: si}

	router.GET("/api/orders", w.ListOrders)
	router.POST("/api/orders", w.CreateOrder)
	router.GET("/api/orders/:id", w.GetOrder)
	router.PUT("/api/orders/:id", w.ReplaceOrderLineItems)
	router.DELETE("/api/orders/:id", w.DeleteOrder)
	router.PATCH("/api/orders/:id/status", w.ChangeOrderStatus)
	router.GET("/api/orders/:id/products", w.GetOrderLineItems)
	router.GET("/api/orders/:id/delivery", w.GetOrderDelivery)

	router.GET("/api/supplies", w.ListSupplies)
	router.POST("/api/supplies", w.CreateSupply)
	router.DELETE("/api/supplies/:id", w.DeleteSupply)
	router.PATCH("/api/supplies/:id/status", w.ChangeSupplyStatus)
	router.GET("/api/supplies/:id/products", w.GetSupplyLineItems)

	router.GET("/api/customers", w.ListCustomers)
	router.POST("/api/customers", w.CreateCustomer)
	router.PUT("/api/customers/:id", w.UpdateCustomer)
	router.DELETE("/api/customers/:id", w.DeleteCustomer)

	router.GET("/api/managers", w.ListManagers)
	router.GET("/api/products", w.ListProducts)
	router.GET("/api/suppliers", w.ListSuppliers)
	router.GET("/api/warehouse-products", w.ListWarehouseStock)
}
