// Package http exposes the ordering use cases over an echo HTTP server.
package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorHeader carries the authenticated subject of the caller.
// Token validation happens upstream; by the time a request reaches this
// server the header value is a trusted subject identifier.
const actorHeader = "X-Actor-Id"

// Error is the JSON error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the request body for order creation.
type NewOrder struct {
	CustomerID    string `json:"customerId"`
	IsVIPCustomer bool   `json:"isVipCustomer"`
}

// NewOrderItem is the request body for adding a line to an order.
type NewOrderItem struct {
	ProductID string `json:"productId"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
}

// OrderCreated is the response body for successful order creation.
type OrderCreated struct {
	ID string `json:"id"`
}

// OrderItem is one order line in a response body.
type OrderItem struct {
	ProductID string `json:"productId"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Order is the full order representation in response bodies.
// TotalValue is null while the order is in Draft.
type Order struct {
	ID            string      `json:"id"`
	CustomerID    string      `json:"customerId"`
	IsVIPCustomer bool        `json:"isVipCustomer"`
	Status        string      `json:"status"`
	TotalValue    *string     `json:"totalValue"`
	Items         []OrderItem `json:"items"`
}

// DraftOrder is one entry in the draft orders listing.
type DraftOrder struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customerId"`
	IsVIPCustomer bool   `json:"isVipCustomer"`
	ItemCount     int    `json:"itemCount"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	addOrderItemHandler commands.AddOrderItemCommandHandler
	placeOrderHandler   commands.PlaceOrderCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	getDraftOrdersHandler queries.GetDraftOrdersQueryHandler

	identityResolver ports.IdentityResolver
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	addOrderItemHandler commands.AddOrderItemCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getDraftOrdersHandler queries.GetDraftOrdersQueryHandler,
	identityResolver ports.IdentityResolver,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		addOrderItemHandler:   addOrderItemHandler,
		placeOrderHandler:     placeOrderHandler,
		getOrderHandler:       getOrderHandler,
		getDraftOrdersHandler: getDraftOrdersHandler,
		identityResolver:      identityResolver,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.POST("/api/v1/orders", s.CreateOrder)
	e.POST("/api/v1/orders/:id/items", s.AddOrderItem)
	e.POST("/api/v1/orders/:id/place", s.PlaceOrder)
	e.GET("/api/v1/orders/drafts", s.GetDraftOrders)
	e.GET("/api/v1/orders/:id", s.GetOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - registers a new draft order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, body.IsVIPCustomer)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return internalError(ctx, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, OrderCreated{ID: orderID.String()})
}

// AddOrderItem handles POST /api/v1/orders/:id/items - appends a line to a draft order.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var body NewOrderItem
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(body.ProductID)
	if err != nil {
		return badRequest(ctx, "Invalid product id: "+err.Error())
	}

	price, err := kernel.NewMoneyFromString(body.Price)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, productID, price, body.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	handleErr := s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(handleErr, commands.ErrOrderNotFound):
		return notFound(ctx, "Order not found")
	case errors.Is(handleErr, order.ErrOrderIsNotDraft):
		return conflict(ctx, "Order is not in Draft status")
	case handleErr != nil:
		return internalError(ctx, "Failed to add order item")
	}

	return ctx.NoContent(http.StatusCreated)
}

// PlaceOrder handles POST /api/v1/orders/:id/place - finalizes a draft order.
// The acting identity comes from the X-Actor-Id header.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	subject := ctx.Request().Header.Get(actorHeader)
	if subject == "" {
		return unauthorized(ctx, "Missing "+actorHeader+" header")
	}

	actor, err := s.identityResolver.Resolve(ctx.Request().Context(), subject)
	if err != nil {
		return unauthorized(ctx, "Invalid actor identity: "+err.Error())
	}

	cmd, err := commands.NewPlaceOrderCommand(orderID, actor)
	if err != nil {
		return badRequest(ctx, "Invalid placement request: "+err.Error())
	}

	handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(handleErr, commands.ErrOrderNotFound):
		return notFound(ctx, "Order not found")
	case errors.Is(handleErr, order.ErrOrderIsNotDraft):
		return conflict(ctx, "Order is not in Draft status")
	case errors.Is(handleErr, order.ErrOrderHasNoItems):
		return conflict(ctx, "Order has no items")
	case errors.Is(handleErr, commands.ErrActorIsNotAuthorized):
		return forbidden(ctx, "Actor may not place this order")
	case handleErr != nil:
		return internalError(ctx, "Failed to place order")
	}

	return ctx.NoContent(http.StatusOK)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with its lines.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return notFound(ctx, "Order not found")
	}
	if err != nil {
		return internalError(ctx, "Failed to retrieve order")
	}

	items := make([]OrderItem, len(result.Items))
	for i, item := range result.Items {
		items[i] = OrderItem{
			ProductID: item.ProductID.String(),
			Price:     item.Price.String(),
			Quantity:  item.Quantity,
		}
	}

	var totalValue *string
	if result.TotalValue != nil {
		total := result.TotalValue.String()
		totalValue = &total
	}

	return ctx.JSON(http.StatusOK, Order{
		ID:            result.ID.String(),
		CustomerID:    result.CustomerID.String(),
		IsVIPCustomer: result.IsVIPCustomer,
		Status:        result.Status,
		TotalValue:    totalValue,
		Items:         items,
	})
}

// GetDraftOrders handles GET /api/v1/orders/drafts - lists orders awaiting placement.
func (s *Server) GetDraftOrders(ctx echo.Context) error {
	query := queries.NewGetDraftOrdersQuery()

	orders, err := s.getDraftOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve draft orders")
	}

	response := make([]DraftOrder, len(orders))
	for i, draft := range orders {
		response[i] = DraftOrder{
			ID:            draft.ID.String(),
			CustomerID:    draft.CustomerID.String(),
			IsVIPCustomer: draft.IsVIPCustomer,
			ItemCount:     draft.ItemCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: message})
}

func conflict(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusConflict, Error{Code: http.StatusConflict, Message: message})
}

func forbidden(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusForbidden, Error{Code: http.StatusForbidden, Message: message})
}

func unauthorized(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, Error{Code: http.StatusUnauthorized, Message: message})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{Code: http.StatusInternalServerError, Message: message})
}
