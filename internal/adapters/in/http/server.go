package http

import (
	"errors"
	"net/http"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// callerHeader carries the pre-authenticated identity of the caller.
// Authentication happens upstream; the value is trusted as-is.
const callerHeader = "X-Caller-Id"

// Server handles the HTTP API for order lifecycle tracking.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createReputationHandler  commands.CreateReputationCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler
	getReputationHandler   queries.GetReputationQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createReputationHandler commands.CreateReputationCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getReputationHandler queries.GetReputationQueryHandler,
) *Server {
	return &Server{
		createReputationHandler:  createReputationHandler,
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getOrderHandler:          getOrderHandler,
		getOrderHistoryHandler:   getOrderHistoryHandler,
		getReputationHandler:     getReputationHandler,
	}
}

// RegisterRoutes wires all API routes onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/reputations", s.CreateReputation)
	api.GET("/reputations/:customerId", s.GetReputation)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.GET("/orders/:orderId/history", s.GetOrderHistory)
	api.POST("/orders/:orderId/status", s.UpdateOrderStatus)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateReputation handles POST /api/v1/reputations - initializes a
// customer's reputation counters at zero.
func (s *Server) CreateReputation(ctx echo.Context) error {
	var req NewReputationRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid customer ID: "+err.Error())
	}

	cmd, err := commands.NewCreateReputationCommand(customerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid reputation data: "+err.Error())
	}

	if handleErr := s.createReputationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateOrder handles POST /api/v1/orders - places a new order for a
// customer. The order identifier is taken from the request when supplied,
// generated server-side otherwise, and returned either way.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid customer ID: "+err.Error())
	}

	orderID := kernel.NewUUID()
	if req.OrderID != "" {
		orderID, err = kernel.UUIDFromString(req.OrderID)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
		}
	}
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, NewOrderResponse{OrderID: orderID.String()})
}

// UpdateOrderStatus handles POST /api/v1/orders/:orderId/status - requests
// a status transition on behalf of the caller identified by X-Caller-Id.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
	}

	callerID, err := kernel.UUIDFromString(ctx.Request().Header.Get(callerHeader))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid or missing "+callerHeader+" header")
	}

	var req StatusUpdateRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	requested, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, requested, callerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid status update: "+err.Error())
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return mapDomainError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:orderId - returns the current state
// of an order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		OrderID:    resp.ID.String(),
		CustomerID: resp.CustomerID.String(),
		Status:     resp.Status.String(),
		UpdatedAt:  resp.UpdatedAt,
	})
}

// GetOrderHistory handles GET /api/v1/orders/:orderId/history - returns the
// full transition ledger of an order, oldest first.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order ID: "+err.Error())
	}

	resp, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	records := make([]TransitionRecordResponse, len(resp.Records))
	for i, rec := range resp.Records {
		records[i] = TransitionRecordResponse{
			Seq:       rec.Seq,
			Status:    rec.Status.String(),
			Timestamp: rec.Timestamp,
		}
	}

	return ctx.JSON(http.StatusOK, HistoryResponse{
		OrderID: resp.OrderID.String(),
		Records: records,
	})
}

// GetReputation handles GET /api/v1/reputations/:customerId - returns a
// customer's reputation counters.
func (s *Server) GetReputation(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid customer ID: "+err.Error())
	}

	query, err := queries.NewGetReputationQuery(customerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid customer ID: "+err.Error())
	}

	resp, err := s.getReputationHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return mapDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ReputationResponse{
		CustomerID: resp.CustomerID.String(),
		Delivered:  resp.Delivered,
		Cancelled:  resp.Cancelled,
	})
}

// mapDomainError translates application and domain errors into API status
// codes: missing objects map to 404, duplicates and rejected transitions to
// 409, authorization failures to 403, everything else to 500.
func mapDomainError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError
	var alreadyExists *errs.ObjectAlreadyExistsError

	switch {
	case errors.As(err, &notFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.As(err, &alreadyExists):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, order.ErrUnauthorized):
		return errorResponse(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, order.ErrInvalidStatus):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
