// Package http exposes the order workflow over a REST API.
// Management endpoints sit behind bearer-token auth; the sale submission and
// tracking endpoints are public because customers have no accounts.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"orderlink/internal/adapters/in/http/auth"
	"orderlink/internal/core/application/usecases/commands"
	"orderlink/internal/core/application/usecases/queries"
	"orderlink/internal/core/domain/model/kernel"
	"orderlink/internal/core/domain/model/order"
	"orderlink/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	submitOrderHandler   commands.SubmitOrderCommandHandler
	setStatusHandler     commands.SetStatusCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler
	bulkSetStatusHandler commands.BulkSetStatusCommandHandler
	upsertProfileHandler commands.UpsertProfileCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersByOwnerQueryHandler
	dashboardHandler  queries.GetDashboardQueryHandler
	trackingHandler   queries.GetOrderByTrackingQueryHandler
	getProfileHandler queries.GetProfileQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	submitOrderHandler commands.SubmitOrderCommandHandler,
	setStatusHandler commands.SetStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	bulkSetStatusHandler commands.BulkSetStatusCommandHandler,
	upsertProfileHandler commands.UpsertProfileCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersByOwnerQueryHandler,
	dashboardHandler queries.GetDashboardQueryHandler,
	trackingHandler queries.GetOrderByTrackingQueryHandler,
	getProfileHandler queries.GetProfileQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:   createOrderHandler,
		submitOrderHandler:   submitOrderHandler,
		setStatusHandler:     setStatusHandler,
		cancelOrderHandler:   cancelOrderHandler,
		bulkSetStatusHandler: bulkSetStatusHandler,
		upsertProfileHandler: upsertProfileHandler,
		getOrderHandler:      getOrderHandler,
		listOrdersHandler:    listOrdersHandler,
		dashboardHandler:     dashboardHandler,
		trackingHandler:      trackingHandler,
		getProfileHandler:    getProfileHandler,
	}
}

// RegisterRoutes wires all endpoints into the echo instance.
// authMiddleware guards the management endpoints only.
func (s *Server) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/sales/:id/submit", s.SubmitOrder)
	api.GET("/track/:trackingId", s.TrackOrder)

	secured := api.Group("", authMiddleware)
	secured.POST("/orders", s.CreateOrder)
	secured.GET("/orders", s.GetOrders)
	secured.GET("/orders/:id", s.GetOrder)
	secured.PUT("/orders/:id/status", s.SetOrderStatus)
	secured.POST("/orders/:id/cancel", s.CancelOrder)
	secured.PUT("/orders/status", s.BulkSetOrderStatus)
	secured.GET("/profile", s.GetProfile)
	secured.PUT("/profile", s.UpsertProfile)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateOrder handles POST /api/v1/orders - issues a new sale link.
func (s *Server) CreateOrder(ctx echo.Context) error {
	ownerID, err := auth.OwnerIDFromContext(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	items := make([]order.OrderItem, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, itemErr := order.NewOrderItem(itemReq.Name, itemReq.Price)
		if itemErr != nil {
			return respondError(ctx, itemErr)
		}
		items = append(items, item)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, ownerID, items, req.TotalAmount)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - lists the owner's orders.
// ?region=XX narrows to one delivery region; ?grouped=true returns the
// month/day dashboard view instead of the flat list.
func (s *Server) GetOrders(ctx echo.Context) error {
	ownerID, err := auth.OwnerIDFromContext(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	region := ctx.QueryParam("region")
	grouped, _ := strconv.ParseBool(ctx.QueryParam("grouped"))

	if grouped {
		query, queryErr := queries.NewGetDashboardQuery(ownerID, region)
		if queryErr != nil {
			return respondError(ctx, queryErr)
		}

		dashboard, handleErr := s.dashboardHandler.Handle(ctx.Request().Context(), query)
		if handleErr != nil {
			return respondError(ctx, handleErr)
		}

		return ctx.JSON(http.StatusOK, dashboard)
	}

	query, err := queries.NewListOrdersByOwnerQuery(ownerID, region)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one of the owner's orders.
func (s *Server) GetOrder(ctx echo.Context) error {
	ownerID, err := auth.OwnerIDFromContext(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, ownerID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// SetOrderStatus handles PUT /api/v1/orders/:id/status - moves one order along
// the fulfillment pipeline.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	ownerID, err := auth.OwnerIDFromContext(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req SetStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetStatusCommand(orderID, ownerID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.setStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queries.NewOrderResponse(updated))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	ownerID, err := auth.OwnerIDFromContext(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, ownerID)
	if err != nil {
		return respondError(ctx, err)
	}

	canceled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queries.NewOrderResponse(canceled))
}

// BulkSetOrderStatus handles PUT /api/v1/orders/status - moves a batch of
// orders to one target status, skipping the ineligible ones.
func (s *Server) BulkSetOrderStatus(ctx echo.Context) error {
	ownerID, err := auth.OwnerIDFromContext(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req BulkSetStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		orderID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		orderIDs = append(orderIDs, orderID)
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewBulkSetStatusCommand(orderIDs, ownerID, target)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.bulkSetStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	skipped := make([]string, len(result.SkippedIDs))
	for i, id := range result.SkippedIDs {
		skipped[i] = id.String()
	}

	return ctx.JSON(http.StatusOK, BulkSetStatusResponse{
		UpdatedCount: result.UpdatedCount,
		SkippedIDs:   skipped,
	})
}

// GetProfile handles GET /api/v1/profile.
// An owner who has never saved settings gets an empty profile back, not an
// error; the settings form starts blank.
func (s *Server) GetProfile(ctx echo.Context) error {
	ownerID, err := auth.OwnerIDFromContext(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	query, err := queries.NewGetProfileQuery(ownerID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getProfileHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		var notFoundErr *errs.ObjectNotFoundError
		if errors.As(err, &notFoundErr) {
			return ctx.JSON(http.StatusOK, queries.ProfileResponse{})
		}
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// UpsertProfile handles PUT /api/v1/profile.
func (s *Server) UpsertProfile(ctx echo.Context) error {
	ownerID, err := auth.OwnerIDFromContext(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}

	var req UpsertProfileRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpsertProfileCommand(ownerID, req.BusinessName, req.BusinessPhoneNumber)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.upsertProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitOrder handles POST /api/v1/sales/:id/submit - the customer's one-time
// sale-form submission. Public: the sale link itself is the credential.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req SubmitOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customer, err := order.NewCustomer(req.Name, req.Phone, req.DeliveryAddress, req.DeliveryState)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSubmitOrderCommand(orderID, customer)
	if err != nil {
		return respondError(ctx, err)
	}

	submitted, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queries.NewOrderResponse(submitted))
}

// TrackOrder handles GET /api/v1/track/:trackingId - the public status lookup.
func (s *Server) TrackOrder(ctx echo.Context) error {
	trackingID, err := order.TrackingIDFromString(ctx.Param("trackingId"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderByTrackingQuery(trackingID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.trackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}
