// Package http exposes the courier-facing REST API. Couriers authenticate
// with the X-Courier-ID header set by the gateway in front of this service;
// the engine trusts it as the caller's identity.
package http

import (
	"errors"
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const courierIDHeader = "X-Courier-ID"

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OfferResponse is one entry of the pending offer feed.
type OfferResponse struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	CreatedAt time.Time `json:"created_at"`
}

// AcceptResponse reports a successful claim.
type AcceptResponse struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// ActiveOrderResponse is one in-flight delivery of the calling courier.
type ActiveOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// OrderHistoryResponse is one completed delivery of the calling courier.
type OrderHistoryResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	acceptOfferHandler      commands.AcceptOfferCommandHandler
	rejectOfferHandler      commands.RejectOfferCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler

	getPendingOffersHandler queries.GetPendingOffersQueryHandler
	getActiveOrdersHandler  queries.GetActiveOrdersQueryHandler
	getOrderHistoryHandler  queries.GetOrderHistoryQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	acceptOfferHandler commands.AcceptOfferCommandHandler,
	rejectOfferHandler commands.RejectOfferCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	getPendingOffersHandler queries.GetPendingOffersQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
) *Server {
	return &Server{
		acceptOfferHandler:      acceptOfferHandler,
		rejectOfferHandler:      rejectOfferHandler,
		completeDeliveryHandler: completeDeliveryHandler,
		getPendingOffersHandler: getPendingOffersHandler,
		getActiveOrdersHandler:  getActiveOrdersHandler,
		getOrderHistoryHandler:  getOrderHistoryHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.GET("/offers", s.GetOffers)
	api.POST("/offers/:id/accept", s.AcceptOffer)
	api.POST("/offers/:id/reject", s.RejectOffer)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/history", s.GetOrderHistory)
	api.POST("/orders/:id/finish", s.FinishOrder)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetOffers handles GET /api/v1/offers - the courier's pending offer feed.
func (s *Server) GetOffers(ctx echo.Context) error {
	courierID, err := courierIdentity(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetPendingOffersQuery(courierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier identity")
	}

	offers, err := s.getPendingOffersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve offers")
	}

	response := make([]OfferResponse, len(offers))
	for i, o := range offers {
		response[i] = OfferResponse{
			ID:        o.OfferID.String(),
			OrderID:   o.OrderID.String(),
			CreatedAt: o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptOffer handles POST /api/v1/offers/:id/accept.
func (s *Server) AcceptOffer(ctx echo.Context) error {
	courierID, err := courierIdentity(ctx)
	if err != nil {
		return err
	}

	offerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid offer ID")
	}

	cmd, err := commands.NewAcceptOfferCommand(offerID, courierID)
	if err != nil {
		return badRequest(ctx, "Invalid accept request: "+err.Error())
	}

	result, err := s.acceptOfferHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, commands.ErrOfferNotFoundOrExpired):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Offer not found or no longer pending",
		})
	case errors.Is(err, commands.ErrOrderNoLongerAvailable):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Order was taken by another courier",
		})
	case err != nil:
		return internalError(ctx, "Failed to accept offer")
	}

	return ctx.JSON(http.StatusOK, AcceptResponse{
		OrderID: result.OrderID.String(),
		Status:  result.OrderStatus.String(),
	})
}

// RejectOffer handles POST /api/v1/offers/:id/reject.
func (s *Server) RejectOffer(ctx echo.Context) error {
	courierID, err := courierIdentity(ctx)
	if err != nil {
		return err
	}

	offerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid offer ID")
	}

	cmd, err := commands.NewRejectOfferCommand(offerID, courierID)
	if err != nil {
		return badRequest(ctx, "Invalid reject request: "+err.Error())
	}

	err = s.rejectOfferHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, commands.ErrOfferNotFoundOrExpired):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Offer not found",
		})
	case err != nil:
		return internalError(ctx, "Failed to reject offer")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrders handles GET /api/v1/orders/active - the courier's
// in-flight deliveries.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	courierID, err := courierIdentity(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetActiveOrdersQuery(courierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier identity")
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve orders")
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = ActiveOrderResponse{
			ID:     o.OrderID.String(),
			Status: o.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderHistory handles GET /api/v1/orders/history - the courier's
// completed deliveries.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	courierID, err := courierIdentity(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderHistoryQuery(courierID)
	if err != nil {
		return badRequest(ctx, "Invalid courier identity")
	}

	orders, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve order history")
	}

	response := make([]OrderHistoryResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderHistoryResponse{
			ID:     o.OrderID.String(),
			Status: o.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// FinishOrder handles POST /api/v1/orders/:id/finish - marks a delivery as
// completed by its courier.
func (s *Server) FinishOrder(ctx echo.Context) error {
	courierID, err := courierIdentity(ctx)
	if err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, courierID)
	if err != nil {
		return badRequest(ctx, "Invalid finish request: "+err.Error())
	}

	err = s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case errors.Is(err, commands.ErrOrderNotFoundOrNotOwned):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Order not found or not assigned to this courier",
		})
	case err != nil:
		return internalError(ctx, "Failed to finish order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// courierIdentity extracts and validates the calling courier's ID.
// A missing or malformed header fails the request before any use case runs.
func courierIdentity(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(courierIDHeader)
	if raw == "" {
		return kernel.UUID{}, echo.NewHTTPError(
			http.StatusUnauthorized, "Missing "+courierIDHeader+" header",
		)
	}

	courierID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(
			http.StatusUnauthorized, "Invalid "+courierIDHeader+" header",
		)
	}

	return courierID, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
