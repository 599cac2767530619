package handler

import (
	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/labstack/echo/v4"
)

type ReservationHandler struct {
	Handler
	queries *service.QueryService
}

func NewReservationHandler(s *server.Server, queries *service.QueryService) *ReservationHandler {
	return &ReservationHandler{
		Handler: NewHandler(s),
		queries: queries,
	}
}

// ListReservations serves GET /api/reservations: the session user's
// reservations, earliest first.
func (h *ReservationHandler) ListReservations(c echo.Context, req *ListReservationsRequest) (*ReservationsResponse, error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return nil, errs.NewUnauthorizedError("Unauthorized", false, errs.LoginRedirect())
	}

	result := h.queries.GetReservationsForGuest(c.Request().Context(), userID, req.Limit)
	if !result.OK() {
		return nil, result.Err
	}
	return &ReservationsResponse{Reservations: result.Value}, nil
}
