package router

import (
	"net/http"

	"github.com/deppfellow/lightbnb/internal/handler"
	"github.com/deppfellow/lightbnb/internal/middleware"
	"github.com/labstack/echo/v4"
)

// registerUserRoutes registers account and session endpoints under /users.
func registerUserRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	users := r.Group("/users")

	users.POST("", handler.Handle(h.User.Handler, h.User.Register, http.StatusCreated, &handler.RegisterRequest{}))
	users.POST("/login", handler.Handle(h.User.Handler, h.User.Login, http.StatusOK, &handler.LoginRequest{}))
	users.POST("/logout", handler.HandleNoContent(h.User.Handler, h.User.Logout, http.StatusNoContent, &handler.EmptyRequest{}))
	users.GET("/me", handler.Handle(h.User.Handler, h.User.Me, http.StatusOK, &handler.EmptyRequest{}), m.Auth.RequireAuth)
}

// registerAPIRoutes registers the property and reservation endpoints under /api.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	api := r.Group("/api")

	api.GET("/properties", handler.Handle(h.Property.Handler, h.Property.ListProperties, http.StatusOK, &handler.ListPropertiesRequest{}))
	api.POST("/properties", handler.Handle(h.Property.Handler, h.Property.CreateProperty, http.StatusCreated, &handler.CreatePropertyRequest{}), m.Auth.RequireAuth)

	api.GET("/reservations", handler.Handle(h.Reservation.Handler, h.Reservation.ListReservations, http.StatusOK, &handler.ListReservationsRequest{}), m.Auth.RequireAuth)
}
