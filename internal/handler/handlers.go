package handler

import (
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	Health      *HealthHandler
	OpenAPI     *OpenAPIHandler
	User        *UserHandler
	Property    *PropertyHandler
	Reservation *ReservationHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(s, s.DB.Pool),
		OpenAPI:     NewOpenAPIHandler(s),
		User:        NewUserHandler(s, services.Auth, services.Query),
		Property:    NewPropertyHandler(s, services.Query),
		Reservation: NewReservationHandler(s, services.Query),
	}
}
