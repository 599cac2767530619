package repository

import (
	"github.com/deppfellow/lightbnb/internal/database"
	"github.com/deppfellow/lightbnb/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users        *UserRepository
	Properties   *PropertyRepository
	Reservations *ReservationRepository
}

// NewRepositories builds every repository on the server's shared pool.
func NewRepositories(s *server.Server) *Repositories {
	return New(s.DB.Pool)
}

// New builds every repository on db. Tests pass a pgxmock pool here.
func New(db database.Querier) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(db),
		Properties:   NewPropertyRepository(db),
		Reservations: NewReservationRepository(db),
	}
}
