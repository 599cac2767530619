package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/rs/zerolog"
)

// QueryService exposes the six store operations of the application.
//
// Every operation is a single round trip on the shared pool. Nothing is
// retried and no operation spans a transaction. Cancellation comes from
// ctx.
type QueryService struct {
	repos  *repository.Repositories
	logger *zerolog.Logger
}

func NewQueryService(repos *repository.Repositories, logger *zerolog.Logger) *QueryService {
	return &QueryService{
		repos:  repos,
		logger: logger,
	}
}

// GetUserByEmail looks up a user by exact email. An unknown email is a
// successful Result with a nil Value.
func (s *QueryService) GetUserByEmail(ctx context.Context, email string) Result[*model.User] {
	user, err := s.repos.Users.GetByEmail(ctx, email)
	if err != nil {
		return logFailure[*model.User](s.loggerFor(ctx), "get_user_by_email", err)
	}
	return succeeded(user)
}

// GetUserByID looks up a user by id. An unknown id is a successful
// Result with a nil Value.
func (s *QueryService) GetUserByID(ctx context.Context, id int64) Result[*model.User] {
	user, err := s.repos.Users.GetByID(ctx, id)
	if err != nil {
		return logFailure[*model.User](s.loggerFor(ctx), "get_user_by_id", err)
	}
	return succeeded(user)
}

// AddUser stores a new user. A duplicate email fails with
// sqlerr.ReasonConstraintViolation.
func (s *QueryService) AddUser(ctx context.Context, input model.NewUser) Result[*model.User] {
	user, err := s.repos.Users.Create(ctx, input)
	if err != nil {
		return logFailure[*model.User](s.loggerFor(ctx), "add_user", err)
	}
	return succeeded(user)
}

// GetReservationsForGuest lists at most limit reservations of guestID,
// earliest start date first. A non-positive limit means
// repository.DefaultReservationLimit.
func (s *QueryService) GetReservationsForGuest(ctx context.Context, guestID int64, limit int) Result[[]model.Reservation] {
	reservations, err := s.repos.Reservations.ListForGuest(ctx, guestID, limit)
	if err != nil {
		return logFailure[[]model.Reservation](s.loggerFor(ctx), "get_reservations_for_guest", err)
	}
	return succeeded(reservations)
}

// GetProperties lists properties with their average rating, optionally
// narrowed to cities containing filter.City (case-insensitive).
//
// limit is accepted for callers but is not applied: listings are
// returned in full.
func (s *QueryService) GetProperties(ctx context.Context, filter model.PropertyFilter, limit int) Result[[]model.RatedProperty] {
	properties, err := s.repos.Properties.List(ctx, filter)
	if err != nil {
		return logFailure[[]model.RatedProperty](s.loggerFor(ctx), "get_properties", err)
	}

	s.loggerFor(ctx).Debug().
		Str("city", filter.City).
		Int("requested_limit", limit).
		Int("count", len(properties)).
		Msg("listed properties")

	return succeeded(properties)
}

// AddProperty stores a new property. A missing required field reaches
// the store as NULL and fails with sqlerr.ReasonConstraintViolation.
func (s *QueryService) AddProperty(ctx context.Context, input model.NewProperty) Result[*model.Property] {
	property, err := s.repos.Properties.Create(ctx, input)
	if err != nil {
		return logFailure[*model.Property](s.loggerFor(ctx), "add_property", err)
	}
	return succeeded(property)
}

// loggerFor prefers the request-scoped logger carried by ctx.
func (s *QueryService) loggerFor(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.logger
}

func logFailure[T any](logger *zerolog.Logger, operation string, err error) Result[T] {
	result := failed[T](err)

	logger.Error().
		Err(err).
		Str("operation", operation).
		Str("reason", result.Reason.String()).
		Msg("store operation failed")

	return result
}
