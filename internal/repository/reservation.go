package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/lightbnb/internal/database"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/jackc/pgx/v5"
)

// DefaultReservationLimit is used when a caller passes a non-positive limit.
const DefaultReservationLimit = 10

// ReservationRepository handles reservation data access
type ReservationRepository struct {
	db database.Querier
}

// NewReservationRepository creates a new reservation repository
func NewReservationRepository(db database.Querier) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// ListForGuestQuery builds the reservations statement for one guest.
//
// Grouping by both property and reservation computes the rating
// aggregate once per reservation row.
func ListForGuestQuery(guestID int64, limit int) (string, []any) {
	if limit <= 0 {
		limit = DefaultReservationLimit
	}

	q := database.NewQuery(`
		SELECT reservations.id, reservations.guest_id, reservations.property_id, reservations.start_date,
			` + propertyColumns + `, avg(property_reviews.rating) AS average_rating
		FROM reservations
		JOIN properties ON reservations.property_id = properties.id
		JOIN property_reviews ON properties.id = property_reviews.property_id`).
		Where("reservations.guest_id = ?", guestID).
		GroupBy("properties.id", "reservations.id").
		OrderBy("reservations.start_date").
		Limit(limit)

	return q.SQL()
}

// ListForGuest returns up to limit reservations of guestID ordered by
// start date. No reservations yields an empty, non-nil slice.
func (r *ReservationRepository) ListForGuest(ctx context.Context, guestID int64, limit int) ([]model.Reservation, error) {
	query, args := ListForGuestQuery(guestID, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}

	reservations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Reservation, error) {
		var res model.Reservation
		dest := []any{&res.ID, &res.GuestID, &res.PropertyID, &res.StartDate}
		dest = append(dest, propertyFields(&res.Property)...)
		dest = append(dest, &res.AverageRating)
		err := row.Scan(dest...)
		return res, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan reservations: %w", err)
	}
	if reservations == nil {
		reservations = []model.Reservation{}
	}
	return reservations, nil
}
