package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/deppfellow/lightbnb/internal/database"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/jackc/pgx/v5"
)

// propertyColumns lists the properties table in model.Property field
// order. Keep it in sync with propertyFields.
const propertyColumns = `properties.id, properties.owner_id, properties.title, properties.description,
	properties.thumbnail_photo_url, properties.cover_photo_url, properties.cost_per_night,
	properties.street, properties.city, properties.province, properties.post_code, properties.country,
	properties.parking_spaces, properties.number_of_bathrooms, properties.number_of_bedrooms`

// likeEscaper makes LIKE wildcards in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// PropertyRepository handles property data access
type PropertyRepository struct {
	db database.Querier
}

// NewPropertyRepository creates a new property repository
func NewPropertyRepository(db database.Querier) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// ListQuery builds the listing statement for filter.
//
// Properties are joined to their reviews and grouped so each row carries
// its average rating. A non-empty city adds a case-insensitive literal
// substring match. No row limit is applied.
func ListQuery(filter model.PropertyFilter) (string, []any) {
	q := database.NewQuery(`
		SELECT ` + propertyColumns + `, avg(property_reviews.rating) AS average_rating
		FROM properties
		JOIN property_reviews ON properties.id = property_reviews.property_id`)

	if filter.City != "" {
		q.Where(`properties.city ILIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(filter.City)+"%")
	}

	q.GroupBy("properties.id")
	return q.SQL()
}

// List returns the properties matching filter with their average rating.
// No match yields an empty, non-nil slice.
func (r *PropertyRepository) List(ctx context.Context, filter model.PropertyFilter) ([]model.RatedProperty, error) {
	query, args := ListQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	properties, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.RatedProperty, error) {
		var p model.RatedProperty
		err := row.Scan(append(propertyFields(&p.Property), &p.AverageRating)...)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan properties: %w", err)
	}
	if properties == nil {
		properties = []model.RatedProperty{}
	}
	return properties, nil
}

// Create inserts all fourteen owner-supplied fields in one statement.
// Nil fields are sent as NULL and left to the table constraints.
func (r *PropertyRepository) Create(ctx context.Context, input model.NewProperty) (*model.Property, error) {
	query := `
		INSERT INTO properties (
			owner_id, title, description, thumbnail_photo_url, cover_photo_url,
			cost_per_night, street, city, province, post_code, country,
			parking_spaces, number_of_bathrooms, number_of_bedrooms
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + propertyColumns

	row := r.db.QueryRow(ctx, query,
		input.OwnerID,
		input.Title,
		input.Description,
		input.ThumbnailPhotoURL,
		input.CoverPhotoURL,
		input.CostPerNight,
		input.Street,
		input.City,
		input.Province,
		input.PostCode,
		input.Country,
		input.ParkingSpaces,
		input.NumberOfBathrooms,
		input.NumberOfBedrooms,
	)

	var property model.Property
	if err := row.Scan(propertyFields(&property)...); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	return &property, nil
}

// propertyFields returns scan destinations in propertyColumns order.
func propertyFields(p *model.Property) []any {
	return []any{
		&p.ID,
		&p.OwnerID,
		&p.Title,
		&p.Description,
		&p.ThumbnailPhotoURL,
		&p.CoverPhotoURL,
		&p.CostPerNight,
		&p.Street,
		&p.City,
		&p.Province,
		&p.PostCode,
		&p.Country,
		&p.ParkingSpaces,
		&p.NumberOfBathrooms,
		&p.NumberOfBedrooms,
	}
}
