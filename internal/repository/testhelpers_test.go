package repository

import (
	"testing"
	"time"

	"github.com/deppfellow/lightbnb/internal/lib/utils"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

var propertyColumnNames = []string{
	"id", "owner_id", "title", "description", "thumbnail_photo_url", "cover_photo_url",
	"cost_per_night", "street", "city", "province", "post_code", "country",
	"parking_spaces", "number_of_bathrooms", "number_of_bedrooms",
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func vancouverLoft() model.Property {
	return model.Property{
		ID:                7,
		OwnerID:           2,
		Title:             "Harbour loft",
		Description:       "description",
		ThumbnailPhotoURL: "https://images.example.com/7-thumb.jpg",
		CoverPhotoURL:     "https://images.example.com/7-cover.jpg",
		CostPerNight:      93000,
		Street:            "536 Namsub Highway",
		City:              "Vancouver",
		Province:          "British Columbia",
		PostCode:          "V6B 1A1",
		Country:           "Canada",
		ParkingSpaces:     1,
		NumberOfBathrooms: 2,
		NumberOfBedrooms:  3,
	}
}

func propertyRow(p model.Property) []any {
	return []any{
		p.ID, p.OwnerID, p.Title, p.Description, p.ThumbnailPhotoURL, p.CoverPhotoURL,
		p.CostPerNight, p.Street, p.City, p.Province, p.PostCode, p.Country,
		p.ParkingSpaces, p.NumberOfBathrooms, p.NumberOfBedrooms,
	}
}

func newPropertyFrom(p model.Property) model.NewProperty {
	return model.NewProperty{
		OwnerID:           utils.Ptr(p.OwnerID),
		Title:             utils.Ptr(p.Title),
		Description:       utils.Ptr(p.Description),
		ThumbnailPhotoURL: utils.Ptr(p.ThumbnailPhotoURL),
		CoverPhotoURL:     utils.Ptr(p.CoverPhotoURL),
		CostPerNight:      utils.Ptr(p.CostPerNight),
		Street:            utils.Ptr(p.Street),
		City:              utils.Ptr(p.City),
		Province:          utils.Ptr(p.Province),
		PostCode:          utils.Ptr(p.PostCode),
		Country:           utils.Ptr(p.Country),
		ParkingSpaces:     utils.Ptr(p.ParkingSpaces),
		NumberOfBathrooms: utils.Ptr(p.NumberOfBathrooms),
		NumberOfBedrooms:  utils.Ptr(p.NumberOfBedrooms),
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
