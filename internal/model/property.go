package model

// Property is a row of the properties table.
//
// CostPerNight is stored in the smallest currency unit.
type Property struct {
	ID                int64  `json:"id"`
	OwnerID           int64  `json:"owner_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url"`
	CostPerNight      int64  `json:"cost_per_night"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
	Country           string `json:"country"`
	ParkingSpaces     int32  `json:"parking_spaces"`
	NumberOfBathrooms int32  `json:"number_of_bathrooms"`
	NumberOfBedrooms  int32  `json:"number_of_bedrooms"`
}

// RatedProperty is a listing row: a property plus the average of its
// review ratings.
type RatedProperty struct {
	Property
	AverageRating float64 `json:"average_rating"`
}

// NewProperty is the input of a properties insert.
//
// Every field is a pointer: an omitted field is sent as NULL and the
// store's NOT NULL constraints decide whether the insert is accepted.
type NewProperty struct {
	OwnerID           *int64  `json:"owner_id"`
	Title             *string `json:"title"`
	Description       *string `json:"description"`
	ThumbnailPhotoURL *string `json:"thumbnail_photo_url"`
	CoverPhotoURL     *string `json:"cover_photo_url"`
	CostPerNight      *int64  `json:"cost_per_night"`
	Street            *string `json:"street"`
	City              *string `json:"city"`
	Province          *string `json:"province"`
	PostCode          *string `json:"post_code"`
	Country           *string `json:"country"`
	ParkingSpaces     *int32  `json:"parking_spaces"`
	NumberOfBathrooms *int32  `json:"number_of_bathrooms"`
	NumberOfBedrooms  *int32  `json:"number_of_bedrooms"`
}

// PropertyFilter holds the optional listing filters.
// An empty City means no filter.
type PropertyFilter struct {
	City string `query:"city"`
}
