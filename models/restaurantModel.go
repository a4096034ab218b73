package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RestaurantType is the canonical cuisine classification of a restaurant.
type RestaurantType string

const (
	RestaurantTypeVeg    RestaurantType = "Veg"
	RestaurantTypeNonVeg RestaurantType = "Non-Veg"
	RestaurantTypeBoth   RestaurantType = "Both"
)

// ParseRestaurantType validates a raw string against the closed set of
// restaurant types.
func ParseRestaurantType(value string) (RestaurantType, error) {
	switch RestaurantType(value) {
	case RestaurantTypeVeg, RestaurantTypeNonVeg, RestaurantTypeBoth:
		return RestaurantType(value), nil
	}
	return "", fmt.Errorf("invalid restaurant_type %q: must be Veg, Non-Veg or Both", value)
}

// Restaurant is the stored shape of a restaurant document. Lookup is by
// name; the store-assigned id is never exposed on the wire.
type Restaurant struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	PhoneNumber    string             `bson:"phone_number"`
	RestaurantType RestaurantType     `bson:"restaurant_type"`
	OpeningTime    time.Time          `bson:"opening_time"`
	ClosingTime    time.Time          `bson:"closing_time"`
	Rating         float64            `bson:"rating"`
	ImageURL       string             `bson:"imageUrl"`
}

// CreateRestaurantRequest carries the multipart form fields of a create
// call before any parsing of times or the type enum.
type CreateRestaurantRequest struct {
	Name           string  `validate:"required"`
	PhoneNumber    string  `validate:"required"`
	RestaurantType string  `validate:"required,oneof=Veg Non-Veg Both"`
	OpeningTime    string  `validate:"required"`
	ClosingTime    string  `validate:"required"`
	Rating         float64 `validate:"gte=0,lte=5"`
}

// RestaurantResponse is the wire shape, with times rendered back as
// 12-hour clock strings.
type RestaurantResponse struct {
	Name           string         `json:"name"`
	PhoneNumber    string         `json:"phone_number"`
	RestaurantType RestaurantType `json:"restaurant_type"`
	OpeningTime    string         `json:"opening_time"`
	ClosingTime    string         `json:"closing_time"`
	Rating         float64        `json:"rating"`
	ImageURL       string         `json:"imageUrl"`
}

type RestaurantListing struct {
	Restaurants []RestaurantResponse `json:"restaurants"`
}

// Response renders the stored document into its wire shape.
func (r *Restaurant) Response() RestaurantResponse {
	return RestaurantResponse{
		Name:           r.Name,
		PhoneNumber:    r.PhoneNumber,
		RestaurantType: r.RestaurantType,
		OpeningTime:    FormatClock(r.OpeningTime),
		ClosingTime:    FormatClock(r.ClosingTime),
		Rating:         r.Rating,
		ImageURL:       r.ImageURL,
	}
}
