package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RatingSubmission is the JSON body of a rating submission. Rating is a
// pointer so a missing field is distinguishable from a legitimate 0.
type RatingSubmission struct {
	RestaurantName string   `json:"restaurantName" validate:"required"`
	Rating         *float64 `json:"rating" validate:"required,gte=0,lte=5"`
}

// RatingAggregate is the single summarized rating document kept per
// restaurant. AvgRating is the running arithmetic mean of every value
// submitted for RestaurantName and NumRatings the submission count;
// individual submissions are not persisted.
type RatingAggregate struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	RestaurantName string             `bson:"restaurantName" json:"restaurantName"`
	AvgRating      float64            `bson:"avgRating" json:"avgRating"`
	NumRatings     int64              `bson:"numRatings" json:"numRatings"`
}
