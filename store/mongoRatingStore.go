package store

import (
	"context"
	"errors"

	"github.com/harshitkumar26/Campus-Food-Delivery-System/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRatingStore backs the rating service with a MongoDB collection.
// The read-compute-write of Submit runs under a per-restaurant lock so
// two concurrent submissions for the same name cannot overwrite each
// other's count.
type MongoRatingStore struct {
	collection *mongo.Collection
	locks      keyedMutex
}

func NewMongoRatingStore(collection *mongo.Collection) *MongoRatingStore {
	return &MongoRatingStore{collection: collection}
}

func (s *MongoRatingStore) Submit(ctx context.Context, restaurantName string, rating float64) (*models.RatingAggregate, error) {
	unlock := s.locks.Lock(restaurantName)
	defer unlock()

	var existing models.RatingAggregate
	err := s.collection.FindOne(ctx, bson.M{"restaurantName": restaurantName}).Decode(&existing)
	if errors.Is(err, mongo.ErrNoDocuments) {
		agg := models.RatingAggregate{
			ID:             primitive.NewObjectID(),
			RestaurantName: restaurantName,
			AvgRating:      rating,
			NumRatings:     1,
		}
		if _, err := s.collection.InsertOne(ctx, agg); err != nil {
			return nil, err
		}
		return &agg, nil
	}
	if err != nil {
		return nil, err
	}

	newAvg := (existing.AvgRating*float64(existing.NumRatings) + rating) / float64(existing.NumRatings+1)
	update := bson.M{"$set": bson.M{
		"avgRating":  newAvg,
		"numRatings": existing.NumRatings + 1,
	}}
	if _, err := s.collection.UpdateOne(ctx, bson.M{"restaurantName": restaurantName}, update); err != nil {
		return nil, err
	}

	var updated models.RatingAggregate
	if err := s.collection.FindOne(ctx, bson.M{"restaurantName": restaurantName}).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *MongoRatingStore) Fetch(ctx context.Context, restaurantName string) (*models.RatingAggregate, error) {
	var agg models.RatingAggregate
	err := s.collection.FindOne(ctx, bson.M{"restaurantName": restaurantName}).Decode(&agg)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrRatingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &agg, nil
}
