package store

import (
	"context"
	"errors"
	"regexp"

	"github.com/harshitkumar26/Campus-Food-Delivery-System/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRestaurantStore backs the restaurant service with a MongoDB
// collection.
type MongoRestaurantStore struct {
	collection *mongo.Collection
}

func NewMongoRestaurantStore(collection *mongo.Collection) *MongoRestaurantStore {
	return &MongoRestaurantStore{collection: collection}
}

func (s *MongoRestaurantStore) Insert(ctx context.Context, restaurant *models.Restaurant) (*models.Restaurant, error) {
	restaurant.ID = primitive.NewObjectID()
	if _, err := s.collection.InsertOne(ctx, restaurant); err != nil {
		return nil, err
	}

	var created models.Restaurant
	if err := s.collection.FindOne(ctx, bson.M{"_id": restaurant.ID}).Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *MongoRestaurantStore) FindAll(ctx context.Context) ([]models.Restaurant, error) {
	cursor, err := s.collection.Find(ctx, bson.M{}, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var restaurants []models.Restaurant
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *MongoRestaurantStore) FindByName(ctx context.Context, name string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.collection.FindOne(ctx, bson.M{"name": name}).Decode(&restaurant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrRestaurantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (s *MongoRestaurantStore) Search(ctx context.Context, query string) ([]models.Restaurant, error) {
	filter := bson.M{"name": primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}}
	cursor, err := s.collection.Find(ctx, filter, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var restaurants []models.Restaurant
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *MongoRestaurantStore) Delete(ctx context.Context, name string) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrRestaurantNotFound
	}
	return nil
}
