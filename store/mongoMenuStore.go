package store

import (
	"context"

	"github.com/harshitkumar26/Campus-Food-Delivery-System/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMenuStore backs the menu service with a MongoDB collection.
type MongoMenuStore struct {
	collection *mongo.Collection
}

func NewMongoMenuStore(collection *mongo.Collection) *MongoMenuStore {
	return &MongoMenuStore{collection: collection}
}

func (s *MongoMenuStore) Insert(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	item.ID = primitive.NewObjectID()
	if _, err := s.collection.InsertOne(ctx, item); err != nil {
		return nil, err
	}

	var created models.MenuItem
	if err := s.collection.FindOne(ctx, bson.M{"_id": item.ID}).Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *MongoMenuStore) ListByRestaurant(ctx context.Context, restaurantName string) ([]models.MenuItem, error) {
	filter := bson.M{"restaurantName": restaurantName}
	cursor, err := s.collection.Find(ctx, filter, options.Find().SetLimit(listLimit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *MongoMenuStore) Delete(ctx context.Context, restaurantName, name string) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"restaurantName": restaurantName, "name": name})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrMenuItemNotFound
	}
	return nil
}
