package store

import (
	"context"

	"github.com/harshitkumar26/Campus-Food-Delivery-System/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserStore backs the user service with a MongoDB collection.
type MongoUserStore struct {
	collection *mongo.Collection
}

func NewMongoUserStore(collection *mongo.Collection) *MongoUserStore {
	return &MongoUserStore{collection: collection}
}

func (s *MongoUserStore) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = primitive.NewObjectID()
	if _, err := s.collection.InsertOne(ctx, user); err != nil {
		return nil, err
	}

	var created models.User
	if err := s.collection.FindOne(ctx, bson.M{"_id": user.ID}).Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}
