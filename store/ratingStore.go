package store

import (
	"context"
	"errors"
	"sync"

	"github.com/harshitkumar26/Campus-Food-Delivery-System/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrRatingNotFound = errors.New("rating not found")

// RatingStore maintains one aggregate document per restaurant. Submit
// applies the incremental mean update
//
//	new_avg = (old_avg*n + rating) / (n+1)
//
// and must serialize concurrent submissions for the same restaurant so
// no submission is lost between the read and the write.
type RatingStore interface {
	Submit(ctx context.Context, restaurantName string, rating float64) (*models.RatingAggregate, error)
	Fetch(ctx context.Context, restaurantName string) (*models.RatingAggregate, error)
}

// MockRatingStore is an in-memory RatingStore used by the tests.
type MockRatingStore struct {
	mu         sync.Mutex
	aggregates map[string]*models.RatingAggregate
}

func NewMockRatingStore() *MockRatingStore {
	return &MockRatingStore{aggregates: make(map[string]*models.RatingAggregate)}
}

func (m *MockRatingStore) Submit(ctx context.Context, restaurantName string, rating float64) (*models.RatingAggregate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	agg, ok := m.aggregates[restaurantName]
	if !ok {
		agg = &models.RatingAggregate{
			ID:             primitive.NewObjectID(),
			RestaurantName: restaurantName,
			AvgRating:      rating,
			NumRatings:     1,
		}
		m.aggregates[restaurantName] = agg
	} else {
		agg.AvgRating = (agg.AvgRating*float64(agg.NumRatings) + rating) / float64(agg.NumRatings+1)
		agg.NumRatings++
	}

	result := *agg
	return &result, nil
}

func (m *MockRatingStore) Fetch(ctx context.Context, restaurantName string) (*models.RatingAggregate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	agg, ok := m.aggregates[restaurantName]
	if !ok {
		return nil, ErrRatingNotFound
	}
	result := *agg
	return &result, nil
}
