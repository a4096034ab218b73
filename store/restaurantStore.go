package store

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/harshitkumar26/Campus-Food-Delivery-System/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrRestaurantNotFound = errors.New("restaurant not found")

// listLimit caps every unfiltered or search listing; results beyond it
// are silently truncated.
const listLimit = 1000

// RestaurantStore defines the collection operations the restaurant
// handlers depend on.
type RestaurantStore interface {
	Insert(ctx context.Context, restaurant *models.Restaurant) (*models.Restaurant, error)
	FindAll(ctx context.Context) ([]models.Restaurant, error)
	FindByName(ctx context.Context, name string) (*models.Restaurant, error)
	Search(ctx context.Context, query string) ([]models.Restaurant, error)
	Delete(ctx context.Context, name string) error
}

// MockRestaurantStore is an in-memory RestaurantStore used by the tests.
type MockRestaurantStore struct {
	mu          sync.RWMutex
	restaurants []models.Restaurant
}

func NewMockRestaurantStore() *MockRestaurantStore {
	return &MockRestaurantStore{}
}

func (m *MockRestaurantStore) Insert(ctx context.Context, restaurant *models.Restaurant) (*models.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *restaurant
	if stored.ID.IsZero() {
		stored.ID = primitive.NewObjectID()
	}
	m.restaurants = append(m.restaurants, stored)

	created := stored
	return &created, nil
}

func (m *MockRestaurantStore) FindAll(ctx context.Context) ([]models.Restaurant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.restaurants)
	if n > listLimit {
		n = listLimit
	}
	result := make([]models.Restaurant, n)
	copy(result, m.restaurants[:n])
	return result, nil
}

func (m *MockRestaurantStore) FindByName(ctx context.Context, name string) (*models.Restaurant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.restaurants {
		if m.restaurants[i].Name == name {
			found := m.restaurants[i]
			return &found, nil
		}
	}
	return nil, ErrRestaurantNotFound
}

func (m *MockRestaurantStore) Search(ctx context.Context, query string) ([]models.Restaurant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToLower(query)
	var result []models.Restaurant
	for i := range m.restaurants {
		if strings.Contains(strings.ToLower(m.restaurants[i].Name), needle) {
			result = append(result, m.restaurants[i])
			if len(result) == listLimit {
				break
			}
		}
	}
	return result, nil
}

func (m *MockRestaurantStore) Delete(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.restaurants {
		if m.restaurants[i].Name == name {
			m.restaurants = append(m.restaurants[:i], m.restaurants[i+1:]...)
			return nil
		}
	}
	return ErrRestaurantNotFound
}
