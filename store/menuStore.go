package store

import (
	"context"
	"errors"
	"sync"

	"github.com/harshitkumar26/Campus-Food-Delivery-System/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

// MenuStore defines the collection operations the menu handlers depend on.
type MenuStore interface {
	Insert(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
	ListByRestaurant(ctx context.Context, restaurantName string) ([]models.MenuItem, error)
	Delete(ctx context.Context, restaurantName, name string) error
}

// MockMenuStore is an in-memory MenuStore used by the tests.
type MockMenuStore struct {
	mu    sync.RWMutex
	items []models.MenuItem
}

func NewMockMenuStore() *MockMenuStore {
	return &MockMenuStore{}
}

func (m *MockMenuStore) Insert(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *item
	if stored.ID.IsZero() {
		stored.ID = primitive.NewObjectID()
	}
	m.items = append(m.items, stored)

	created := stored
	return &created, nil
}

func (m *MockMenuStore) ListByRestaurant(ctx context.Context, restaurantName string) ([]models.MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []models.MenuItem
	for i := range m.items {
		if m.items[i].RestaurantName == restaurantName {
			result = append(result, m.items[i])
			if len(result) == listLimit {
				break
			}
		}
	}
	return result, nil
}

func (m *MockMenuStore) Delete(ctx context.Context, restaurantName, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].RestaurantName == restaurantName && m.items[i].Name == name {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return ErrMenuItemNotFound
}
