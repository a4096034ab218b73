package store

import (
	"context"
	"sync"

	"github.com/harshitkumar26/Campus-Food-Delivery-System/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore defines the only user operation the system exposes.
type UserStore interface {
	Insert(ctx context.Context, user *models.User) (*models.User, error)
}

// MockUserStore is an in-memory UserStore used by the tests.
type MockUserStore struct {
	mu    sync.Mutex
	users []models.User
}

func NewMockUserStore() *MockUserStore {
	return &MockUserStore{}
}

func (m *MockUserStore) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := *user
	if stored.ID.IsZero() {
		stored.ID = primitive.NewObjectID()
	}
	m.users = append(m.users, stored)

	created := stored
	return &created, nil
}
