package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the stored shape of a user document. Only creation is
// exposed; the email carries no uniqueness or format constraint beyond
// presence.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Email string             `bson:"email"`
}

// UserResponse exposes the store-assigned identifier as a string.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (u *User) Response() UserResponse {
	return UserResponse{
		ID:    u.ID.Hex(),
		Email: u.Email,
	}
}
