package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuType classifies a single menu item; unlike restaurants there is
// no mixed option.
type MenuType string

const (
	MenuTypeVeg    MenuType = "Veg"
	MenuTypeNonVeg MenuType = "Non-Veg"
)

// ParseMenuType validates a raw string against the closed set of menu types.
func ParseMenuType(value string) (MenuType, error) {
	switch MenuType(value) {
	case MenuTypeVeg, MenuTypeNonVeg:
		return MenuType(value), nil
	}
	return "", fmt.Errorf("invalid menu_type %q: must be Veg or Non-Veg", value)
}

// MenuItem is the stored shape of a menu document. Deletion and
// per-restaurant listing key on the (restaurantName, name) pair;
// creation does not enforce uniqueness of that pair.
type MenuItem struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	RestaurantName string             `bson:"restaurantName"`
	MenuType       MenuType           `bson:"menu_type"`
	Description    string             `bson:"description"`
	Price          int                `bson:"price"`
	ImageURL       string             `bson:"imageUrl"`
}

// CreateMenuItemRequest carries the multipart form fields of a create call.
type CreateMenuItemRequest struct {
	Name           string `validate:"required"`
	RestaurantName string `validate:"required"`
	MenuType       string `validate:"required,oneof=Veg Non-Veg"`
	Description    string `validate:"required"`
	Price          int    `validate:"gte=0"`
}

// MenuItemResponse exposes the store-assigned identifier as a string.
type MenuItemResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	RestaurantName string   `json:"restaurantName"`
	MenuType       MenuType `json:"menu_type"`
	Description    string   `json:"description"`
	Price          int      `json:"price"`
	ImageURL       string   `json:"imageUrl"`
}

type MenuListing struct {
	Menus []MenuItemResponse `json:"menus"`
}

// Response renders the stored document into its wire shape.
func (m *MenuItem) Response() MenuItemResponse {
	return MenuItemResponse{
		ID:             m.ID.Hex(),
		Name:           m.Name,
		RestaurantName: m.RestaurantName,
		MenuType:       m.MenuType,
		Description:    m.Description,
		Price:          m.Price,
		ImageURL:       m.ImageURL,
	}
}
