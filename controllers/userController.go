package controller

import (
	"log/slog"
	"net/http"

	"github.com/harshitkumar26/Campus-Food-Delivery-System/helper"
	"github.com/harshitkumar26/Campus-Food-Delivery-System/models"
	"github.com/harshitkumar26/Campus-Food-Delivery-System/store"
)

// UserController serves the single user endpoint.
type UserController struct {
	store  store.UserStore
	logger *slog.Logger
}

func NewUserController(s store.UserStore, logger *slog.Logger) *UserController {
	return &UserController{store: s, logger: logger}
}

// Create a user from a form-encoded email field
func (c *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	if email == "" {
		helper.RespondError(w, http.StatusUnprocessableEntity, "email is required")
		return
	}

	created, err := c.store.Insert(r.Context(), &models.User{Email: email})
	if err != nil {
		c.logger.Error("user insert failed", slog.String("error", err.Error()))
		helper.RespondError(w, http.StatusInternalServerError, "User was not created")
		return
	}

	helper.RespondJSON(w, http.StatusCreated, created.Response())
}
