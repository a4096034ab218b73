package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/harshitkumar26/Campus-Food-Delivery-System/helper"
	"github.com/harshitkumar26/Campus-Food-Delivery-System/models"
	"github.com/harshitkumar26/Campus-Food-Delivery-System/store"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// RatingController serves the rating aggregate endpoints.
type RatingController struct {
	store    store.RatingStore
	validate *validator.Validate
	logger   *slog.Logger
}

func NewRatingController(s store.RatingStore, validate *validator.Validate, logger *slog.Logger) *RatingController {
	return &RatingController{store: s, validate: validate, logger: logger}
}

// Submit a new rating for a restaurant
func (c *RatingController) SubmitRating(w http.ResponseWriter, r *http.Request) {
	var submission models.RatingSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		helper.RespondError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	if err := c.validate.Struct(submission); err != nil {
		helper.RespondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	aggregate, err := c.store.Submit(r.Context(), submission.RestaurantName, *submission.Rating)
	if err != nil {
		c.logger.Error("rating submit failed", slog.String("restaurant", submission.RestaurantName), slog.String("error", err.Error()))
		helper.RespondError(w, http.StatusInternalServerError, "Rating was not recorded")
		return
	}

	helper.RespondJSON(w, http.StatusCreated, aggregate)
}

// Fetch the average rating of a restaurant
func (c *RatingController) FetchAvgRating(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	aggregate, err := c.store.Fetch(r.Context(), name)
	if errors.Is(err, store.ErrRatingNotFound) {
		helper.RespondError(w, http.StatusNotFound, fmt.Sprintf("Restaurant with name '%s' not found", name))
		return
	}
	if err != nil {
		c.logger.Error("rating fetch failed", slog.String("restaurant", name), slog.String("error", err.Error()))
		helper.RespondError(w, http.StatusInternalServerError, "Error occurred while fetching the rating")
		return
	}

	helper.RespondJSON(w, http.StatusOK, aggregate)
}
