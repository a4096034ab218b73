package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/harshitkumar26/Campus-Food-Delivery-System/helper"
	"github.com/harshitkumar26/Campus-Food-Delivery-System/models"
	"github.com/harshitkumar26/Campus-Food-Delivery-System/store"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

const maxUploadMemory = 32 << 20

// RestaurantController serves the restaurant CRUD endpoints.
type RestaurantController struct {
	store    store.RestaurantStore
	blobs    store.BlobStore
	validate *validator.Validate
	logger   *slog.Logger
}

func NewRestaurantController(s store.RestaurantStore, blobs store.BlobStore, validate *validator.Validate, logger *slog.Logger) *RestaurantController {
	return &RestaurantController{store: s, blobs: blobs, validate: validate, logger: logger}
}

// Create a restaurant from a multipart form, with an optional image upload
func (c *RestaurantController) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		helper.RespondError(w, http.StatusUnprocessableEntity, "invalid multipart form")
		return
	}

	req := models.CreateRestaurantRequest{
		Name:           r.FormValue("name"),
		PhoneNumber:    r.FormValue("phone_number"),
		RestaurantType: r.FormValue("restaurant_type"),
		OpeningTime:    r.FormValue("opening_time"),
		ClosingTime:    r.FormValue("closing_time"),
	}
	if raw := r.FormValue("rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			helper.RespondError(w, http.StatusUnprocessableEntity, fmt.Sprintf("invalid rating %q", raw))
			return
		}
		req.Rating = rating
	}

	if err := c.validate.Struct(req); err != nil {
		helper.RespondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	restaurantType, err := models.ParseRestaurantType(req.RestaurantType)
	if err != nil {
		helper.RespondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	openingTime, err := models.ParseClock(req.OpeningTime)
	if err != nil {
		helper.RespondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	closingTime, err := models.ParseClock(req.ClosingTime)
	if err != nil {
		helper.RespondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	imageURL := ""
	file, _, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		url, writeErr := c.blobs.Write(req.Name+".jpg", file)
		if writeErr != nil {
			c.logger.Error("storing restaurant image failed", slog.String("restaurant", req.Name), slog.String("error", writeErr.Error()))
			helper.RespondError(w, http.StatusInternalServerError, "Restaurant image could not be stored")
			return
		}
		imageURL = url
	case errors.Is(err, http.ErrMissingFile):
		// image is optional
	default:
		helper.RespondError(w, http.StatusUnprocessableEntity, "invalid image upload")
		return
	}

	restaurant := &models.Restaurant{
		Name:           req.Name,
		PhoneNumber:    req.PhoneNumber,
		RestaurantType: restaurantType,
		OpeningTime:    openingTime,
		ClosingTime:    closingTime,
		Rating:         req.Rating,
		ImageURL:       imageURL,
	}

	created, err := c.store.Insert(r.Context(), restaurant)
	if err != nil {
		c.logger.Error("restaurant insert failed", slog.String("restaurant", req.Name), slog.String("error", err.Error()))
		helper.RespondError(w, http.StatusInternalServerError, "Restaurant was not created")
		return
	}

	helper.RespondJSON(w, http.StatusCreated, created.Response())
}

// List all restaurants
func (c *RestaurantController) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := c.store.FindAll(r.Context())
	if err != nil {
		c.logger.Error("restaurant listing failed", slog.String("error", err.Error()))
		helper.RespondError(w, http.StatusInternalServerError, "Error occurred while listing restaurants")
		return
	}

	listing := models.RestaurantListing{Restaurants: make([]models.RestaurantResponse, 0, len(restaurants))}
	for i := range restaurants {
		listing.Restaurants = append(listing.Restaurants, restaurants[i].Response())
	}

	helper.RespondJSON(w, http.StatusOK, listing)
}

// Get a single restaurant by exact name
func (c *RestaurantController) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	restaurant, err := c.store.FindByName(r.Context(), name)
	if errors.Is(err, store.ErrRestaurantNotFound) {
		helper.RespondError(w, http.StatusNotFound, fmt.Sprintf("Restaurant %s not found", name))
		return
	}
	if err != nil {
		c.logger.Error("restaurant lookup failed", slog.String("restaurant", name), slog.String("error", err.Error()))
		helper.RespondError(w, http.StatusInternalServerError, "Error occurred while fetching the restaurant")
		return
	}

	helper.RespondJSON(w, http.StatusOK, restaurant.Response())
}

// Search restaurants by case-insensitive name substring
func (c *RestaurantController) SearchRestaurants(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	restaurants, err := c.store.Search(r.Context(), query)
	if err != nil {
		c.logger.Error("restaurant search failed", slog.String("query", query), slog.String("error", err.Error()))
		helper.RespondError(w, http.StatusInternalServerError, "Error occurred while searching restaurants")
		return
	}

	// An empty result set is reported as not-found, same as a missing
	// restaurant. Callers cannot tell "no matches" from an error.
	if len(restaurants) == 0 {
		helper.RespondError(w, http.StatusNotFound, fmt.Sprintf("No restaurants found matching %s", query))
		return
	}

	listing := models.RestaurantListing{Restaurants: make([]models.RestaurantResponse, 0, len(restaurants))}
	for i := range restaurants {
		listing.Restaurants = append(listing.Restaurants, restaurants[i].Response())
	}

	helper.RespondJSON(w, http.StatusOK, listing)
}

// Delete a restaurant by exact name
func (c *RestaurantController) DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	err := c.store.Delete(r.Context(), name)
	if errors.Is(err, store.ErrRestaurantNotFound) {
		helper.RespondError(w, http.StatusNotFound, fmt.Sprintf("Restaurant %s not found", name))
		return
	}
	if err != nil {
		c.logger.Error("restaurant delete failed", slog.String("restaurant", name), slog.String("error", err.Error()))
		helper.RespondError(w, http.StatusInternalServerError, "Restaurant deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
