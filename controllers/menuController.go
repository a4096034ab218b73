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

// MenuController serves the menu item endpoints.
type MenuController struct {
	store    store.MenuStore
	blobs    store.BlobStore
	validate *validator.Validate
	logger   *slog.Logger
}

func NewMenuController(s store.MenuStore, blobs store.BlobStore, validate *validator.Validate, logger *slog.Logger) *MenuController {
	return &MenuController{store: s, blobs: blobs, validate: validate, logger: logger}
}

// Create a menu item from a multipart form; the image upload is mandatory
func (c *MenuController) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		helper.RespondError(w, http.StatusUnprocessableEntity, "invalid multipart form")
		return
	}

	req := models.CreateMenuItemRequest{
		Name:           r.FormValue("name"),
		RestaurantName: r.FormValue("restaurantName"),
		MenuType:       r.FormValue("menu_type"),
		Description:    r.FormValue("description"),
	}
	if raw := r.FormValue("price"); raw != "" {
		price, err := strconv.Atoi(raw)
		if err != nil {
			helper.RespondError(w, http.StatusUnprocessableEntity, fmt.Sprintf("invalid price %q", raw))
			return
		}
		req.Price = price
	}

	if err := c.validate.Struct(req); err != nil {
		helper.RespondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	menuType, err := models.ParseMenuType(req.MenuType)
	if err != nil {
		helper.RespondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		helper.RespondError(w, http.StatusUnprocessableEntity, "image file is required")
		return
	}
	defer file.Close()

	blobName := req.RestaurantName + "_" + req.Name + ".jpg"
	imageURL, err := c.blobs.Write(blobName, file)
	if err != nil {
		c.logger.Error("storing menu image failed", slog.String("blob", blobName), slog.String("error", err.Error()))
		helper.RespondError(w, http.StatusInternalServerError, "Menu image could not be stored")
		return
	}

	item := &models.MenuItem{
		Name:           req.Name,
		RestaurantName: req.RestaurantName,
		MenuType:       menuType,
		Description:    req.Description,
		Price:          req.Price,
		ImageURL:       imageURL,
	}

	created, err := c.store.Insert(r.Context(), item)
	if err != nil {
		c.logger.Error("menu item insert failed", slog.String("restaurant", req.RestaurantName), slog.String("item", req.Name), slog.String("error", err.Error()))
		helper.RespondError(w, http.StatusInternalServerError, "Menu item was not created")
		return
	}

	helper.RespondJSON(w, http.StatusCreated, created.Response())
}

// List all menu items of a restaurant
func (c *MenuController) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	restaurantName := mux.Vars(r)["restaurantName"]

	items, err := c.store.ListByRestaurant(r.Context(), restaurantName)
	if err != nil {
		c.logger.Error("menu listing failed", slog.String("restaurant", restaurantName), slog.String("error", err.Error()))
		helper.RespondError(w, http.StatusInternalServerError, "Error occurred while listing menu items")
		return
	}

	// An empty menu is reported as a missing restaurant; a restaurant
	// with no items is indistinguishable from one that does not exist.
	if len(items) == 0 {
		helper.RespondError(w, http.StatusNotFound, fmt.Sprintf("Restaurant %s not found", restaurantName))
		return
	}

	listing := models.MenuListing{Menus: make([]models.MenuItemResponse, 0, len(items))}
	for i := range items {
		listing.Menus = append(listing.Menus, items[i].Response())
	}

	helper.RespondJSON(w, http.StatusOK, listing)
}

// Delete a menu item by its (restaurantName, name) pair
func (c *MenuController) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantName := vars["restaurantName"]
	name := vars["name"]

	err := c.store.Delete(r.Context(), restaurantName, name)
	if errors.Is(err, store.ErrMenuItemNotFound) {
		helper.RespondError(w, http.StatusNotFound, "Menu item not found")
		return
	}
	if err != nil {
		c.logger.Error("menu item delete failed", slog.String("restaurant", restaurantName), slog.String("item", name), slog.String("error", err.Error()))
		helper.RespondError(w, http.StatusInternalServerError, "Menu item deletion failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
