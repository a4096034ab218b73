package routes

import (
	"net/http"

	controllers "github.com/harshitkumar26/Campus-Food-Delivery-System/controllers"

	"github.com/gorilla/mux"
)

func RestaurantRoutes(router *mux.Router, c *controllers.RestaurantController) {

	router.HandleFunc("/restaurants/search/", c.SearchRestaurants).Methods(http.MethodGet)

	router.HandleFunc("/restaurants/", c.CreateRestaurant).Methods(http.MethodPost)
	router.HandleFunc("/restaurants/", c.ListRestaurants).Methods(http.MethodGet)

	router.HandleFunc("/restaurants/{name}", c.GetRestaurant).Methods(http.MethodGet)
	router.HandleFunc("/restaurants/{name}", c.DeleteRestaurant).Methods(http.MethodDelete)
}
