package routes

import (
	"net/http"

	controllers "github.com/harshitkumar26/Campus-Food-Delivery-System/controllers"

	"github.com/gorilla/mux"
)

func MenuRoutes(router *mux.Router, c *controllers.MenuController) {

	router.HandleFunc("/menu/", c.CreateMenuItem).Methods(http.MethodPost)
	router.HandleFunc("/menu/{restaurantName}", c.ListMenuItems).Methods(http.MethodGet)
	router.HandleFunc("/menu/{restaurantName}/{name}", c.DeleteMenuItem).Methods(http.MethodDelete)
}
