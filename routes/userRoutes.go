package routes

import (
	"net/http"

	controllers "github.com/harshitkumar26/Campus-Food-Delivery-System/controllers"

	"github.com/gorilla/mux"
)

func UserRoutes(router *mux.Router, c *controllers.UserController) {

	router.HandleFunc("/user/", c.CreateUser).Methods(http.MethodPost)
}
