package routes

import (
	"net/http"

	controllers "github.com/harshitkumar26/Campus-Food-Delivery-System/controllers"

	"github.com/gorilla/mux"
)

func RatingRoutes(router *mux.Router, c *controllers.RatingController) {

	router.HandleFunc("/newRating/", c.SubmitRating).Methods(http.MethodPost)
	router.HandleFunc("/avgRating/{name}", c.FetchAvgRating).Methods(http.MethodGet)
}
