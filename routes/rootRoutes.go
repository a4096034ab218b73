package routes

import (
	"net/http"

	"github.com/harshitkumar26/Campus-Food-Delivery-System/helper"

	"github.com/gorilla/mux"
)

func RootRoutes(router *mux.Router) {

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		helper.RespondJSON(w, http.StatusOK, map[string]string{"Hello": "World"})
	}).Methods(http.MethodGet)
}
