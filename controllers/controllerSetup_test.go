package controller_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	controllers "github.com/harshitkumar26/Campus-Food-Delivery-System/controllers"
	"github.com/harshitkumar26/Campus-Food-Delivery-System/routes"
	"github.com/harshitkumar26/Campus-Food-Delivery-System/store"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// env wires the real router and controllers to in-memory stores.
type env struct {
	router      *mux.Router
	restaurants *store.MockRestaurantStore
	menu        *store.MockMenuStore
	ratings     *store.MockRatingStore
	users       *store.MockUserStore
	blobs       *store.MockBlobStore
}

func newEnv() *env {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	validate := validator.New()

	e := &env{
		router:      mux.NewRouter(),
		restaurants: store.NewMockRestaurantStore(),
		menu:        store.NewMockMenuStore(),
		ratings:     store.NewMockRatingStore(),
		users:       store.NewMockUserStore(),
		blobs:       store.NewMockBlobStore(),
	}

	routes.RestaurantRoutes(e.router, controllers.NewRestaurantController(e.restaurants, e.blobs, validate, logger))
	routes.MenuRoutes(e.router, controllers.NewMenuController(e.menu, e.blobs, validate, logger))
	routes.RatingRoutes(e.router, controllers.NewRatingController(e.ratings, validate, logger))
	routes.UserRoutes(e.router, controllers.NewUserController(e.users, logger))

	return e
}

func (e *env) do(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

// multipartRequest builds a POST with form fields and, when fileField is
// non-empty, one file part.
func multipartRequest(t *testing.T, target string, fields map[string]string, fileField, fileName string, fileData []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), into))
}
