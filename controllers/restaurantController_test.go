package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harshitkumar26/Campus-Food-Delivery-System/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cafeRomaForm() map[string]string {
	return map[string]string{
		"name":            "Cafe Roma",
		"phone_number":    "555-0100",
		"restaurant_type": "Veg",
		"opening_time":    "08:00 AM",
		"closing_time":    "10:00 PM",
		"rating":          "4.2",
	}
}

func TestCreateRestaurantEchoesClockStrings(t *testing.T) {
	e := newEnv()

	rr := e.do(multipartRequest(t, "/restaurants/", cafeRomaForm(), "", "", nil))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created models.RestaurantResponse
	decodeBody(t, rr, &created)
	assert.Equal(t, "Cafe Roma", created.Name)
	assert.Equal(t, "555-0100", created.PhoneNumber)
	assert.Equal(t, models.RestaurantTypeVeg, created.RestaurantType)
	assert.Equal(t, "08:00 AM", created.OpeningTime)
	assert.Equal(t, "10:00 PM", created.ClosingTime)
	assert.Equal(t, 4.2, created.Rating)

	rr = e.do(httptest.NewRequest(http.MethodGet, "/restaurants/Cafe%20Roma", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var found models.RestaurantResponse
	decodeBody(t, rr, &found)
	assert.Equal(t, created, found)
}

func TestGetRestaurantNotFoundNamesTheRestaurant(t *testing.T) {
	e := newEnv()

	rr := e.do(httptest.NewRequest(http.MethodGet, "/restaurants/Nonexistent", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Nonexistent")
}

func TestCreateRestaurantRejectsUnknownType(t *testing.T) {
	e := newEnv()

	form := cafeRomaForm()
	form["restaurant_type"] = "Vegan"
	rr := e.do(multipartRequest(t, "/restaurants/", form, "", "", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestCreateRestaurantRejectsMalformedClockBeforeWrite(t *testing.T) {
	e := newEnv()

	form := cafeRomaForm()
	form["opening_time"] = "0800"
	rr := e.do(multipartRequest(t, "/restaurants/", form, "", "", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = e.do(httptest.NewRequest(http.MethodGet, "/restaurants/Cafe%20Roma", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCreateRestaurantRejectsOutOfRangeRating(t *testing.T) {
	e := newEnv()

	form := cafeRomaForm()
	form["rating"] = "7.5"
	rr := e.do(multipartRequest(t, "/restaurants/", form, "", "", nil))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestCreateRestaurantDefaultsRatingToZero(t *testing.T) {
	e := newEnv()

	form := cafeRomaForm()
	delete(form, "rating")
	rr := e.do(multipartRequest(t, "/restaurants/", form, "", "", nil))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created models.RestaurantResponse
	decodeBody(t, rr, &created)
	assert.Equal(t, 0.0, created.Rating)
}

func TestCreateRestaurantStoresImage(t *testing.T) {
	e := newEnv()

	rr := e.do(multipartRequest(t, "/restaurants/", cafeRomaForm(), "image", "roma.jpg", []byte("jpegbytes")))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created models.RestaurantResponse
	decodeBody(t, rr, &created)
	assert.Equal(t, "/static/Cafe Roma.jpg", created.ImageURL)

	stored, ok := e.blobs.Object("Cafe Roma.jpg")
	require.True(t, ok)
	assert.Equal(t, []byte("jpegbytes"), stored)
}

func TestListRestaurantsWrapsResults(t *testing.T) {
	e := newEnv()

	rr := e.do(multipartRequest(t, "/restaurants/", cafeRomaForm(), "", "", nil))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = e.do(httptest.NewRequest(http.MethodGet, "/restaurants/", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var listing models.RestaurantListing
	decodeBody(t, rr, &listing)
	require.Len(t, listing.Restaurants, 1)
	assert.Equal(t, "08:00 AM", listing.Restaurants[0].OpeningTime)
}

func TestSearchRestaurants(t *testing.T) {
	e := newEnv()

	rr := e.do(multipartRequest(t, "/restaurants/", cafeRomaForm(), "", "", nil))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = e.do(httptest.NewRequest(http.MethodGet, "/restaurants/search/?query=roma", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var listing models.RestaurantListing
	decodeBody(t, rr, &listing)
	require.Len(t, listing.Restaurants, 1)
	assert.Equal(t, "Cafe Roma", listing.Restaurants[0].Name)

	rr = e.do(httptest.NewRequest(http.MethodGet, "/restaurants/search/?query=sushi", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteRestaurantIsNotIdempotent(t *testing.T) {
	e := newEnv()

	rr := e.do(multipartRequest(t, "/restaurants/", cafeRomaForm(), "", "", nil))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = e.do(httptest.NewRequest(http.MethodDelete, "/restaurants/Cafe%20Roma", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = e.do(httptest.NewRequest(http.MethodDelete, "/restaurants/Cafe%20Roma", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
