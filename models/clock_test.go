package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockRoundTrip(t *testing.T) {
	for _, value := range []string{"09:00 AM", "08:00 AM", "10:00 PM", "12:30 PM", "12:00 AM"} {
		parsed, err := ParseClock(value)
		require.NoError(t, err, value)
		assert.Equal(t, value, FormatClock(parsed))
	}
}

func TestParseClockRejectsMalformedStrings(t *testing.T) {
	for _, value := range []string{"", "0800", "08:00", "25:00 PM", "late", "9 AM"} {
		_, err := ParseClock(value)
		assert.Error(t, err, value)
	}
}

func TestParseRestaurantType(t *testing.T) {
	for _, value := range []string{"Veg", "Non-Veg", "Both"} {
		parsed, err := ParseRestaurantType(value)
		require.NoError(t, err)
		assert.Equal(t, RestaurantType(value), parsed)
	}

	for _, value := range []string{"", "veg", "NonVeg", "BOTH", "Vegan"} {
		_, err := ParseRestaurantType(value)
		assert.Error(t, err, value)
	}
}

func TestParseMenuType(t *testing.T) {
	for _, value := range []string{"Veg", "Non-Veg"} {
		parsed, err := ParseMenuType(value)
		require.NoError(t, err)
		assert.Equal(t, MenuType(value), parsed)
	}

	for _, value := range []string{"", "Both", "non-veg"} {
		_, err := ParseMenuType(value)
		assert.Error(t, err, value)
	}
}
