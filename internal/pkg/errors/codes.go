package errors

import "net/http"

var (
	ErrInvalidPersonality = New(
		"INVALID_PERSONALITY_CODE",
		"Personality code must be one of the 16 MBTI types",
		http.StatusBadRequest,
	)

	ErrItineraryNotFound = New(
		"ITINERARY_NOT_FOUND",
		"Itinerary not found",
		http.StatusNotFound,
	)

	ErrSpotNotFound = New(
		"SPOT_NOT_FOUND",
		"Tourist spot not found",
		http.StatusNotFound,
	)

	ErrRestaurantNotFound = New(
		"RESTAURANT_NOT_FOUND",
		"Restaurant not found",
		http.StatusNotFound,
	)

	ErrEmptyItinerary = New(
		"EMPTY_ITINERARY",
		"Itinerary is required",
		http.StatusBadRequest,
	)

	ErrInvalidMealType = New(
		"INVALID_MEAL_TYPE",
		"Invalid meal type",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
