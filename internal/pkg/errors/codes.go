package errors

import "net/http"

var (
	ErrSightingNotFound = New(
		"SIGHTING_NOT_FOUND",
		"Cat sighting not found",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidSource = New(
		"INVALID_SOURCE",
		"Source must be one of 'map' or 'address'",
		http.StatusBadRequest,
	)

	ErrInvalidUploadType = New(
		"INVALID_UPLOAD_TYPE",
		"Only image uploads are accepted",
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

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
