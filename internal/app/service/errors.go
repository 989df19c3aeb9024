package service

import (
	"net/http"

	"github.com/hamzamalik/flight-booking-assistant/internal/pkg/exception"
)

var ErrNoFlightsFound = exception.ApplicationError{
	Message:    "no flights found for the given route",
	StatusCode: http.StatusNotFound,
}

var ErrSessionNotFound = exception.ApplicationError{
	Message:    "booking session not found or expired",
	StatusCode: http.StatusNotFound,
}

var ErrInvalidBookingState = exception.ApplicationError{
	Message:    "booking is not in a state that allows this action",
	StatusCode: http.StatusConflict,
}

var ErrFlightNotInResults = exception.ApplicationError{
	Message:    "selected flight is not part of the current search results",
	StatusCode: http.StatusBadRequest,
}

var ErrTransitionInProgress = exception.ApplicationError{
	Message:    "another action on this booking is still in progress",
	StatusCode: http.StatusConflict,
}
