package service

import (
	"net/http"

	"github.com/ijalalfrz/itinerary-diff-service/internal/pkg/exception"
)

var ErrNoItinerariesFound = exception.ApplicationError{
	Message:    "no itineraries found",
	StatusCode: http.StatusNotFound,
}
