package itinerary

import (
	"net/http"

	"github.com/ijalalfrz/itinerary-diff-service/internal/pkg/exception"
)

var ErrNoOnwardFlights = exception.ApplicationError{
	Message:    "itinerary has no onward flights",
	StatusCode: http.StatusConflict,
}
