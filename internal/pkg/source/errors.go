package source

import (
	"net/http"

	"github.com/ijalalfrz/itinerary-diff-service/internal/pkg/exception"
)

var ErrSourceUnavailable = exception.ApplicationError{
	StatusCode: http.StatusServiceUnavailable,
	Message:    "source unavailable",
}

var ErrUnknownSource = exception.ApplicationError{
	StatusCode: http.StatusNotFound,
	Message:    "unknown source",
}
