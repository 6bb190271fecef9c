package viacom

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ijalalfrz/itinerary-diff-service/internal/pkg/exception"
)

var ErrMalformedDocument = exception.ApplicationError{
	Message:    "malformed itinerary document",
	StatusCode: http.StatusUnprocessableEntity,
}

var errMissing = errors.New("missing")

// ParseError identifies the element and field that could not be extracted.
// It matches ErrMalformedDocument with errors.Is.
type ParseError struct {
	Element string
	Field   string
	Cause   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: field %s: %s", e.Element, e.Field, e.Cause)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformedDocument, e.Cause}
}

func newParseError(element, field string, cause error) *ParseError {
	return &ParseError{
		Element: element,
		Field:   field,
		Cause:   cause,
	}
}
