package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jbeshir/content-ratings/internal/domain"
)

// formError maps a failed form submission to a status code and the message
// shown above the form.
func formError(err error, scale domain.Scale) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusForbidden, "The form has expired. Reload the page and try again."
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden, "You are not allowed to make this change."
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "This content no longer exists."
	case errors.Is(err, domain.ErrInvalidRating):
		return http.StatusBadRequest, "The rating must be a whole number."
	case errors.Is(err, domain.ErrRatingOutOfRange):
		return http.StatusBadRequest, fmt.Sprintf("The rating must be between 0 and %d.", scale)
	case errors.Is(err, domain.ErrInvalidScale):
		return http.StatusBadRequest, "The rating scale must be 5 or 10."
	default:
		return http.StatusInternalServerError, "The change could not be saved. Please try again."
	}
}
