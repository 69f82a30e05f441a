package base

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	apierrors "github.com/olgasafonova/lowcodeapi-go/internal/errors"
)

// ValidateID checks that a resource identifier taken from tool input is positive.
func ValidateID(field string, id int) error {
	if err := validation.Validate(id, validation.Required, validation.Min(1)); err != nil {
		return apierrors.NewValidationError(field, strconv.Itoa(id), "must be a positive integer")
	}
	return nil
}
