package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundMessageCarriesID(t *testing.T) {
	err := NotFound("Movie", 42)
	assert.Equal(t, "Movie not found with id: 42", err.Error())

	var nf *NotFoundError
	assert.True(t, errors.As(fmt.Errorf("lookup: %w", err), &nf))
	assert.Equal(t, 42, nf.ID)
}

func TestValidationDetails(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Field: "title", Reason: "is required"},
		{Field: "year", Reason: "must be 0 or greater"},
	}}
	assert.Equal(t, "Validation failed", err.Error())
	assert.Equal(t, "title: is required, year: must be 0 or greater", err.Details())

	malformed := Malformed(errors.New("unexpected EOF")).(*ValidationError)
	assert.Equal(t, "unexpected EOF", malformed.Details())
}

func TestConflictIsErrConflict(t *testing.T) {
	err := Conflict("Movie with title %q already exists", "Heat")
	assert.True(t, errors.Is(err, ErrConflict))
	assert.Equal(t, `Movie with title "Heat" already exists`, err.Error())
}
