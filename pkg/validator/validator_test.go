package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingInput struct {
	DentistID int    `json:"dentist_id" validate:"required,gt=0"`
	Day       string `json:"day" validate:"notblank"`
	Email     string `json:"email" validate:"omitempty,email"`
	Role      string `json:"role" validate:"omitempty,oneof=patient dentist admin"`
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&bookingInput{Day: "   ", Email: "nope", Role: "root"})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "dentist_id is required", errs["dentist_id"])
	assert.Equal(t, "day is required", errs["day"])
	assert.Equal(t, "email must be a valid email address", errs["email"])
	assert.Equal(t, "role must be one of: patient dentist admin", errs["role"])
}

func TestValidatePasses(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&bookingInput{DentistID: 7, Day: "Friday", Role: "patient"})
	assert.NoError(t, err)
}

func TestFormatValidationErrorsIgnoresOtherErrors(t *testing.T) {
	v := NewValidator()
	assert.Empty(t, v.FormatValidationErrors(assert.AnError))
}
