package validator

import (
	"testing"

	domainerrors "nutria/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type servingRequest struct {
	Name string  `json:"name" validate:"required,max=30"`
	Size float64 `json:"size" validate:"gt=0"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&servingRequest{Name: "cup", Size: 240}))

	err := v.Validate(&servingRequest{Size: -1})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "servingRequest.name failed on required")
	assert.Contains(t, appErr.Details(), "servingRequest.size failed on gt=0")
}
