package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrors_WrapErrValidation(t *testing.T) {
	for _, err := range []error{ErrBadIdentifierFormat, ErrMissingName, ErrMissingDetail, ErrBadVisitDate} {
		assert.True(t, errors.Is(err, ErrValidation), "%v must wrap ErrValidation", err)
	}
}

func TestValidationErrors_AreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrMissingName, ErrMissingDetail))
	assert.False(t, errors.Is(ErrBadIdentifierFormat, ErrMissingName))
	assert.False(t, errors.Is(ErrAccessDenied, ErrValidation))
}
