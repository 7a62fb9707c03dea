package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malek/tadreeb/internal/pkg/apperrors"
)

func TestNormalizeFieldName(t *testing.T) {
	name, err := normalizeFieldName("  Project Management  ")
	require.NoError(t, err)
	assert.Equal(t, "Project Management", name)
}

func TestNormalizeFieldNameTooShort(t *testing.T) {
	_, err := normalizeFieldName(" x ")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestNormalizeFieldNameTooLong(t *testing.T) {
	long := make([]byte, 65)
	for i := range long {
		long[i] = 'a'
	}

	_, err := normalizeFieldName(string(long))
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
