package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, ParseDuration("2h", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("not-a-duration", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}

func TestParseDateDateOnly(t *testing.T) {
	parsed, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 15, parsed.Day())
}

func TestParseDateRFC3339(t *testing.T) {
	parsed, err := ParseDate("2026-03-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, parsed.Hour())
}

func TestParseDateInvalid(t *testing.T) {
	_, err := ParseDate("15/03/2026")
	assert.Error(t, err)
}
