package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/appointment-system/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"pending", "approved", "denied", "cancelled", "deleted"} {
		status, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, Status(valid), status)
	}

	_, err := ParseStatus("scheduled")
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))

	_, err = ParseStatus("")
	require.Error(t, err)
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}

func TestValidateWindow(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateWindow(start, start.Add(30*time.Minute)))

	err := ValidateWindow(start, start.Add(-time.Hour))
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindValidation))

	// zero-length windows are rejected too
	assert.Error(t, ValidateWindow(start, start))
}
