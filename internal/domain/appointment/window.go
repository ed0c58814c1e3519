package appointment

import (
	"time"

	"github.com/BruksfildServices01/appointment-system/internal/httperr"
)

// ValidateWindow enforces the one date rule the system has: the window
// must have positive length. Callers re-check it after partial updates
// using the merged values.
func ValidateWindow(start, end time.Time) error {
	if !end.After(start) {
		return httperr.Validation("invalid_date_range", "end_date must be after start_date")
	}
	return nil
}
