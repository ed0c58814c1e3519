package appointment

import (
	"context"

	"github.com/BruksfildServices01/appointment-system/internal/models"
)

// Repository is the storage surface the appointment use cases need.
// Reads take an optional tenant scope: nil means unrestricted (admin),
// a value restricts the query to that company and makes rows of other
// tenants indistinguishable from missing ones.
type Repository interface {
	// -------- Offering --------
	GetOffering(
		ctx context.Context,
		id uint,
	) (*models.Offering, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
		scopeCompanyID *uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
		scopeCompanyID *uint,
	) ([]models.Appointment, error)
}
