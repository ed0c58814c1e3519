package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/appointment-system/internal/audit"
	domain "github.com/BruksfildServices01/appointment-system/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-system/internal/httperr"
	"github.com/BruksfildServices01/appointment-system/internal/models"
)

type UpdateAppointmentInput struct {
	OfferingID    *uint
	CustomerName  *string
	CustomerPhone *string
	CustomerEmail *string
	StartDate     *time.Time
	EndDate       *time.Time
	Status        *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies a partial update. The tenant scope makes rows of
// other companies look absent, and the date rule is re-checked on the
// merged values before anything is written.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	scopeCompanyID *uint,
	userID *uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID, scopeCompanyID)
	if err != nil {
		return nil, httperr.NotFoundErr("appointment_not_found", "appointment not found")
	}

	if in.OfferingID != nil {
		ap.OfferingID = *in.OfferingID
	}
	if in.CustomerName != nil {
		ap.CustomerName = *in.CustomerName
	}
	if in.CustomerPhone != nil {
		ap.CustomerPhone = *in.CustomerPhone
	}
	if in.CustomerEmail != nil {
		ap.CustomerEmail = *in.CustomerEmail
	}
	if in.StartDate != nil {
		ap.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		ap.EndDate = *in.EndDate
	}
	if in.Status != nil {
		status, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		ap.Status = string(status)
	}

	if err := domain.ValidateWindow(ap.StartDate, ap.EndDate); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: &ap.CompanyID,
		UserID:    userID,
		Action:    "appointment_updated",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
