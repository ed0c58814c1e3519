package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/appointment-system/internal/audit"
	domain "github.com/BruksfildServices01/appointment-system/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-system/internal/httperr"
	"github.com/BruksfildServices01/appointment-system/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CompanyID  uint
	OfferingID uint

	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	StartDate time.Time
	EndDate   time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if err := domain.ValidateWindow(in.StartDate, in.EndDate); err != nil {
		return nil, err
	}

	offering, err := uc.repo.GetOffering(ctx, in.OfferingID)
	if err != nil {
		return nil, httperr.Validation("offering_not_found", "offering not found")
	}

	if !offering.IsOpen {
		return nil, httperr.Validation("offering_closed", "offering is not available")
	}

	// The declared company must match the offering's owner; a booking
	// can never attach itself to another tenant.
	if offering.CompanyID != in.CompanyID {
		return nil, httperr.Validation(
			"offering_company_mismatch",
			"offering does not belong to the specified company",
		)
	}

	ap := &models.Appointment{
		CompanyID:     in.CompanyID,
		OfferingID:    in.OfferingID,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		Status:        string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: &ap.CompanyID,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
