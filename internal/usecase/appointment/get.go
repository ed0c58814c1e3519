package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/appointment-system/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-system/internal/httperr"
	"github.com/BruksfildServices01/appointment-system/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	scopeCompanyID *uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID, scopeCompanyID)
	if err != nil {
		return nil, httperr.NotFoundErr("appointment_not_found", "appointment not found")
	}
	return ap, nil
}
