package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/appointment-system/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-system/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	scopeCompanyID *uint,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointments(ctx, scopeCompanyID)
}
