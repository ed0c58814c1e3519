package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointment-system/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Offering
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOffering(
	ctx context.Context,
	id uint,
) (*models.Offering, error) {

	var offering models.Offering
	if err := r.db.WithContext(ctx).First(&offering, id).Error; err != nil {
		return nil, err
	}
	return &offering, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
	scopeCompanyID *uint,
) (*models.Appointment, error) {

	q := r.db.WithContext(ctx).Where("id = ?", id)
	if scopeCompanyID != nil {
		q = q.Where("company_id = ?", *scopeCompanyID)
	}

	var ap models.Appointment
	if err := q.First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	scopeCompanyID *uint,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Model(&models.Appointment{})
	if scopeCompanyID != nil {
		q = q.Where("company_id = ?", *scopeCompanyID)
	}

	var appointments []models.Appointment
	if err := q.Order("id ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}
