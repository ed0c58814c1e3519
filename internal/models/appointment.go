package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// CompanyID mirrors the offering's owner at creation time and is
	// what every tenant-scoped query filters on.
	CompanyID  uint `gorm:"not null;index" json:"company_id"`
	OfferingID uint `gorm:"not null" json:"offering_id"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`
	CustomerEmail string `gorm:"size:100;not null" json:"customer_email"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
