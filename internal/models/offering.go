package models

import "time"

type Offering struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CompanyID uint `gorm:"not null;index" json:"company_id"`

	Description string `gorm:"size:255;not null" json:"description"`
	IsOpen      bool   `gorm:"default:true" json:"is_open"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
