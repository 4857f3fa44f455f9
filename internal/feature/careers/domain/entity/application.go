// Package entity defines the domain entities for the careers feature.
package entity

import "time"

// Application is one submission of the clinic's careers form.
type Application struct {
	ID        string `gorm:"primaryKey;size:36"`
	FullName  string `gorm:"size:255;not null"`
	Email     string `gorm:"size:255;not null"`
	Phone     string `gorm:"size:64"`
	Position  string `gorm:"size:255;not null"`
	Message   string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName overrides the gorm table name.
func (Application) TableName() string { return "careers_applications" }
