package models

import (
	"gorm.io/gorm"
)

// Recruiter represents a registered recruiter account.
type Recruiter struct {
	gorm.Model
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"unique;not null" json:"email"`
	Company      string `json:"company"`
	PasswordHash string `gorm:"not null" json:"-"`
}
