package models

import (
	"gorm.io/gorm"
)

// Candidate represents a person a recruiter can invite to interviews.
// Candidates never log in; they are reached through interview tokens.
type Candidate struct {
	gorm.Model
	RecruiterID uint   `gorm:"not null;index" json:"recruiterId"`
	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"not null;index" json:"email"`
	Phone       string `json:"phone"`
}
