package models

import (
	"gorm.io/gorm"
)

// Position represents a job opening a recruiter hires for.
type Position struct {
	gorm.Model
	RecruiterID         uint   `gorm:"not null;index" json:"recruiterId"`
	Title               string `gorm:"not null" json:"title"`
	DescriptionMarkdown string `gorm:"type:text" json:"descriptionMarkdown"`
	Seniority           string `json:"seniority"`
	Skills              string `json:"skills"` // comma separated tags
}
