package repositories

import (
	"errors"

	"hireloop/internal/models"

	"gorm.io/gorm"
)

var ErrRecruiterNotFound = errors.New("recruiter not found")

type RecruiterRepository struct {
	DB *gorm.DB
}

func (r *RecruiterRepository) Create(recruiter *models.Recruiter) error {
	return r.DB.Create(recruiter).Error
}

func (r *RecruiterRepository) GetByID(id uint) (*models.Recruiter, error) {
	var recruiter models.Recruiter
	err := r.DB.First(&recruiter, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecruiterNotFound
	}
	if err != nil {
		return nil, err
	}
	return &recruiter, nil
}

func (r *RecruiterRepository) GetByEmail(email string) (*models.Recruiter, error) {
	var recruiter models.Recruiter
	err := r.DB.Where("email = ?", email).First(&recruiter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecruiterNotFound
	}
	if err != nil {
		return nil, err
	}
	return &recruiter, nil
}
