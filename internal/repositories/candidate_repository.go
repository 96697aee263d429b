package repositories

import (
	"errors"

	"hireloop/internal/models"

	"gorm.io/gorm"
)

var ErrCandidateNotFound = errors.New("candidate not found")

type CandidateRepository struct {
	DB *gorm.DB
}

func (r *CandidateRepository) Create(candidate *models.Candidate) error {
	return r.DB.Create(candidate).Error
}

func (r *CandidateRepository) GetByID(id uint) (*models.Candidate, error) {
	var candidate models.Candidate
	err := r.DB.First(&candidate, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCandidateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *CandidateRepository) GetByEmail(recruiterID uint, email string) (*models.Candidate, error) {
	var candidate models.Candidate
	err := r.DB.Where("recruiter_id = ? AND email = ?", recruiterID, email).First(&candidate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCandidateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *CandidateRepository) ListByRecruiter(recruiterID uint) ([]models.Candidate, error) {
	candidates := []models.Candidate{}
	err := r.DB.Where("recruiter_id = ?", recruiterID).Order("created_at DESC").Find(&candidates).Error
	return candidates, err
}

func (r *CandidateRepository) Update(id uint, updates *models.Candidate) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.DB.First(&candidate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCandidateNotFound
		}
		return nil, err
	}
	if err := r.DB.Model(&candidate).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &candidate, nil
}

func (r *CandidateRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.Candidate{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCandidateNotFound
	}
	return nil
}
