package repositories

import (
	"errors"

	"hireloop/internal/models"

	"gorm.io/gorm"
)

var ErrPositionNotFound = errors.New("position not found")

type PositionRepository struct {
	DB *gorm.DB
}

func (r *PositionRepository) Create(position *models.Position) error {
	return r.DB.Create(position).Error
}

func (r *PositionRepository) GetByID(id uint) (*models.Position, error) {
	var position models.Position
	err := r.DB.First(&position, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPositionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &position, nil
}

func (r *PositionRepository) ListByRecruiter(recruiterID uint) ([]models.Position, error) {
	positions := []models.Position{}
	err := r.DB.Where("recruiter_id = ?", recruiterID).Order("created_at DESC").Find(&positions).Error
	return positions, err
}

func (r *PositionRepository) Update(id uint, updates *models.Position) (*models.Position, error) {
	var position models.Position
	if err := r.DB.First(&position, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPositionNotFound
		}
		return nil, err
	}
	if err := r.DB.Model(&position).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &position, nil
}

func (r *PositionRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.Position{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPositionNotFound
	}
	return nil
}
