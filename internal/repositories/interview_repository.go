package repositories

import (
	"errors"
	"time"

	"hireloop/internal/models"

	"gorm.io/gorm"
)

var ErrInterviewNotFound = errors.New("interview not found")

type InterviewRepository struct {
	DB *gorm.DB
}

func (r *InterviewRepository) Create(interview *models.Interview) error {
	return r.DB.Create(interview).Error
}

func (r *InterviewRepository) GetByID(id uint) (*models.Interview, error) {
	var interview models.Interview
	err := r.DB.First(&interview, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInterviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *InterviewRepository) GetByToken(token string) (*models.Interview, error) {
	var interview models.Interview
	err := r.DB.Where("token = ?", token).First(&interview).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInterviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (r *InterviewRepository) ListByQuiz(quizID uint) ([]models.Interview, error) {
	interviews := []models.Interview{}
	err := r.DB.Where("quiz_id = ?", quizID).Order("created_at DESC").Find(&interviews).Error
	return interviews, err
}

func (r *InterviewRepository) ListByCandidate(candidateID uint) ([]models.Interview, error) {
	interviews := []models.Interview{}
	err := r.DB.Where("candidate_id = ?", candidateID).Order("created_at DESC").Find(&interviews).Error
	return interviews, err
}

// SetStatus writes a status transition and its timestamp in one update.
// timestampColumn may be empty when the transition has no timestamp.
func (r *InterviewRepository) SetStatus(id uint, status models.InterviewStatus, timestampColumn string, at time.Time) error {
	updates := map[string]interface{}{"status": status}
	if timestampColumn != "" {
		updates[timestampColumn] = at
	}
	result := r.DB.Model(&models.Interview{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

// SetAnswers overwrites only the answers column so a concurrent status
// change is never clobbered by an answer write.
func (r *InterviewRepository) SetAnswers(id uint, answers models.AnswerMap) error {
	result := r.DB.Model(&models.Interview{}).Where("id = ?", id).Update("answers", answers)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

// SetScore is used by the scoring subscriber only.
func (r *InterviewRepository) SetScore(id uint, score float64, summary string) error {
	result := r.DB.Model(&models.Interview{}).Where("id = ?", id).
		Updates(map[string]interface{}{"score": score, "score_summary": summary})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

// CancelExpired flips pending interviews whose invite expiry has passed to
// cancelled. Terminal and in-progress interviews are left alone.
func (r *InterviewRepository) CancelExpired(now time.Time) (int64, error) {
	tx := r.DB.Model(&models.Interview{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at <= ?", models.InterviewPending, now).
		Update("status", models.InterviewCancelled)
	return tx.RowsAffected, tx.Error
}

func (r *InterviewRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.Interview{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}
