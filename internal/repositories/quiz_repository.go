package repositories

import (
	"errors"
	"fmt"

	"hireloop/internal/models"

	"gorm.io/gorm"
)

var ErrQuizNotFound = errors.New("quiz not found")

type QuizRepository struct {
	DB *gorm.DB
}

func (r *QuizRepository) Create(quiz *models.Quiz) error {
	return r.DB.Create(quiz).Error
}

// GetByID loads a quiz together with its questions.
func (r *QuizRepository) GetByID(id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.DB.Preload("Questions").First(&quiz, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *QuizRepository) ListByPosition(positionID uint) ([]models.Quiz, error) {
	quizzes := []models.Quiz{}
	err := r.DB.Where("position_id = ?", positionID).Order("created_at DESC").Find(&quizzes).Error
	return quizzes, err
}

// AddQuestions appends questions to a quiz, assigning sequential keys
// ("q1", "q2", ...) after the highest key index ever used.
func (r *QuizRepository) AddQuestions(quizID uint, questions []models.Question) ([]models.Question, error) {
	next, err := r.nextKeyIndex(quizID)
	if err != nil {
		return nil, err
	}

	for i := range questions {
		questions[i].QuizID = quizID
		if questions[i].Key == "" {
			questions[i].Key = questionKey(next)
			next++
		}
	}

	if err := r.DB.Create(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuizRepository) DeleteQuestion(quizID uint, key string) error {
	result := r.DB.Where("quiz_id = ? AND key = ?", quizID, key).Delete(&models.Question{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuizNotFound
	}
	return nil
}

func (r *QuizRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.Quiz{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuizNotFound
	}
	return nil
}

// nextKeyIndex returns one past the highest "qN" key the quiz has ever
// held. Soft-deleted rows count too: the unique index still sees them,
// so a reused key would fail the insert.
func (r *QuizRepository) nextKeyIndex(quizID uint) (int, error) {
	var keys []string
	err := r.DB.Unscoped().Model(&models.Question{}).Where("quiz_id = ?", quizID).Pluck("key", &keys).Error
	if err != nil {
		return 0, err
	}

	highest := 0
	for _, key := range keys {
		var n int
		if _, err := fmt.Sscanf(key, "q%d", &n); err == nil && n > highest {
			highest = n
		}
	}
	return highest + 1, nil
}

func questionKey(n int) string {
	return fmt.Sprintf("q%d", n)
}
