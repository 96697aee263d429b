package models

import (
	"gorm.io/gorm"
)

// Quiz is a set of questions attached to a position.
type Quiz struct {
	gorm.Model
	PositionID   uint       `gorm:"not null;index" json:"positionId"`
	Title        string     `gorm:"not null" json:"title"`
	Difficulty   string     `gorm:"not null;default:intermediate" json:"difficulty"`
	TimeLimitMin int        `gorm:"default:30" json:"timeLimitMinutes"`
	Questions    []Question `gorm:"constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

// Question is a single quiz question. Key is the stable identifier answers
// are keyed by ("q1", "q2", ...), unique within a quiz.
type Question struct {
	gorm.Model
	QuizID  uint       `gorm:"not null;uniqueIndex:idx_quiz_question_key" json:"quizId"`
	Key     string     `gorm:"not null;uniqueIndex:idx_quiz_question_key" json:"key"`
	Text    string     `gorm:"type:text;not null" json:"text"`
	Kind    string     `gorm:"not null;default:open_ended" json:"kind"`
	Choices StringList `gorm:"type:text" json:"choices,omitempty"`
}
