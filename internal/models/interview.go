package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// InterviewStatus enumerates the interview lifecycle states.
type InterviewStatus string

const (
	InterviewPending    InterviewStatus = "pending"
	InterviewInProgress InterviewStatus = "in_progress"
	InterviewCompleted  InterviewStatus = "completed"
	InterviewCancelled  InterviewStatus = "cancelled"
)

// IsTerminal reports whether no further lifecycle actions are allowed.
func (s InterviewStatus) IsTerminal() bool {
	return s == InterviewCompleted || s == InterviewCancelled
}

// AnswerMap maps a question key to the candidate's submitted answer.
// Stored as a JSON text column.
type AnswerMap map[string]string

func (m AnswerMap) Value() (driver.Value, error) {
	if m == nil {
		m = AnswerMap{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *AnswerMap) Scan(src interface{}) error {
	if src == nil {
		*m = AnswerMap{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("cannot scan %T into AnswerMap", src)
	}
}

// StringList is a JSON-encoded list of strings (question choices).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = StringList{}
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported source type for StringList")
	}
}

// Interview records one candidate's attempt at one quiz. The token is the
// sole candidate-side credential; status only moves forward through the
// lifecycle service, and score is written by the scorer, never here.
type Interview struct {
	gorm.Model
	Token        string          `gorm:"uniqueIndex;not null" json:"token"`
	CandidateID  uint            `gorm:"not null;index" json:"candidateId"`
	QuizID       uint            `gorm:"not null;index" json:"quizId"`
	Status       InterviewStatus `gorm:"not null;default:pending;index" json:"status"`
	StartedAt    *time.Time      `json:"startedAt,omitempty"`
	CompletedAt  *time.Time      `json:"completedAt,omitempty"`
	Answers      AnswerMap       `gorm:"type:text" json:"answers"`
	Score        *float64        `json:"score,omitempty"`
	ScoreSummary string          `gorm:"type:text" json:"scoreSummary,omitempty"`
	ExpiresAt    *time.Time      `gorm:"index" json:"expiresAt,omitempty"`
}
