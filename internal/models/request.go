package models

import (
	"errors"
	"strings"
)

// request models implement this interface so the validation middleware can
// reject bad payloads before they reach a handler
type Validator interface {
	Validate() error
}

// GenerateQuestionsRequest asks the AI provider to draft quiz questions.
type GenerateQuestionsRequest struct {
	Count      int    `json:"count"`
	Difficulty string `json:"difficulty"`
	Kind       string `json:"kind"`
	RequestID  string `json:"request_id"`
}

func (r *GenerateQuestionsRequest) Validate() error {
	if r.Count == 0 {
		r.Count = 5
	}
	if r.Count < 1 || r.Count > 20 {
		return errors.New("count must be between 1 and 20")
	}

	if r.Difficulty == "" {
		r.Difficulty = DefaultDifficulty
	}
	r.Difficulty = strings.ToLower(strings.TrimSpace(r.Difficulty))
	if !ValidDifficulties[r.Difficulty] {
		return errors.New("difficulty must be one of: junior, intermediate, senior")
	}

	if r.Kind == "" {
		r.Kind = "open_ended"
	}
	if !ValidQuestionKinds[r.Kind] {
		return errors.New("kind must be multiple_choice or open_ended")
	}
	return nil
}

// InterviewActionRequest is the candidate-side action payload. It is decoded
// in the handler rather than through the validation middleware because the
// required fields depend on the action.
type InterviewActionRequest struct {
	Action     string `json:"action"`
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}
