package interview

import "hireloop/internal/models"

// MergeAnswer returns a new answer map equal to existing with questionID set
// to answer. The input map is never mutated, prior entries are never dropped,
// and resubmitting the same pair is a no-op in effect.
func MergeAnswer(existing models.AnswerMap, questionID, answer string) models.AnswerMap {
	merged := make(models.AnswerMap, len(existing)+1)
	for k, v := range existing {
		merged[k] = v
	}
	merged[questionID] = answer
	return merged
}
