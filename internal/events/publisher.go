package events

import (
	"context"
	"encoding/json"
	"time"

	"hireloop/internal/models"

	"github.com/redis/go-redis/v9"
)

// InterviewCompletedChannel carries completion events to the scorer.
const InterviewCompletedChannel = "interview_completed"

type InterviewCompletedEvent struct {
	InterviewID uint   `json:"interviewId"`
	QuizID      uint   `json:"quizId"`
	CandidateID uint   `json:"candidateId"`
	CompletedAt string `json:"completedAt"`
}

// Publisher pushes lifecycle events onto Redis pub/sub.
type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// InterviewCompleted implements interview.Notifier.
func (p *Publisher) InterviewCompleted(ctx context.Context, iv *models.Interview) error {
	completedAt := time.Now().UTC()
	if iv.CompletedAt != nil {
		completedAt = *iv.CompletedAt
	}

	event := InterviewCompletedEvent{
		InterviewID: iv.ID,
		QuizID:      iv.QuizID,
		CandidateID: iv.CandidateID,
		CompletedAt: completedAt.Format(time.RFC3339),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, InterviewCompletedChannel, payload).Err()
}
