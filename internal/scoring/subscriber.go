package scoring

import (
	"context"
	"encoding/json"
	"log"

	"hireloop/internal/events"

	"github.com/redis/go-redis/v9"
)

// ScoreSubscriber listens for interview completion events and runs the
// scorer for each one. It runs in its own goroutine next to the HTTP server.
type ScoreSubscriber struct {
	rdb    *redis.Client
	scorer *Scorer
}

func NewScoreSubscriber(rdb *redis.Client, scorer *Scorer) *ScoreSubscriber {
	return &ScoreSubscriber{rdb: rdb, scorer: scorer}
}

// Subscribe blocks until ctx is cancelled, scoring completed interviews as
// events arrive.
func (ss *ScoreSubscriber) Subscribe(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}

	subscriber := ss.rdb.Subscribe(ctx, events.InterviewCompletedChannel)
	defer subscriber.Close()
	ch := subscriber.Channel()

	log.Println("Score subscriber: subscribed to interview_completed events")

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			ss.handleEvent(ctx, msg.Payload)
		}
	}
}

func (ss *ScoreSubscriber) handleEvent(ctx context.Context, payload string) {
	var event events.InterviewCompletedEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		log.Printf("Failed to unmarshal interview_completed event: %v", err)
		return
	}

	log.Printf("Scoring interview %d", event.InterviewID)

	if err := ss.scorer.ScoreInterview(ctx, event.InterviewID); err != nil {
		log.Printf("Failed to score interview %d: %v", event.InterviewID, err)
		return
	}

	log.Printf("Scored interview %d", event.InterviewID)
}
