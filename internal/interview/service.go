package interview

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"hireloop/internal/models"
	"hireloop/internal/repositories"

	"go.uber.org/zap"
)

// Action names the lifecycle operations a candidate can request.
type Action string

const (
	ActionStart        Action = "start"
	ActionSubmitAnswer Action = "submit_answer"
	ActionComplete     Action = "complete"
)

// ActionInput carries the per-action payload fields.
type ActionInput struct {
	QuestionID string
	Answer     string
}

// Context is the full candidate-side view behind a token.
type Context struct {
	Interview *models.Interview
	Quiz      *models.Quiz
	Candidate *models.Candidate
}

// Notifier is told when an interview reaches completed, so scoring can run
// outside the lifecycle. A nil notifier disables notifications.
type Notifier interface {
	InterviewCompleted(ctx context.Context, interview *models.Interview) error
}

const lockStripes = 32

// Service enforces the interview lifecycle: pending -> in_progress ->
// completed, with cancelled reachable from the two non-terminal states.
// Answer submissions for one interview are serialized through striped locks
// so the read-merge-write never loses a concurrent submission.
type Service struct {
	interviews *repositories.InterviewRepository
	quizzes    *repositories.QuizRepository
	candidates *repositories.CandidateRepository
	notifier   Notifier
	logger     *zap.Logger
	locks      [lockStripes]sync.Mutex
}

func NewService(
	interviews *repositories.InterviewRepository,
	quizzes *repositories.QuizRepository,
	candidates *repositories.CandidateRepository,
	notifier Notifier,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		interviews: interviews,
		quizzes:    quizzes,
		candidates: candidates,
		notifier:   notifier,
		logger:     logger,
	}
}

// Resolve maps a token to the interview, its quiz, and its candidate.
// A missing quiz or candidate row behind a valid token is reported as
// ErrNotFound too; that is referential breakage the candidate cannot fix.
func (s *Service) Resolve(token string) (*Context, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	iv, err := s.interviews.GetByToken(token)
	if err != nil {
		return nil, mapStoreError(err, repositories.ErrInterviewNotFound)
	}

	quiz, err := s.quizzes.GetByID(iv.QuizID)
	if err != nil {
		return nil, mapStoreError(err, repositories.ErrQuizNotFound)
	}

	candidate, err := s.candidates.GetByID(iv.CandidateID)
	if err != nil {
		return nil, mapStoreError(err, repositories.ErrCandidateNotFound)
	}

	return &Context{Interview: iv, Quiz: quiz, Candidate: candidate}, nil
}

type actionFunc func(ctx context.Context, s *Service, iv *models.Interview, in ActionInput) (string, error)

// actionTable makes the valid action set and its guards exhaustive; an
// action missing here simply does not exist.
var actionTable = map[Action]actionFunc{
	ActionStart:        applyStart,
	ActionSubmitAnswer: applySubmitAnswer,
	ActionComplete:     applyComplete,
}

// Apply resolves the token, validates the action against the current status
// and persists the result. It returns the updated interview and a
// human-readable message for the client.
func (s *Service) Apply(ctx context.Context, token string, action Action, in ActionInput) (*models.Interview, string, error) {
	fn, ok := actionTable[action]
	if !ok {
		return nil, "", ErrUnknownAction
	}

	if token == "" {
		return nil, "", ErrNotFound
	}
	iv, err := s.interviews.GetByToken(token)
	if err != nil {
		return nil, "", mapStoreError(err, repositories.ErrInterviewNotFound)
	}

	lock := &s.locks[iv.ID%lockStripes]
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the lock so a submission racing another mutation always
	// merges against the latest persisted state.
	iv, err = s.interviews.GetByID(iv.ID)
	if err != nil {
		return nil, "", mapStoreError(err, repositories.ErrInterviewNotFound)
	}

	msg, err := fn(ctx, s, iv, in)
	if err != nil {
		return nil, "", err
	}
	return iv, msg, nil
}

func applyStart(_ context.Context, s *Service, iv *models.Interview, _ ActionInput) (string, error) {
	if iv.Status != models.InterviewPending {
		return "", fmt.Errorf("%w: cannot start from %s", ErrInvalidTransition, iv.Status)
	}

	now := time.Now().UTC()
	if err := s.interviews.SetStatus(iv.ID, models.InterviewInProgress, "started_at", now); err != nil {
		return "", mapStoreError(err, repositories.ErrInterviewNotFound)
	}

	iv.Status = models.InterviewInProgress
	iv.StartedAt = &now
	s.logger.Info("interview started", zap.Uint("interview_id", iv.ID))
	return "Interview started", nil
}

func applySubmitAnswer(_ context.Context, s *Service, iv *models.Interview, in ActionInput) (string, error) {
	if in.QuestionID == "" || in.Answer == "" {
		return "", ErrInvalidInput
	}
	if iv.Status != models.InterviewInProgress {
		return "", fmt.Errorf("%w: cannot submit answers from %s", ErrInvalidTransition, iv.Status)
	}

	merged := MergeAnswer(iv.Answers, in.QuestionID, in.Answer)
	if err := s.interviews.SetAnswers(iv.ID, merged); err != nil {
		return "", mapStoreError(err, repositories.ErrInterviewNotFound)
	}

	iv.Answers = merged
	return "Answer saved", nil
}

func applyComplete(ctx context.Context, s *Service, iv *models.Interview, _ ActionInput) (string, error) {
	if iv.Status != models.InterviewInProgress {
		return "", fmt.Errorf("%w: cannot complete from %s", ErrInvalidTransition, iv.Status)
	}

	now := time.Now().UTC()
	if err := s.interviews.SetStatus(iv.ID, models.InterviewCompleted, "completed_at", now); err != nil {
		return "", mapStoreError(err, repositories.ErrInterviewNotFound)
	}

	iv.Status = models.InterviewCompleted
	iv.CompletedAt = &now
	s.logger.Info("interview completed", zap.Uint("interview_id", iv.ID))

	if s.notifier != nil {
		if err := s.notifier.InterviewCompleted(ctx, iv); err != nil {
			// Scoring can be retried from the dashboard; completion stands.
			s.logger.Warn("failed to notify interview completion",
				zap.Uint("interview_id", iv.ID), zap.Error(err))
		}
	}
	return "Interview completed", nil
}

// Cancel is the recruiter-side transition. It is valid from pending or
// in_progress only; terminal interviews stay as they are.
func (s *Service) Cancel(id uint) error {
	lock := &s.locks[id%lockStripes]
	lock.Lock()
	defer lock.Unlock()

	iv, err := s.interviews.GetByID(id)
	if err != nil {
		return mapStoreError(err, repositories.ErrInterviewNotFound)
	}
	if iv.Status.IsTerminal() {
		return fmt.Errorf("%w: cannot cancel from %s", ErrInvalidTransition, iv.Status)
	}
	if err := s.interviews.SetStatus(id, models.InterviewCancelled, "", time.Time{}); err != nil {
		return mapStoreError(err, repositories.ErrInterviewNotFound)
	}
	return nil
}

// mapStoreError folds a repository error into the lifecycle taxonomy:
// the given not-found sentinel becomes ErrNotFound, anything else is a
// store failure.
func mapStoreError(err, notFound error) error {
	if errors.Is(err, notFound) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
