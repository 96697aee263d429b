package repositories

import (
	"errors"
	"testing"

	"hireloop/internal/models"
	"hireloop/internal/testhelpers"
)

func seedQuiz(t *testing.T, repo *QuizRepository) *models.Quiz {
	t.Helper()
	quiz := &models.Quiz{PositionID: 1, Title: "Go Basics", Difficulty: "intermediate"}
	if err := repo.Create(quiz); err != nil {
		t.Fatalf("failed to seed quiz: %v", err)
	}
	return quiz
}

func TestQuizRepository_GetByID(t *testing.T) {
	repo := &QuizRepository{DB: testhelpers.SetupTestDB(t)}
	quiz := seedQuiz(t, repo)

	if _, err := repo.AddQuestions(quiz.ID, []models.Question{{Text: "What is a goroutine?"}}); err != nil {
		t.Fatalf("failed to add question: %v", err)
	}

	t.Run("preloads questions", func(t *testing.T) {
		got, err := repo.GetByID(quiz.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Questions) != 1 {
			t.Fatalf("expected 1 question, got %d", len(got.Questions))
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := repo.GetByID(9999); !errors.Is(err, ErrQuizNotFound) {
			t.Fatalf("expected ErrQuizNotFound, got %v", err)
		}
	})
}

func TestQuizRepository_AddQuestions(t *testing.T) {
	repo := &QuizRepository{DB: testhelpers.SetupTestDB(t)}
	quiz := seedQuiz(t, repo)

	first, err := repo.AddQuestions(quiz.ID, []models.Question{
		{Text: "Explain channels", Kind: "open_ended"},
		{Text: "Pick the correct receiver", Kind: "multiple_choice", Choices: []string{"value", "pointer"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first[0].Key != "q1" || first[1].Key != "q2" {
		t.Fatalf("expected sequential keys q1,q2, got %q,%q", first[0].Key, first[1].Key)
	}

	// keys keep counting across batches
	second, err := repo.AddQuestions(quiz.ID, []models.Question{{Text: "What does defer do?"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second[0].Key != "q3" {
		t.Fatalf("expected key q3, got %q", second[0].Key)
	}

	// an explicit key is kept
	custom, err := repo.AddQuestions(quiz.ID, []models.Question{{Key: "bonus", Text: "Anything else?"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if custom[0].Key != "bonus" {
		t.Fatalf("explicit key overwritten: %q", custom[0].Key)
	}
}

func TestQuizRepository_AddAfterDelete(t *testing.T) {
	repo := &QuizRepository{DB: testhelpers.SetupTestDB(t)}
	quiz := seedQuiz(t, repo)

	if _, err := repo.AddQuestions(quiz.ID, []models.Question{
		{Text: "First"},
		{Text: "Second"},
		{Text: "Third"},
	}); err != nil {
		t.Fatalf("failed to add questions: %v", err)
	}
	if err := repo.DeleteQuestion(quiz.ID, "q1"); err != nil {
		t.Fatalf("failed to delete question: %v", err)
	}

	// deleting a non-last question must not make the next add collide
	// with a surviving key
	added, err := repo.AddQuestions(quiz.ID, []models.Question{{Text: "Fourth"}})
	if err != nil {
		t.Fatalf("add after delete failed: %v", err)
	}
	if added[0].Key != "q4" {
		t.Fatalf("expected key q4, got %q", added[0].Key)
	}
}

func TestQuizRepository_DeleteQuestion(t *testing.T) {
	repo := &QuizRepository{DB: testhelpers.SetupTestDB(t)}
	quiz := seedQuiz(t, repo)
	if _, err := repo.AddQuestions(quiz.ID, []models.Question{{Text: "To be removed"}}); err != nil {
		t.Fatalf("failed to add question: %v", err)
	}

	if err := repo.DeleteQuestion(quiz.ID, "q1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.DeleteQuestion(quiz.ID, "q1"); !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("expected not-found on repeat delete, got %v", err)
	}
}

func TestQuizRepository_ListByPositionAndDelete(t *testing.T) {
	repo := &QuizRepository{DB: testhelpers.SetupTestDB(t)}
	quiz := seedQuiz(t, repo)

	quizzes, err := repo.ListByPosition(1)
	if err != nil || len(quizzes) != 1 {
		t.Fatalf("ListByPosition: err=%v len=%d", err, len(quizzes))
	}
	if quizzes, _ := repo.ListByPosition(2); len(quizzes) != 0 {
		t.Fatalf("expected no quizzes for other position")
	}

	if err := repo.Delete(quiz.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := repo.Delete(quiz.ID); !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound on repeat delete, got %v", err)
	}
}
