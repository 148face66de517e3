package repository

import (
	"errors"
	"testing"

	"github.com/akshar-2001/revenge-valut/internal/model"
)

func bankQuestion(id, subjectID string) model.Question {
	return model.Question{
		ID:            id,
		SubjectID:     subjectID,
		Question:      "question " + id,
		Options:       []string{"A", "B", "C", "D"},
		CorrectAnswer: "A",
		Explanation:   "explanation",
	}
}

func TestQuestionRepositoryOrder(t *testing.T) {
	r := NewQuestionRepository()
	r.Append([]model.Question{bankQuestion("q1", "s1"), bankQuestion("q2", "s1")})
	r.Append([]model.Question{bankQuestion("q3", "s2")})

	bank := r.List()
	if len(bank) != 3 {
		t.Fatalf("Expected 3 questions, got %d", len(bank))
	}
	for i, want := range []string{"q1", "q2", "q3"} {
		if bank[i].ID != want {
			t.Errorf("Position %d: expected %s, got %s", i, want, bank[i].ID)
		}
	}

	bySubject := r.ListBySubject("s1")
	if len(bySubject) != 2 || bySubject[0].ID != "q1" || bySubject[1].ID != "q2" {
		t.Errorf("Unexpected subject listing: %v", bySubject)
	}
}

func TestQuestionRepositorySnapshotIsolation(t *testing.T) {
	r := NewQuestionRepository()
	r.Append([]model.Question{bankQuestion("q1", "s1")})

	snap := r.List()
	snap[0].Attempts = 99
	snap[0].Options[0] = "tampered"

	fresh, err := r.FindByID("q1")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if fresh.Attempts != 0 {
		t.Error("Snapshot mutation leaked into the bank")
	}
	if fresh.Options[0] != "A" {
		t.Error("Option slice shared with snapshot")
	}
}

func TestRecordAttempt(t *testing.T) {
	r := NewQuestionRepository()
	r.Append([]model.Question{bankQuestion("q1", "s1")})

	q, err := r.RecordAttempt("q1", false)
	if err != nil {
		t.Fatalf("RecordAttempt returned error: %v", err)
	}
	if q.Attempts != 1 || q.LastAttemptCorrect {
		t.Errorf("Expected attempts=1 lastAttemptCorrect=false, got %d/%v", q.Attempts, q.LastAttemptCorrect)
	}
	if q.IsCorrect == nil || *q.IsCorrect {
		t.Error("Expected isCorrect=false after a wrong attempt")
	}

	q, err = r.RecordAttempt("q1", true)
	if err != nil {
		t.Fatalf("RecordAttempt returned error: %v", err)
	}
	if q.Attempts != 2 || !q.LastAttemptCorrect {
		t.Errorf("Expected attempts=2 lastAttemptCorrect=true, got %d/%v", q.Attempts, q.LastAttemptCorrect)
	}

	if _, err := r.RecordAttempt("missing", true); !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("Expected ErrQuestionNotFound, got %v", err)
	}
}

func TestDeleteBySubject(t *testing.T) {
	r := NewQuestionRepository()
	r.Append([]model.Question{
		bankQuestion("q1", "s1"),
		bankQuestion("q2", "s2"),
		bankQuestion("q3", "s1"),
		bankQuestion("q4", "s3"),
	})

	removed := r.DeleteBySubject("s1")
	if removed != 2 {
		t.Errorf("Expected 2 removed, got %d", removed)
	}

	bank := r.List()
	if len(bank) != 2 || bank[0].ID != "q2" || bank[1].ID != "q4" {
		t.Errorf("Expected [q2 q4] in order, got %v", bank)
	}

	if r.DeleteBySubject("s1") != 0 {
		t.Error("Expected no-op on second cascade")
	}
}
