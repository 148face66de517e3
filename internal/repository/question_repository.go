package repository

import (
	"errors"
	"sync"

	"github.com/akshar-2001/revenge-valut/internal/model"
)

var ErrQuestionNotFound = errors.New("question not found")

// QuestionRepository is the question bank: the full ordered collection of
// every generated question. Append-only, except for the subject-delete
// cascade. It is the single source of truth for performance state; sessions
// only hold snapshots.
type QuestionRepository struct {
	mu        sync.RWMutex
	questions []*model.Question
}

func NewQuestionRepository() *QuestionRepository {
	return &QuestionRepository{}
}

func cloneQuestion(q *model.Question) model.Question {
	cp := *q
	cp.Options = append([]string(nil), q.Options...)
	if q.IsCorrect != nil {
		v := *q.IsCorrect
		cp.IsCorrect = &v
	}
	if q.Confidence != nil {
		v := *q.Confidence
		cp.Confidence = &v
	}
	return cp
}

// Append adds freshly generated questions to the end of the bank.
func (r *QuestionRepository) Append(qs []model.Question) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range qs {
		cp := cloneQuestion(&qs[i])
		r.questions = append(r.questions, &cp)
	}
}

// List returns the bank in insertion order.
func (r *QuestionRepository) List() []model.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Question, 0, len(r.questions))
	for _, q := range r.questions {
		out = append(out, cloneQuestion(q))
	}
	return out
}

func (r *QuestionRepository) ListBySubject(subjectID string) []model.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.Question
	for _, q := range r.questions {
		if q.SubjectID == subjectID {
			out = append(out, cloneQuestion(q))
		}
	}
	return out
}

func (r *QuestionRepository) FindByID(id string) (*model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, q := range r.questions {
		if q.ID == id {
			cp := cloneQuestion(q)
			return &cp, nil
		}
	}
	return nil, ErrQuestionNotFound
}

// RecordAttempt applies one answer result to a question's performance fields
// as a single step: attempts+1, last-attempt flag and isCorrect mirror set.
func (r *QuestionRepository) RecordAttempt(id string, correct bool) (*model.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, q := range r.questions {
		if q.ID == id {
			q.Attempts++
			q.LastAttemptCorrect = correct
			v := correct
			q.IsCorrect = &v
			cp := cloneQuestion(q)
			return &cp, nil
		}
	}
	return nil, ErrQuestionNotFound
}

// DeleteBySubject removes every question belonging to the subject and reports
// how many were removed.
func (r *QuestionRepository) DeleteBySubject(subjectID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.questions[:0]
	removed := 0
	for _, q := range r.questions {
		if q.SubjectID == subjectID {
			removed++
			continue
		}
		kept = append(kept, q)
	}
	r.questions = kept
	return removed
}

func (r *QuestionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.questions)
}
