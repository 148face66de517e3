package repository

import (
	"sync"

	"github.com/akshar-2001/revenge-valut/internal/model"
	"github.com/akshar-2001/revenge-valut/internal/util"
)

// SubjectRepository owns the subject collection. State is process-local and
// torn down on exit; there is no persistence behind it.
type SubjectRepository struct {
	mu       sync.RWMutex
	subjects []*model.Subject
}

func NewSubjectRepository() *SubjectRepository {
	return &SubjectRepository{}
}

func (r *SubjectRepository) Create(s *model.Subject) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.subjects = append(r.subjects, &cp)
}

// List returns subjects in insertion order.
func (r *SubjectRepository) List() []model.Subject {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Subject, 0, len(r.subjects))
	for _, s := range r.subjects {
		out = append(out, *s)
	}
	return out
}

func (r *SubjectRepository) FindByID(id string) (*model.Subject, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.subjects {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, util.ErrSubjectNotFound
}

func (r *SubjectRepository) UpdateContent(id, transcripts, pdfs, pyqs string) (*model.Subject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.subjects {
		if s.ID == id {
			s.Transcripts = transcripts
			s.PDFs = pdfs
			s.PYQs = pyqs
			cp := *s
			return &cp, nil
		}
	}
	return nil, util.ErrSubjectNotFound
}

func (r *SubjectRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.subjects {
		if s.ID == id {
			r.subjects = append(r.subjects[:i], r.subjects[i+1:]...)
			return nil
		}
	}
	return util.ErrSubjectNotFound
}

func (r *SubjectRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subjects)
}
