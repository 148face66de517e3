package service

import (
	"fmt"
	"strings"

	"github.com/akshar-2001/revenge-valut/internal/model"
	"github.com/akshar-2001/revenge-valut/internal/repository"
	"github.com/akshar-2001/revenge-valut/pkg/logger"

	"go.uber.org/zap"
)

type SubjectService struct {
	subjects  *repository.SubjectRepository
	questions *repository.QuestionRepository
}

func NewSubjectService(subjects *repository.SubjectRepository, questions *repository.QuestionRepository) *SubjectService {
	return &SubjectService{subjects: subjects, questions: questions}
}

type CreateSubjectRequest struct {
	Name string `json:"name" binding:"required"`
}

type SubjectContentRequest struct {
	Transcripts string `json:"transcripts"`
	PDFs        string `json:"pdfs"`
	PYQs        string `json:"pyqs"`
}

func (s *SubjectService) Create(req CreateSubjectRequest) (*model.Subject, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("subject name must not be blank")
	}

	subject := &model.Subject{
		ID:   model.GenerateUUID(),
		Name: name,
	}
	s.subjects.Create(subject)
	return subject, nil
}

func (s *SubjectService) List() []model.Subject {
	return s.subjects.List()
}

func (s *SubjectService) Get(id string) (*model.Subject, error) {
	return s.subjects.FindByID(id)
}

func (s *SubjectService) UpdateContent(id string, req SubjectContentRequest) (*model.Subject, error) {
	return s.subjects.UpdateContent(id, req.Transcripts, req.PDFs, req.PYQs)
}

// Delete removes the subject and cascades to every question generated from
// it. Composer calls made afterwards never see the removed questions.
func (s *SubjectService) Delete(id string) error {
	if err := s.subjects.Delete(id); err != nil {
		return err
	}
	removed := s.questions.DeleteBySubject(id)
	logger.Log.Info("subject deleted",
		zap.String("subjectId", id),
		zap.Int("questionsRemoved", removed))
	return nil
}
