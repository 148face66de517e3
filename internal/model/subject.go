package model

import (
	"strings"

	"github.com/google/uuid"
)

// Subject is a user-defined topic plus the raw source material the learner
// pasted in for it. All three content fields are free text.
type Subject struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Transcripts string `json:"transcripts"`
	PDFs        string `json:"pdfs"`
	PYQs        string `json:"pyqs"`
}

// QuizEligible reports whether the subject holds enough source material to
// generate questions from. PYQs alone are style examples, not source material.
func (s *Subject) QuizEligible() bool {
	return strings.TrimSpace(s.Transcripts) != "" || strings.TrimSpace(s.PDFs) != ""
}

func GenerateUUID() string {
	return uuid.New().String()
}
