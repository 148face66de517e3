package model

// Confidence is a learner self-rating on a question. Reserved for a future
// self-assessment flow; no current code path writes it.
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

// Question is a single MCQ plus its performance history. Content fields are
// immutable once generated; performance fields are updated by the answer
// ledger only.
type Question struct {
	ID        string `json:"id"`
	SubjectID string `json:"subjectId"`

	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`

	Attempts           int     `json:"attempts"`
	LastAttemptCorrect bool    `json:"lastAttemptCorrect"`
	IsCorrect          *bool   `json:"isCorrect"`
	Confidence         *string `json:"confidence"`
}

// GeneratedQuestion is one record returned by the generation gateway, before
// it is assigned an identity and appended to the bank.
type GeneratedQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}
