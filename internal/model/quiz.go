package model

import "fmt"

// QuizMode selects how the session composer picks questions.
type QuizMode string

const (
	ModePostLecture   QuizMode = "post_lecture"
	ModeRevenge       QuizMode = "revenge"
	ModeDailyRevision QuizMode = "daily_revision"
)

func ParseQuizMode(s string) (QuizMode, error) {
	switch QuizMode(s) {
	case ModePostLecture, ModeRevenge, ModeDailyRevision:
		return QuizMode(s), nil
	}
	return "", fmt.Errorf("unknown quiz mode %q", s)
}

// Quiz is one run-through of a subset of the question bank. Questions are
// frozen at session start; answers are recorded one slot per question. The
// bank, not the session, is the source of truth for performance state.
type Quiz struct {
	Questions            []Question `json:"questions"`
	CurrentQuestionIndex int        `json:"currentQuestionIndex"`
	UserAnswers          []*string  `json:"userAnswers"`
	IsFinished           bool       `json:"isFinished"`
}

func NewQuiz(questions []Question) *Quiz {
	return &Quiz{
		Questions:   questions,
		UserAnswers: make([]*string, len(questions)),
	}
}

// CurrentQuestion returns the question at the cursor.
func (q *Quiz) CurrentQuestion() *Question {
	return &q.Questions[q.CurrentQuestionIndex]
}

// Answered reports whether the current slot already holds an answer.
func (q *Quiz) Answered() bool {
	return q.UserAnswers[q.CurrentQuestionIndex] != nil
}

// Score is the fraction of recorded answers matching their question's correct
// option, over the full session length.
func (q *Quiz) Score() float64 {
	if len(q.Questions) == 0 {
		return 0
	}
	correct := 0
	for i, ans := range q.UserAnswers {
		if ans != nil && *ans == q.Questions[i].CorrectAnswer {
			correct++
		}
	}
	return float64(correct) / float64(len(q.Questions))
}
