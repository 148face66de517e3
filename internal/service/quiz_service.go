package service

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/akshar-2001/revenge-valut/internal/config"
	"github.com/akshar-2001/revenge-valut/internal/model"
	"github.com/akshar-2001/revenge-valut/internal/repository"
	"github.com/akshar-2001/revenge-valut/internal/util"
	"github.com/akshar-2001/revenge-valut/pkg/logger"
	"github.com/akshar-2001/revenge-valut/pkg/monitoring"

	"go.uber.org/zap"
)

// QuizService composes new quiz sessions from the question bank and applies
// the answer ledger. At most one session is active; starting a new one
// discards any unfinished prior session.
type QuizService struct {
	subjects  *repository.SubjectRepository
	questions *repository.QuestionRepository
	generator QuestionGenerator

	cfgMu      sync.RWMutex
	cfg        config.QuizConfig
	genTimeout time.Duration

	// generating gates PostLecture starts: a single outstanding gateway
	// request, no second one while it is pending.
	generating atomic.Bool

	mu      sync.Mutex
	session *model.Quiz
}

func NewQuizService(subjects *repository.SubjectRepository, questions *repository.QuestionRepository, generator QuestionGenerator, cfg *config.Config) *QuizService {
	return &QuizService{
		subjects:   subjects,
		questions:  questions,
		generator:  generator,
		cfg:        cfg.Quiz,
		genTimeout: cfg.AI.Timeout(),
	}
}

func (s *QuizService) ApplyConfig(cfg *config.Config) {
	s.cfgMu.Lock()
	s.cfg = cfg.Quiz
	s.genTimeout = cfg.AI.Timeout()
	s.cfgMu.Unlock()
}

func (s *QuizService) quizConfig() (config.QuizConfig, time.Duration) {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg, s.genTimeout
}

type StartQuizRequest struct {
	SubjectID     string `json:"subjectId"`
	Mode          string `json:"mode" binding:"required"`
	QuestionCount int    `json:"questionCount"`
}

type AnswerResult struct {
	IsCorrect     bool   `json:"isCorrect"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
}

type QuizSummary struct {
	Score      float64 `json:"score"`
	Total      int     `json:"total"`
	Correct    int     `json:"correct"`
	IsFinished bool    `json:"isFinished"`
}

// revengeQuestions selects every bank question whose last attempt was wrong,
// in bank order. With includeNeverAttempted, questions that were never
// attempted qualify too, because their flag defaults to false.
func revengeQuestions(bank []model.Question, includeNeverAttempted bool) []model.Question {
	var out []model.Question
	for _, q := range bank {
		if q.LastAttemptCorrect {
			continue
		}
		if q.Attempts == 0 && !includeNeverAttempted {
			continue
		}
		out = append(out, q)
	}
	return out
}

// dailyRevisionQuestions builds the mixed set: revenge questions first, then
// previously-correct questions ordered by fewest attempts, filling up to
// count, with the whole list capped.
func dailyRevisionQuestions(bank []model.Question, count int, includeNeverAttempted bool, ceiling int) []model.Question {
	revenge := revengeQuestions(bank, includeNeverAttempted)

	var revision []model.Question
	for _, q := range bank {
		if q.Attempts > 0 && q.LastAttemptCorrect {
			revision = append(revision, q)
		}
	}
	sort.SliceStable(revision, func(i, j int) bool {
		return revision[i].Attempts < revision[j].Attempts
	})

	remainder := count - len(revenge)
	if remainder < 0 {
		remainder = 0
	}
	if len(revision) > remainder {
		revision = revision[:remainder]
	}

	combined := append(revenge, revision...)
	if len(combined) > ceiling {
		combined = combined[:ceiling]
	}
	return combined
}

// Start composes a new session. Only post-lecture mode has a side effect: it
// appends the freshly generated questions to the bank. No failure path leaves
// a partial session or a partial append behind.
func (s *QuizService) Start(ctx context.Context, subjectID string, mode model.QuizMode, count int) (*model.Quiz, error) {
	cfg, genTimeout := s.quizConfig()

	var selected []model.Question
	switch mode {
	case model.ModeRevenge:
		selected = revengeQuestions(s.questions.List(), cfg.IncludeNeverAttempted)

	case model.ModeDailyRevision:
		selected = dailyRevisionQuestions(s.questions.List(), count, cfg.IncludeNeverAttempted, cfg.DailyRevisionCap)

	case model.ModePostLecture:
		var err error
		selected, err = s.generateForSubject(ctx, subjectID, count, cfg, genTimeout)
		if err != nil {
			return nil, err
		}

	default:
		return nil, util.ErrNoQuestionsAvailable
	}

	if len(selected) == 0 {
		return nil, util.ErrNoQuestionsAvailable
	}

	quiz := model.NewQuiz(selected)

	s.mu.Lock()
	discarded := s.session != nil && !s.session.IsFinished
	s.session = quiz
	s.mu.Unlock()

	if discarded {
		logger.Log.Info("unfinished session discarded by new start")
	}
	monitoring.QuizSessionsStarted.WithLabelValues(string(mode)).Inc()
	logger.Log.Info("quiz session started",
		zap.String("mode", string(mode)),
		zap.Int("questions", len(selected)))

	return quiz, nil
}

func (s *QuizService) generateForSubject(ctx context.Context, subjectID string, count int, cfg config.QuizConfig, genTimeout time.Duration) ([]model.Question, error) {
	if !s.generating.CompareAndSwap(false, true) {
		return nil, util.ErrGenerationInFlight
	}
	defer s.generating.Store(false)

	subject, err := s.subjects.FindByID(subjectID)
	if err != nil {
		return nil, err
	}
	if !subject.QuizEligible() {
		return nil, util.ErrNoQuestionsAvailable
	}

	if count < 1 {
		count = 1
	}
	if cfg.MaxGenerateCount > 0 && count > cfg.MaxGenerateCount {
		count = cfg.MaxGenerateCount
	}

	genCtx, cancel := context.WithTimeout(ctx, genTimeout)
	defer cancel()

	records, err := s.generator.Generate(genCtx, GenerationRequest{
		Context:       subject.Transcripts + "\n\n" + subject.PDFs,
		StyleExamples: subject.PYQs,
		Count:         count,
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, util.ErrNoQuestionsAvailable
	}

	questions := make([]model.Question, 0, len(records))
	for _, rec := range records {
		questions = append(questions, model.Question{
			ID:            model.GenerateUUID(),
			SubjectID:     subject.ID,
			Question:      rec.Question,
			Options:       rec.Options,
			CorrectAnswer: rec.CorrectAnswer,
			Explanation:   rec.Explanation,
		})
	}

	s.questions.Append(questions)
	monitoring.QuestionsGenerated.Add(float64(len(questions)))

	return questions, nil
}

// Active returns the current session.
func (s *QuizService) Active() (*model.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil, util.ErrNoActiveQuiz
	}
	return s.session, nil
}

// SubmitAnswer applies the ledger update for the question at the cursor:
// the bank question's attempts, last-attempt flag and isCorrect mirror move
// in one step, and the answer lands in the session slot. Resubmitting before
// advancing overwrites the slot but still counts another attempt.
func (s *QuizService) SubmitAnswer(answer string) (*AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, util.ErrNoActiveQuiz
	}
	if s.session.IsFinished {
		return nil, util.ErrQuizFinished
	}

	question := s.session.CurrentQuestion()
	correct := answer == question.CorrectAnswer

	if _, err := s.questions.RecordAttempt(question.ID, correct); err != nil {
		// The question can vanish mid-session through a subject delete
		// cascade; the session keeps its snapshot and the answer is
		// still recorded.
		logger.Log.Warn("answered question no longer in bank",
			zap.String("questionId", question.ID))
	}

	a := answer
	s.session.UserAnswers[s.session.CurrentQuestionIndex] = &a

	result := "incorrect"
	if correct {
		result = "correct"
	}
	monitoring.AnswersRecorded.WithLabelValues(result).Inc()

	return &AnswerResult{
		IsCorrect:     correct,
		CorrectAnswer: question.CorrectAnswer,
		Explanation:   question.Explanation,
	}, nil
}

// Advance moves the cursor to the next question, or finishes the session when
// advancing past the last one. The current slot must already hold an answer.
func (s *QuizService) Advance() (*model.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, util.ErrNoActiveQuiz
	}
	if s.session.IsFinished {
		return nil, util.ErrQuizFinished
	}
	if !s.session.Answered() {
		return nil, util.ErrAnswerRequired
	}

	if s.session.CurrentQuestionIndex < len(s.session.Questions)-1 {
		s.session.CurrentQuestionIndex++
	} else {
		s.session.IsFinished = true
		logger.Log.Info("quiz session finished",
			zap.Float64("score", s.session.Score()),
			zap.Int("questions", len(s.session.Questions)))
	}
	return s.session, nil
}

// Summary reports the running score of the active session.
func (s *QuizService) Summary() (*QuizSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, util.ErrNoActiveQuiz
	}

	correct := 0
	for i, ans := range s.session.UserAnswers {
		if ans != nil && *ans == s.session.Questions[i].CorrectAnswer {
			correct++
		}
	}
	return &QuizSummary{
		Score:      s.session.Score(),
		Total:      len(s.session.Questions),
		Correct:    correct,
		IsFinished: s.session.IsFinished,
	}, nil
}

// Discard drops the active session, if any. Idempotent.
func (s *QuizService) Discard() {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
}
