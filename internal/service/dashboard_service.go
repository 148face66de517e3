package service

import (
	"sync"

	"github.com/akshar-2001/revenge-valut/internal/config"
	"github.com/akshar-2001/revenge-valut/internal/repository"
)

// DashboardService produces the accuracy rollup and the session-setup
// availability counts, both derived from the bank's performance state.
type DashboardService struct {
	subjects  *repository.SubjectRepository
	questions *repository.QuestionRepository

	cfgMu sync.RWMutex
	cfg   config.QuizConfig
}

func NewDashboardService(subjects *repository.SubjectRepository, questions *repository.QuestionRepository, cfg config.QuizConfig) *DashboardService {
	return &DashboardService{subjects: subjects, questions: questions, cfg: cfg}
}

func (s *DashboardService) ApplyConfig(cfg config.QuizConfig) {
	s.cfgMu.Lock()
	s.cfg = cfg
	s.cfgMu.Unlock()
}

type Overview struct {
	TotalSubjects      int      `json:"totalSubjects"`
	EligibleSubjects   int      `json:"eligibleSubjects"`
	TotalQuestions     int      `json:"totalQuestions"`
	AttemptedQuestions int      `json:"attemptedQuestions"`
	OverallAccuracy    *float64 `json:"overallAccuracy"`
	RevengeCount       int      `json:"revengeCount"`
	DailyRevisionCount int      `json:"dailyRevisionCount"`
}

func (s *DashboardService) Overview() *Overview {
	s.cfgMu.RLock()
	cfg := s.cfg
	s.cfgMu.RUnlock()

	subjects := s.subjects.List()
	bank := s.questions.List()

	eligible := 0
	for i := range subjects {
		if subjects[i].QuizEligible() {
			eligible++
		}
	}

	attempted, lastCorrect := 0, 0
	for _, q := range bank {
		if q.Attempts > 0 {
			attempted++
			if q.LastAttemptCorrect {
				lastCorrect++
			}
		}
	}

	var accuracy *float64
	if attempted > 0 {
		v := float64(lastCorrect) / float64(attempted)
		accuracy = &v
	}

	revenge := len(revengeQuestions(bank, cfg.IncludeNeverAttempted))
	daily := revenge + lastCorrect
	if daily > cfg.DailyRevisionCap {
		daily = cfg.DailyRevisionCap
	}

	return &Overview{
		TotalSubjects:      len(subjects),
		EligibleSubjects:   eligible,
		TotalQuestions:     len(bank),
		AttemptedQuestions: attempted,
		OverallAccuracy:    accuracy,
		RevengeCount:       revenge,
		DailyRevisionCount: daily,
	}
}
