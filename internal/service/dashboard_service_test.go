package service

import (
	"testing"

	"github.com/akshar-2001/revenge-valut/internal/model"
	"github.com/akshar-2001/revenge-valut/internal/repository"
)

func TestDashboardOverview(t *testing.T) {
	subjects := repository.NewSubjectRepository()
	questions := repository.NewQuestionRepository()
	svc := NewDashboardService(subjects, questions, testConfig().Quiz)

	t.Run("empty state", func(t *testing.T) {
		o := svc.Overview()
		if o.TotalSubjects != 0 || o.TotalQuestions != 0 {
			t.Errorf("Expected zero counts, got %+v", o)
		}
		if o.OverallAccuracy != nil {
			t.Error("Expected nil accuracy with no attempts")
		}
	})

	subjects.Create(&model.Subject{ID: "s1", Name: "Anatomy", Transcripts: "notes"})
	subjects.Create(&model.Subject{ID: "s2", Name: "Biochem"})
	questions.Append([]model.Question{
		seedQuestion("q1", 2, true),
		seedQuestion("q2", 1, false),
		seedQuestion("q3", 0, false),
		seedQuestion("q4", 1, true),
	})

	t.Run("rollup", func(t *testing.T) {
		o := svc.Overview()
		if o.TotalSubjects != 2 || o.EligibleSubjects != 1 {
			t.Errorf("Expected 2 subjects / 1 eligible, got %d/%d", o.TotalSubjects, o.EligibleSubjects)
		}
		if o.TotalQuestions != 4 || o.AttemptedQuestions != 3 {
			t.Errorf("Expected 4 questions / 3 attempted, got %d/%d", o.TotalQuestions, o.AttemptedQuestions)
		}
		if o.OverallAccuracy == nil {
			t.Fatal("Expected an accuracy value")
		}
		want := 2.0 / 3.0
		if diff := *o.OverallAccuracy - want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Expected accuracy %.4f, got %.4f", want, *o.OverallAccuracy)
		}
		// q2 (wrong) + q3 (never attempted, included by default)
		if o.RevengeCount != 2 {
			t.Errorf("Expected revenge count 2, got %d", o.RevengeCount)
		}
		// revenge (2) + previously correct (2)
		if o.DailyRevisionCount != 4 {
			t.Errorf("Expected daily revision count 4, got %d", o.DailyRevisionCount)
		}
	})

	t.Run("daily revision estimate capped", func(t *testing.T) {
		var extra []model.Question
		for i := 0; i < 20; i++ {
			extra = append(extra, seedQuestion(model.GenerateUUID(), 1, false))
		}
		questions.Append(extra)

		o := svc.Overview()
		if o.DailyRevisionCount != 15 {
			t.Errorf("Expected capped estimate 15, got %d", o.DailyRevisionCount)
		}
	})
}
