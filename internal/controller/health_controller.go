package controller

import (
	"time"

	"github.com/akshar-2001/revenge-valut/internal/repository"
	"github.com/akshar-2001/revenge-valut/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	questions *repository.QuestionRepository
	subjects  *repository.SubjectRepository
	started   time.Time
}

func NewHealthController(subjects *repository.SubjectRepository, questions *repository.QuestionRepository) *HealthController {
	return &HealthController{
		questions: questions,
		subjects:  subjects,
		started:   time.Now(),
	}
}

// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status": "ok",
		"uptime": time.Since(c.started).Round(time.Second).String(),
		"components": gin.H{
			"subjects":     c.subjects.Count(),
			"questionBank": c.questions.Count(),
		},
	})
}
