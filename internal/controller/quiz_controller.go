package controller

import (
	"errors"

	"github.com/akshar-2001/revenge-valut/internal/model"
	"github.com/akshar-2001/revenge-valut/internal/repository"
	"github.com/akshar-2001/revenge-valut/internal/service"
	"github.com/akshar-2001/revenge-valut/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service   *service.QuizService
	Questions *repository.QuestionRepository
}

func NewQuizController(svc *service.QuizService, questions *repository.QuestionRepository) *QuizController {
	return &QuizController{Service: svc, Questions: questions}
}

type submitAnswerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// @Summary Start a quiz session
// @Description Composes a new session per mode: post_lecture generates fresh questions, revenge and daily_revision select from the bank.
// @Tags quiz
// @Accept json
// @Produce json
// @Param body body service.StartQuizRequest true "session parameters"
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response
// @Failure 422 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /quiz/start [post]
func (c *QuizController) Start(ctx *gin.Context) {
	var req service.StartQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	mode, err := model.ParseQuizMode(req.Mode)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if mode == model.ModePostLecture && req.SubjectID == "" {
		util.BadRequest(ctx, "subjectId is required for post_lecture mode")
		return
	}

	quiz, err := c.Service.Start(ctx.Request.Context(), req.SubjectID, mode, req.QuestionCount)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSubjectNotFound):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrNoQuestionsAvailable):
			util.Unprocessable(ctx, err.Error())
		case errors.Is(err, util.ErrGenerationInFlight):
			util.Conflict(ctx, err.Error())
		case errors.Is(err, util.ErrGenerationFailed):
			util.BadGateway(ctx, "Failed to generate questions. Please check your content and try again.")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, quiz)
}

// @Summary Get the active quiz session
// @Tags quiz
// @Produce json
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quiz [get]
func (c *QuizController) Active(ctx *gin.Context) {
	quiz, err := c.Service.Active()
	if err != nil {
		util.NotFound(ctx, err.Error())
		return
	}
	util.Success(ctx, quiz)
}

// @Summary Submit an answer for the current question
// @Tags quiz
// @Accept json
// @Produce json
// @Param body body submitAnswerRequest true "the chosen option"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quiz/answer [post]
func (c *QuizController) SubmitAnswer(ctx *gin.Context) {
	var req submitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.SubmitAnswer(req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNoActiveQuiz):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrQuizFinished):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// @Summary Advance to the next question
// @Description Requires the current question to be answered. Advancing past the last question finishes the session.
// @Tags quiz
// @Produce json
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quiz/next [post]
func (c *QuizController) Advance(ctx *gin.Context) {
	quiz, err := c.Service.Advance()
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNoActiveQuiz):
			util.NotFound(ctx, err.Error())
		case errors.Is(err, util.ErrQuizFinished):
			util.Conflict(ctx, err.Error())
		case errors.Is(err, util.ErrAnswerRequired):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, quiz)
}

// @Summary Get the active session's score summary
// @Tags quiz
// @Produce json
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /quiz/summary [get]
func (c *QuizController) Summary(ctx *gin.Context) {
	summary, err := c.Service.Summary()
	if err != nil {
		util.NotFound(ctx, err.Error())
		return
	}
	util.Success(ctx, summary)
}

// @Summary Discard the active quiz session
// @Tags quiz
// @Produce json
// @Success 200 {object} util.Response
// @Router /quiz [delete]
func (c *QuizController) Discard(ctx *gin.Context) {
	c.Service.Discard()
	util.Success(ctx, nil)
}

// @Summary List the question bank
// @Tags questions
// @Produce json
// @Param subjectId query string false "filter by subject"
// @Success 200 {object} util.Response
// @Router /questions [get]
func (c *QuizController) ListQuestions(ctx *gin.Context) {
	if subjectID := ctx.Query("subjectId"); subjectID != "" {
		util.Success(ctx, c.Questions.ListBySubject(subjectID))
		return
	}
	util.Success(ctx, c.Questions.List())
}
