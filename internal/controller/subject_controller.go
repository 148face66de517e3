package controller

import (
	"errors"

	"github.com/akshar-2001/revenge-valut/internal/service"
	"github.com/akshar-2001/revenge-valut/internal/util"

	"github.com/gin-gonic/gin"
)

type SubjectController struct {
	Service *service.SubjectService
}

func NewSubjectController(svc *service.SubjectService) *SubjectController {
	return &SubjectController{Service: svc}
}

// @Summary Create a subject
// @Tags subjects
// @Accept json
// @Produce json
// @Param body body service.CreateSubjectRequest true "subject name"
// @Success 201 {object} util.Response
// @Router /subjects [post]
func (c *SubjectController) Create(ctx *gin.Context) {
	var req service.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject, err := c.Service.Create(req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, subject)
}

// @Summary List subjects
// @Tags subjects
// @Produce json
// @Success 200 {object} util.Response
// @Router /subjects [get]
func (c *SubjectController) List(ctx *gin.Context) {
	util.Success(ctx, c.Service.List())
}

// @Summary Get a subject
// @Tags subjects
// @Produce json
// @Param id path string true "subject id"
// @Success 200 {object} util.Response
// @Router /subjects/{id} [get]
func (c *SubjectController) Get(ctx *gin.Context) {
	subject, err := c.Service.Get(ctx.Param("id"))
	if err != nil {
		util.NotFound(ctx, err.Error())
		return
	}
	util.Success(ctx, subject)
}

// @Summary Replace a subject's source material
// @Tags subjects
// @Accept json
// @Produce json
// @Param id path string true "subject id"
// @Param body body service.SubjectContentRequest true "source material"
// @Success 200 {object} util.Response
// @Router /subjects/{id}/content [put]
func (c *SubjectController) UpdateContent(ctx *gin.Context) {
	var req service.SubjectContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject, err := c.Service.UpdateContent(ctx.Param("id"), req)
	if err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, subject)
}

// @Summary Delete a subject and its generated questions
// @Tags subjects
// @Produce json
// @Param id path string true "subject id"
// @Success 200 {object} util.Response
// @Router /subjects/{id} [delete]
func (c *SubjectController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
