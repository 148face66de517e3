package controller

import (
	"github.com/akshar-2001/revenge-valut/internal/service"
	"github.com/akshar-2001/revenge-valut/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Service *service.DashboardService
}

func NewDashboardController(svc *service.DashboardService) *DashboardController {
	return &DashboardController{Service: svc}
}

// @Summary Accuracy rollup and session availability
// @Tags dashboard
// @Produce json
// @Success 200 {object} util.Response
// @Router /dashboard [get]
func (c *DashboardController) Overview(ctx *gin.Context) {
	util.Success(ctx, c.Service.Overview())
}
