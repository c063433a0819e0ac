package controller

import (
	"coder_edu_frontend/internal/middleware"
	"coder_edu_frontend/internal/service"
	"coder_edu_frontend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Service *service.DashboardService
}

func NewDashboardController(svc *service.DashboardService) *DashboardController {
	return &DashboardController{Service: svc}
}

// @Summary 学生仪表盘
// @Tags 仪表盘
// @Produce json
// @Success 200 {object} util.Response{data=model.StudentDashboard}
// @Router /api/dashboard/student [get]
func (c *DashboardController) Student(ctx *gin.Context) {
	d, err := c.Service.Student(ctx.Request.Context(), middleware.SessionFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, d)
}

// @Summary 教师仪表盘
// @Tags 仪表盘
// @Produce json
// @Success 200 {object} util.Response{data=model.InstructorDashboard}
// @Router /api/dashboard/instructor [get]
func (c *DashboardController) Instructor(ctx *gin.Context) {
	d, err := c.Service.Instructor(ctx.Request.Context(), middleware.SessionFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, d)
}

// @Summary 管理员仪表盘
// @Tags 仪表盘
// @Produce json
// @Success 200 {object} util.Response{data=model.AdminDashboard}
// @Router /api/dashboard/admin [get]
func (c *DashboardController) Admin(ctx *gin.Context) {
	d, err := c.Service.Admin(ctx.Request.Context(), middleware.SessionFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, d)
}
