package controller

import (
	"coder_edu_frontend/internal/middleware"
	"coder_edu_frontend/internal/service"
	"coder_edu_frontend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningPathController struct {
	Service *service.LearningPathService
}

func NewLearningPathController(svc *service.LearningPathService) *LearningPathController {
	return &LearningPathController{Service: svc}
}

// @Summary 学习路径列表
// @Tags 学习路径
// @Produce json
// @Success 200 {object} util.Response{data=[]model.LearningPath}
// @Router /api/learning-paths [get]
func (c *LearningPathController) ListPaths(ctx *gin.Context) {
	paths, err := c.Service.ListPaths(ctx.Request.Context(), middleware.SessionFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, paths)
}

// @Summary 学习路径详情
// @Tags 学习路径
// @Produce json
// @Param id path int true "路径ID"
// @Success 200 {object} util.Response{data=model.LearningPath}
// @Router /api/learning-paths/{id} [get]
func (c *LearningPathController) GetPath(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	path, err := c.Service.GetPath(ctx.Request.Context(), middleware.SessionFromContext(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, path)
}
