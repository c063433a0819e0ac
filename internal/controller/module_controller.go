package controller

import (
	"coder_edu_frontend/internal/middleware"
	"coder_edu_frontend/internal/progression"
	"coder_edu_frontend/internal/service"
	"coder_edu_frontend/internal/util"
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ModuleController struct {
	Service *service.ModuleService
	Visits  *progression.Visits
}

func NewModuleController(svc *service.ModuleService, visits *progression.Visits) *ModuleController {
	return &ModuleController{Service: svc, Visits: visits}
}

type SelectOptionRequest struct {
	OptionID uint `json:"option_id" binding:"required"`
}

type visitAction func(ctx context.Context, e *progression.Engine) error

// visitKey 访客 + 用户 + 模块；同一浏览器换账号后不会复用上一个人的状态
func visitKey(ctx *gin.Context, moduleID uint) progression.VisitKey {
	var userID uint
	if u := middleware.SessionFromContext(ctx).User(); u != nil {
		userID = u.ID
	}
	return progression.VisitKey{
		Visitor:  fmt.Sprintf("%s:%d", middleware.VisitorFromContext(ctx), userID),
		ModuleID: moduleID,
	}
}

func (c *ModuleController) run(ctx *gin.Context, action visitAction) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	sess := middleware.SessionFromContext(ctx)
	key := visitKey(ctx, id)
	view, err := c.Visits.Run(ctx.Request.Context(), key, c.Service.Backend(sess), sess.User(), action)

	// 动作过程中收到 401，会话已被清理
	if !sess.Authenticated() {
		util.RedirectHome(ctx)
		return
	}
	if err != nil {
		if view.State == "" {
			respondError(ctx, err)
			return
		}
		respondErrorWithData(ctx, err, view)
		return
	}

	util.Success(ctx, view)
}

// @Summary 进入模块
// @Description 首次进入或离开后重新进入时加载模块和所属课程，之后返回保存的访问状态
// @Tags 模块
// @Produce json
// @Param id path int true "模块ID"
// @Success 200 {object} util.Response{data=progression.View}
// @Failure 400 {object} util.Response "ID 无效"
// @Router /api/modules/{id} [get]
func (c *ModuleController) Visit(ctx *gin.Context) {
	c.run(ctx, nil)
}

// @Summary 生成模块内容
// @Description 仅在内容缺失且允许生成时可用，生成后重新拉取模块
// @Tags 模块
// @Produce json
// @Param id path int true "模块ID"
// @Success 200 {object} util.Response{data=progression.View}
// @Failure 403 {object} util.Response "无权生成或前一模块未完成"
// @Failure 409 {object} util.Response "当前状态不可生成"
// @Router /api/modules/{id}/generate [post]
func (c *ModuleController) Generate(ctx *gin.Context) {
	c.run(ctx, func(ctx context.Context, e *progression.Engine) error {
		return e.Generate(ctx)
	})
}

// @Summary 开始测验
// @Description 每次进入都会向服务端确认剩余次数
// @Tags 测验
// @Produce json
// @Param id path int true "模块ID"
// @Success 200 {object} util.Response{data=progression.View}
// @Failure 403 {object} util.Response "次数用尽或非学生"
// @Router /api/modules/{id}/quiz/start [post]
func (c *ModuleController) StartQuiz(ctx *gin.Context) {
	c.run(ctx, func(ctx context.Context, e *progression.Engine) error {
		return e.StartQuiz(ctx)
	})
}

// @Summary 选择答案
// @Tags 测验
// @Accept json
// @Produce json
// @Param id path int true "模块ID"
// @Param body body SelectOptionRequest true "选项"
// @Success 200 {object} util.Response{data=progression.View}
// @Router /api/modules/{id}/quiz/select [post]
func (c *ModuleController) SelectOption(ctx *gin.Context) {
	var req SelectOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	c.run(ctx, func(ctx context.Context, e *progression.Engine) error {
		return e.Select(req.OptionID)
	})
}

// @Summary 下一题 / 提交
// @Description 没有选择时不推进；最后一题时提交全部答案由服务端评分
// @Tags 测验
// @Produce json
// @Param id path int true "模块ID"
// @Success 200 {object} util.Response{data=progression.View}
// @Failure 400 {object} util.Response "未选择答案"
// @Router /api/modules/{id}/quiz/advance [post]
func (c *ModuleController) Advance(ctx *gin.Context) {
	c.run(ctx, func(ctx context.Context, e *progression.Engine) error {
		_, err := e.Advance(ctx)
		return err
	})
}

// @Summary 重新测验
// @Tags 测验
// @Produce json
// @Param id path int true "模块ID"
// @Success 200 {object} util.Response{data=progression.View}
// @Router /api/modules/{id}/quiz/retry [post]
func (c *ModuleController) Retry(ctx *gin.Context) {
	c.run(ctx, func(ctx context.Context, e *progression.Engine) error {
		return e.Retry(ctx)
	})
}

// @Summary 关闭成绩
// @Tags 测验
// @Produce json
// @Param id path int true "模块ID"
// @Success 200 {object} util.Response{data=progression.View}
// @Router /api/modules/{id}/quiz/dismiss [post]
func (c *ModuleController) Dismiss(ctx *gin.Context) {
	c.run(ctx, func(ctx context.Context, e *progression.Engine) error {
		return e.Dismiss()
	})
}

// @Summary 离开模块
// @Description 进行中的请求结果会被丢弃，下次进入重新加载
// @Tags 模块
// @Produce json
// @Param id path int true "模块ID"
// @Success 200 {object} util.Response
// @Router /api/modules/{id}/leave [post]
func (c *ModuleController) Leave(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.Visits.Leave(ctx.Request.Context(), visitKey(ctx, id)); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}

// @Summary 下载模块内容
// @Description 文件名取自服务端 Content-Disposition，否则为 module-<id>.pdf
// @Tags 模块
// @Produce application/pdf
// @Param id path int true "模块ID"
// @Success 200 {file} file
// @Router /api/modules/{id}/download [get]
func (c *ModuleController) Download(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	f, err := c.Service.Download(ctx.Request.Context(), middleware.SessionFromContext(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.Name))
	ctx.Data(http.StatusOK, f.ContentType, f.Data)
}
