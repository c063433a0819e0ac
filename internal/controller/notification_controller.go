package controller

import (
	"coder_edu_frontend/internal/middleware"
	"coder_edu_frontend/internal/service"
	"coder_edu_frontend/internal/util"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Service *service.NotificationService
}

func NewNotificationController(svc *service.NotificationService) *NotificationController {
	return &NotificationController{Service: svc}
}

// @Summary 通知列表
// @Description 拉取失败时返回空列表
// @Tags 通知
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Notification}
// @Router /api/notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	items, err := c.Service.List(ctx.Request.Context(), middleware.SessionFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// @Summary 标记已读
// @Tags 通知
// @Produce json
// @Param id path int true "通知ID"
// @Success 200 {object} util.Response
// @Router /api/notifications/{id}/read [post]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.Service.MarkRead(ctx.Request.Context(), middleware.SessionFromContext(ctx), id); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
