package controller

import (
	"coder_edu_frontend/internal/middleware"
	"coder_edu_frontend/internal/util"

	"github.com/gin-gonic/gin"
)

type HomeController struct{}

func NewHomeController() *HomeController {
	return &HomeController{}
}

// @Summary 首页
// @Description 未登录或权限不足时跳转到这里，返回当前身份
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router / [get]
func (c *HomeController) Index(ctx *gin.Context) {
	sess := middleware.SessionFromContext(ctx)
	user := sess.User()
	util.Success(ctx, gin.H{
		"authenticated": user != nil,
		"user":          user,
	})
}
