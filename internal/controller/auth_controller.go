package controller

import (
	"coder_edu_frontend/internal/middleware"
	"coder_edu_frontend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// @Summary 用户登录
// @Description 用户名密码换取令牌，令牌写入 HttpOnly Cookie
// @Tags 认证
// @Accept json
// @Produce json
// @Param body body LoginRequest true "登录信息"
// @Success 200 {object} util.Response{data=model.User} "登录成功"
// @Failure 400 {object} util.Response "参数错误"
// @Failure 401 {object} util.Response "用户名或密码错误"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sess := middleware.SessionFromContext(ctx)
	user, err := sess.Login(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

// @Summary 退出登录
// @Tags 认证
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	middleware.SessionFromContext(ctx).Logout()
	util.Success(ctx, nil)
}

// @Summary 当前用户
// @Tags 认证
// @Produce json
// @Success 200 {object} util.Response{data=model.User}
// @Failure 302 "未登录，跳转首页"
// @Router /api/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	util.Success(ctx, middleware.SessionFromContext(ctx).User())
}
