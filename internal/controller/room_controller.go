package controller

import (
	"coder_edu_frontend/internal/middleware"
	"coder_edu_frontend/internal/model"
	"coder_edu_frontend/internal/service"
	"coder_edu_frontend/internal/util"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Service *service.RoomService
}

func NewRoomController(svc *service.RoomService) *RoomController {
	return &RoomController{Service: svc}
}

// @Summary 我的班级
// @Tags 班级
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Room}
// @Router /api/rooms [get]
func (c *RoomController) ListRooms(ctx *gin.Context) {
	rooms, err := c.Service.ListRooms(ctx.Request.Context(), middleware.SessionFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, rooms)
}

// @Summary 班级详情
// @Tags 班级
// @Produce json
// @Param id path int true "班级ID"
// @Success 200 {object} util.Response{data=model.Room}
// @Router /api/rooms/{id} [get]
func (c *RoomController) GetRoom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	room, err := c.Service.GetRoom(ctx.Request.Context(), middleware.SessionFromContext(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, room)
}

// @Summary 通过分享码加入班级
// @Tags 班级
// @Accept json
// @Produce json
// @Param body body model.JoinRoomRequest true "分享码"
// @Success 200 {object} util.Response{data=model.Room}
// @Router /api/rooms/join [post]
func (c *RoomController) JoinRoom(ctx *gin.Context) {
	var req model.JoinRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	room, err := c.Service.JoinRoom(ctx.Request.Context(), middleware.SessionFromContext(ctx), req.Code)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, room)
}
