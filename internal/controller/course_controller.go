package controller

import (
	"coder_edu_frontend/internal/middleware"
	"coder_edu_frontend/internal/progression"
	"coder_edu_frontend/internal/service"
	"coder_edu_frontend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	Service *service.CourseService
}

func NewCourseController(svc *service.CourseService) *CourseController {
	return &CourseController{Service: svc}
}

// @Summary 课程目录
// @Description 各筛选维度之间取交集，维度为空时不限制
// @Tags 课程
// @Produce json
// @Param level query string false "难度，逗号分隔 (basic,intermediate,advanced)"
// @Param category query string false "分类 ID，逗号分隔"
// @Param price query string false "价格 (free / paid)"
// @Param q query string false "标题或描述关键字"
// @Success 200 {object} util.Response{data=service.CatalogPage}
// @Failure 400 {object} util.Response "筛选参数错误"
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	f, ok := bindFilter(ctx)
	if !ok {
		return
	}

	page, err := c.Service.Catalog(ctx.Request.Context(), middleware.SessionFromContext(ctx), f)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, page)
}

// @Summary 课程详情
// @Tags 课程
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "ID 无效"
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	course, err := c.Service.GetCourse(ctx.Request.Context(), middleware.SessionFromContext(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"course":   course,
		"progress": progression.CourseProgress(course.Modules),
	})
}

// @Summary 报名课程
// @Tags 课程
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Router /api/courses/{id}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	enrollment, err := c.Service.Enroll(ctx.Request.Context(), middleware.SessionFromContext(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, enrollment)
}

// @Summary 课程分类
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Category}
// @Router /api/categories [get]
func (c *CourseController) ListCategories(ctx *gin.Context) {
	categories, err := c.Service.ListCategories(ctx.Request.Context(), middleware.SessionFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, categories)
}
