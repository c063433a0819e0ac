package service

import (
	"coder_edu_frontend/internal/apiclient"
	"coder_edu_frontend/internal/catalog"
	"coder_edu_frontend/internal/model"
	"coder_edu_frontend/internal/session"
	"coder_edu_frontend/internal/util"
	"coder_edu_frontend/pkg/logger"
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

type CourseService struct{}

func NewCourseService() *CourseService {
	return &CourseService{}
}

// CatalogPage 目录页：筛选后的课程 + 基于全量课程的分面计数
type CatalogPage struct {
	Courses []model.Course `json:"courses"`
	Total   int            `json:"total"`
	Facets  catalog.Facets `json:"facets"`
	Filter  catalog.Filter `json:"filter"`
}

// Catalog 拉一次全量课程，筛选在本地完成
func (s *CourseService) Catalog(ctx context.Context, sess *session.Session, f catalog.Filter) (*CatalogPage, error) {
	courses, err := s.ListCourses(ctx, sess)
	if err != nil {
		return nil, err
	}
	filtered := catalog.Apply(courses, f)
	return &CatalogPage{
		Courses: filtered,
		Total:   len(courses),
		Facets:  catalog.BuildFacets(courses),
		Filter:  f,
	}, nil
}

func (s *CourseService) ListCourses(ctx context.Context, sess *session.Session) ([]model.Course, error) {
	var courses []model.Course
	if err := sess.Do(ctx, apiclient.Request{Method: http.MethodGet, Path: "/courses"}, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (s *CourseService) GetCourse(ctx context.Context, sess *session.Session, id uint) (*model.Course, error) {
	if id == 0 {
		return nil, util.ErrResourceIDInvalid
	}
	var course model.Course
	if err := sess.Do(ctx, apiclient.Request{Method: http.MethodGet, Path: fmt.Sprintf("/courses/%d", id)}, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CourseService) ListCategories(ctx context.Context, sess *session.Session) ([]model.Category, error) {
	var categories []model.Category
	if err := sess.Do(ctx, apiclient.Request{Method: http.MethodGet, Path: "/categories"}, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Enroll 报名；付费课程的支付由服务端处理，这里只转发结果
func (s *CourseService) Enroll(ctx context.Context, sess *session.Session, id uint) (*model.Enrollment, error) {
	if id == 0 {
		return nil, util.ErrResourceIDInvalid
	}
	var e model.Enrollment
	if err := sess.DoAuth(ctx, apiclient.Request{Method: http.MethodPost, Path: fmt.Sprintf("/courses/%d/enroll", id)}, &e); err != nil {
		return nil, err
	}
	if e.CourseID == 0 {
		e.CourseID = id
	}
	logger.Log.Info("Course enrollment", zap.Uint("course_id", id), zap.String("status", e.Status))
	return &e, nil
}
