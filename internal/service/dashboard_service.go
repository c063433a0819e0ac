package service

import (
	"coder_edu_frontend/internal/apiclient"
	"coder_edu_frontend/internal/model"
	"coder_edu_frontend/internal/session"
	"context"
	"net/http"
)

// DashboardService 各角色的只读汇总，数据全部由服务端计算
type DashboardService struct{}

func NewDashboardService() *DashboardService {
	return &DashboardService{}
}

func (s *DashboardService) Student(ctx context.Context, sess *session.Session) (*model.StudentDashboard, error) {
	var d model.StudentDashboard
	if err := sess.DoAuth(ctx, apiclient.Request{Method: http.MethodGet, Path: "/dashboard/student"}, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *DashboardService) Instructor(ctx context.Context, sess *session.Session) (*model.InstructorDashboard, error) {
	var d model.InstructorDashboard
	if err := sess.DoAuth(ctx, apiclient.Request{Method: http.MethodGet, Path: "/dashboard/instructor"}, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *DashboardService) Admin(ctx context.Context, sess *session.Session) (*model.AdminDashboard, error) {
	var d model.AdminDashboard
	if err := sess.DoAuth(ctx, apiclient.Request{Method: http.MethodGet, Path: "/dashboard/admin"}, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
