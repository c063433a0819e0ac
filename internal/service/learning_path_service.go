package service

import (
	"coder_edu_frontend/internal/apiclient"
	"coder_edu_frontend/internal/model"
	"coder_edu_frontend/internal/session"
	"coder_edu_frontend/internal/util"
	"context"
	"fmt"
	"net/http"
)

type LearningPathService struct{}

func NewLearningPathService() *LearningPathService {
	return &LearningPathService{}
}

func (s *LearningPathService) ListPaths(ctx context.Context, sess *session.Session) ([]model.LearningPath, error) {
	var paths []model.LearningPath
	if err := sess.Do(ctx, apiclient.Request{Method: http.MethodGet, Path: "/learning-paths"}, &paths); err != nil {
		return nil, err
	}
	return paths, nil
}

func (s *LearningPathService) GetPath(ctx context.Context, sess *session.Session, id uint) (*model.LearningPath, error) {
	if id == 0 {
		return nil, util.ErrResourceIDInvalid
	}
	var path model.LearningPath
	if err := sess.Do(ctx, apiclient.Request{Method: http.MethodGet, Path: fmt.Sprintf("/learning-paths/%d", id)}, &path); err != nil {
		return nil, err
	}
	return &path, nil
}
