package service

import (
	"coder_edu_frontend/internal/apiclient"
	"coder_edu_frontend/internal/model"
	"coder_edu_frontend/internal/session"
	"coder_edu_frontend/internal/util"
	"coder_edu_frontend/pkg/logger"
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

type NotificationService struct{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// List 尽力而为：失败只记日志并返回空列表。会话过期仍要向上返回，以便跳转首页
func (s *NotificationService) List(ctx context.Context, sess *session.Session) ([]model.Notification, error) {
	var items []model.Notification
	err := sess.DoAuth(ctx, apiclient.Request{Method: http.MethodGet, Path: "/notifications"}, &items)
	if errors.Is(err, apiclient.ErrAuthRequired) {
		return nil, err
	}
	if err != nil {
		logger.Log.Warn("Notification refresh failed", zap.Error(err))
		return []model.Notification{}, nil
	}
	if items == nil {
		items = []model.Notification{}
	}
	return items, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, sess *session.Session, id uint) error {
	if id == 0 {
		return util.ErrResourceIDInvalid
	}
	return sess.DoAuth(ctx, apiclient.Request{Method: http.MethodPost, Path: fmt.Sprintf("/notifications/%d/read", id)}, nil)
}
