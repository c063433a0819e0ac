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
	"strings"

	"go.uber.org/zap"
)

var ErrRoomCodeRequired = errors.New("room code is required")

type RoomService struct{}

func NewRoomService() *RoomService {
	return &RoomService{}
}

func (s *RoomService) ListRooms(ctx context.Context, sess *session.Session) ([]model.Room, error) {
	var rooms []model.Room
	if err := sess.DoAuth(ctx, apiclient.Request{Method: http.MethodGet, Path: "/rooms"}, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *RoomService) GetRoom(ctx context.Context, sess *session.Session, id uint) (*model.Room, error) {
	if id == 0 {
		return nil, util.ErrResourceIDInvalid
	}
	var room model.Room
	if err := sess.DoAuth(ctx, apiclient.Request{Method: http.MethodGet, Path: fmt.Sprintf("/rooms/%d", id)}, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// JoinRoom 学员通过分享码加入
func (s *RoomService) JoinRoom(ctx context.Context, sess *session.Session, code string) (*model.Room, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrRoomCodeRequired
	}
	var room model.Room
	err := sess.DoAuth(ctx, apiclient.Request{
		Method: http.MethodPost,
		Path:   "/rooms/join",
		Body:   model.JoinRoomRequest{Code: code},
	}, &room)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("Joined room", zap.Uint("room_id", room.ID))
	return &room, nil
}
