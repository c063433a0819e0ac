package session

import (
	"coder_edu_frontend/internal/apiclient"
	"coder_edu_frontend/internal/model"
	"coder_edu_frontend/pkg/logger"
	"context"
	"errors"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// API 会话依赖的上游调用，*apiclient.Client 实现了它
type API interface {
	Do(ctx context.Context, r apiclient.Request, out interface{}) error
	Download(ctx context.Context, r apiclient.Request, fallback string) (*apiclient.File, error)
}

// Session 当前登录身份的唯一来源。所有上游调用都经过它，
// 收到 401 时令牌只清理一次，之后的认证请求在拿到新令牌前不会再发出
type Session struct {
	mu          sync.Mutex
	api         API
	store       TokenStore
	token       string
	user        *model.User
	initialized bool
}

func New(api API, store TokenStore) *Session {
	return &Session{api: api, store: store}
}

// Initialize 用持久化的令牌换取当前用户，失败时清掉令牌按匿名处理
func (s *Session) Initialize(ctx context.Context) {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return
	}
	s.initialized = true
	token, ok := s.store.Load()
	if !ok {
		s.mu.Unlock()
		return
	}
	if tokenExpired(token) {
		s.store.Clear()
		s.mu.Unlock()
		logger.Log.Debug("Persisted token already expired")
		return
	}
	s.token = token
	s.mu.Unlock()

	user, err := s.fetchUser(ctx, token)
	if err != nil {
		logger.Log.Info("Session restore failed, continuing anonymously", zap.Error(err))
		s.clear(token)
		return
	}

	s.mu.Lock()
	if s.token == token {
		s.user = user
	}
	s.mu.Unlock()
}

func (s *Session) fetchUser(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	err := s.api.Do(ctx, apiclient.Request{Method: http.MethodGet, Path: "/users/me", Token: token}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login 用户名密码换令牌，持久化后获取用户信息
func (s *Session) Login(ctx context.Context, username, password string) (*model.User, error) {
	var tok model.TokenResponse
	err := s.api.Do(ctx, apiclient.Request{
		Method: http.MethodPost,
		Path:   "/auth/token",
		Form:   map[string]string{"username": username, "password": password},
	}, &tok)
	if err != nil {
		if errors.Is(err, apiclient.ErrAuthRequired) || apiclient.IsStatus(err, http.StatusBadRequest) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if tok.AccessToken == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.fetchUser(ctx, tok.AccessToken)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.token = tok.AccessToken
	s.user = user
	s.initialized = true
	s.store.Save(tok.AccessToken)
	s.mu.Unlock()

	logger.Log.Info("User logged in", zap.Uint("user_id", user.ID), zap.String("role", string(user.Role)))
	return s.User(), nil
}

// Logout 同步清理内存和持久化的令牌，不负责跳转
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	s.store.Clear()
}

// clear 仅当令牌仍是 token 时才清理，保证同一次 401 只清一次
func (s *Session) clear(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token == "" || s.token != token {
		return false
	}
	s.token = ""
	s.user = nil
	s.store.Clear()
	return true
}

func (s *Session) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Role() (model.UserRole, bool) {
	u := s.User()
	if u == nil {
		return "", false
	}
	return u.Role, true
}

func (s *Session) Authenticated() bool {
	return s.User() != nil
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Do 有令牌就带上，匿名也可以调用
func (s *Session) Do(ctx context.Context, r apiclient.Request, out interface{}) error {
	r.Token = s.Token()
	return s.handle(r.Token, s.api.Do(ctx, r, out))
}

// DoAuth 必须有令牌，否则直接返回 ErrAuthRequired 而不发请求
func (s *Session) DoAuth(ctx context.Context, r apiclient.Request, out interface{}) error {
	r.Token = s.Token()
	if r.Token == "" {
		return apiclient.ErrAuthRequired
	}
	return s.handle(r.Token, s.api.Do(ctx, r, out))
}

func (s *Session) Download(ctx context.Context, r apiclient.Request, fallback string) (*apiclient.File, error) {
	r.Token = s.Token()
	if r.Token == "" {
		return nil, apiclient.ErrAuthRequired
	}
	f, err := s.api.Download(ctx, r, fallback)
	return f, s.handle(r.Token, err)
}

func (s *Session) handle(token string, err error) error {
	if errors.Is(err, apiclient.ErrAuthRequired) && s.clear(token) {
		logger.Log.Info("Session expired, token cleared")
	}
	return err
}
