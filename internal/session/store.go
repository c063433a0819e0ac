package session

import (
	"coder_edu_frontend/internal/config"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// TokenStore 持久化的不透明 bearer token，缺失即匿名
type TokenStore interface {
	Load() (string, bool)
	Save(token string)
	Clear()
}

type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

func (m *MemoryStore) Load() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, m.token != ""
}

func (m *MemoryStore) Save(token string) {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
}

func (m *MemoryStore) Clear() {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
}

// CookieStore 把令牌放在浏览器 Cookie 里，名字来自配置（默认 access_token）
type CookieStore struct {
	ctx     *gin.Context
	cfg     config.SessionConfig
	token   string
	touched bool
}

func NewCookieStore(c *gin.Context, cfg config.SessionConfig) *CookieStore {
	return &CookieStore{ctx: c, cfg: cfg}
}

func (s *CookieStore) Load() (string, bool) {
	// 同一请求内写过之后以写入值为准
	if s.touched {
		return s.token, s.token != ""
	}
	token, err := s.ctx.Cookie(s.cfg.CookieName)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

func (s *CookieStore) Save(token string) {
	s.token, s.touched = token, true
	s.ctx.SetSameSite(http.SameSiteLaxMode)
	s.ctx.SetCookie(s.cfg.CookieName, token, s.cfg.MaxAgeDays*24*3600, "/", s.cfg.CookieDomain, s.cfg.Secure, true)
}

func (s *CookieStore) Clear() {
	s.token, s.touched = "", true
	s.ctx.SetSameSite(http.SameSiteLaxMode)
	s.ctx.SetCookie(s.cfg.CookieName, "", -1, "/", s.cfg.CookieDomain, s.cfg.Secure, true)
}
