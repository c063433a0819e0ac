package middleware

import (
	"coder_edu_frontend/internal/config"
	"coder_edu_frontend/internal/session"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// SessionMiddleware 每个请求一个 Session，用 Cookie 中的令牌初始化。
// 初始化失败按匿名处理，不会中断请求
func SessionMiddleware(api session.API, cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.New(api, session.NewCookieStore(c, cfg))
		sess.Initialize(c.Request.Context())
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// SessionFromContext 未挂载 SessionMiddleware 时返回 nil
func SessionFromContext(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*session.Session)
	return sess
}
