package middleware

import (
	"coder_edu_frontend/internal/config"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const visitorKey = "visitor"

// VisitorMiddleware 给浏览器分配稳定的访客 ID，模块访问状态按它隔离
func VisitorMiddleware(cfg config.SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cfg.VisitorName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(cfg.VisitorName, id, cfg.MaxAgeDays*24*3600, "/", cfg.CookieDomain, cfg.Secure, true)
		}
		c.Set(visitorKey, id)
		c.Next()
	}
}

func VisitorFromContext(c *gin.Context) string {
	return c.GetString(visitorKey)
}
