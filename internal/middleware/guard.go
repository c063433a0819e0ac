package middleware

import (
	"coder_edu_frontend/internal/guard"
	"coder_edu_frontend/internal/model"
	"coder_edu_frontend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Guard 按策略放行，未登录或角色不符时 302 回首页
func Guard(p guard.Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user *model.User
		if sess := SessionFromContext(c); sess != nil {
			user = sess.User()
		}

		d := guard.Decide(user, p)
		if !d.Allow {
			logger.Log.Debug("Navigation denied",
				zap.String("path", c.FullPath()),
				zap.String("policy", p.String()),
			)
			c.Redirect(http.StatusFound, d.Redirect)
			c.Abort()
			return
		}
		c.Next()
	}
}
