package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var nowFunc = time.Now

// tokenExpired 只读取 exp，不校验签名（签名由服务端负责）。
// 非 JWT 的不透明令牌无法判断，按未过期处理
func tokenExpired(token string) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !nowFunc().Before(claims.ExpiresAt.Time)
}
