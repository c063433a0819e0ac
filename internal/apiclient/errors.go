package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrAuthRequired 服务端返回 401，或调用方在没有令牌时发起需要认证的请求
var ErrAuthRequired = errors.New("authentication required")

// ServerError 非 2xx、非 401 响应，Detail 原样展示给用户
type ServerError struct {
	Status int
	Detail string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server rejected request (%d): %s", e.Status, e.Detail)
}

// IsStatus 判断 err 是否为指定状态码的 ServerError
func IsStatus(err error, status int) bool {
	var se *ServerError
	return errors.As(err, &se) && se.Status == status
}

// parseDetail 解析 {"detail": "..."}；detail 不是字符串时退回原始内容或状态文本
func parseDetail(status int, body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Detail) > 0 {
		var s string
		if err := json.Unmarshal(payload.Detail, &s); err == nil && s != "" {
			return s
		}
		return string(payload.Detail)
	}

	if text := strings.TrimSpace(string(body)); text != "" && len(text) <= 512 {
		return text
	}
	return http.StatusText(status)
}
