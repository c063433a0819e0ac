package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构，错误时只有 detail
type Response struct {
	Code   int         `json:"code"`
	Detail string      `json:"detail,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: http.StatusOK,
		Data: data,
	})
}

func Error(c *gin.Context, code int, detail string) {
	c.AbortWithStatusJSON(code, Response{
		Code:   code,
		Detail: detail,
	})
}

func BadRequest(c *gin.Context, detail string) {
	Error(c, http.StatusBadRequest, detail)
}

// RedirectHome 302 回到首页
func RedirectHome(c *gin.Context) {
	c.Redirect(http.StatusFound, HomePath)
	c.Abort()
}
