package context

import (
	"Chirp/pkg/response"

	"github.com/gin-gonic/gin"
)

type HandlerFunc func(*gin.Context) error

// Wrap 把返回 error 的处理函数转换为 gin.HandlerFunc
func Wrap(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {
			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			response.WriteError(c, err)
		}
	}
}

// GetRequestID 返回中间件生成的请求 id
func GetRequestID(c *gin.Context) string {
	return c.GetString(response.RequestIDKey)
}
