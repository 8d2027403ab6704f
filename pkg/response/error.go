package response

import (
	"Chirp/pkg/apperr"
	"Chirp/pkg/log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse 统一错误结构
type ErrorResponse struct {
	Error string `json:"error"`
}

// Success 200 返回对象或数组本身，不再额外包一层
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func Fail(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, ErrorResponse{Error: msg})
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, ErrorResponse{Error: msg})
}

// WriteError 按错误分类写响应，非业务错误记录完整日志后返回 500
func WriteError(c *gin.Context, err error) {
	if e, ok := apperr.From(err); ok && e.Kind != apperr.Store {
		Fail(c, e.StatusCode(), e.Message)
		return
	}
	log.L.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(RequestIDKey)),
		zap.Error(err),
	)
	msg := err.Error()
	if e, ok := apperr.From(err); ok {
		msg = e.Message
	}
	Fail(c, http.StatusInternalServerError, msg)
}

// ErrorMiddleware 兜底 panic 和 c.Errors
func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered", zap.Any("panic", r), zap.String("path", c.Request.URL.Path))
				Abort(c, http.StatusInternalServerError, "internal server error")
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			WriteError(c, c.Errors.Last().Err)
			c.Abort()
		}
	}
}

// RequestIDKey gin.Context 中保存请求 id 的键
const RequestIDKey = "request_id"
