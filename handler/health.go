package handler

import (
	"Chirp/dao"
	"Chirp/pkg/context"
	"Chirp/pkg/log"
	"Chirp/pkg/response"
	"Chirp/types"
	stdctx "context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Health struct {
	Backend dao.Backend
}

func (h *Health) RegisterRouter(r gin.IRouter) {
	r.GET("/health", context.Wrap(h.Check))
}

// Check 探测存储连接
func (h *Health) Check(c *gin.Context) error {
	ctx, cancel := stdctx.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.Backend.Ping(ctx); err != nil {
		log.L.Error("health check failed", zap.String("driver", h.Backend.Driver()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.HealthResponse{Status: "error", Error: err.Error()})
		return nil
	}
	response.Success(c, types.HealthResponse{Status: "ok", Store: h.Backend.Driver()})
	return nil
}
