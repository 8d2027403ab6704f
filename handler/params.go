package handler

import (
	"Chirp/pkg/apperr"
	"Chirp/pkg/util"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// paramID 解析路径中的 id，非法时返回 400
func paramID(c *gin.Context, name, msg string) (int64, error) {
	id, err := util.ParseID(c.Param(name))
	if err != nil {
		return 0, apperr.NewValidation(msg)
	}
	return id, nil
}

// callerID 查询参数 userId，可选
func callerID(c *gin.Context) (int64, error) {
	id, err := util.ParseOptionalID(c.Query("userId"))
	if err != nil {
		return 0, apperr.NewValidation("invalid user id")
	}
	return id, nil
}

// bindJSON 空 body 视为空对象，缺字段交给业务校验
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return apperr.New(apperr.Validation, "invalid request body", err)
	}
	return nil
}
