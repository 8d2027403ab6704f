// Package apperr 定义业务错误分类，handler 层据此决定 HTTP 状态码。
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	// Store 存储连接或未预期的失败
	Store Kind = iota
	// Validation 缺失或格式错误的输入
	Validation
	// Conflict 唯一性冲突或关系状态冲突
	Conflict
	// Auth 凭证错误
	Auth
	// Forbidden 已识别身份但无权操作
	Forbidden
	// NotFound 资源不存在
	NotFound
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Conflict:
		return "conflict"
	case Auth:
		return "auth"
	case Forbidden:
		return "forbidden"
	case NotFound:
		return "not_found"
	default:
		return "store"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode 冲突错误沿用 400，与旧客户端保持一致
func (e *Error) StatusCode() int {
	switch e.Kind {
	case Validation, Conflict:
		return http.StatusBadRequest
	case Auth:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NewValidation(message string) *Error {
	return New(Validation, message, nil)
}

func NewConflict(message string) *Error {
	return New(Conflict, message, nil)
}

func NewAuth(message string) *Error {
	return New(Auth, message, nil)
}

func NewForbidden(message string) *Error {
	return New(Forbidden, message, nil)
}

func NewNotFound(message string) *Error {
	return New(NotFound, message, nil)
}

// NewStore 包装底层存储错误，Message 保留原始信息
func NewStore(err error) *Error {
	return New(Store, err.Error(), err)
}

// From 取出错误链上的 *Error
func From(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func KindOf(err error) (Kind, bool) {
	e, ok := From(err)
	if !ok {
		return Store, false
	}
	return e.Kind, true
}

func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
