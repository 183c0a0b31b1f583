// Package apperr 定义对外可见的错误类型，由全局错误中间件统一转换为响应体。
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrConflict 唯一约束冲突或版本冲突
var ErrConflict = errors.New("conflict")

// NotFoundError 实体不存在
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id: %d", e.Resource, e.ID)
}

// NotFound 构造 NotFoundError
func NotFound(resource string, id int) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// FieldError 单个字段的校验失败
type FieldError struct {
	Field  string
	Reason string
}

func (f FieldError) String() string {
	return f.Field + ": " + f.Reason
}

// ValidationError 请求校验失败
type ValidationError struct {
	Fields []FieldError
	// Cause 非字段级错误（如 JSON 解析失败）
	Cause error
}

func (e *ValidationError) Error() string {
	return "Validation failed"
}

// Details 拼接所有字段错误
func (e *ValidationError) Details() string {
	if len(e.Fields) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ""
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Invalid 单字段校验错误
func Invalid(field, reason string) error {
	return &ValidationError{Fields: []FieldError{{Field: field, Reason: reason}}}
}

// Malformed 包装无法解析的请求
func Malformed(err error) error {
	return &ValidationError{Cause: err}
}

// ConflictError 冲突，带可读消息
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// Conflict 构造 ConflictError
func Conflict(format string, args ...interface{}) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}
