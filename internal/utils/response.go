package utils

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 统一错误响应结构
type ErrorResponse struct {
	Code      int    `json:"code"`              // HTTP 状态码
	Message   string `json:"message"`           // 消息
	Status    string `json:"status"`            // 状态名，如 NOT_FOUND
	Timestamp string `json:"timestamp"`         // RFC 3339
	Details   string `json:"details,omitempty"` // 字段错误等补充信息
}

// StatusName 把状态码转换为 NOT_FOUND 这样的名称
func StatusName(code int) string {
	text := http.StatusText(code)
	if text == "" {
		return "UNKNOWN"
	}
	return strings.ToUpper(strings.NewReplacer(" ", "_", "-", "_", "'", "").Replace(text))
}

// Error 返回错误响应
func Error(c *gin.Context, code int, message, details string) {
	c.JSON(code, ErrorResponse{
		Code:      code,
		Message:   message,
		Status:    StatusName(code),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Details:   details,
	})
}

// Created 返回 201
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Success 返回 200
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// NoContent 返回 204
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
