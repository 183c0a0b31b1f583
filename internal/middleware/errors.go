package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
	"github.com/user/cinema/internal/apperr"
	"github.com/user/cinema/internal/utils"
)

// ErrorHandler 统一把 c.Errors 中最后一个错误转换为 JSON 响应，
// handler 只调用 c.Error 并返回
func ErrorHandler(log hclog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, message, details := classify(err)
		if status == http.StatusInternalServerError {
			log.Error("未处理的错误", "error", err, "path", c.Request.URL.Path, "request_id", GetRequestID(c))
		}
		utils.Error(c, status, message, details)
	}
}

func classify(err error) (status int, message, details string) {
	var (
		notFound   *apperr.NotFoundError
		validation *apperr.ValidationError
		conflict   *apperr.ConflictError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, notFound.Error(), ""
	case errors.As(err, &validation):
		return http.StatusBadRequest, validation.Error(), validation.Details()
	case errors.As(err, &conflict):
		return http.StatusConflict, conflict.Error(), ""
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict, "Conflict", err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error", ""
	}
}
