package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	serviceerrors "github.com/easayliu/yadisk-relay/internal/shared/errors"
	"github.com/easayliu/yadisk-relay/pkg/logger"
	"github.com/easayliu/yadisk-relay/pkg/utils"
)

const (
	// errorFormatKey 错误输出格式，默认纯文本
	errorFormatKey  = "error_format"
	errorFormatJSON = "json"

	// InternalErrorMessage 未知错误的对外文案
	InternalErrorMessage = "Internal server error"
)

// JSONErrors 该路由组的错误以JSON输出
func JSONErrors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(errorFormatKey, errorFormatJSON)
		c.Next()
	}
}

// ErrorHandlerMiddleware 统一错误处理中间件
// handler通过 c.Error(err).SetMeta(文案) 上报错误，这里按错误码决定状态码
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		code := serviceerrors.CodeOf(last.Err)
		status := serviceerrors.HTTPStatus(code)

		message, _ := last.Meta.(string)
		if message == "" || status >= http.StatusInternalServerError {
			message = InternalErrorMessage
		}

		logger.Warn("Request failed",
			"path", c.Request.URL.Path,
			"code", code,
			"status", status,
			"request_id", c.GetString(RequestIDKey),
			"error", last.Err)

		if c.GetString(errorFormatKey) == errorFormatJSON {
			utils.ErrorWithStatus(c, status, status, message)
			return
		}
		utils.PlainError(c, status, message)
	}
}

// RecoverMiddleware 恢复中间件 - 捕获panic并转换为500错误
func RecoverMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered",
					"error", fmt.Sprintf("%v", err),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"request_id", c.GetString(RequestIDKey),
					"stack", string(debug.Stack()))

				if c.GetString(errorFormatKey) == errorFormatJSON {
					utils.ErrorWithStatus(c, http.StatusInternalServerError, http.StatusInternalServerError, InternalErrorMessage)
				} else {
					utils.PlainError(c, http.StatusInternalServerError, InternalErrorMessage)
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
