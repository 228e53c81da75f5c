package handlers

import (
	"mime"

	"github.com/gin-gonic/gin"

	serviceerrors "github.com/easayliu/yadisk-relay/internal/shared/errors"
)

// 对外错误文案
const (
	MsgListFailed     = "Ошибка при получении файлов"
	MsgDownloadFailed = "Ошибка при загрузке файла"
	MsgArchiveFailed  = "Ошибка при загрузке файлов"
	MsgBadRequest     = "Некорректный запрос"
)

// reportError 交给错误中间件输出；参数错误统一使用MsgBadRequest
func reportError(c *gin.Context, err error, message string) {
	if serviceerrors.IsCode(err, serviceerrors.ErrorCodeInvalidRequest) {
		message = MsgBadRequest
	}
	_ = c.Error(err).SetMeta(message)
	c.Abort()
}

// badRequest 绑定失败等请求参数错误
func badRequest(c *gin.Context, cause error) {
	reportError(c, serviceerrors.NewServiceErrorWithCause(serviceerrors.ErrorCodeInvalidRequest, "invalid request", cause), MsgBadRequest)
}

// attachment Content-Disposition，非ASCII文件名按RFC 2231编码
func attachment(filename string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return "attachment"
}
