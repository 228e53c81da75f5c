package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode 业务错误码
type ErrorCode string

const (
	ErrorCodeInvalidRequest      ErrorCode = "INVALID_REQUEST"
	ErrorCodeRemoteFetchFailed   ErrorCode = "REMOTE_FETCH_FAILED"
	ErrorCodeArchiveURLMalformed ErrorCode = "ARCHIVE_URL_MALFORMED"
	ErrorCodeInternalError       ErrorCode = "INTERNAL_ERROR"
)

// ServiceError 业务错误
type ServiceError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Cause.Error()
	}
	return string(e.Code) + ": " + e.Message
}

// Unwrap 返回底层错误
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// NewServiceError 创建业务错误
func NewServiceError(code ErrorCode, message string) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
	}
}

// NewServiceErrorWithCause 创建带原因的业务错误
func NewServiceErrorWithCause(code ErrorCode, message string, cause error) *ServiceError {
	return &ServiceError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewRemoteFetchError 上游返回非200或请求本身失败; status为0表示没有拿到响应
func NewRemoteFetchError(url string, status int, cause error) *ServiceError {
	msg := fmt.Sprintf("remote fetch failed with status %d", status)
	if status == 0 {
		msg = "remote fetch failed"
	}
	return &ServiceError{
		Code:    ErrorCodeRemoteFetchFailed,
		Message: msg,
		Details: map[string]interface{}{
			"status": status,
			"url":    url,
		},
		Cause: cause,
	}
}

// NewArchiveURLMalformedError 无法从URL中解析出文件名
func NewArchiveURLMalformedError(url string) *ServiceError {
	return &ServiceError{
		Code:    ErrorCodeArchiveURLMalformed,
		Message: "cannot extract filename from archive url",
		Details: map[string]interface{}{
			"url": url,
		},
	}
}

// CodeOf 提取错误码,非ServiceError返回INTERNAL_ERROR
func CodeOf(err error) ErrorCode {
	var serviceErr *ServiceError
	if stderrors.As(err, &serviceErr) {
		return serviceErr.Code
	}
	return ErrorCodeInternalError
}

// IsCode 判断错误链中是否包含指定错误码
func IsCode(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}
	return CodeOf(err) == code
}

// HTTPStatus 将业务错误码映射到HTTP状态码
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrorCodeInvalidRequest, ErrorCodeRemoteFetchFailed, ErrorCodeArchiveURLMalformed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
