package httpclient

import (
	"errors"
	"net"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/easayliu/yadisk-relay/pkg/logger"
)

// DefaultMaxLogLength 调试日志中请求/响应转储的最大长度
const DefaultMaxLogLength = 2048

// ErrNilRequest 请求为nil
var ErrNilRequest = errors.New("request is nil")

// LogTransport 记录出站请求与响应的RoundTripper，仅在debug级别生效
type LogTransport struct {
	next         http.RoundTripper
	maxLogLength int
}

// NewLogTransport 创建LogTransport，maxLogLength<=0时使用默认值
func NewLogTransport(next http.RoundTripper, maxLogLength int) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	if maxLogLength <= 0 {
		maxLogLength = DefaultMaxLogLength
	}
	return &LogTransport{next: next, maxLogLength: maxLogLength}
}

// RoundTrip 实现http.RoundTripper
func (t *LogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if !logger.IsDebugEnabled() {
		return t.next.RoundTrip(req)
	}

	requestDump := t.dumpRequest(req)
	start := time.Now()

	resp, err := t.next.RoundTrip(req)
	duration := time.Since(start)
	if err != nil {
		logger.Debug("Outbound request failed",
			"method", req.Method,
			"url", logger.SanitizeString(req.URL.String()),
			"duration", duration,
			"error", err)
		return nil, err
	}

	logger.Debug("Outbound request",
		"method", req.Method,
		"url", logger.SanitizeString(req.URL.String()),
		"status", resp.StatusCode,
		"duration", duration,
		"request", requestDump,
		"response", t.dumpResponse(resp))

	return resp, nil
}

func (t *LogTransport) dumpRequest(req *http.Request) string {
	dump, err := httputil.DumpRequestOut(req, false)
	if err != nil {
		return err.Error()
	}
	return t.truncate(logger.SanitizeString(string(dump)))
}

func (t *LogTransport) dumpResponse(resp *http.Response) string {
	// 只转储文本响应体，文件内容不进日志
	dump, err := httputil.DumpResponse(resp, isTextContentType(resp.Header.Get("Content-Type")))
	if err != nil {
		return err.Error()
	}
	return t.truncate(string(dump))
}

func (t *LogTransport) truncate(s string) string {
	if len(s) > t.maxLogLength {
		return s[:t.maxLogLength] + "... [truncated]"
	}
	return s
}

func isTextContentType(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.HasPrefix(ct, "text/") ||
		strings.Contains(ct, "json") ||
		strings.Contains(ct, "xml")
}

// UserAgentInjector 为缺少User-Agent的请求补充该请求头
type UserAgentInjector struct {
	next      http.RoundTripper
	userAgent string
}

// NewUserAgentInjector 创建UserAgentInjector
func NewUserAgentInjector(next http.RoundTripper, userAgent string) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &UserAgentInjector{next: next, userAgent: userAgent}
}

// RoundTrip 实现http.RoundTripper
func (t *UserAgentInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.userAgent != "" && req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.next.RoundTrip(req)
}

// NewClient 创建带日志与User-Agent注入的HTTP客户端
// timeout覆盖整个请求，包括读取响应体，只适合体积有限的接口响应
func NewClient(timeout time.Duration, userAgent string) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: NewUserAgentInjector(NewLogTransport(newTransport(0), DefaultMaxLogLength), userAgent),
	}
}

// NewStreamingClient 创建用于转发大文件的客户端
// 不设置总超时，只限制等待响应头的时间；读取响应体由请求context控制
func NewStreamingClient(headerTimeout time.Duration, userAgent string) *http.Client {
	return &http.Client{
		Transport: NewUserAgentInjector(NewLogTransport(newTransport(headerTimeout), DefaultMaxLogLength), userAgent),
	}
}

func newTransport(headerTimeout time.Duration) *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          50,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: time.Second,
		ResponseHeaderTimeout: headerTimeout,
	}
}
