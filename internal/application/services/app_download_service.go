package services

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/easayliu/yadisk-relay/internal/application/contracts"
	"github.com/easayliu/yadisk-relay/internal/infrastructure/ratelimit"
	serviceerrors "github.com/easayliu/yadisk-relay/internal/shared/errors"
	"github.com/easayliu/yadisk-relay/pkg/httpclient"
	"github.com/easayliu/yadisk-relay/pkg/logger"
)

const defaultContentType = "application/octet-stream"

// AppDownloadService 应用层中转服务 - 单文件透传与打包下载
type AppDownloadService struct {
	httpClient  *http.Client
	rateLimiter *ratelimit.RateLimiter
}

// NewAppDownloadService 创建中转服务
func NewAppDownloadService(httpClient *http.Client, limiter *ratelimit.RateLimiter) *AppDownloadService {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &AppDownloadService{
		httpClient:  httpClient,
		rateLimiter: limiter,
	}
}

// FetchFile 拉取单个文件，Body未读取，由调用方关闭
func (s *AppDownloadService) FetchFile(ctx context.Context, req contracts.DownloadRequest) (*contracts.FilePayload, error) {
	if req.Filename == "" {
		return nil, serviceerrors.NewServiceError(serviceerrors.ErrorCodeInvalidRequest, "filename is required")
	}
	target, err := req.BuildURL()
	if err != nil {
		return nil, err
	}

	resp, err := s.open(ctx, target)
	if err != nil {
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	logger.Info("Relaying file",
		"filename", req.Filename,
		"content_type", contentType,
		"size", humanizeLength(resp.ContentLength))

	return &contracts.FilePayload{
		Filename:      req.Filename,
		ContentType:   contentType,
		ContentLength: resp.ContentLength,
		Body:          resp.Body,
	}, nil
}

// BuildArchive 按顺序拉取并写入zip，任一条目失败即整体失败
// 所有文件名在第一次请求前解析完毕
func (s *AppDownloadService) BuildArchive(ctx context.Context, req contracts.ArchiveRequest) (*contracts.ArchivePayload, error) {
	if len(req.Items) == 0 {
		return nil, serviceerrors.NewServiceError(serviceerrors.ErrorCodeInvalidRequest, "no files to archive")
	}

	targets := make([]string, len(req.Items))
	names := make([]string, len(req.Items))
	for i, item := range req.Items {
		target, err := contracts.DownloadRequest{BaseURL: item.URL}.BuildURL()
		if err != nil {
			return nil, err
		}
		name, err := ResolveArchiveFilename(item)
		if err != nil {
			return nil, err
		}
		targets[i] = target
		names[i] = name
	}

	start := time.Now()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for i, target := range targets {
		written, err := s.writeEntry(ctx, zw, names[i], target)
		if err != nil {
			logger.Warn("Archive aborted",
				"entry", names[i],
				"index", i,
				"total", len(targets),
				"error", err)
			return nil, err
		}
		logger.Debug("Archived entry", "entry", names[i], "size", humanize.Bytes(uint64(written)))
	}

	if err := zw.Close(); err != nil {
		return nil, serviceerrors.NewServiceErrorWithCause(serviceerrors.ErrorCodeInternalError, "failed to finalize archive", err)
	}

	logger.Info("Archive built",
		"entries", len(names),
		"size", humanize.Bytes(uint64(buf.Len())),
		"elapsed", time.Since(start).Round(time.Millisecond))

	return &contracts.ArchivePayload{
		Filename:    contracts.ArchiveFilename,
		ContentType: "application/zip",
		Data:        buf.Bytes(),
		Entries:     names,
	}, nil
}

func (s *AppDownloadService) writeEntry(ctx context.Context, zw *zip.Writer, name, target string) (int64, error) {
	resp, err := s.open(ctx, target)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:     name,
		Method:   zip.Deflate,
		Modified: time.Now(),
	})
	if err != nil {
		return 0, serviceerrors.NewServiceErrorWithCause(serviceerrors.ErrorCodeInternalError, "failed to create archive entry", err)
	}

	written, err := io.Copy(w, resp.Body)
	if err != nil {
		return written, serviceerrors.NewRemoteFetchError(target, http.StatusOK, fmt.Errorf("failed to read body: %w", err))
	}
	return written, nil
}

// open 发起出站GET；非200或传输失败统一为REMOTE_FETCH_FAILED
func (s *AppDownloadService) open(ctx context.Context, target string) (*http.Response, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return nil, serviceerrors.NewRemoteFetchError(target, 0, err)
	}

	resp, err := httpclient.Open(target, httpclient.DefaultOptions().
		WithContext(ctx).
		WithClient(s.httpClient))
	if err != nil {
		status := 0
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) {
			status = statusErr.StatusCode
		}
		logger.Warn("Remote fetch failed", "url", target, "status", status, "error", err)
		return nil, serviceerrors.NewRemoteFetchError(target, status, err)
	}
	return resp, nil
}

func humanizeLength(n int64) string {
	if n < 0 {
		return "unknown"
	}
	return humanize.Bytes(uint64(n))
}
