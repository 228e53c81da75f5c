package contracts

import (
	"context"
	"io"
	"net/url"
	"strings"

	serviceerrors "github.com/easayliu/yadisk-relay/internal/shared/errors"
)

// ArchiveFilename 打包下载的文件名
const ArchiveFilename = "files.zip"

// DownloadRequest 单文件中转请求
// 最终地址 = BaseURL 合并 Params 后重新编码的查询串，与参数顺序无关
type DownloadRequest struct {
	BaseURL  string            `json:"url" binding:"required"`
	Params   map[string]string `json:"params,omitempty"`
	Filename string            `json:"filename" binding:"required"`
}

// BuildURL 构建上游地址；只接受http/https绝对地址
func (r DownloadRequest) BuildURL() (string, error) {
	u, err := parseRemoteURL(r.BaseURL)
	if err != nil {
		return "", err
	}
	if len(r.Params) == 0 {
		return u.String(), nil
	}

	query := u.Query()
	for key, value := range r.Params {
		query.Set(key, value)
	}
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// FilePayload 中转的单个文件，调用方负责关闭Body
type FilePayload struct {
	Filename      string
	ContentType   string
	ContentLength int64
	Body          io.ReadCloser
}

// ArchiveItem 打包条目；Filename为空时从URL中解析
type ArchiveItem struct {
	URL      string `json:"url" binding:"required"`
	Filename string `json:"filename,omitempty"`
}

// ArchiveRequest 打包请求，条目按给定顺序写入
type ArchiveRequest struct {
	Items []ArchiveItem `json:"items" binding:"required,min=1,dive"`
}

// ArchivePayload 内存中的zip
type ArchivePayload struct {
	Filename    string
	ContentType string
	Data        []byte
	Entries     []string
}

// DownloadService 中转服务接口
type DownloadService interface {
	// FetchFile 拉取单个文件并原样返回
	FetchFile(ctx context.Context, req DownloadRequest) (*FilePayload, error)
	// BuildArchive 依次拉取所有条目并打包，任一失败则整体失败
	BuildArchive(ctx context.Context, req ArchiveRequest) (*ArchivePayload, error)
}

func parseRemoteURL(raw string) (*url.URL, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, serviceerrors.NewServiceError(serviceerrors.ErrorCodeInvalidRequest, "download url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, serviceerrors.NewServiceErrorWithCause(serviceerrors.ErrorCodeInvalidRequest, "download url is malformed", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, serviceerrors.NewServiceError(serviceerrors.ErrorCodeInvalidRequest, "download url must be an absolute http(s) url")
	}
	return u, nil
}
