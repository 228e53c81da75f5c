package yandex

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/easayliu/yadisk-relay/internal/domain/entities"
	"github.com/easayliu/yadisk-relay/internal/infrastructure/config"
	"github.com/easayliu/yadisk-relay/internal/infrastructure/ratelimit"
	serviceerrors "github.com/easayliu/yadisk-relay/internal/shared/errors"
	"github.com/easayliu/yadisk-relay/pkg/httpclient"
	"github.com/easayliu/yadisk-relay/pkg/logger"
)

// Client Yandex.Disk REST API客户端，只读取公开资源
type Client struct {
	baseURL     string
	token       string
	limit       int
	httpClient  *http.Client
	rateLimiter *ratelimit.RateLimiter
}

// NewClient 创建客户端
func NewClient(cfg config.YandexConfig, httpClient *http.Client, limiter *ratelimit.RateLimiter) *Client {
	if httpClient == nil {
		httpClient = httpclient.NewClient(cfg.Timeout, cfg.UserAgent)
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		token:       cfg.Token,
		limit:       cfg.Limit,
		httpClient:  httpClient,
		rateLimiter: limiter,
	}
}

// PublicResourcesURL 构建公开资源请求地址
func (c *Client) PublicResourcesURL(publicKey string, opts ListOptions) string {
	query := url.Values{}
	query.Set("public_key", publicKey)
	if opts.Path != "" {
		query.Set("path", opts.Path)
	}
	limit := opts.Limit
	if limit == 0 {
		limit = c.limit
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	return c.baseURL + publicResourcesPath + "?" + query.Encode()
}

// ListPublicResources 获取公开文件夹的条目列表
// 上游非200时返回REMOTE_FETCH_FAILED，不重试
func (c *Client) ListPublicResources(ctx context.Context, publicKey string, opts ListOptions) ([]entities.Resource, error) {
	endpoint := c.PublicResourcesURL(publicKey, opts)

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, serviceerrors.NewRemoteFetchError(endpoint, 0, err)
	}

	reqOpts := httpclient.DefaultOptions().
		WithContext(ctx).
		WithClient(c.httpClient)
	if c.token != "" {
		reqOpts = reqOpts.WithHeader("Authorization", "OAuth "+c.token)
	}

	var resp PublicResourceResponse
	if err := httpclient.GetJSON(endpoint, &resp, reqOpts); err != nil {
		status := 0
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) {
			status = statusErr.StatusCode
		}
		logger.Warn("Failed to list public resources",
			"public_key", publicKey,
			"status", status,
			"error", err)
		return nil, serviceerrors.NewRemoteFetchError(endpoint, status, err)
	}

	resources := resp.toResources()
	logger.Debug("Listed public resources",
		"public_key", publicKey,
		"path", opts.Path,
		"count", len(resources))

	return resources, nil
}
