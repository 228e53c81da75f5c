package container

import (
	"net/http"
	"sync"

	"github.com/easayliu/yadisk-relay/internal/application/cache"
	"github.com/easayliu/yadisk-relay/internal/application/contracts"
	"github.com/easayliu/yadisk-relay/internal/application/services"
	"github.com/easayliu/yadisk-relay/internal/infrastructure/config"
	"github.com/easayliu/yadisk-relay/internal/infrastructure/ratelimit"
	"github.com/easayliu/yadisk-relay/internal/infrastructure/yandex"
	"github.com/easayliu/yadisk-relay/pkg/httpclient"
	"github.com/easayliu/yadisk-relay/pkg/logger"
)

// ServiceContainer 服务容器 - 实现依赖注入
type ServiceContainer struct {
	config *config.Config

	httpClient     *http.Client
	downloadClient *http.Client
	rateLimiter    *ratelimit.RateLimiter
	resultCache    *cache.ResultCache
	yandexClient   *yandex.Client

	fileService     contracts.FileService
	downloadService contracts.DownloadService

	once sync.Once
}

// NewServiceContainer 创建服务容器
func NewServiceContainer(cfg *config.Config) *ServiceContainer {
	return &ServiceContainer{
		config: cfg,
	}
}

// GetFileService 获取列表服务实例
func (c *ServiceContainer) GetFileService() contracts.FileService {
	c.once.Do(c.initServices)
	return c.fileService
}

// GetDownloadService 获取中转服务实例
func (c *ServiceContainer) GetDownloadService() contracts.DownloadService {
	c.once.Do(c.initServices)
	return c.downloadService
}

// GetResultCache 获取列表缓存
func (c *ServiceContainer) GetResultCache() *cache.ResultCache {
	c.once.Do(c.initServices)
	return c.resultCache
}

// initServices 初始化所有服务（单例模式）
func (c *ServiceContainer) initServices() {
	logger.Info("Initializing service container")

	// 1. 基础设施：限速器由网关和中转共用
	// 列表请求有总超时；文件中转只限制响应头等待时间，避免截断大文件
	c.httpClient = httpclient.NewClient(c.config.Yandex.Timeout, c.config.Yandex.UserAgent)
	c.downloadClient = httpclient.NewStreamingClient(c.config.Yandex.Timeout, c.config.Yandex.UserAgent)
	c.rateLimiter = ratelimit.NewRateLimiter(c.config.Yandex.QPS)
	c.yandexClient = yandex.NewClient(c.config.Yandex, c.httpClient, c.rateLimiter)
	c.resultCache = cache.NewResultCache(c.config.Cache.TTL, c.config.Cache.Enabled)

	// 2. 应用层服务
	c.fileService = services.NewAppFileService(c.yandexClient, c.resultCache, c.config.Yandex.Limit)
	c.downloadService = services.NewAppDownloadService(c.downloadClient, c.rateLimiter)

	logger.Info("Service container initialized successfully",
		"qps", c.rateLimiter.QPS(),
		"cache_enabled", c.resultCache.Enabled(),
		"cache_ttl", c.resultCache.TTL())
}

// Shutdown 关闭服务容器
func (c *ServiceContainer) Shutdown() {
	logger.Info("Shutting down service container")

	c.resultCache.Close()
	for _, client := range []*http.Client{c.httpClient, c.downloadClient} {
		if client != nil {
			client.CloseIdleConnections()
		}
	}

	logger.Info("Service container shutdown completed")
}
