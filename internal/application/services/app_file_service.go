package services

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/easayliu/yadisk-relay/internal/application/cache"
	"github.com/easayliu/yadisk-relay/internal/application/contracts"
	"github.com/easayliu/yadisk-relay/internal/domain/entities"
	"github.com/easayliu/yadisk-relay/internal/domain/services/file"
	"github.com/easayliu/yadisk-relay/internal/infrastructure/yandex"
	serviceerrors "github.com/easayliu/yadisk-relay/internal/shared/errors"
	"github.com/easayliu/yadisk-relay/pkg/logger"
)

//go:generate mockgen -destination=mocks/mock_resource_lister.go -package=mocks . ResourceLister

// ResourceLister 公开资源列表网关
type ResourceLister interface {
	ListPublicResources(ctx context.Context, publicKey string, opts yandex.ListOptions) ([]entities.Resource, error)
}

// AppFileService 应用层列表服务 - 负责拉取、过滤和缓存
type AppFileService struct {
	lister ResourceLister
	filter *file.FileFilter
	cache  *cache.ResultCache
	limit  int
	group  singleflight.Group
}

// NewAppFileService 创建列表服务；resultCache可以为nil
func NewAppFileService(lister ResourceLister, resultCache *cache.ResultCache, limit int) *AppFileService {
	return &AppFileService{
		lister: lister,
		filter: file.NewFileFilter(),
		cache:  resultCache,
		limit:  limit,
	}
}

// ListFiles 获取并过滤公开文件夹内容
// 相同参数在缓存有效期内只请求一次上游；失败结果不缓存
func (s *AppFileService) ListFiles(ctx context.Context, req contracts.ListFilesRequest) (*contracts.ListFilesResponse, error) {
	if req.PublicKey == "" {
		return nil, serviceerrors.NewServiceError(serviceerrors.ErrorCodeInvalidRequest, "public_key is required")
	}
	req.FileType = file.NormalizeFileType(req.FileType)
	key := cache.Key(req, s.limit)

	if cached, ok := s.cache.Get(key); ok {
		logger.Debug("Listing served from cache", "public_key", req.PublicKey, "file_type", req.FileType)
		cached.Cached = true
		return cached, nil
	}

	// 共享请求不随某个调用方取消；每个调用方只等待自己的ctx
	flight := s.group.DoChan(key, func() (interface{}, error) {
		// 等待期间可能已有其他请求写入
		if cached, ok := s.cache.Get(key); ok {
			cached.Cached = true
			return cached, nil
		}
		resp, err := s.fetch(context.WithoutCancel(ctx), req)
		if err != nil {
			return nil, err
		}
		s.cache.Set(key, resp)
		return resp, nil
	})

	var result singleflight.Result
	select {
	case <-ctx.Done():
		return nil, serviceerrors.NewRemoteFetchError(req.PublicKey, 0, ctx.Err())
	case result = <-flight:
	}
	if result.Err != nil {
		return nil, result.Err
	}

	resp := *result.Val.(*contracts.ListFilesResponse)
	if result.Shared {
		resp.Cached = true
	}
	return &resp, nil
}

func (s *AppFileService) fetch(ctx context.Context, req contracts.ListFilesRequest) (*contracts.ListFilesResponse, error) {
	resources, err := s.lister.ListPublicResources(ctx, req.PublicKey, yandex.ListOptions{
		Path:  req.Path,
		Limit: s.limit,
	})
	if err != nil {
		if serviceerrors.CodeOf(err) == serviceerrors.ErrorCodeInternalError {
			err = serviceerrors.NewRemoteFetchError(req.PublicKey, 0, err)
		}
		return nil, err
	}

	files := s.filter.FilterByMediaType(resources, req.FileType)
	if files == nil {
		files = []entities.Resource{}
	}

	logger.Info("Listed public folder",
		"public_key", req.PublicKey,
		"file_type", req.FileType,
		"total", len(resources),
		"matched", len(files))

	return &contracts.ListFilesResponse{
		Files:        files,
		Count:        len(files),
		SelectedType: req.FileType,
		TypeCounts:   s.filter.CountByMediaType(resources),
	}, nil
}
