package contracts

import (
	"context"

	"github.com/easayliu/yadisk-relay/internal/domain/entities"
)

// ListFilesRequest 公开文件夹列表请求
type ListFilesRequest struct {
	PublicKey string `json:"public_key" form:"public_key" binding:"required"`
	FileType  string `json:"file_type,omitempty" form:"file_type"`
	Path      string `json:"path,omitempty" form:"path"`
}

// ListFilesResponse 过滤后的列表
type ListFilesResponse struct {
	Files        []entities.Resource `json:"files"`
	Count        int                 `json:"count"`
	SelectedType string              `json:"selected_type"`
	TypeCounts   map[string]int      `json:"type_counts"`
	Cached       bool                `json:"cached"`
}

//go:generate mockgen -destination=mocks/mock_services.go -package=mocks . FileService,DownloadService

// FileService 列表服务接口
type FileService interface {
	// ListFiles 获取并按类型过滤公开文件夹内容，结果按请求参数缓存
	ListFiles(ctx context.Context, req ListFilesRequest) (*ListFilesResponse, error)
}
