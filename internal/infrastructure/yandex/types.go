package yandex

import (
	"github.com/easayliu/yadisk-relay/internal/domain/entities"
)

// publicResourcesPath 公开资源元信息接口
const publicResourcesPath = "/v1/disk/public/resources"

// ListOptions 列表请求的可选参数
type ListOptions struct {
	// Path 公开文件夹内的子路径，空表示根目录
	Path string
	// Limit 返回条数，0表示使用上游默认值
	Limit int
}

// PublicResourceResponse 公开资源响应
// 条目按原始map解码，避免丢失上游新增字段
type PublicResourceResponse struct {
	PublicKey string `json:"public_key"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Path      string `json:"path"`
	Embedded  *struct {
		Items  []map[string]any `json:"items"`
		Limit  int              `json:"limit"`
		Offset int              `json:"offset"`
		Total  int              `json:"total"`
		Path   string           `json:"path"`
	} `json:"_embedded,omitempty"`
}

// toResources 转换为领域实体；没有_embedded时返回空列表
func (r *PublicResourceResponse) toResources() []entities.Resource {
	if r.Embedded == nil {
		return []entities.Resource{}
	}

	resources := make([]entities.Resource, 0, len(r.Embedded.Items))
	for _, item := range r.Embedded.Items {
		resources = append(resources, resourceFromItem(item))
	}
	return resources
}

func resourceFromItem(item map[string]any) entities.Resource {
	return entities.Resource{
		Name:      stringField(item, "name"),
		Type:      entities.ResourceType(stringField(item, "type")),
		Path:      stringField(item, "path"),
		MimeType:  stringField(item, "mime_type"),
		MediaType: stringField(item, "media_type"),
		Size:      int64Field(item, "size"),
		File:      stringField(item, "file"),
		Preview:   stringField(item, "preview"),
		Modified:  stringField(item, "modified"),
		Extra:     item,
	}
}

func stringField(item map[string]any, key string) string {
	if v, ok := item[key].(string); ok {
		return v
	}
	return ""
}

func int64Field(item map[string]any, key string) int64 {
	switch v := item[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	case interface{ Int64() (int64, error) }:
		n, _ := v.Int64()
		return n
	default:
		return 0
	}
}
