package entities

// ResourceType 资源类型
type ResourceType string

const (
	ResourceTypeFile ResourceType = "file"
	ResourceTypeDir  ResourceType = "dir"
)

// Resource 公开资源中的一项(文件或目录)
// Extra保存上游返回的完整原始字段，页面与JSON接口只读取其中一部分
type Resource struct {
	Name      string         `json:"name"`
	Type      ResourceType   `json:"type"`
	Path      string         `json:"path,omitempty"`
	MimeType  string         `json:"mime_type,omitempty"`
	MediaType string         `json:"media_type,omitempty"`
	Size      int64          `json:"size,omitempty"`
	File      string         `json:"file,omitempty"`
	Preview   string         `json:"preview,omitempty"`
	Modified  string         `json:"modified,omitempty"`
	Extra     map[string]any `json:"-"`
}

// IsDir 是否为目录
func (r Resource) IsDir() bool {
	return r.Type == ResourceTypeDir
}
