package file

import (
	"strings"

	"github.com/easayliu/yadisk-relay/internal/domain/entities"
)

// FileTypeAll 不过滤的哨兵值
const FileTypeAll = "all"

// FileFilter 文件过滤器 - 领域服务
type FileFilter struct{}

// NewFileFilter 创建文件过滤器
func NewFileFilter() *FileFilter {
	return &FileFilter{}
}

// NormalizeFileType 空值视为all，其余原样保留(区分大小写)
func NormalizeFileType(fileType string) string {
	if fileType == "" {
		return FileTypeAll
	}
	return fileType
}

// FilterByMediaType 按mime_type前缀过滤
// fileType为all时原样返回；没有匹配项时返回空切片而不是nil
func (f *FileFilter) FilterByMediaType(resources []entities.Resource, fileType string) []entities.Resource {
	if fileType == FileTypeAll {
		return resources
	}

	filtered := make([]entities.Resource, 0, len(resources))
	for _, r := range resources {
		if strings.HasPrefix(r.MimeType, fileType) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// CountByMediaType 按mime_type主类型(image、video...)统计，用于页面上的类型选项
func (f *FileFilter) CountByMediaType(resources []entities.Resource) map[string]int {
	counts := make(map[string]int)
	for _, r := range resources {
		if r.MimeType == "" {
			continue
		}
		major, _, _ := strings.Cut(r.MimeType, "/")
		counts[major]++
	}
	return counts
}
