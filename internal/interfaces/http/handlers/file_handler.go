package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/easayliu/yadisk-relay/internal/application/contracts"
	"github.com/easayliu/yadisk-relay/internal/domain/entities"
	"github.com/easayliu/yadisk-relay/internal/domain/services/file"
	"github.com/easayliu/yadisk-relay/web"
)

// FileTypeOption 页面上的类型选项
type FileTypeOption struct {
	Value string
	Label string
}

// DefaultFileTypes 页面默认提供的类型
var DefaultFileTypes = []FileTypeOption{
	{Value: file.FileTypeAll, Label: "Все файлы"},
	{Value: "image", Label: "Изображения"},
	{Value: "video", Label: "Видео"},
	{Value: "audio", Label: "Аудио"},
	{Value: "text", Label: "Текст"},
	{Value: "application", Label: "Документы и архивы"},
}

// IndexPage 列表页数据
type IndexPage struct {
	PublicKey    string
	SelectedType string
	FileTypes    []FileTypeOption
	Files        []entities.Resource
	TypeCounts   map[string]int
	Listed       bool
	Cached       bool
}

// FileHandler 列表页处理器
type FileHandler struct {
	fileService contracts.FileService
}

// NewFileHandler 创建列表页处理器
func NewFileHandler(fileService contracts.FileService) *FileHandler {
	return &FileHandler{
		fileService: fileService,
	}
}

// Index 空白列表页
func (h *FileHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, web.IndexTemplate, IndexPage{
		SelectedType: file.FileTypeAll,
		FileTypes:    DefaultFileTypes,
	})
}

// ListFiles 表单提交：列出公开文件夹并按类型过滤
func (h *FileHandler) ListFiles(c *gin.Context) {
	var req contracts.ListFilesRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.fileService.ListFiles(c.Request.Context(), req)
	if err != nil {
		reportError(c, err, MsgListFailed)
		return
	}

	c.HTML(http.StatusOK, web.IndexTemplate, IndexPage{
		PublicKey:    req.PublicKey,
		SelectedType: resp.SelectedType,
		FileTypes:    fileTypeOptions(resp.SelectedType),
		Files:        resp.Files,
		TypeCounts:   resp.TypeCounts,
		Listed:       true,
		Cached:       resp.Cached,
	})
}

// fileTypeOptions 选中值不在默认列表中时追加，保证回显
func fileTypeOptions(selected string) []FileTypeOption {
	for _, opt := range DefaultFileTypes {
		if opt.Value == selected {
			return DefaultFileTypes
		}
	}
	options := make([]FileTypeOption, 0, len(DefaultFileTypes)+1)
	options = append(options, DefaultFileTypes...)
	return append(options, FileTypeOption{Value: selected, Label: selected})
}
