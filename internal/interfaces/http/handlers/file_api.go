package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/easayliu/yadisk-relay/internal/application/contracts"
	"github.com/easayliu/yadisk-relay/pkg/utils"
)

// FileAPIHandler 列表JSON接口
type FileAPIHandler struct {
	fileService contracts.FileService
}

// NewFileAPIHandler 创建JSON列表处理器
func NewFileAPIHandler(fileService contracts.FileService) *FileAPIHandler {
	return &FileAPIHandler{
		fileService: fileService,
	}
}

// ListFiles 获取公开文件夹内容
// @Summary 获取公开文件夹内容
// @Description 按 mime_type 前缀过滤公开文件夹的条目，相同参数在缓存有效期内不会重复请求上游
// @Tags 文件列表
// @Accept json
// @Produce json
// @Param request body contracts.ListFilesRequest true "列表参数"
// @Success 200 {object} utils.Response{data=contracts.ListFilesResponse} "过滤后的列表"
// @Failure 400 {object} utils.Response "请求参数错误或上游失败"
// @Router /files/list [post]
func (h *FileAPIHandler) ListFiles(c *gin.Context) {
	var req contracts.ListFilesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.fileService.ListFiles(c.Request.Context(), req)
	if err != nil {
		reportError(c, err, MsgListFailed)
		return
	}

	utils.Success(c, resp)
}
