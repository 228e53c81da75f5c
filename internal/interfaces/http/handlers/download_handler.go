package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/easayliu/yadisk-relay/internal/application/contracts"
	serviceerrors "github.com/easayliu/yadisk-relay/internal/shared/errors"
)

// DownloadHandler 文件中转处理器
type DownloadHandler struct {
	downloadService contracts.DownloadService
}

// NewDownloadHandler 创建中转处理器
func NewDownloadHandler(downloadService contracts.DownloadService) *DownloadHandler {
	return &DownloadHandler{
		downloadService: downloadService,
	}
}

// DownloadFile 单文件中转
// url 作为基础地址，其余查询参数(含filename)合并进上游地址
func (h *DownloadHandler) DownloadFile(c *gin.Context) {
	req, err := downloadRequestFromQuery(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	payload, err := h.downloadService.FetchFile(c.Request.Context(), req)
	if err != nil {
		reportError(c, err, MsgDownloadFailed)
		return
	}
	defer payload.Body.Close()

	c.DataFromReader(http.StatusOK, payload.ContentLength, payload.ContentType, payload.Body, map[string]string{
		"Content-Disposition": attachment(payload.Filename),
	})
}

// DownloadMultipleFiles 表单提交：打包下载选中的文件
// file_names 可选，给出时必须与 file_urls 一一对应
func (h *DownloadHandler) DownloadMultipleFiles(c *gin.Context) {
	urls := c.PostFormArray("file_urls")
	names := c.PostFormArray("file_names")
	if len(urls) == 0 || (len(names) > 0 && len(names) != len(urls)) {
		badRequest(c, nil)
		return
	}

	req := contracts.ArchiveRequest{Items: make([]contracts.ArchiveItem, len(urls))}
	for i, u := range urls {
		req.Items[i].URL = u
		if len(names) > 0 {
			req.Items[i].Filename = names[i]
		}
	}

	h.sendArchive(c, req)
}

// ArchiveFiles JSON接口：按显式的 url/filename 打包下载
// @Summary 打包下载
// @Description 依次拉取所有条目并返回 files.zip，任一条目失败则整体失败
// @Tags 文件中转
// @Accept json
// @Produce application/zip
// @Param request body contracts.ArchiveRequest true "打包条目"
// @Success 200 {file} file "files.zip"
// @Failure 400 {object} utils.Response "请求参数错误或上游失败"
// @Router /files/archive [post]
func (h *DownloadHandler) ArchiveFiles(c *gin.Context) {
	var req contracts.ArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	h.sendArchive(c, req)
}

func (h *DownloadHandler) sendArchive(c *gin.Context, req contracts.ArchiveRequest) {
	archive, err := h.downloadService.BuildArchive(c.Request.Context(), req)
	if err != nil {
		reportError(c, err, MsgArchiveFailed)
		return
	}

	c.Header("Content-Disposition", attachment(archive.Filename))
	c.Data(http.StatusOK, archive.ContentType, archive.Data)
}

// downloadRequestFromQuery 把查询串转换为 DownloadRequest；同名参数取第一个值
func downloadRequestFromQuery(c *gin.Context) (contracts.DownloadRequest, error) {
	query := c.Request.URL.Query()

	req := contracts.DownloadRequest{
		BaseURL:  query.Get("url"),
		Filename: query.Get("filename"),
		Params:   make(map[string]string, len(query)),
	}
	if req.BaseURL == "" || req.Filename == "" {
		return req, serviceerrors.NewServiceError(serviceerrors.ErrorCodeInvalidRequest, "url and filename are required")
	}

	for key, values := range query {
		if key == "url" || len(values) == 0 {
			continue
		}
		req.Params[key] = values[0]
	}
	return req, nil
}
