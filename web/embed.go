package web

import (
	"embed"
	"html/template"
	"net/url"

	"github.com/dustin/go-humanize"
)

// IndexTemplate 列表页模板名
const IndexTemplate = "index.html"

//go:embed templates/*.html
var templateFS embed.FS

// FuncMap 模板函数
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"bytes": func(n int64) string {
			if n < 0 {
				n = 0
			}
			return humanize.Bytes(uint64(n))
		},
		"count": func(n int) string {
			return humanize.Comma(int64(n))
		},
		"downloadLink": func(fileURL, name string) string {
			q := url.Values{}
			q.Set("url", fileURL)
			q.Set("filename", name)
			return "/download_file?" + q.Encode()
		},
	}
}

// ParseTemplates 解析内嵌模板
func ParseTemplates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}
