package services

import (
	"regexp"
	"strings"

	"github.com/easayliu/yadisk-relay/internal/application/contracts"
	serviceerrors "github.com/easayliu/yadisk-relay/internal/shared/errors"
)

// 下载链接中文件名位于 filename 与 disposition 两个参数之间，匹配取最长
var archiveFilenamePattern = regexp.MustCompile(`&filename=(.*)&disposition=`)

// ExtractArchiveFilename 从下载链接中解析文件名并做百分号解码('+'保持不变)
func ExtractArchiveFilename(rawURL string) (string, error) {
	match := archiveFilenamePattern.FindStringSubmatch(rawURL)
	if match == nil || match[1] == "" {
		return "", serviceerrors.NewArchiveURLMalformedError(rawURL)
	}

	return unescapePercent(match[1]), nil
}

// unescapePercent 逐个解码%XX，非法转义原样保留；解码出的非法UTF-8替换为U+FFFD
func unescapePercent(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			buf = append(buf, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
			continue
		}
		buf = append(buf, s[i])
	}
	return strings.ToValidUTF8(string(buf), "\uFFFD")
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// ResolveArchiveFilename 显式文件名优先，否则从链接解析；名称原样写入zip
func ResolveArchiveFilename(item contracts.ArchiveItem) (string, error) {
	if item.Filename != "" {
		return item.Filename, nil
	}
	return ExtractArchiveFilename(item.URL)
}
