package logger

import (
	"regexp"
	"strings"
)

// sensitiveKeys 需要脱敏的字段关键字
var sensitiveKeys = []string{
	"token",
	"password",
	"passwd",
	"secret",
	"api_key",
	"apikey",
	"api-key",
	"authorization",
	"oauth",
}

// sensitivePatterns 字符串内容中可能出现的凭据
var sensitivePatterns = []struct {
	re          *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\b(OAuth|Bearer)\s+[A-Za-z0-9\-._~+/=]+`), "${1} ***"},
	{regexp.MustCompile(`(?i)(token|api[_-]?key|password|passwd)([:=]\s*)[^\s&,;"']+`), "${1}${2}***"},
}

// MaskToken 脱敏token字符串
// 规则:
//   - 空字符串返回空
//   - 长度<8: 返回 "***"
//   - 长度>=8: 保留前4后4,中间用星号替换
func MaskToken(token string) string {
	if token == "" {
		return ""
	}

	length := len(token)
	if length < 8 {
		return "***"
	}

	return token[:4] + strings.Repeat("*", length-8) + token[length-4:]
}

// IsSensitiveKey 判断键名是否为敏感字段
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, sk := range sensitiveKeys {
		if strings.Contains(keyLower, sk) {
			return true
		}
	}
	return false
}

// SanitizeValue 根据键名判断是否需要脱敏
func SanitizeValue(key string, value any) any {
	if !IsSensitiveKey(key) {
		return value
	}
	if strVal, ok := value.(string); ok {
		// "OAuth xxx" 形式只保留scheme
		if scheme, tok, found := strings.Cut(strVal, " "); found {
			return scheme + " " + MaskToken(tok)
		}
		return MaskToken(strVal)
	}
	return "***MASKED***"
}

// SanitizeArgs 批量脱敏键值对日志参数: key1, value1, key2, value2, ...
func SanitizeArgs(args ...any) []any {
	if len(args) == 0 {
		return args
	}

	result := make([]any, len(args))
	for i := 0; i < len(args); i += 2 {
		result[i] = args[i]
		if i+1 >= len(args) {
			break
		}
		if key, ok := args[i].(string); ok {
			result[i+1] = SanitizeValue(key, args[i+1])
		} else {
			result[i+1] = args[i+1]
		}
	}

	return result
}

// SanitizeString 脱敏字符串中可能包含的凭据,如请求头转储或URL
func SanitizeString(s string) string {
	result := s
	for _, p := range sensitivePatterns {
		result = p.re.ReplaceAllString(result, p.replacement)
	}
	return result
}
