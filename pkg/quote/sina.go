package quote

import (
	"net/url"
	"strings"
)

// 新浪搜索建议格式: var suggestvalue="<;分隔的条目>";
// 每个条目以逗号分隔: 0 关键字, 2 纯代码, 3 带前缀代码, 4 名称（可选，通常更准确）
const (
	SuggestionMinFields = 4

	suggestFieldKey      = 0
	suggestFieldPureCode = 2
	suggestFieldCode     = 3
	suggestFieldName     = 4

	suggestOpen  = `var suggestvalue="`
	suggestClose = `";`
)

// ParseSuggestions 解析新浪搜索建议，字段不足的条目单独跳过
func ParseSuggestions(data string) []Suggestion {
	results := []Suggestion{}

	start := strings.Index(data, suggestOpen)
	if start < 0 {
		return results
	}
	rest := data[start+len(suggestOpen):]

	end := strings.LastIndex(rest, suggestClose)
	if end <= 0 {
		return results
	}

	for _, item := range strings.Split(rest[:end], ";") {
		parts := strings.Split(item, ",")
		if len(parts) < SuggestionMinFields {
			continue
		}

		name := parts[suggestFieldKey]
		if len(parts) > suggestFieldName {
			if n := strings.TrimSpace(parts[suggestFieldName]); n != "" {
				name = n
			}
		}

		results = append(results, Suggestion{
			Name:     name,
			PureCode: parts[suggestFieldPureCode],
			Code:     parts[suggestFieldCode],
		})
	}

	return results
}

// SuggestURL 构建搜索建议请求地址
func SuggestURL(base, key string) string {
	return base + url.QueryEscape(key)
}
