package quote

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"stockbar/pkg/logger"
)

// 腾讯行情行格式: v_<code>="<~分隔的字段>";
// 只有 1/3/4/31/32 号字段有含义，字段数不足即视为截断
const (
	TencentMinFields = 33

	tencentFieldName          = 1
	tencentFieldPrice         = 3
	tencentFieldPrevClose     = 4
	tencentFieldChangeAmount  = 31
	tencentFieldChangePercent = 32

	tencentSeparator = "~"
)

// ParseAPILine 解析一行腾讯行情，格式错误或字段不足时返回 false
func ParseAPILine(line string) (Stock, bool) {
	stock, err := parseAPILine(line)
	if err != nil {
		return Stock{}, false
	}
	return stock, true
}

func parseAPILine(line string) (Stock, error) {
	start := strings.Index(line, "v_")
	if start < 0 {
		return Stock{}, fmt.Errorf("%w: missing v_ header", ErrMalformedLine)
	}
	record := line[start:]

	sep := strings.Index(record, `="`)
	if sep < 0 {
		return Stock{}, fmt.Errorf("%w: missing =\"", ErrMalformedLine)
	}
	end := strings.LastIndex(record, `"`)
	if end <= sep+1 {
		return Stock{}, fmt.Errorf("%w: unterminated payload", ErrMalformedLine)
	}

	header := record[:sep]
	payload := record[sep+2 : end]

	fields := strings.Split(payload, tencentSeparator)
	if len(fields) < TencentMinFields {
		return Stock{}, fmt.Errorf("%w: got %d, want %d", ErrTooFewFields, len(fields), TencentMinFields)
	}

	return Stock{
		Code:          header[strings.LastIndex(header, "_")+1:],
		Name:          fields[tencentFieldName],
		CurrentPrice:  parseFloat(fields[tencentFieldPrice]),
		PrevClose:     parseFloat(fields[tencentFieldPrevClose]),
		ChangeAmount:  parseFloat(fields[tencentFieldChangeAmount]),
		ChangePercent: parseFloat(fields[tencentFieldChangePercent]),
	}, nil
}

// ParseAPIResponse 解析包含多条记录的腾讯响应，跳过无法解析的行
func ParseAPIResponse(body string) []Stock {
	log := logger.WithComponent("TencentParser")

	lines := strings.FieldsFunc(body, func(r rune) bool {
		return r == '\n' || r == ';'
	})

	results := make([]Stock, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		stock, err := parseAPILine(line)
		if err != nil {
			log.WithError(err).Debugf("skip line %.40q", line)
			continue
		}
		results = append(results, stock)
	}

	log.Debugf("parsed %d of %d lines", len(results), len(lines))
	return results
}

// QuoteURL 构建批量行情请求地址
func QuoteURL(base string, codes []string) string {
	return base + strings.Join(codes, ",")
}

// parseFloat 安全解析浮点数，失败返回0
// 整个字段必须是数字，"12.5abc" 这类带后缀的字段同样返回0，不取数字前缀
func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	val, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(val) {
		return 0
	}
	return val
}
