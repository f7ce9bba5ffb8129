package quote

import "errors"

var (
	// ErrMalformedLine 行情行不符合 v_<code>="..." 格式
	ErrMalformedLine = errors.New("malformed quote line")

	// ErrTooFewFields 字段数不足，通常是响应被截断或上游格式变化
	ErrTooFewFields = errors.New("too few quote fields")
)
