package quote

import (
	"bytes"
	"io"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// DecodeGBK 将上游返回的GBK字节转换为UTF-8，转换失败时按原样返回
func DecodeGBK(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	reader := transform.NewReader(bytes.NewReader(raw), simplifiedchinese.GBK.NewDecoder())
	data, err := io.ReadAll(reader)
	if err != nil {
		return string(raw)
	}

	return string(data)
}
