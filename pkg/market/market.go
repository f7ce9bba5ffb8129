// Package market 处理带市场前缀的股票代码：前缀推断、去前缀、自动补全。
package market

import (
	"strings"
)

// 市场前缀
const (
	Shanghai = "sh"
	Shenzhen = "sz"
	HongKong = "hk"
	USA      = "us"
)

// ShanghaiIndex 上证指数，默认的指数行
const ShanghaiIndex = "sh000001"

const (
	emojiChina    = "🇨🇳"
	emojiUSA      = "🇺🇸"
	emojiHongKong = "🇭🇰"
	emojiGlobe    = "🌐"
)

var prefixes = []string{Shanghai, Shenzhen, USA, HongKong}

// CountryEmoji 根据代码前缀返回市场旗帜，无法识别时返回地球
func CountryEmoji(code string) string {
	switch {
	case code == "":
		return emojiGlobe
	case strings.HasPrefix(code, Shanghai), strings.HasPrefix(code, Shenzhen):
		return emojiChina
	case strings.HasPrefix(code, USA):
		return emojiUSA
	case strings.HasPrefix(code, HongKong):
		return emojiHongKong
	default:
		return emojiGlobe
	}
}

// PureCode 去掉代码开头的市场前缀（不区分大小写），不带前缀时原样返回
func PureCode(code string) string {
	if len(code) < 2 {
		return code
	}
	head := strings.ToLower(code[:2])
	for _, p := range prefixes {
		if head == p {
			return code[2:]
		}
	}
	return code
}

// Prefix 根据6位股票代码推断市场前缀
// 0xxxxx、3xxxxx 为深市，其余（包括长度不为6）都按沪市处理
func Prefix(number string) string {
	if len(number) != 6 {
		return Shanghai
	}
	switch number[0] {
	case '0', '3':
		return Shenzhen
	default:
		return Shanghai
	}
}

// AutoComplete 从用户输入中提取数字并补全前缀
// 数字不是恰好6位时无法判断，返回 false
func AutoComplete(input string) (string, bool) {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	number := b.String()
	if len(number) != 6 {
		return "", false
	}
	return Prefix(number) + number, true
}

// Normalize 将前缀转为小写，例如 SH600000 -> sh600000
func Normalize(code string) string {
	code = strings.TrimSpace(code)
	pure := PureCode(code)
	if len(pure) == len(code) {
		return code
	}
	return strings.ToLower(code[:2]) + pure
}

// IsMarketIndex 判断 code 是否为指数行 index，index 为空时使用上证指数
// 前缀大小写不敏感
func IsMarketIndex(code, index string) bool {
	if index == "" {
		index = ShanghaiIndex
	}
	return Normalize(code) == Normalize(index)
}
