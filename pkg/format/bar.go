package format

import (
	"math"
	"unicode/utf8"

	"stockbar/pkg/quote"
)

// ValueMode 状态栏数值模式
type ValueMode string

const (
	ValuePercent ValueMode = "percent"
	ValueAmount  ValueMode = "amount"
)

// NameMode 状态栏名称模式
type NameMode string

const (
	NameNone   NameMode = "none"
	NamePinyin NameMode = "pinyin"
	NameHanzi  NameMode = "hanzi"
	NameFull   NameMode = "full"
)

// BarText 状态栏紧凑文本，例如 "P 1.20%"
// 数值取绝对值，涨跌方向由颜色表示；stock 为 nil 时返回占位符
func BarText(stock *quote.Stock, valueMode ValueMode, nameMode NameMode) string {
	if stock == nil {
		return Placeholder
	}

	var value string
	if valueMode == ValuePercent {
		value = fixed(math.Abs(orZero(stock.ChangePercent)), DefaultDigits) + "%"
	} else {
		value = fixed(math.Abs(orZero(stock.ChangeAmount)), DefaultDigits)
	}

	switch nameMode {
	case NamePinyin:
		return FirstPinyinLetter(stock.Name) + " " + value
	case NameHanzi:
		return firstChar(stock.Name) + " " + value
	case NameFull:
		return stock.Name + " " + value
	default:
		return value
	}
}

func orZero(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

// firstChar 名称首字，英文名称时就是首字母
func firstChar(name string) string {
	if name == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(r)
}
