// Package format 生成状态栏与列表使用的显示文本和颜色。
//
// 数值缺失用 NaN 表示，统一显示为 Placeholder。
package format

import (
	"math"
	"math/big"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"stockbar/pkg/timing"
)

const (
	// Placeholder 无数据或无变化时的占位文本
	Placeholder = "--"

	// DefaultDigits 默认小数位数
	DefaultDigits = 2
)

// Number 定点格式化，不带符号
func Number(value float64, digits int) string {
	if math.IsNaN(value) {
		return Placeholder
	}
	return fixed(value, digits)
}

// Change 带符号的涨跌额，0 视为无变化
func Change(value float64, digits int) string {
	if math.IsNaN(value) || value == 0 {
		return Placeholder
	}
	return signed(value, digits)
}

// Percent 带符号的涨跌幅，0 视为无变化
func Percent(value float64, digits int) string {
	if math.IsNaN(value) || value == 0 {
		return Placeholder
	}
	return signed(value, digits) + "%"
}

func signed(value float64, digits int) string {
	if value >= 0 {
		return "+" + fixed(value, digits)
	}
	return fixed(value, digits)
}

// fixed 按二进制精确值四舍五入，恰好居中时取绝对值较大的一侧
// 1.125 -> "1.13"；1.005 的二进制值略小于 1.005，得到 "1.00"
func fixed(value float64, digits int) string {
	if digits <= 0 {
		digits = DefaultDigits
	}
	if math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', digits, 64)
	}

	s := exactDecimal(math.Abs(value)).StringFixed(int32(digits))
	if value < 0 {
		return "-" + s
	}
	return s // -0 显示为 0
}

// exactDecimal 浮点数的精确十进制展开，m*2^e 写成 m*5^k / 10^k
func exactDecimal(v float64) decimal.Decimal {
	frac, exp := math.Frexp(v)
	mant := big.NewInt(int64(frac * (1 << 53)))
	exp -= 53

	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0)
	}
	k := int64(-exp)
	pow := new(big.Int).Exp(big.NewInt(5), big.NewInt(k), nil)
	return decimal.NewFromBigInt(pow.Mul(pow, mant), int32(-k))
}

// SmartTime 同一天只显示 15:04:05，否则加上 01-02 日期
// 零值时间视为缺失
func SmartTime(t, now time.Time) string {
	if t.IsZero() {
		return Placeholder
	}

	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.In(t.Location()).Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return t.Format("15:04:05")
	}
	return t.Format("01-02 15:04:05")
}

// CurrentTimeString 当前时间，总是 15:04:05
func CurrentTimeString(clock timing.TimeService) string {
	now := clock.Now()
	return SmartTime(now, now)
}
