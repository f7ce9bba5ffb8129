package market

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountryEmoji(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"sh600000", "🇨🇳"},
		{"sz000001", "🇨🇳"},
		{"usAAPL", "🇺🇸"},
		{"hk00700", "🇭🇰"},
		{"bj430047", "🌐"},
		{"SH600000", "🌐"},
		{"", "🌐"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountryEmoji(tt.code))
		})
	}
}

func TestPureCode(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"sh600000", "600000"},
		{"SZ000001", "000001"},
		{"Hk00700", "00700"},
		{"usAAPL", "AAPL"},
		{"600000", "600000"},
		{"bj430047", "bj430047"},
		{"s", "s"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, PureCode(tt.code))
		})
	}
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		number   string
		expected string
	}{
		{"600000", "sh"},
		{"688981", "sh"},
		{"000001", "sz"},
		{"300750", "sz"},
		{"900901", "sh"},
		{"430047", "sh"},
		{"60000", "sh"},
		{"0000011", "sh"},
		{"", "sh"},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.expected, Prefix(tt.number))
		})
	}
}

// 所有6位代码：前缀只可能是 sh/sz，且去前缀后能还原
func TestPrefixRoundTrip(t *testing.T) {
	for first := 0; first <= 9; first++ {
		for _, rest := range []string{"00000", "12345", "99999"} {
			number := fmt.Sprintf("%d%s", first, rest)
			prefix := Prefix(number)

			assert.Contains(t, []string{"sh", "sz"}, prefix)
			assert.Equal(t, first == 0 || first == 3, prefix == "sz", number)
			assert.Equal(t, number, PureCode(prefix+number))
		}
	}
}

func TestAutoComplete(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"600000", "sh600000", true},
		{"000001", "sz000001", true},
		{"sz300750", "sz300750", true},
		{" 600 519 ", "sh600519", true},
		{"abc", "", false},
		{"12345", "", false},
		{"1234567", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			code, ok := AutoComplete(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "sh600000", Normalize("SH600000"))
	assert.Equal(t, "hk00700", Normalize(" HK00700 "))
	assert.Equal(t, "600000", Normalize("600000"))
}

func TestIsMarketIndex(t *testing.T) {
	assert.True(t, IsMarketIndex("sh000001", ""))
	assert.True(t, IsMarketIndex("SH000001", ""))
	assert.False(t, IsMarketIndex("sz000001", ""))
	assert.False(t, IsMarketIndex("000001", ""))

	// 配置了其他指数
	assert.True(t, IsMarketIndex("sz399001", "sz399001"))
	assert.True(t, IsMarketIndex("sz399001", "SZ399001"))
	assert.False(t, IsMarketIndex("sh000001", "sz399001"))
}
