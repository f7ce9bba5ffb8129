package format

import (
	"stockbar/pkg/config"
)

// Palette 涨跌配色，由配置构建后只读
type Palette struct {
	up      string
	down    string
	neutral string
	white   string
	delete  string
}

// NewPalette 从配置构建配色
func NewPalette(c config.ColorConfig) Palette {
	return Palette{
		up:      c.Up,
		down:    c.Down,
		neutral: c.Neutral,
		white:   c.White,
		delete:  c.Delete,
	}
}

// ChangeColor 涨跌颜色，无变化时为中性灰
func (p Palette) ChangeColor(change float64) string {
	switch {
	case change > 0:
		return p.up
	case change < 0:
		return p.down
	default:
		return p.neutral
	}
}

// ProfitColor 盈亏颜色，持平时为白色
func (p Palette) ProfitColor(profit float64) string {
	switch {
	case profit > 0:
		return p.up
	case profit < 0:
		return p.down
	default:
		return p.white
	}
}

// DeleteColor 删除按钮颜色
func (p Palette) DeleteColor() string {
	return p.delete
}
