package format

import (
	"stockbar/pkg/config"
	"stockbar/pkg/quote"
)

// PopoutHeight 根据显示的股票数量计算弹出面板高度（含行间距），限制在最小/最大高度之间
// 指数行 index 不计入
func PopoutHeight(stocks []quote.Stock, ui config.UIConfig, index string) int {
	count := quote.DisplayCount(stocks, index)
	height := ui.PopoutBaseHeight + count*(ui.RowHeight+ui.RowSpacing)
	return max(ui.PopoutMinHeight, min(ui.PopoutMaxHeight, height))
}
