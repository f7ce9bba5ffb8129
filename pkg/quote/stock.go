package quote

import (
	"stockbar/pkg/market"
)

// Stock 单只股票的行情快照
type Stock struct {
	Code          string  `json:"code"` // 带小写市场前缀，例如 sh600000
	Name          string  `json:"name"`
	CurrentPrice  float64 `json:"current_price"`
	PrevClose     float64 `json:"prev_close"`
	ChangeAmount  float64 `json:"change_amount"`
	ChangePercent float64 `json:"change_percent"`
}

// NewStock 创建行情字段为零的股票
func NewStock(code, name string) Stock {
	return Stock{Code: code, Name: name}
}

// Update 用新解析的行情整体覆盖当前记录，代码保持不变
func (s *Stock) Update(fresh Stock) {
	s.Name = fresh.Name
	s.CurrentPrice = fresh.CurrentPrice
	s.PrevClose = fresh.PrevClose
	s.ChangeAmount = fresh.ChangeAmount
	s.ChangePercent = fresh.ChangePercent
}

// Holding 带持仓成本的股票，用于盈亏显示
type Holding struct {
	Stock
	CostPrice     float64 `json:"cost_price"`
	Profit        float64 `json:"profit"`
	ProfitPercent float64 `json:"profit_percent"`
}

// NewHolding 创建持仓记录
func NewHolding(code, name string, costPrice float64) Holding {
	return Holding{Stock: NewStock(code, name), CostPrice: costPrice}
}

// Recalculate 按当前价计算每股盈亏
// 没有成本或还没有行情时盈亏为零
func (h *Holding) Recalculate() {
	if h.CostPrice == 0 || h.CurrentPrice == 0 {
		h.Profit = 0
		h.ProfitPercent = 0
		return
	}
	h.Profit = h.CurrentPrice - h.CostPrice
	h.ProfitPercent = h.Profit / h.CostPrice * 100
}

// Suggestion 搜索建议
type Suggestion struct {
	Name     string `json:"name"`
	PureCode string `json:"pure_code"`
	Code     string `json:"code"`
}

// CloneStocks 浅拷贝股票列表，nil 返回空列表
func CloneStocks(stocks []Stock) []Stock {
	out := make([]Stock, len(stocks))
	copy(out, stocks)
	return out
}

// DisplayCount 列表中需要显示的股票数量，不含指数行 index
func DisplayCount(stocks []Stock, index string) int {
	count := 0
	for _, s := range stocks {
		if !market.IsMarketIndex(s.Code, index) {
			count++
		}
	}
	return count
}

// Merge 用新行情更新列表中代码相同的股票，返回更新条数
// 没有新行情的股票保持原值
func Merge(stocks []Stock, fresh []Stock) int {
	byCode := make(map[string]Stock, len(fresh))
	for _, f := range fresh {
		byCode[f.Code] = f
	}

	updated := 0
	for i := range stocks {
		if f, ok := byCode[stocks[i].Code]; ok {
			stocks[i].Update(f)
			updated++
		}
	}
	return updated
}
