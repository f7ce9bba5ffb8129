package timing

import (
	"time"
)

// TimeService 提供当前时间接口，用于mock测试
type TimeService interface {
	Now() time.Time
}

// SystemTimeService 使用系统实际时间
type SystemTimeService struct{}

func (s *SystemTimeService) Now() time.Time {
	return time.Now()
}

// 宽松时段（HHMM），比实际交易时间前后多留几分钟，容忍行情延迟
// 只用于判断是否需要刷新
const (
	paddedMorningStart   = 900
	paddedMorningEnd     = 1135
	paddedAfternoonStart = 1255
	paddedAfternoonEnd   = 1505
)

// 标准交易时段（当日分钟数），用于计算进度
// 上午 09:30-11:30，下午 13:00-15:00，共240分钟
const (
	sessionMorningOpen    = 9*60 + 30
	sessionMorningClose   = 11*60 + 30
	sessionAfternoonOpen  = 13 * 60
	sessionAfternoonClose = 15 * 60

	morningMinutes = sessionMorningClose - sessionMorningOpen
	sessionMinutes = morningMinutes + sessionAfternoonClose - sessionAfternoonOpen
)

// MarketTime 提供A股交易时间检测功能
type MarketTime struct {
	timeService TimeService
}

// NewMarketTime 创建新的市场时间检测器
func NewMarketTime(timeService TimeService) *MarketTime {
	return &MarketTime{
		timeService: timeService,
	}
}

// DefaultMarketTime 使用系统时间的默认市场时间检测器
func DefaultMarketTime() *MarketTime {
	return NewMarketTime(&SystemTimeService{})
}

// Now 返回当前时间
func (m *MarketTime) Now() time.Time {
	return m.timeService.Now()
}

// IsTradingTime 判断当前是否在（宽松的）交易时段
// 09:00-11:35、12:55-15:05，两端包含
func (m *MarketTime) IsTradingTime() bool {
	now := m.timeService.Now()

	if !m.IsTradingDay(now) {
		return false
	}

	hhmm := now.Hour()*100 + now.Minute()
	return (hhmm >= paddedMorningStart && hhmm <= paddedMorningEnd) ||
		(hhmm >= paddedAfternoonStart && hhmm <= paddedAfternoonEnd)
}

// TradingProgress 当日交易进度，取值 [0, 1]
// 非交易日与收盘后为1，午休期间固定为0.5
func (m *MarketTime) TradingProgress() float64 {
	now := m.timeService.Now()

	if !m.IsTradingDay(now) {
		return 1.0
	}

	minutes := now.Hour()*60 + now.Minute()

	switch {
	case minutes < sessionMorningOpen:
		return 0.0
	case minutes < sessionMorningClose:
		return float64(minutes-sessionMorningOpen) / sessionMinutes
	case minutes < sessionAfternoonOpen:
		return float64(morningMinutes) / sessionMinutes
	case minutes < sessionAfternoonClose:
		return float64(morningMinutes+minutes-sessionAfternoonOpen) / sessionMinutes
	default:
		return 1.0
	}
}

// IsTradingDay 判断是否是交易日（周一到周五，不含节假日）
func (m *MarketTime) IsTradingDay(t time.Time) bool {
	weekday := t.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsAfterClose 判断交易日是否已收盘
func (m *MarketTime) IsAfterClose() bool {
	now := m.timeService.Now()

	if !m.IsTradingDay(now) {
		return false
	}

	return now.Hour()*60+now.Minute() >= sessionAfternoonClose
}

// NextSessionStart 下一次开盘时间（09:30）
// 交易日收盘前返回当天开盘时间，即使已经开盘
func (m *MarketTime) NextSessionStart() time.Time {
	now := m.timeService.Now()
	open := time.Date(now.Year(), now.Month(), now.Day(), 9, 30, 0, 0, now.Location())

	if m.IsTradingDay(now) && !m.IsAfterClose() {
		return open
	}

	next := open.AddDate(0, 0, 1)
	for !m.IsTradingDay(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
