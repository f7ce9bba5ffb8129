package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config 主配置结构，进程启动时构建一次，之后只读
type Config struct {
	// 涨跌配色
	Colors ColorConfig `json:"colors" mapstructure:"colors"`

	// 状态栏与列表显示
	Display DisplayConfig `json:"display" mapstructure:"display"`

	// 界面尺寸常量
	UI UIConfig `json:"ui" mapstructure:"ui"`

	// 列宽
	Columns ColumnConfig `json:"columns" mapstructure:"columns"`

	// 行情接口地址
	API APIConfig `json:"api" mapstructure:"api"`

	// 日志配置
	Logger LoggerConfig `json:"logger" mapstructure:"logger"`
}

// ColorConfig 颜色配置，UP/DOWN 可由用户在设置中交换（红涨绿跌或反之）
type ColorConfig struct {
	Up      string `json:"up" mapstructure:"up" validate:"required,hexcolor"`
	Down    string `json:"down" mapstructure:"down" validate:"required,hexcolor"`
	Neutral string `json:"neutral" mapstructure:"neutral" validate:"required,hexcolor"`
	White   string `json:"white" mapstructure:"white" validate:"required,hexcolor"`
	Delete  string `json:"delete" mapstructure:"delete" validate:"required,hexcolor"`
}

// DisplayConfig 显示配置
type DisplayConfig struct {
	ValueMode       string        `json:"value_mode" mapstructure:"value_mode" validate:"oneof=percent amount"`       // 状态栏数值模式
	NameMode        string        `json:"name_mode" mapstructure:"name_mode" validate:"oneof=none pinyin hanzi full"` // 状态栏名称模式
	MaxStocks       int           `json:"max_stocks" mapstructure:"max_stocks" validate:"min=1"`                      // 状态栏最大显示数量
	AllowScrolling  bool          `json:"allow_scrolling" mapstructure:"allow_scrolling"`                             // 状态栏滚动
	ShowSparklines  bool          `json:"show_sparklines" mapstructure:"show_sparklines"`                             // 列表走势图
	RefreshInterval time.Duration `json:"refresh_interval" mapstructure:"refresh_interval" validate:"min=1s"`         // 后台刷新间隔
	Locale          string        `json:"locale" mapstructure:"locale"`                                               // 为空时从环境变量探测
}

// UIConfig 界面尺寸常量（像素）
type UIConfig struct {
	HeaderHeight      int `json:"header_height" mapstructure:"header_height" validate:"min=0"`
	RowHeight         int `json:"row_height" mapstructure:"row_height" validate:"min=1"`
	RowSpacing        int `json:"row_spacing" mapstructure:"row_spacing" validate:"min=0"`
	DialogWidth       int `json:"dialog_width" mapstructure:"dialog_width" validate:"min=1"`
	DialogHeight      int `json:"dialog_height" mapstructure:"dialog_height" validate:"min=1"`
	DeleteButtonWidth int `json:"delete_button_width" mapstructure:"delete_button_width" validate:"min=1"`
	DeleteThreshold   int `json:"delete_threshold" mapstructure:"delete_threshold" validate:"max=0"`
	DeleteMaxDrag     int `json:"delete_max_drag" mapstructure:"delete_max_drag" validate:"max=0"`
	PopoutMinHeight   int `json:"popout_min_height" mapstructure:"popout_min_height" validate:"min=1"`
	PopoutMaxHeight   int `json:"popout_max_height" mapstructure:"popout_max_height" validate:"min=1"`
	PopoutBaseHeight  int `json:"popout_base_height" mapstructure:"popout_base_height" validate:"min=0"`
}

// ColumnConfig 列表列宽
type ColumnConfig struct {
	Name    int `json:"name" mapstructure:"name" validate:"min=1"`
	Code    int `json:"code" mapstructure:"code" validate:"min=1"`
	Price   int `json:"price" mapstructure:"price" validate:"min=1"`
	Change  int `json:"change" mapstructure:"change" validate:"min=1"`
	Percent int `json:"percent" mapstructure:"percent" validate:"min=1"`
}

// APIConfig 行情与搜索接口
type APIConfig struct {
	TencentQuote string `json:"tencent_quote" mapstructure:"tencent_quote" validate:"required,url"`
	SinaSuggest  string `json:"sina_suggest" mapstructure:"sina_suggest" validate:"required,url"`
	IndexCode    string `json:"index_code" mapstructure:"index_code" validate:"required"` // 作为指数行显示的代码
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level  string `json:"level" mapstructure:"level" validate:"oneof=debug info warn error"` // 日志级别
	Format string `json:"format" mapstructure:"format" validate:"oneof=text json"`           // 输出格式
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Colors: ColorConfig{
			Up:      "#ff4d4f",
			Down:    "#52c41a",
			Neutral: "#888888",
			White:   "#ffffff",
			Delete:  "#ff4d4f",
		},
		Display: DisplayConfig{
			ValueMode:       "percent",
			NameMode:        "none",
			MaxStocks:       3,
			AllowScrolling:  false,
			ShowSparklines:  true,
			RefreshInterval: 30 * time.Second,
		},
		UI: UIConfig{
			HeaderHeight:      30,
			RowHeight:         32,
			RowSpacing:        2,
			DialogWidth:       280,
			DialogHeight:      160,
			DeleteButtonWidth: 52,
			DeleteThreshold:   -35,
			DeleteMaxDrag:     -70,
			PopoutMinHeight:   320,
			PopoutMaxHeight:   750,
			PopoutBaseHeight:  180,
		},
		Columns: ColumnConfig{
			Name:    120,
			Code:    70,
			Price:   60,
			Change:  60,
			Percent: 70,
		},
		API: APIConfig{
			TencentQuote: "https://qt.gtimg.cn/q=",
			SinaSuggest:  "https://suggest3.sinajs.cn/suggest/type=11,12,13,14,15&key=",
			IndexCode:    "sh000001",
		},
		Logger: LoggerConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

var validate = validator.New()

// Validate 验证配置
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if c.UI.PopoutMaxHeight < c.UI.PopoutMinHeight {
		return errors.New("popout_max_height must not be less than popout_min_height")
	}

	if c.UI.DeleteMaxDrag > c.UI.DeleteThreshold {
		return errors.New("delete_max_drag must be beyond delete_threshold")
	}

	return nil
}

// SetColors 设置涨跌颜色
func (c *Config) SetColors(up, down string) *Config {
	c.Colors.Up = up
	c.Colors.Down = down
	return c
}

// SetValueMode 设置状态栏数值模式
func (c *Config) SetValueMode(mode string) *Config {
	c.Display.ValueMode = mode
	return c
}

// SetNameMode 设置状态栏名称模式
func (c *Config) SetNameMode(mode string) *Config {
	c.Display.NameMode = mode
	return c
}
