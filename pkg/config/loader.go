package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix 环境变量前缀，例如 STOCKBAR_DISPLAY_VALUE_MODE=amount
const EnvPrefix = "STOCKBAR"

// Load 加载配置：默认值 < 配置文件 < 环境变量
// path 为空时在 ./config 与当前目录查找 stockbar.yaml，找不到不算错误
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("stockbar")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults 注册所有键，AutomaticEnv 只对已知键生效
func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("colors.up", d.Colors.Up)
	v.SetDefault("colors.down", d.Colors.Down)
	v.SetDefault("colors.neutral", d.Colors.Neutral)
	v.SetDefault("colors.white", d.Colors.White)
	v.SetDefault("colors.delete", d.Colors.Delete)

	v.SetDefault("display.value_mode", d.Display.ValueMode)
	v.SetDefault("display.name_mode", d.Display.NameMode)
	v.SetDefault("display.max_stocks", d.Display.MaxStocks)
	v.SetDefault("display.allow_scrolling", d.Display.AllowScrolling)
	v.SetDefault("display.show_sparklines", d.Display.ShowSparklines)
	v.SetDefault("display.refresh_interval", d.Display.RefreshInterval)
	v.SetDefault("display.locale", d.Display.Locale)

	v.SetDefault("ui.header_height", d.UI.HeaderHeight)
	v.SetDefault("ui.row_height", d.UI.RowHeight)
	v.SetDefault("ui.row_spacing", d.UI.RowSpacing)
	v.SetDefault("ui.dialog_width", d.UI.DialogWidth)
	v.SetDefault("ui.dialog_height", d.UI.DialogHeight)
	v.SetDefault("ui.delete_button_width", d.UI.DeleteButtonWidth)
	v.SetDefault("ui.delete_threshold", d.UI.DeleteThreshold)
	v.SetDefault("ui.delete_max_drag", d.UI.DeleteMaxDrag)
	v.SetDefault("ui.popout_min_height", d.UI.PopoutMinHeight)
	v.SetDefault("ui.popout_max_height", d.UI.PopoutMaxHeight)
	v.SetDefault("ui.popout_base_height", d.UI.PopoutBaseHeight)

	v.SetDefault("columns.name", d.Columns.Name)
	v.SetDefault("columns.code", d.Columns.Code)
	v.SetDefault("columns.price", d.Columns.Price)
	v.SetDefault("columns.change", d.Columns.Change)
	v.SetDefault("columns.percent", d.Columns.Percent)

	v.SetDefault("api.tencent_quote", d.API.TencentQuote)
	v.SetDefault("api.sina_suggest", d.API.SinaSuggest)
	v.SetDefault("api.index_code", d.API.IndexCode)

	v.SetDefault("logger.level", d.Logger.Level)
	v.SetDefault("logger.format", d.Logger.Format)
}
