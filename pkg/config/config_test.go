package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefault 测试默认配置是否正确
func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "#ff4d4f", cfg.Colors.Up)
	assert.Equal(t, "#52c41a", cfg.Colors.Down)
	assert.Equal(t, "#888888", cfg.Colors.Neutral)
	assert.Equal(t, "#ffffff", cfg.Colors.White)

	assert.Equal(t, "percent", cfg.Display.ValueMode)
	assert.Equal(t, "none", cfg.Display.NameMode)
	assert.Equal(t, 30*time.Second, cfg.Display.RefreshInterval)

	assert.Equal(t, 32, cfg.UI.RowHeight)
	assert.Equal(t, 2, cfg.UI.RowSpacing)
	assert.Equal(t, 320, cfg.UI.PopoutMinHeight)
	assert.Equal(t, 750, cfg.UI.PopoutMaxHeight)
	assert.Equal(t, 180, cfg.UI.PopoutBaseHeight)
	assert.Equal(t, 120, cfg.Columns.Name)

	assert.Equal(t, "https://qt.gtimg.cn/q=", cfg.API.TencentQuote)
	assert.Equal(t, "sh000001", cfg.API.IndexCode)

	assert.Equal(t, "info", cfg.Logger.Level)
}

// TestValidate 测试配置验证功能
func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate(), "默认配置应该是有效的")

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"颜色格式错误", func(c *Config) { c.Colors.Up = "red" }},
		{"颜色为空", func(c *Config) { c.Colors.Down = "" }},
		{"未知数值模式", func(c *Config) { c.Display.ValueMode = "ratio" }},
		{"未知名称模式", func(c *Config) { c.Display.NameMode = "initials" }},
		{"刷新间隔过短", func(c *Config) { c.Display.RefreshInterval = 100 * time.Millisecond }},
		{"最大显示数量为0", func(c *Config) { c.Display.MaxStocks = 0 }},
		{"行高为0", func(c *Config) { c.UI.RowHeight = 0 }},
		{"弹出窗口高度区间颠倒", func(c *Config) { c.UI.PopoutMaxHeight = 100 }},
		{"删除拖动距离小于阈值", func(c *Config) { c.UI.DeleteMaxDrag = -10 }},
		{"接口地址无效", func(c *Config) { c.API.TencentQuote = "qt.gtimg.cn" }},
		{"未知日志级别", func(c *Config) { c.Logger.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

// TestSetters 测试链式设置方法
func TestSetters(t *testing.T) {
	cfg := Default()
	result := cfg.SetColors("#52c41a", "#ff4d4f").
		SetValueMode("amount").
		SetNameMode("pinyin")

	assert.Same(t, cfg, result, "应该返回同一个配置对象以支持链式调用")
	assert.Equal(t, "#52c41a", cfg.Colors.Up)
	assert.Equal(t, "#ff4d4f", cfg.Colors.Down)
	assert.Equal(t, "amount", cfg.Display.ValueMode)
	assert.Equal(t, "pinyin", cfg.Display.NameMode)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("无配置文件使用默认值", func(t *testing.T) {
		dir := t.TempDir()
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		defer os.Chdir(wd)

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("配置文件覆盖默认值", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stockbar.yaml")
		content := `
colors:
  up: "#52c41a"
  down: "#ff4d4f"
display:
  value_mode: amount
  name_mode: hanzi
  refresh_interval: 1m
logger:
  level: debug
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "#52c41a", cfg.Colors.Up)
		assert.Equal(t, "amount", cfg.Display.ValueMode)
		assert.Equal(t, "hanzi", cfg.Display.NameMode)
		assert.Equal(t, time.Minute, cfg.Display.RefreshInterval)
		assert.Equal(t, "debug", cfg.Logger.Level)
		// 未出现的键保持默认
		assert.Equal(t, "#888888", cfg.Colors.Neutral)
		assert.Equal(t, 32, cfg.UI.RowHeight)
	})

	t.Run("环境变量覆盖配置文件", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stockbar.yaml")
		require.NoError(t, os.WriteFile(path, []byte("display:\n  name_mode: hanzi\n"), 0o644))
		t.Setenv("STOCKBAR_DISPLAY_NAME_MODE", "full")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "full", cfg.Display.NameMode)
	})

	t.Run("无效值被拒绝", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "stockbar.yaml")
		require.NoError(t, os.WriteFile(path, []byte("display:\n  value_mode: ratio\n"), 0o644))

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("指定文件不存在", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
