package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("级别解析", func(t *testing.T) {
		assert.Equal(t, logrus.DebugLevel, New(Config{Level: "DEBUG"}).GetLevel())
		assert.Equal(t, logrus.WarnLevel, New(Config{Level: "warn"}).GetLevel())
		assert.Equal(t, logrus.InfoLevel, New(Config{Level: "nonsense"}).GetLevel(), "无法识别的级别回退到 info")
	})

	t.Run("JSON格式输出", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(Config{Level: "info", Format: "json", Output: &buf})
		l.WithField("component", "QuoteParser").Info("parsed")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "parsed", entry["msg"])
		assert.Equal(t, "QuoteParser", entry["component"])
	})
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "text", Output: &buf})

	WithComponent("Timing").Debug("tick")
	assert.Contains(t, buf.String(), "component=Timing")
	assert.Contains(t, buf.String(), "tick")

	require.NoError(t, SetLevel("ERROR"))
	buf.Reset()
	WithComponent("Timing").Info("hidden")
	assert.Empty(t, buf.String())
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf})

	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, GetLogger().GetLevel())

	assert.Error(t, SetLevel("verbose"))
	assert.Equal(t, logrus.DebugLevel, GetLogger().GetLevel(), "无法识别时保持原级别")
}
