// Package i18n 提供界面文本翻译。
//
// 启动时根据当前语言选定一个 Translator：中文语言环境使用内置的 zh_CN 表，
// 其它语言环境返回不解析任何键的 Translator，由调用方回退到默认语言文本。
package i18n

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var locales embed.FS

var zhCN = mustLoadTable("locales/zh_CN.yaml")

// Translator 翻译策略
type Translator interface {
	// T 返回 key 的译文，没有译文时返回 false
	T(key string) (string, bool)
}

type table map[string]string

func (t table) T(key string) (string, bool) {
	v, ok := t[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

type passthrough struct{}

func (passthrough) T(string) (string, bool) {
	return "", false
}

// New 根据语言名称选择翻译策略，只看是否以 zh 开头
func New(locale string) Translator {
	if strings.HasPrefix(locale, "zh") {
		return zhCN
	}
	return passthrough{}
}

// Translate 取译文，没有时使用 fallback
func Translate(tr Translator, key, fallback string) string {
	if v, ok := tr.T(key); ok {
		return v
	}
	return fallback
}

// DetectLocale 按 LC_ALL、LC_MESSAGES、LANG 的顺序读取语言，去掉编码后缀
// 例如 zh_CN.UTF-8 -> zh_CN
func DetectLocale() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			if i := strings.IndexAny(v, ".@"); i >= 0 {
				v = v[:i]
			}
			return v
		}
	}
	return ""
}

func loadTable(name string) (table, error) {
	data, err := locales.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	t := table{}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return t, nil
}

func mustLoadTable(name string) table {
	t, err := loadTable(name)
	if err != nil {
		panic(err)
	}
	return t
}
