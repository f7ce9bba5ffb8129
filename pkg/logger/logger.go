package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

type Entry = logrus.Entry

var (
	mu  sync.RWMutex
	log *logrus.Logger
)

// Config 日志配置
type Config struct {
	Level  string    // debug, info, warn, error
	Format string    // text, json
	Output io.Writer // 默认 stderr，标准输出留给命令的结果
}

// New 按配置创建独立的日志器
func New(config Config) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(strings.ToLower(config.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if config.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FullTimestamp:   true,
		})
	}

	if config.Output != nil {
		l.SetOutput(config.Output)
	} else {
		l.SetOutput(os.Stderr)
	}

	return l
}

// Init 初始化全局日志器
func Init(config Config) {
	l := New(config)

	mu.Lock()
	log = l
	mu.Unlock()
}

// InitFromEnv 从环境变量初始化全局日志器
func InitFromEnv() {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		if os.Getenv("DEBUG") == "1" {
			level = "debug"
		} else {
			level = "info"
		}
	}

	format := os.Getenv("LOG_FORMAT")
	if format == "" {
		format = "text"
	}

	Init(Config{
		Level:  level,
		Format: format,
	})
}

// GetLogger 获取全局日志器，未初始化时按环境变量初始化
func GetLogger() *logrus.Logger {
	mu.RLock()
	l := log
	mu.RUnlock()

	if l == nil {
		InitFromEnv()
		mu.RLock()
		l = log
		mu.RUnlock()
	}
	return l
}

// WithComponent 创建带组件名的日志器
func WithComponent(component string) *logrus.Entry {
	return GetLogger().WithField("component", component)
}

// SetLevel 调整全局日志器的级别，无法识别的级别返回错误且不做修改
func SetLevel(level string) error {
	l, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	GetLogger().SetLevel(l)
	return nil
}
