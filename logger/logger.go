// Package logger 基于 log/slog 的结构化日志，附带组件名与 gin 请求日志中间件。
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger 在 slog.Logger 之上携带组件名
type Logger struct {
	*slog.Logger
	base      *slog.Logger
	component string
}

// Config 日志配置
type Config struct {
	Level     string
	Format    string // text | json
	Component string
	Output    io.Writer
}

// ParseLevel 解析日志级别，未知值按 info 处理
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// New 创建日志实例
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	component := cfg.Component
	if component == "" {
		component = "app"
	}
	base := slog.New(handler)
	return &Logger{
		Logger:    base.With("component", component),
		base:      base,
		component: component,
	}
}

// WithComponent 派生指定组件名的日志实例
func (l *Logger) WithComponent(component string) *Logger {
	base := l.base
	if base == nil {
		base = l.Logger
	}
	return &Logger{
		Logger:    base.With("component", component),
		base:      base,
		component: component,
	}
}

// Component 返回组件名
func (l *Logger) Component() string {
	return l.component
}

// SetDefault 设置为 slog 默认日志
func SetDefault(l *Logger) {
	slog.SetDefault(l.Logger)
}

// Default 返回包装后的 slog 默认日志
func Default() *Logger {
	return &Logger{Logger: slog.Default(), base: slog.Default(), component: "app"}
}

// GinMiddleware 记录每个请求的方法、路径、状态码与耗时
// 4xx 记为 warn，5xx 记为 error
func GinMiddleware(l *Logger) gin.HandlerFunc {
	httpLog := l.WithComponent("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			attrs = append(attrs, "query", q)
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}
		httpLog.Log(c.Request.Context(), level, "request completed", attrs...)
	}
}
