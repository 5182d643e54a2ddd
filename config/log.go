package config

import (
	"fmt"

	"github.com/dep2p/go-netbridge/pkg/lib/log"
)

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别: debug, info, warn, error
	Level string `json:"level"`

	// Format 输出格式: text, json
	Format string `json:"format"`

	// File 日志文件路径，为空时输出到标准错误
	File string `json:"file,omitempty"`
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  "info",
		Format: "text",
	}
}

// Validate 验证日志配置
func (c LogConfig) Validate() error {
	if _, err := log.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: invalid log format %q", c.Format)
	}
	return nil
}
