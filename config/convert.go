package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// FromJSON 从 JSON 数据创建配置
//
// 未出现的字段保留默认值。
//
// 示例 JSON:
//
//	{
//	  "requests": {"protocols": {"pov_fetching": {"queue_size": 20, "request_timeout": "2s"}}},
//	  "bridge": {"reputation_flush_interval": "10s"},
//	  "log": {"level": "debug"}
//	}
func FromJSON(data []byte) (*Config, error) {
	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal: %w", err)
	}
	return cfg, nil
}

// LoadFile 读取 JSON 配置文件，修复可安全修复的问题后验证
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := FromJSON(data)
	if err != nil {
		return nil, err
	}
	return ValidateAndFix(cfg)
}

// ToJSON 把配置序列化为带缩进的 JSON
func ToJSON(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	return json.MarshalIndent(cfg, "", "  ")
}

// CloneConfig 深拷贝配置
func CloneConfig(cfg *Config) *Config {
	if cfg == nil {
		return nil
	}

	cloned := *cfg
	if cfg.Requests.Protocols != nil {
		cloned.Requests.Protocols = make(map[string]ProtocolLimitsConfig, len(cfg.Requests.Protocols))
		for name, limits := range cfg.Requests.Protocols {
			cloned.Requests.Protocols[name] = limits
		}
	}
	return &cloned
}
