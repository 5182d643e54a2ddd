package config

import "time"

// ValidateAndFix 验证配置并修复可以安全修复的问题
//
// 可修复的问题：
//   - 刷新间隔或缓存容量非正 -> 使用默认值
//   - 日志级别或格式为空 -> 使用默认值
//
// 未知协议名等无法推断意图的问题仍然返回错误。
// 返回的是修复后的副本，原配置不变。
func ValidateAndFix(c *Config) (*Config, error) {
	if c == nil {
		return nil, ErrNilConfig
	}

	fixed := CloneConfig(c)
	defaults := DefaultBridgeConfig()
	if fixed.Bridge.ReputationFlushInterval <= 0 {
		fixed.Bridge.ReputationFlushInterval = defaults.ReputationFlushInterval
	}
	if fixed.Bridge.ReputationCacheSize <= 0 {
		fixed.Bridge.ReputationCacheSize = defaults.ReputationCacheSize
	}

	logDefaults := DefaultLogConfig()
	if fixed.Log.Level == "" {
		fixed.Log.Level = logDefaults.Level
	}
	if fixed.Log.Format == "" {
		fixed.Log.Format = logDefaults.Format
	}

	if err := fixed.Validate(); err != nil {
		return nil, err
	}
	return fixed, nil
}

// FlushInterval 返回信誉刷新间隔
func (c BridgeConfig) FlushInterval() time.Duration {
	return c.ReputationFlushInterval.Std()
}
