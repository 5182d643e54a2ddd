package config

import (
	"errors"
	"time"
)

// BridgeConfig 桥接器配置
type BridgeConfig struct {
	// ReputationFlushInterval 汇总的信誉变更上报间隔
	ReputationFlushInterval Duration `json:"reputation_flush_interval"`

	// ReputationCacheSize 同时跟踪的节点数上限
	//
	// 超出时最久未更新的节点被提前上报并移出。
	ReputationCacheSize int `json:"reputation_cache_size"`

	// EnableMetrics 是否注册 Prometheus 指标
	EnableMetrics bool `json:"enable_metrics"`
}

// DefaultBridgeConfig 返回默认桥接器配置
func DefaultBridgeConfig() BridgeConfig {
	return BridgeConfig{
		ReputationFlushInterval: Duration(30 * time.Second),
		ReputationCacheSize:     1024,
		EnableMetrics:           true,
	}
}

// Validate 验证桥接器配置
func (c BridgeConfig) Validate() error {
	if c.ReputationFlushInterval <= 0 {
		return errors.New("config: reputation flush interval must be positive")
	}
	if c.ReputationCacheSize <= 0 {
		return errors.New("config: reputation cache size must be positive")
	}
	return nil
}
