package bridge

import (
	"time"

	"github.com/dep2p/go-netbridge/config"
	"github.com/dep2p/go-netbridge/internal/reqresp"
)

// Config 桥接器配置
type Config struct {
	// FlushInterval 汇总的信誉变更上报间隔
	FlushInterval time.Duration

	// CacheSize 信誉汇总跟踪的节点数上限
	CacheSize int

	// EnableMetrics 是否注册 Prometheus 指标
	EnableMetrics bool

	// Limits 覆盖默认值的协议通道限制
	Limits map[reqresp.Protocol]reqresp.Limits
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return ConfigFromUnified(nil)
}

// ConfigFromUnified 从统一配置创建桥接器配置
//
// 协议限制只覆盖配置中非零的字段，其余沿用协议默认值。
// 未知协议名被忽略（统一配置的 Validate 会先拒绝它们）。
func ConfigFromUnified(cfg *config.Config) Config {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	c := Config{
		FlushInterval: cfg.Bridge.FlushInterval(),
		CacheSize:     cfg.Bridge.ReputationCacheSize,
		EnableMetrics: cfg.Bridge.EnableMetrics,
		Limits:        make(map[reqresp.Protocol]reqresp.Limits),
	}

	for name, override := range cfg.Requests.Protocols {
		p, ok := reqresp.ParseProtocol(name)
		if !ok {
			logger.Warn("忽略未知协议的限制配置", "protocol", name)
			continue
		}
		c.Limits[p] = mergeLimits(p.DefaultLimits(), override)
	}
	return c
}

func mergeLimits(l reqresp.Limits, o config.ProtocolLimitsConfig) reqresp.Limits {
	if o.MaxRequestSize > 0 {
		l.MaxRequestSize = o.MaxRequestSize
	}
	if o.MaxResponseSize > 0 {
		l.MaxResponseSize = o.MaxResponseSize
	}
	if o.RequestTimeout > 0 {
		l.RequestTimeout = o.RequestTimeout.Std()
	}
	if o.QueueSize > 0 {
		l.QueueSize = o.QueueSize
	}
	return l
}
