package bridge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dep2p/go-netbridge/config"
	"github.com/dep2p/go-netbridge/internal/reqresp"
)

// TestDefaultConfig 测试默认配置
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 30*time.Second, cfg.FlushInterval)
	assert.Equal(t, 1024, cfg.CacheSize)
	assert.True(t, cfg.EnableMetrics)
	assert.Empty(t, cfg.Limits)
}

// TestConfigFromUnified_Limits 测试协议限制覆盖只替换非零字段
func TestConfigFromUnified_Limits(t *testing.T) {
	unified := config.NewConfig()
	unified.Requests.Protocols = map[string]config.ProtocolLimitsConfig{
		"pov_fetching": {QueueSize: 3, RequestTimeout: config.Duration(2 * time.Second)},
		"unknown":      {QueueSize: 1},
	}
	unified.Bridge.ReputationFlushInterval = config.Duration(5 * time.Second)

	cfg := ConfigFromUnified(unified)
	assert.Equal(t, 5*time.Second, cfg.FlushInterval)
	assert.Len(t, cfg.Limits, 1)

	want := reqresp.PoVFetching.DefaultLimits()
	want.QueueSize = 3
	want.RequestTimeout = 2 * time.Second
	assert.Equal(t, want, cfg.Limits[reqresp.PoVFetching])
}
