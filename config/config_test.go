package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfig 测试创建默认配置
func TestNewConfig(t *testing.T) {
	cfg := NewConfig()
	require.NotNil(t, cfg)
	assert.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.Requests.Protocols)
	assert.Equal(t, 30*time.Second, cfg.Bridge.FlushInterval())
}

// TestFromJSON 测试从 JSON 加载
func TestFromJSON(t *testing.T) {
	data := []byte(`{
		"requests": {"protocols": {"pov_fetching": {"queue_size": 20, "request_timeout": "2s"}}},
		"bridge": {"reputation_flush_interval": "10s"},
		"log": {"level": "debug"}
	}`)

	cfg, err := FromJSON(data)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	pov := cfg.Requests.Protocols["pov_fetching"]
	assert.Equal(t, 20, pov.QueueSize)
	assert.Equal(t, 2*time.Second, pov.RequestTimeout.Std())
	assert.Equal(t, 10*time.Second, cfg.Bridge.FlushInterval())
	assert.Equal(t, "debug", cfg.Log.Level)

	// 未出现的字段保留默认值
	assert.Equal(t, DefaultBridgeConfig().ReputationCacheSize, cfg.Bridge.ReputationCacheSize)
	assert.Equal(t, "text", cfg.Log.Format)
}

// TestFromJSON_Invalid 测试非法 JSON
func TestFromJSON_Invalid(t *testing.T) {
	_, err := FromJSON([]byte(`{"bridge": {"reputation_flush_interval": "soon"}}`))
	assert.Error(t, err)

	_, err = FromJSON([]byte(`not json`))
	assert.Error(t, err)
}

// TestDuration_JSON 测试时长的两种 JSON 形式
func TestDuration_JSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1m30s"`), &d))
	assert.Equal(t, 90*time.Second, d.Std())

	require.NoError(t, json.Unmarshal([]byte(`1000000`), &d))
	assert.Equal(t, time.Millisecond, d.Std())

	out, err := json.Marshal(Duration(3 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"3s"`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}

// TestRequestsConfig_Validate 测试协议限制覆盖的验证
func TestRequestsConfig_Validate(t *testing.T) {
	t.Run("Known", func(t *testing.T) {
		c := RequestsConfig{Protocols: map[string]ProtocolLimitsConfig{
			"chunk_fetching": {QueueSize: 10},
		}}
		assert.NoError(t, c.Validate())
	})

	t.Run("Unknown", func(t *testing.T) {
		c := RequestsConfig{Protocols: map[string]ProtocolLimitsConfig{
			"block_fetching": {QueueSize: 10},
		}}
		assert.ErrorIs(t, c.Validate(), ErrUnknownProtocol)
	})

	t.Run("Negative", func(t *testing.T) {
		c := RequestsConfig{Protocols: map[string]ProtocolLimitsConfig{
			"pov_fetching": {QueueSize: -1},
		}}
		assert.Error(t, c.Validate())
	})
}

// TestKnownProtocols 测试可配置的协议短名
func TestKnownProtocols(t *testing.T) {
	names := KnownProtocols()
	assert.Len(t, names, 6)
	assert.Contains(t, names, "chunk_fetching")
	assert.Contains(t, names, "dispute_sending")
	assert.IsIncreasing(t, names)
}

// TestBridgeConfig_Validate 测试桥接器配置验证
func TestBridgeConfig_Validate(t *testing.T) {
	c := DefaultBridgeConfig()
	assert.NoError(t, c.Validate())

	c.ReputationFlushInterval = 0
	assert.Error(t, c.Validate())

	c = DefaultBridgeConfig()
	c.ReputationCacheSize = 0
	assert.Error(t, c.Validate())
}

// TestLogConfig_Validate 测试日志配置验证
func TestLogConfig_Validate(t *testing.T) {
	c := DefaultLogConfig()
	assert.NoError(t, c.Validate())

	c.Level = "verbose"
	assert.Error(t, c.Validate())

	c = DefaultLogConfig()
	c.Format = "xml"
	assert.Error(t, c.Validate())
}

// TestValidateAndFix 测试自动修复
func TestValidateAndFix(t *testing.T) {
	cfg := NewConfig()
	cfg.Bridge.ReputationFlushInterval = 0
	cfg.Bridge.ReputationCacheSize = -5
	cfg.Log.Level = ""

	fixed, err := ValidateAndFix(cfg)
	require.NoError(t, err)
	assert.Equal(t, DefaultBridgeConfig().ReputationFlushInterval, fixed.Bridge.ReputationFlushInterval)
	assert.Equal(t, DefaultBridgeConfig().ReputationCacheSize, fixed.Bridge.ReputationCacheSize)
	assert.Equal(t, "info", fixed.Log.Level)

	// 原配置不变
	assert.Equal(t, -5, cfg.Bridge.ReputationCacheSize)

	cfg.Requests.Protocols = map[string]ProtocolLimitsConfig{"nope": {}}
	_, err = ValidateAndFix(cfg)
	assert.ErrorIs(t, err, ErrUnknownProtocol)

	_, err = ValidateAndFix(nil)
	assert.ErrorIs(t, err, ErrNilConfig)
}

// TestCloneConfig 测试深拷贝
func TestCloneConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Requests.Protocols = map[string]ProtocolLimitsConfig{"pov_fetching": {QueueSize: 3}}

	cloned := CloneConfig(cfg)
	cloned.Requests.Protocols["pov_fetching"] = ProtocolLimitsConfig{QueueSize: 99}

	assert.Equal(t, 3, cfg.Requests.Protocols["pov_fetching"].QueueSize)
	assert.Nil(t, CloneConfig(nil))
}

// TestLoadFile 测试读取配置文件
func TestLoadFile(t *testing.T) {
	cfg := NewConfig()
	cfg.Log.Level = "warn"
	data, err := ToJSON(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "netbridge.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = ToJSON(nil)
	assert.ErrorIs(t, err, ErrNilConfig)
}

// TestLoadFile_FixesZeroValues 测试配置文件中的零值被修复为默认值
func TestLoadFile_FixesZeroValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "netbridge.json")
	data := []byte(`{"bridge": {"reputation_flush_interval": "0s", "reputation_cache_size": 0}, "log": {"level": ""}}`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultBridgeConfig().ReputationFlushInterval, loaded.Bridge.ReputationFlushInterval)
	assert.Equal(t, DefaultBridgeConfig().ReputationCacheSize, loaded.Bridge.ReputationCacheSize)
	assert.Equal(t, DefaultLogConfig().Level, loaded.Log.Level)

	bad := []byte(`{"requests": {"protocols": {"nope": {}}}}`)
	require.NoError(t, os.WriteFile(path, bad, 0o600))
	_, err = LoadFile(path)
	assert.ErrorIs(t, err, ErrUnknownProtocol)
}
