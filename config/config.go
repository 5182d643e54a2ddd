// Package config 提供 netbridge 的统一配置
//
// 配置分为三部分：
//   - Requests: 各请求协议的通道限制覆盖
//   - Bridge: 合并流消费者（信誉汇总、刷新间隔）
//   - Log: 日志级别、格式和输出
//
// 配置以 JSON 持久化，时长字段使用 Duration（"30s" 形式）。
package config

// Config netbridge 配置
type Config struct {
	// Requests 请求协议通道配置
	Requests RequestsConfig `json:"requests"`

	// Bridge 桥接器配置
	Bridge BridgeConfig `json:"bridge"`

	// Log 日志配置
	Log LogConfig `json:"log"`
}

// NewConfig 创建默认配置
//
// 默认配置不覆盖任何协议限制，全部协议使用内置默认值。
func NewConfig() *Config {
	return &Config{
		Requests: DefaultRequestsConfig(),
		Bridge:   DefaultBridgeConfig(),
		Log:      DefaultLogConfig(),
	}
}

// Validate 验证配置的有效性
func (c *Config) Validate() error {
	if err := c.Requests.Validate(); err != nil {
		return err
	}
	if err := c.Bridge.Validate(); err != nil {
		return err
	}
	return c.Log.Validate()
}
