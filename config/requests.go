package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dep2p/go-netbridge/pkg/protocolids"
)

// RequestsConfig 请求协议通道配置
type RequestsConfig struct {
	// Protocols 按协议短名覆盖通道限制
	//
	// 键为协议短名，例如 "chunk_fetching"、"pov_fetching"。
	// 未出现的协议使用内置默认值。
	Protocols map[string]ProtocolLimitsConfig `json:"protocols,omitempty"`
}

// ProtocolLimitsConfig 单个协议的通道限制覆盖
//
// 零值字段表示沿用默认值。
type ProtocolLimitsConfig struct {
	// MaxRequestSize 请求载荷上限（字节）
	MaxRequestSize uint64 `json:"max_request_size,omitempty"`

	// MaxResponseSize 响应载荷上限（字节）
	MaxResponseSize uint64 `json:"max_response_size,omitempty"`

	// RequestTimeout 等待本地应答的最长时间
	RequestTimeout Duration `json:"request_timeout,omitempty"`

	// QueueSize 入站队列容量
	QueueSize int `json:"queue_size,omitempty"`
}

// DefaultRequestsConfig 返回默认请求配置（无覆盖）
func DefaultRequestsConfig() RequestsConfig {
	return RequestsConfig{}
}

// KnownProtocols 返回可在配置中使用的协议短名（已排序）
func KnownProtocols() []string {
	ids := protocolids.AllReq()
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, protocolids.ReqShortName(id))
	}
	sort.Strings(names)
	return names
}

func isKnownProtocol(name string) bool {
	for _, id := range protocolids.AllReq() {
		if protocolids.ReqShortName(id) == name {
			return true
		}
	}
	return false
}

// Validate 验证请求配置
func (c RequestsConfig) Validate() error {
	for name, limits := range c.Protocols {
		if !isKnownProtocol(name) {
			return fmt.Errorf("%w: %q", ErrUnknownProtocol, name)
		}
		if err := limits.Validate(); err != nil {
			return fmt.Errorf("config: protocol %s: %w", name, err)
		}
	}
	return nil
}

// Validate 验证单个协议的限制覆盖
func (c ProtocolLimitsConfig) Validate() error {
	if c.RequestTimeout < 0 {
		return errors.New("request timeout must not be negative")
	}
	if c.QueueSize < 0 {
		return errors.New("queue size must not be negative")
	}
	return nil
}
