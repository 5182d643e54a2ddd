package config

import "errors"

var (
	// ErrNilConfig 配置为 nil
	ErrNilConfig = errors.New("config: config is nil")

	// ErrUnknownProtocol 配置中出现未知的请求协议名
	ErrUnknownProtocol = errors.New("config: unknown request protocol")
)
