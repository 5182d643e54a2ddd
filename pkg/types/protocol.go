package types

import "strings"

// ProtocolID 协议标识符，格式为 "<名称>/<版本>"
type ProtocolID string

// String 返回协议 ID 的字符串表示
func (p ProtocolID) String() string {
	return string(p)
}

// Split 在最后一个 '/' 处拆分名称和版本
//
// "/dep2p/req/pov_fetching/1" 拆为 ("/dep2p/req/pov_fetching", "1")；
// 没有版本段时版本为空。
func (p ProtocolID) Split() (name, version string) {
	s := string(p)
	i := strings.LastIndexByte(s, '/')
	if i <= 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

// Name 返回不含版本的协议名称
func (p ProtocolID) Name() string {
	name, _ := p.Split()
	return name
}

// Version 返回协议版本
func (p ProtocolID) Version() string {
	_, version := p.Split()
	return version
}
