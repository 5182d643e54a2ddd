// Package types 定义 netbridge 的基础类型
//
// 这是整个系统的最底层包，不依赖任何其他内部包。
// 所有类型都是纯值类型，用于在各模块间传递数据。
//
// # 文件组织
//
//   - ids.go        - PeerID, Hash
//   - protocol.go   - ProtocolID
//   - reputation.go - ReputationChange 及惩罚级别
//   - errors.go     - 公共错误定义
package types
