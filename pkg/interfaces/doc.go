// Package interfaces 定义 netbridge 与外部协作方的接口
//
// 接口文件：
//   - reputation.go     - 节点信誉变更的上报方（节点管理层）
//
// 实现方由使用者提供。消息路由接口随消息类型定义在 internal/bridge/multiplexer。
package interfaces
