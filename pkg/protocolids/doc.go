// Package protocolids 定义所有请求/响应协议的唯一协议 ID 注册表。
//
// # 唯一真源原则
//
// 本包是协议 ID 的唯一权威来源。传输层注册、通道配置、测试在需要协议 ID 时，
// 必须引用本包中的常量，禁止在其他位置定义字面量。
//
// # 协议命名规范
//
//   - 请求协议: /dep2p/req/{name}/{version}
//     例如: /dep2p/req/chunk_fetching/1
//
// 版本号只有 major：请求格式的任何变化都是不兼容变化，新版本使用新的协议 ID。
package protocolids
