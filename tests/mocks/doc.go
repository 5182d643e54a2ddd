// Package mocks 提供测试用的 Mock 实现
//
// # gomock 生成的 Mock
//
//   - MockMessageRouter: 模拟 multiplexer.MessageRouter
//   - MockPeerReporter: 模拟 interfaces.PeerReporter
//
// 由接口文件中的 go:generate 指令生成，接口变更后重新执行 go generate。
//
// # 手写的测试替身
//
//   - RecordingReporter: 记录全部信誉上报，可并发使用
//
// # 使用示例
//
//	ctrl := gomock.NewController(t)
//	router := mocks.NewMockMessageRouter(ctrl)
//	router.EXPECT().Route(gomock.Any(), gomock.Any()).Return(nil).Times(2)
package mocks
