// Package bridge 消费入站请求合并流
//
// 组件：
//   - multiplexer/      - 合并各协议入站通道的多路复用器
//   - Bridge            - 驱动合并流，把请求交给 MessageRouter
//   - ReputationAggregator - 汇总畸形请求带来的信誉惩罚并周期上报
//   - Metrics           - Prometheus 指标
//   - Module            - Fx 模块
//
// 语句获取和争议发送两个协议不进入合并流，它们的接收器以
// StatementFetchingReceiver / DisputeSendingReceiver 的形式直接交给专用子系统。
//
// # 使用示例
//
//	app := fx.New(
//	    fx.Supply(cfg),
//	    fx.Provide(newRouter, newReporter),
//	    bridge.Module(),
//	    fx.Invoke(func(cfgs []reqresp.Config) { transport.Register(cfgs) }),
//	)
package bridge
