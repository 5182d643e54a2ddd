// Package reqresp 实现请求/响应协议的入站通道
//
// # 架构定位
//
// 传输层为每个已注册的请求协议持有一个 Sender，解码前的原始请求通过有界通道
// 投递到对应的 Receiver。通道的消费端由 bridge/multiplexer 统一合并，
// 或者（语句获取、争议发送两个协议）直接交给专用子系统。
//
// # 核心类型
//
//   - Protocol: 封闭的协议枚举，迭代顺序即注册顺序
//   - Config: 交给传输层原样注册的出站通道配置
//   - Sender / Receiver: 有界多生产者单消费者通道
//   - RawRequest: 原始入站请求（载荷 + 来源节点 + 一次性响应槽）
//   - ResponseSender: 一次性响应槽，丢弃即视为取消
//   - IncomingRequest[T]: 解码后的类型化请求
//   - IncomingReceiver[T]: 专用子系统使用的解码接收器
//
// # 使用示例
//
//	rx, cfg := reqresp.ChunkFetching.Config()
//	transport.Register(cfg)
//
//	for {
//	    req, err := rx.Recv(ctx)
//	    if err != nil {
//	        return err
//	    }
//	    ...
//	}
package reqresp
