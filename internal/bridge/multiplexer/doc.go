// Package multiplexer 合并入站请求通道
//
// # 架构定位
//
// 传输层为每个请求协议填充一个有界通道。Multiplexer 持有除语句获取、
// 争议发送以外的全部接收端，以轮询方式公平地读取，解码成封闭的 Message
// 变体集合，交给网络桥的消息路由。语句获取与争议发送的接收端在构造时被取出，
// 由专用子系统直接驱动（TakeStatementFetching / TakeDisputeSending，各只能取一次）。
//
// # 读取语义
//
//	mux, cfgs := multiplexer.New()
//	transport.Register(cfgs...)
//
//	for {
//	    msg, err := mux.Next(ctx)
//	    var merr *multiplexer.MultiplexError
//	    switch {
//	    case errors.As(err, &merr):
//	        // 惩罚 merr.Peer，流继续
//	    case errors.Is(err, multiplexer.ErrEndOfStream):
//	        // 永久结束，恢复需要重新构造并重新注册
//	    case err != nil:
//	        // ctx 结束
//	    default:
//	        router.Route(ctx, msg)
//	    }
//	}
//
// 任何一个被合并的通道关闭，整个流立即结束，即使其他通道仍有缓冲请求：
// 所有通道共享同一个关闭生命周期。
//
// Next 只允许单个调用者；Multiplexer 内部没有锁。
package multiplexer
