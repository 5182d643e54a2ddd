package bridge

import (
	"github.com/dep2p/go-netbridge/internal/bridge/multiplexer"
	"github.com/dep2p/go-netbridge/internal/reqresp"
	v1 "github.com/dep2p/go-netbridge/internal/reqresp/v1"
)

// StatementFetchingReceiver 语句获取请求的类型化接收器
//
// 由语句分发子系统直接驱动，不经过合并流。
type StatementFetchingReceiver struct {
	*reqresp.IncomingReceiver[v1.StatementFetchingRequest]
}

// DisputeSendingReceiver 争议发送请求的类型化接收器
//
// 由争议分发子系统直接驱动，不经过合并流。
type DisputeSendingReceiver struct {
	*reqresp.IncomingReceiver[v1.DisputeRequest]
}

// TakeStatementFetching 从多路复用器取出语句获取接收器
//
// 已被取走时返回 nil。
func TakeStatementFetching(m *multiplexer.Multiplexer) *StatementFetchingReceiver {
	rx := m.TakeStatementFetching()
	if rx == nil {
		return nil
	}
	return &StatementFetchingReceiver{
		reqresp.NewIncomingReceiver(reqresp.StatementFetching, rx, v1.DecodeStatementFetchingRequest),
	}
}

// TakeDisputeSending 从多路复用器取出争议发送接收器
//
// 已被取走时返回 nil。
func TakeDisputeSending(m *multiplexer.Multiplexer) *DisputeSendingReceiver {
	rx := m.TakeDisputeSending()
	if rx == nil {
		return nil
	}
	return &DisputeSendingReceiver{
		reqresp.NewIncomingReceiver(reqresp.DisputeSending, rx, v1.DecodeDisputeRequest),
	}
}
