package reqresp

import (
	"context"
	"errors"

	"github.com/dep2p/go-netbridge/pkg/lib/log"
)

// DecodeFunc 协议解码函数
type DecodeFunc[T any] func(payload []byte) (T, error)

// IncomingReceiver 类型化请求接收器
//
// 包装一个不参与合并的 Receiver（语句获取、争议发送），
// 由专用子系统直接驱动。解码失败时取消响应槽并返回 *DecodeError，
// 接收器本身仍可继续使用。
type IncomingReceiver[T any] struct {
	protocol Protocol
	rx       *Receiver
	decode   DecodeFunc[T]
}

// NewIncomingReceiver 创建类型化接收器
func NewIncomingReceiver[T any](p Protocol, rx *Receiver, decode DecodeFunc[T]) *IncomingReceiver[T] {
	return &IncomingReceiver[T]{
		protocol: p,
		rx:       rx,
		decode:   decode,
	}
}

// Protocol 返回接收器所属协议
func (r *IncomingReceiver[T]) Protocol() Protocol {
	return r.protocol
}

// Recv 接收并解码下一个请求
//
// 通道关闭后返回 ErrReceiverClosed。
func (r *IncomingReceiver[T]) Recv(ctx context.Context) (*IncomingRequest[T], error) {
	raw, err := r.rx.Recv(ctx)
	if err != nil {
		if errors.Is(err, ErrChannelClosed) {
			return nil, ErrReceiverClosed
		}
		return nil, err
	}

	payload, err := r.decode(raw.Payload)
	if err != nil {
		raw.PendingResponse.Cancel()
		logger.Debug("丢弃无法解码的请求",
			"protocol", r.protocol.String(),
			"peer", raw.Peer.ShortString(),
			"requestID", log.TruncateID(raw.ID.String(), 8),
			"error", err)
		return nil, &DecodeError{Peer: raw.Peer, Protocol: r.protocol, Err: err}
	}

	return NewIncomingRequest(raw.Peer, payload, raw.PendingResponse), nil
}

// IsTerminated 底层接收端是否已关闭
func (r *IncomingReceiver[T]) IsTerminated() bool {
	return r.rx.IsTerminated()
}

// Close 关闭底层接收端
//
// 可以与阻塞中的 Recv 并发调用，后者返回 ErrReceiverClosed。
func (r *IncomingReceiver[T]) Close() error {
	return r.rx.Close()
}
