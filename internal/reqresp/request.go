package reqresp

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dep2p/go-netbridge/pkg/lib/log"
	"github.com/dep2p/go-netbridge/pkg/types"
)

var logger = log.Logger("reqresp")

// RawRequest 原始入站请求
//
// 由传输层产生一次，并且只被消费一次：解码后转交子系统，
// 或在解码失败时丢弃（取消响应槽）。
type RawRequest struct {
	// ID 请求 ID，仅用于日志关联
	ID uuid.UUID

	// Peer 来源节点
	Peer types.PeerID

	// Payload 未解码的请求载荷
	Payload []byte

	// PendingResponse 一次性响应槽
	PendingResponse *ResponseSender
}

// NewRawRequest 创建原始请求并分配响应槽
func NewRawRequest(peer types.PeerID, payload []byte) *RawRequest {
	return &RawRequest{
		ID:              uuid.New(),
		Peer:            peer,
		Payload:         payload,
		PendingResponse: NewResponseSender(),
	}
}

// OutgoingResponse 发往远端的响应
type OutgoingResponse struct {
	// Payload 编码后的响应
	Payload []byte

	// Err 非空时远端收到失败应答，Payload 被忽略
	Err error

	// ReputationChanges 随响应一并上报的信誉变更
	ReputationChanges []types.ReputationChange
}

// ============================================================================
//                              ResponseSender
// ============================================================================

// ResponseSender 一次性响应槽
//
// Send 与 Cancel 只有第一次调用生效。传输层通过 Wait 观察结果：
// 被取消的槽表现为 ErrRequestCanceled。
type ResponseSender struct {
	once sync.Once
	ch   chan OutgoingResponse
}

// NewResponseSender 创建响应槽
func NewResponseSender() *ResponseSender {
	return &ResponseSender{ch: make(chan OutgoingResponse, 1)}
}

// Send 发送响应
func (s *ResponseSender) Send(resp OutgoingResponse) error {
	if s == nil {
		return ErrResponseAlreadySent
	}
	sent := false
	s.once.Do(func() {
		s.ch <- resp
		close(s.ch)
		sent = true
	})
	if !sent {
		return ErrResponseAlreadySent
	}
	return nil
}

// Cancel 丢弃响应槽，远端看到请求被取消
func (s *ResponseSender) Cancel() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		close(s.ch)
	})
}

// Wait 等待响应（传输层使用）
func (s *ResponseSender) Wait(ctx context.Context) (OutgoingResponse, error) {
	select {
	case resp, ok := <-s.ch:
		if !ok {
			return OutgoingResponse{}, ErrRequestCanceled
		}
		return resp, nil
	case <-ctx.Done():
		return OutgoingResponse{}, ctx.Err()
	}
}

// ============================================================================
//                              IncomingRequest
// ============================================================================

// IncomingRequest 解码后的类型化请求
type IncomingRequest[T any] struct {
	// Peer 来源节点
	Peer types.PeerID

	// Payload 解码后的请求
	Payload T

	// PendingResponse 一次性响应槽
	PendingResponse *ResponseSender
}

// NewIncomingRequest 创建类型化请求
func NewIncomingRequest[T any](peer types.PeerID, payload T, pending *ResponseSender) *IncomingRequest[T] {
	return &IncomingRequest[T]{
		Peer:            peer,
		Payload:         payload,
		PendingResponse: pending,
	}
}

// SendResponse 发送成功响应
func (r *IncomingRequest[T]) SendResponse(payload []byte) error {
	return r.PendingResponse.Send(OutgoingResponse{Payload: payload})
}

// SendOutgoingResponse 发送完整响应（可携带错误和信誉变更）
func (r *IncomingRequest[T]) SendOutgoingResponse(resp OutgoingResponse) error {
	return r.PendingResponse.Send(resp)
}

// Cancel 放弃应答
func (r *IncomingRequest[T]) Cancel() {
	r.PendingResponse.Cancel()
}
