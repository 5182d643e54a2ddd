package reqresp

import (
	"errors"
	"fmt"

	"github.com/dep2p/go-netbridge/pkg/types"
)

// 错误定义
var (
	// ErrQueueFull 入站队列已满
	ErrQueueFull = errors.New("reqresp: inbound queue full")

	// ErrChannelClosed 通道已关闭
	ErrChannelClosed = errors.New("reqresp: channel closed")

	// ErrReceiverClosed 接收端已关闭
	ErrReceiverClosed = errors.New("reqresp: receiver closed")

	// ErrResponseAlreadySent 响应已发送或已取消
	ErrResponseAlreadySent = errors.New("reqresp: response already sent or canceled")

	// ErrRequestCanceled 响应槽被丢弃
	ErrRequestCanceled = errors.New("reqresp: request canceled")

	// ErrRequestTimeout 等待响应超时
	ErrRequestTimeout = errors.New("reqresp: request timeout")

	// ErrRequestRefused 处理方拒绝了请求
	ErrRequestRefused = errors.New("reqresp: request refused")

	// ErrRequestTooLarge 请求超过协议上限
	ErrRequestTooLarge = errors.New("reqresp: request too large")

	// ErrResponseTooLarge 响应超过协议上限
	ErrResponseTooLarge = errors.New("reqresp: response too large")

	// ErrInvalidFrame 无效的长度前缀帧
	ErrInvalidFrame = errors.New("reqresp: invalid frame")

	// ErrNoInboundQueue 配置缺少入站队列
	ErrNoInboundQueue = errors.New("reqresp: config has no inbound queue")
)

// DecodeError 请求解码失败
//
// 携带来源节点，消费者据此惩罚发送畸形请求的节点。
type DecodeError struct {
	Peer     types.PeerID
	Protocol Protocol
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("reqresp: decode %s request from %s: %v", e.Protocol, e.Peer.ShortString(), e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
