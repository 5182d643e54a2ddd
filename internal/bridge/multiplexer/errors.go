package multiplexer

import (
	"errors"
	"fmt"

	"github.com/dep2p/go-netbridge/internal/reqresp"
	"github.com/dep2p/go-netbridge/pkg/types"
)

var (
	// ErrEndOfStream 合并流已永久结束
	ErrEndOfStream = errors.New("multiplexer: end of stream")

	// ErrMultiplexerClosed 多路复用器已关闭
	ErrMultiplexerClosed = errors.New("multiplexer: closed")

	// ErrMissingProtocol 不参与合并的协议未注册
	ErrMissingProtocol = errors.New("multiplexer: withheld protocol not registered")
)

// MultiplexError 请求解码失败
//
// 只影响当前请求，合并流继续。
type MultiplexError struct {
	// Peer 发送畸形请求的节点
	Peer types.PeerID

	// Protocol 请求所属协议
	Protocol reqresp.Protocol

	// Err 解码错误
	Err error
}

func (e *MultiplexError) Error() string {
	return fmt.Sprintf("multiplexer: invalid %s request from %s: %v", e.Protocol, e.Peer, e.Err)
}

func (e *MultiplexError) Unwrap() error {
	return e.Err
}
