package bridge

import "errors"

var (
	// ErrRequestStreamConcluded 入站请求合并流已结束
	//
	// 所有传输通道都已关闭，节点无法再处理入站请求。
	ErrRequestStreamConcluded = errors.New("bridge: incoming request stream concluded")

	// ErrBridgeClosed 桥接器已关闭
	ErrBridgeClosed = errors.New("bridge: closed")

	// ErrAlreadyStarted 桥接器已在运行
	ErrAlreadyStarted = errors.New("bridge: already started")
)
