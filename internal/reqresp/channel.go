package reqresp

import (
	"context"
	"sync"
	"sync/atomic"
)

// RecvStatus 非阻塞接收的结果
type RecvStatus int

const (
	// RecvEmpty 暂无可读请求
	RecvEmpty RecvStatus = iota
	// RecvReady 读到一个请求
	RecvReady
	// RecvClosed 通道已永久关闭且没有缓冲请求
	RecvClosed
)

// channelState 发送端与接收端共享的状态
//
// 发送端在读锁下投递，关闭操作持写锁，保证关闭后不会再有请求进入缓冲区。
type channelState struct {
	mu             sync.RWMutex
	senderClosed   bool
	receiverClosed bool

	// closed 在接收端 Close 时关闭，唤醒阻塞在 Recv 上的消费者
	closed chan struct{}

	waker atomic.Pointer[chan<- struct{}]
}

func (st *channelState) wake() {
	if w := st.waker.Load(); w != nil {
		select {
		case *w <- struct{}{}:
		default:
		}
	}
}

// NewChannel 创建有界请求通道
//
// capacity 小于 1 时按 1 处理。
func NewChannel(capacity int) (*Sender, *Receiver) {
	if capacity < 1 {
		capacity = 1
	}
	ch := make(chan *RawRequest, capacity)
	st := &channelState{closed: make(chan struct{})}
	return &Sender{ch: ch, st: st}, &Receiver{ch: ch, st: st}
}

// ============================================================================
//                              Sender
// ============================================================================

// Sender 通道发送端，由传输层持有，可被多个连接并发使用
type Sender struct {
	ch chan *RawRequest
	st *channelState
}

// TrySend 非阻塞投递请求
//
// 队列已满返回 ErrQueueFull，传输层应当拒绝该请求；发送端永远不会因消费者阻塞。
func (s *Sender) TrySend(req *RawRequest) error {
	s.st.mu.RLock()
	defer s.st.mu.RUnlock()

	if s.st.senderClosed {
		return ErrChannelClosed
	}
	if s.st.receiverClosed {
		return ErrReceiverClosed
	}

	select {
	case s.ch <- req:
	default:
		return ErrQueueFull
	}
	s.st.wake()
	return nil
}

// Close 关闭发送端
//
// 已缓冲的请求仍可被读取，读尽后接收端观察到关闭。重复调用无效果。
func (s *Sender) Close() {
	s.st.mu.Lock()
	if s.st.senderClosed {
		s.st.mu.Unlock()
		return
	}
	s.st.senderClosed = true
	close(s.ch)
	s.st.mu.Unlock()

	s.st.wake()
}

// Len 返回当前缓冲的请求数
func (s *Sender) Len() int {
	return len(s.ch)
}

// ============================================================================
//                              Receiver
// ============================================================================

// Receiver 通道接收端，只允许单个消费者读取
//
// Close 可以在其他 goroutine 中调用，阻塞中的 Recv 会立即返回 ErrChannelClosed。
type Receiver struct {
	ch         chan *RawRequest
	st         *channelState
	terminated atomic.Bool
}

// TryRecv 非阻塞读取
func (r *Receiver) TryRecv() (*RawRequest, RecvStatus) {
	if r.terminated.Load() {
		return nil, RecvClosed
	}
	select {
	case req, ok := <-r.ch:
		if !ok {
			r.terminated.Store(true)
			return nil, RecvClosed
		}
		if req = r.accept(req); req == nil {
			return nil, RecvClosed
		}
		return req, RecvReady
	default:
		return nil, RecvEmpty
	}
}

// Recv 阻塞读取，直到有请求、通道关闭或 ctx 结束
func (r *Receiver) Recv(ctx context.Context) (*RawRequest, error) {
	if r.terminated.Load() {
		return nil, ErrChannelClosed
	}
	select {
	case req, ok := <-r.ch:
		if !ok {
			r.terminated.Store(true)
			return nil, ErrChannelClosed
		}
		if req = r.accept(req); req == nil {
			return nil, ErrChannelClosed
		}
		return req, nil
	case <-r.st.closed:
		return nil, ErrChannelClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// accept 与 Close 竞争读到的请求按已丢弃处理
func (r *Receiver) accept(req *RawRequest) *RawRequest {
	if !r.terminated.Load() {
		return req
	}
	req.PendingResponse.Cancel()
	return nil
}

// IsTerminated 是否已观察到关闭
//
// 只有在读取返回关闭或接收端被 Close 之后才为 true；无副作用。
func (r *Receiver) IsTerminated() bool {
	return r.terminated.Load()
}

// IsDrained 发送端已关闭且没有缓冲请求
//
// 为 true 时下一次读取必然返回关闭；无副作用。
func (r *Receiver) IsDrained() bool {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()
	return r.st.senderClosed && len(r.ch) == 0
}

// Notify 注册唤醒通道
//
// 每次投递和发送端关闭时向 c 做一次非阻塞发送。c 应当带 1 个缓冲，
// 多个接收端可以共享同一个唤醒通道。
func (r *Receiver) Notify(c chan<- struct{}) {
	r.st.waker.Store(&c)
}

// Len 返回当前缓冲的请求数
func (r *Receiver) Len() int {
	return len(r.ch)
}

// Close 关闭接收端
//
// 之后的投递返回 ErrReceiverClosed；已缓冲请求的响应槽被取消，
// 传输层会把它们报告为已取消。重复调用返回 ErrReceiverClosed。
func (r *Receiver) Close() error {
	r.st.mu.Lock()
	if r.st.receiverClosed {
		r.st.mu.Unlock()
		return ErrReceiverClosed
	}
	r.st.receiverClosed = true
	r.terminated.Store(true)
	close(r.st.closed)
	r.st.mu.Unlock()

	dropped := 0
	for {
		select {
		case req, ok := <-r.ch:
			if !ok {
				logDropped(dropped)
				return nil
			}
			req.PendingResponse.Cancel()
			dropped++
		default:
			logDropped(dropped)
			return nil
		}
	}
}

func logDropped(n int) {
	if n > 0 {
		logger.Debug("接收端关闭，丢弃缓冲请求", "count", n)
	}
}
