package multiplexer

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/multierr"

	"github.com/dep2p/go-netbridge/internal/reqresp"
	"github.com/dep2p/go-netbridge/pkg/lib/log"
)

var logger = log.Logger("bridge/multiplexer")

// errPending 本轮扫描没有就绪的通道
var errPending = errors.New("multiplexer: pending")

// entry 参与合并的一个通道
type entry struct {
	protocol reqresp.Protocol
	rx       *reqresp.Receiver
}

// Multiplexer 入站请求多路复用器
type Multiplexer struct {
	receivers []entry
	nextPoll  int
	finished  bool
	closed    bool

	// wake 所有合并通道共享的唤醒信号
	wake chan struct{}

	statementFetching atomic.Pointer[reqresp.Receiver]
	disputeSending    atomic.Pointer[reqresp.Receiver]
}

// Option 构造选项
type Option func(*options)

type options struct {
	limits map[reqresp.Protocol]reqresp.Limits
}

// WithLimits 覆盖指定协议的通道限制
func WithLimits(limits map[reqresp.Protocol]reqresp.Limits) Option {
	return func(o *options) {
		for p, l := range limits {
			o.limits[p] = l
		}
	}
}

// New 为全部已注册协议创建通道，返回多路复用器和出站通道配置
//
// 配置按协议注册顺序排列，必须原样交给传输层注册。
// 语句获取或争议发送协议缺失属于构建期配置错误，直接 panic。
func New(opts ...Option) (*Multiplexer, []reqresp.Config) {
	m, cfgs, err := newWithProtocols(reqresp.All(), opts...)
	if err != nil {
		panic(err)
	}
	return m, cfgs
}

func newWithProtocols(protocols []reqresp.Protocol, opts ...Option) (*Multiplexer, []reqresp.Config, error) {
	o := options{limits: make(map[reqresp.Protocol]reqresp.Limits)}
	for _, opt := range opts {
		opt(&o)
	}

	receivers := make([]entry, 0, len(protocols))
	cfgs := make([]reqresp.Config, 0, len(protocols))
	for _, p := range protocols {
		limits, ok := o.limits[p]
		if !ok {
			limits = p.DefaultLimits()
		}
		rx, cfg := p.ConfigWith(limits)
		receivers = append(receivers, entry{protocol: p, rx: rx})
		cfgs = append(cfgs, cfg)
	}

	statementFetching, receivers, err := remove(receivers, reqresp.StatementFetching)
	if err != nil {
		return nil, nil, err
	}
	disputeSending, receivers, err := remove(receivers, reqresp.DisputeSending)
	if err != nil {
		return nil, nil, err
	}

	m := &Multiplexer{
		receivers: receivers,
		wake:      make(chan struct{}, 1),
	}
	m.statementFetching.Store(statementFetching)
	m.disputeSending.Store(disputeSending)
	for _, e := range receivers {
		e.rx.Notify(m.wake)
	}

	logger.Debug("请求多路复用器已创建",
		"pooled", len(receivers),
		"configs", len(cfgs))

	return m, cfgs, nil
}

// remove 从池中取出指定协议的接收端，保持其余顺序
func remove(receivers []entry, p reqresp.Protocol) (*reqresp.Receiver, []entry, error) {
	for i, e := range receivers {
		if e.protocol == p {
			return e.rx, append(receivers[:i], receivers[i+1:]...), nil
		}
	}
	return nil, receivers, fmt.Errorf("%w: %s", ErrMissingProtocol, p)
}

// TakeStatementFetching 取出语句获取请求的接收端
//
// 只有第一次调用返回非 nil。
func (m *Multiplexer) TakeStatementFetching() *reqresp.Receiver {
	return m.statementFetching.Swap(nil)
}

// TakeDisputeSending 取出争议发送请求的接收端
//
// 只有第一次调用返回非 nil。
func (m *Multiplexer) TakeDisputeSending() *reqresp.Receiver {
	return m.disputeSending.Swap(nil)
}

// Next 返回合并流的下一项
//
// 返回值：
//   - Message, nil: 一个解码后的请求
//   - nil, *MultiplexError: 畸形请求，流继续
//   - nil, ErrEndOfStream: 流已永久结束
//   - nil, ctx.Err(): 等待期间 ctx 结束，流未结束，游标保持不变
func (m *Multiplexer) Next(ctx context.Context) (Message, error) {
	for {
		msg, err := m.poll()
		if !errors.Is(err, errPending) {
			return msg, err
		}

		select {
		case <-m.wake:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// poll 从游标开始按轮询顺序扫描一遍
func (m *Multiplexer) poll() (Message, error) {
	n := len(m.receivers)
	if n == 0 || m.closed {
		m.finished = true
		return nil, ErrEndOfStream
	}

	i := m.nextPoll
	for count := n; count > 0; count-- {
		e := m.receivers[i%n]
		// 提前返回，不移动游标
		if e.rx.IsTerminated() {
			m.finish(e.protocol)
			return nil, ErrEndOfStream
		}
		i++

		raw, status := e.rx.TryRecv()
		switch status {
		case reqresp.RecvEmpty:
			continue
		case reqresp.RecvClosed:
			m.finish(e.protocol)
			return nil, ErrEndOfStream
		}

		m.nextPoll = i % n
		logger.Debug("收到入站请求",
			"protocol", e.protocol.String(),
			"peer", raw.Peer.ShortString(),
			"requestID", log.TruncateID(raw.ID.String(), 8))
		return multiplexSingle(e.protocol, raw)
	}

	m.nextPoll = i % n
	return nil, errPending
}

func (m *Multiplexer) finish(p reqresp.Protocol) {
	if !m.finished {
		logger.Info("入站请求通道已关闭，合并流结束", "protocol", p.String())
	}
	m.finished = true
}

// IsFinished 下一次 Next 是否会立即返回 ErrEndOfStream
//
// 按 Next 的扫描顺序检查：在遇到有缓冲请求的通道之前遇到已关闭的通道即为 true。
// 无副作用。Next 返回过 ErrEndOfStream 之后始终为 true；没有合并通道时为 true。
func (m *Multiplexer) IsFinished() bool {
	n := len(m.receivers)
	if n == 0 || m.finished || m.closed {
		return true
	}
	for k := 0; k < n; k++ {
		rx := m.receivers[(m.nextPoll+k)%n].rx
		switch {
		case rx.IsTerminated(), rx.IsDrained():
			return true
		case rx.Len() > 0:
			return false
		}
	}
	return false
}

// Protocols 返回参与合并的协议（轮询顺序）
func (m *Multiplexer) Protocols() []reqresp.Protocol {
	out := make([]reqresp.Protocol, 0, len(m.receivers))
	for _, e := range m.receivers {
		out = append(out, e.protocol)
	}
	return out
}

// Close 关闭多路复用器
//
// 关闭所有仍持有的接收端（包括未被取走的两个专用接收端），
// 缓冲中未交付请求的响应槽被取消。之后 Next 返回 ErrEndOfStream。
// 不得与 Next 并发调用。
func (m *Multiplexer) Close() error {
	if m.closed {
		return ErrMultiplexerClosed
	}
	m.closed = true
	m.finished = true

	var errs error
	for _, e := range m.receivers {
		errs = multierr.Append(errs, closeReceiver(e.rx))
	}
	errs = multierr.Append(errs, closeReceiver(m.TakeStatementFetching()))
	errs = multierr.Append(errs, closeReceiver(m.TakeDisputeSending()))

	logger.Debug("请求多路复用器已关闭")
	return errs
}

// closeReceiver 关闭接收端；已由他处关闭的接收端不算错误
func closeReceiver(rx *reqresp.Receiver) error {
	if rx == nil {
		return nil
	}
	if err := rx.Close(); err != nil && !errors.Is(err, reqresp.ErrReceiverClosed) {
		return err
	}
	return nil
}
