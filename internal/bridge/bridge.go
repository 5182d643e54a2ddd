package bridge

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/dep2p/go-netbridge/internal/bridge/multiplexer"
	"github.com/dep2p/go-netbridge/pkg/interfaces"
	"github.com/dep2p/go-netbridge/pkg/lib/log"
)

var logger = log.Logger("bridge")

// Bridge 入站请求合并流的消费者
//
// 把解码后的请求交给 MessageRouter，把畸形请求折算为来源节点的信誉惩罚，
// 并周期性上报汇总的信誉变更。
type Bridge struct {
	mux        *multiplexer.Multiplexer
	router     multiplexer.MessageRouter
	reputation *ReputationAggregator
	metrics    *Metrics
	clock      clock.Clock
	interval   time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	runErr  error
	closed  bool
	started bool
}

// Option 桥接器选项
type Option func(*Bridge)

// WithClock 使用指定时钟驱动刷新循环
func WithClock(c clock.Clock) Option {
	return func(b *Bridge) {
		b.clock = c
	}
}

// WithMetrics 记录到指定指标
func WithMetrics(m *Metrics) Option {
	return func(b *Bridge) {
		b.metrics = m
	}
}

// New 创建桥接器
func New(mux *multiplexer.Multiplexer, router multiplexer.MessageRouter, reporter interfaces.PeerReporter, cfg Config, opts ...Option) (*Bridge, error) {
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = DefaultConfig().FlushInterval
	}
	reputation, err := NewReputationAggregator(reporter, cfg.CacheSize)
	if err != nil {
		return nil, err
	}

	b := &Bridge{
		mux:        mux,
		router:     router,
		reputation: reputation,
		clock:      clock.New(),
		interval:   cfg.FlushInterval,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Reputation 返回信誉汇总器
func (b *Bridge) Reputation() *ReputationAggregator {
	return b.reputation
}

// Run 消费合并流直到流结束或 ctx 结束
//
// 流结束时返回 ErrRequestStreamConcluded，ctx 结束时返回 ctx.Err()。
// 返回前上报所有尚未上报的信誉变更。Run 只能有一个调用方。
func (b *Bridge) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return b.multiplexLoop(gctx)
	})
	g.Go(func() error {
		return b.flushLoop(gctx)
	})

	err := g.Wait()
	b.reputation.Flush()
	return err
}

// multiplexLoop 逐条处理合并流
func (b *Bridge) multiplexLoop(ctx context.Context) error {
	for {
		msg, err := b.mux.Next(ctx)
		if err == nil {
			b.route(ctx, msg)
			continue
		}

		var merr *multiplexer.MultiplexError
		switch {
		case errors.As(err, &merr):
			logger.Debug("入站请求解码失败",
				"protocol", merr.Protocol.String(),
				"peer", merr.Peer.ShortString(),
				"error", merr.Err)
			b.metrics.observeDecodeFailure(merr.Protocol)
			b.reputation.Modify(merr.Peer, interfaces.CostMalformedMessage)
		case errors.Is(err, multiplexer.ErrEndOfStream):
			logger.Warn("入站请求合并流已结束")
			b.metrics.observeConcluded()
			return ErrRequestStreamConcluded
		default:
			return err
		}
	}
}

func (b *Bridge) route(ctx context.Context, msg multiplexer.Message) {
	p := msg.Protocol()
	b.metrics.observeRequest(p)
	if err := b.router.Route(ctx, msg); err != nil {
		b.metrics.observeRouteFailure(p)
		logger.Warn("路由入站请求失败",
			"protocol", p.String(),
			"subsystem", msg.Subsystem().String(),
			"peer", msg.Peer().ShortString(),
			"error", err)
	}
}

// flushLoop 按间隔上报汇总的信誉变更
func (b *Bridge) flushLoop(ctx context.Context) error {
	ticker := b.clock.Ticker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := b.reputation.Flush(); n > 0 {
				logger.Debug("已上报汇总的信誉变更", "peers", n)
			}
		}
	}
}

// Start 在后台运行 Run
func (b *Bridge) Start(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrBridgeClosed
	}
	if b.started {
		return ErrAlreadyStarted
	}
	b.started = true

	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.done = make(chan struct{})
	go func() {
		defer close(b.done)
		err := b.Run(ctx)
		if errors.Is(err, ErrRequestStreamConcluded) {
			logger.Error("入站请求处理已停止", "error", err)
		}
		b.mu.Lock()
		b.runErr = err
		b.mu.Unlock()
	}()

	logger.Info("桥接器已启动", "protocols", len(b.mux.Protocols()))
	return nil
}

// Stop 停止后台运行并关闭桥接器
//
// 流已自行结束时返回 ErrRequestStreamConcluded 与关闭错误的组合。
func (b *Bridge) Stop(ctx context.Context) error {
	b.mu.Lock()
	cancel, done := b.cancel, b.done
	b.mu.Unlock()

	var errs error
	if cancel != nil {
		cancel()
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}

		b.mu.Lock()
		runErr := b.runErr
		b.mu.Unlock()
		if errors.Is(runErr, ErrRequestStreamConcluded) {
			errs = runErr
		}
	}

	errs = multierr.Append(errs, b.Close())
	logger.Info("桥接器已停止")
	return errs
}

// Close 关闭多路复用器
//
// 取走的专用接收器归各自的子系统所有，不随桥接器关闭。
// 不得与 Run 并发调用；使用 Start 时应调用 Stop。
func (b *Bridge) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrBridgeClosed
	}
	b.closed = true
	b.mu.Unlock()

	err := b.mux.Close()
	b.reputation.Flush()
	return err
}
