package main

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/fx"
	"go.uber.org/multierr"

	"github.com/dep2p/go-netbridge/internal/bridge"
	"github.com/dep2p/go-netbridge/internal/bridge/multiplexer"
	"github.com/dep2p/go-netbridge/internal/reqresp"
	"github.com/dep2p/go-netbridge/pkg/interfaces"
	"github.com/dep2p/go-netbridge/pkg/types"
)

// loggingRouter 记录并取消每个请求
type loggingRouter struct{}

func newLoggingRouter() multiplexer.MessageRouter {
	return loggingRouter{}
}

func (loggingRouter) Route(_ context.Context, msg multiplexer.Message) error {
	logger.Info("收到入站请求",
		"protocol", msg.Protocol().String(),
		"subsystem", msg.Subsystem().String(),
		"peer", msg.Peer().ShortString())

	switch m := msg.(type) {
	case *multiplexer.ChunkFetching:
		m.Request.Cancel()
	case *multiplexer.CollationFetching:
		m.Request.Cancel()
	case *multiplexer.PoVFetching:
		m.Request.Cancel()
	case *multiplexer.AvailableDataFetching:
		m.Request.Cancel()
	}
	return nil
}

// loggingReporter 只记录信誉变更
type loggingReporter struct{}

func newLoggingReporter() interfaces.PeerReporter {
	return loggingReporter{}
}

func (loggingReporter) ReportPeer(peer types.PeerID, change types.ReputationChange) {
	logger.Info("节点信誉变更",
		"peer", peer.ShortString(),
		"value", change.Value,
		"reason", change.Reason)
}

// withheldParams 专用接收器
type withheldParams struct {
	fx.In

	Lifecycle         fx.Lifecycle
	StatementFetching *bridge.StatementFetchingReceiver
	DisputeSending    *bridge.DisputeSendingReceiver
}

// registerWithheldDrains 在没有专用子系统时消费两个专用接收器
//
// 接收器归这里所有，停止时关闭接收器以结束消费 goroutine。
func registerWithheldDrains(p withheldParams) {
	var wg sync.WaitGroup

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if p.StatementFetching != nil {
				wg.Add(1)
				go func() {
					defer wg.Done()
					drain(p.StatementFetching.Protocol(), p.StatementFetching.Recv)
				}()
			}
			if p.DisputeSending != nil {
				wg.Add(1)
				go func() {
					defer wg.Done()
					drain(p.DisputeSending.Protocol(), p.DisputeSending.Recv)
				}()
			}
			return nil
		},
		OnStop: func(context.Context) error {
			var errs error
			if p.StatementFetching != nil {
				errs = multierr.Append(errs, p.StatementFetching.Close())
			}
			if p.DisputeSending != nil {
				errs = multierr.Append(errs, p.DisputeSending.Close())
			}
			wg.Wait()
			return errs
		},
	})
}

// drain 逐个接收并取消请求，直到接收器关闭
func drain[T any](p reqresp.Protocol, recv func(context.Context) (*reqresp.IncomingRequest[T], error)) {
	for {
		req, err := recv(context.Background())
		var derr *reqresp.DecodeError
		switch {
		case err == nil:
			logger.Info("收到专用协议请求", "protocol", p.String(), "peer", req.Peer.ShortString())
			req.Cancel()
		case errors.As(err, &derr):
			logger.Debug("专用协议请求解码失败", "protocol", p.String(), "peer", derr.Peer.ShortString())
		default:
			return
		}
	}
}
