package reqresp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/benbjohnson/clock"
	"github.com/multiformats/go-varint"

	"github.com/dep2p/go-netbridge/pkg/lib/log"
	"github.com/dep2p/go-netbridge/pkg/types"
)

// InboundOption ServeInbound 选项
type InboundOption func(*inboundOptions)

type inboundOptions struct {
	clock clock.Clock
}

// WithClock 指定时钟（测试使用 clock.NewMock）
func WithClock(c clock.Clock) InboundOption {
	return func(o *inboundOptions) {
		o.clock = c
	}
}

// ServeInbound 处理一条入站请求流
//
// 帧格式: uvarint(len) || payload。读取一个请求帧，投递到 cfg.InboundQueue，
// 在 cfg.RequestTimeout 内等待本地应答，再以同样的帧格式写回响应。
// 返回错误时调用方应当重置流，远端会看到请求失败。
func ServeInbound(ctx context.Context, cfg Config, peer types.PeerID, stream io.ReadWriter, opts ...InboundOption) error {
	if cfg.InboundQueue == nil {
		return ErrNoInboundQueue
	}
	o := inboundOptions{clock: clock.New()}
	for _, opt := range opts {
		opt(&o)
	}

	payload, err := readFrame(bufio.NewReader(stream), cfg.MaxRequestSize)
	if err != nil {
		return err
	}

	req := NewRawRequest(peer, payload)

	// 超时必须在投递之前开始计时
	waitCtx, cancel := o.clock.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()

	if err := cfg.InboundQueue.TrySend(req); err != nil {
		logger.Debug("入站请求投递失败",
			"protocol", cfg.Name,
			"peer", peer.ShortString(),
			"error", err)
		return err
	}

	resp, err := req.PendingResponse.Wait(waitCtx)
	if err != nil {
		req.PendingResponse.Cancel()
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			logger.Debug("等待应答超时",
				"protocol", cfg.Name,
				"peer", peer.ShortString(),
				"requestID", log.TruncateID(req.ID.String(), 8),
				"timeout", cfg.RequestTimeout)
			return ErrRequestTimeout
		}
		return err
	}

	if resp.Err != nil {
		return fmt.Errorf("%w: %v", ErrRequestRefused, resp.Err)
	}
	if uint64(len(resp.Payload)) > cfg.MaxResponseSize {
		return fmt.Errorf("%w: %d > %d", ErrResponseTooLarge, len(resp.Payload), cfg.MaxResponseSize)
	}
	return writeFrame(stream, resp.Payload)
}

func readFrame(r *bufio.Reader, limit uint64) ([]byte, error) {
	size, err := varint.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrame, err)
	}
	if size > limit {
		return nil, fmt.Errorf("%w: %d > %d", ErrRequestTooLarge, size, limit)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrame, err)
	}
	return buf, nil
}

func writeFrame(w io.Writer, payload []byte) error {
	frame := append(varint.ToUvarint(uint64(len(payload))), payload...)
	if _, err := w.Write(frame); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
