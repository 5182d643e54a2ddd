package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"github.com/dep2p/go-netbridge/config"
	"github.com/dep2p/go-netbridge/internal/bridge"
	"github.com/dep2p/go-netbridge/internal/bridge/multiplexer"
	"github.com/dep2p/go-netbridge/internal/reqresp"
	v1 "github.com/dep2p/go-netbridge/internal/reqresp/v1"
	"github.com/dep2p/go-netbridge/pkg/types"
)

// TestPrintChannelConfigs 测试 -list 输出
func TestPrintChannelConfigs(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Requests.Protocols = map[string]config.ProtocolLimitsConfig{
		"pov_fetching": {QueueSize: 11},
	}

	var buf bytes.Buffer
	require.NoError(t, printChannelConfigs(&buf, cfg))

	var out []channelInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, len(reqresp.All()))

	byName := make(map[string]channelInfo, len(out))
	for _, c := range out {
		byName[c.Name] = c
	}

	pov := byName[reqresp.PoVFetching.ID().String()]
	assert.Equal(t, 11, pov.QueueSize)
	assert.Equal(t, "1", pov.Version)
	assert.True(t, pov.Pooled)
	assert.False(t, byName[reqresp.StatementFetching.ID().String()].Pooled)
	assert.False(t, byName[reqresp.DisputeSending.ID().String()].Pooled)
}

// TestPrintEffectiveConfig 测试 -print-config 输出可被重新加载
func TestPrintEffectiveConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Log.Level = "debug"
	cfg.Requests.Protocols = map[string]config.ProtocolLimitsConfig{
		"chunk_fetching": {QueueSize: 9},
	}

	var buf bytes.Buffer
	require.NoError(t, printEffectiveConfig(&buf, cfg))

	parsed, err := config.FromJSON(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

// TestLoggingRouter_CancelsRequests 测试日志路由器取消请求
func TestLoggingRouter_CancelsRequests(t *testing.T) {
	pending := reqresp.NewResponseSender()
	msg := &multiplexer.PoVFetching{
		Request: reqresp.NewIncomingRequest(types.PeerID{1}, v1.PoVFetchingRequest{}, pending),
	}

	require.NoError(t, newLoggingRouter().Route(context.Background(), msg))

	_, err := pending.Wait(context.Background())
	assert.ErrorIs(t, err, reqresp.ErrRequestCanceled)
}

// TestWithheldDrains_StopClosesReceivers 测试专用接收器的消费与停止
func TestWithheldDrains_StopClosesReceivers(t *testing.T) {
	mux, cfgs := multiplexer.New()
	defer func() { _ = mux.Close() }()

	statement := bridge.TakeStatementFetching(mux)
	dispute := bridge.TakeDisputeSending(mux)
	require.NotNil(t, statement)
	require.NotNil(t, dispute)

	lc := fxtest.NewLifecycle(t)
	registerWithheldDrains(withheldParams{
		Lifecycle:         lc,
		StatementFetching: statement,
		DisputeSending:    dispute,
	})
	lc.RequireStart()

	var queue *reqresp.Sender
	for _, c := range cfgs {
		if c.Protocol == reqresp.StatementFetching {
			queue = c.InboundQueue
		}
	}
	require.NotNil(t, queue)

	req := reqresp.NewRawRequest(types.PeerID{2}, v1.StatementFetchingRequest{}.Marshal())
	require.NoError(t, queue.TrySend(req))
	_, err := req.PendingResponse.Wait(context.Background())
	assert.ErrorIs(t, err, reqresp.ErrRequestCanceled)

	// 消费 goroutine 阻塞在 Recv 上，停止时关闭接收器将其唤醒
	lc.RequireStop()
	assert.True(t, statement.IsTerminated())
	assert.True(t, dispute.IsTerminated())
}
