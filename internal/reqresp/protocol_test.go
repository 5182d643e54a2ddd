package reqresp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-netbridge/pkg/protocolids"
)

// TestAll_RegistrationOrder 测试协议顺序与线上名称一致
func TestAll_RegistrationOrder(t *testing.T) {
	all := All()
	require.Len(t, all, len(protocolids.AllReq()))

	for i, p := range all {
		assert.Equal(t, Protocol(i), p)
		assert.Equal(t, protocolids.AllReq()[i], p.ID())
		assert.True(t, p.IsValid())
	}
}

// TestProtocol_DefaultLimits 测试默认限制有效
func TestProtocol_DefaultLimits(t *testing.T) {
	for _, p := range All() {
		l := p.DefaultLimits()
		assert.Positive(t, l.MaxRequestSize, p.String())
		assert.Positive(t, l.MaxResponseSize, p.String())
		assert.Positive(t, l.RequestTimeout, p.String())
		assert.Positive(t, l.QueueSize, p.String())
	}
	assert.Equal(t, DisputeRequestTimeout, DisputeSending.DefaultLimits().RequestTimeout)
}

// TestProtocol_Invalid 测试越界协议
func TestProtocol_Invalid(t *testing.T) {
	p := Protocol(99)
	assert.False(t, p.IsValid())
	assert.Equal(t, "protocol(99)", p.String())
	assert.Empty(t, p.ID())
	assert.Equal(t, Limits{}, p.DefaultLimits())
}

// TestParseProtocol 测试按名称查找
func TestParseProtocol(t *testing.T) {
	p, ok := ParseProtocol("pov_fetching")
	require.True(t, ok)
	assert.Equal(t, PoVFetching, p)

	p, ok = ParseProtocol(string(protocolids.ReqDisputeSending))
	require.True(t, ok)
	assert.Equal(t, DisputeSending, p)

	_, ok = ParseProtocol("unknown")
	assert.False(t, ok)
}

// TestProtocol_Config 测试工厂返回连通的通道
func TestProtocol_Config(t *testing.T) {
	rx, cfg := CollationFetching.Config()

	assert.Equal(t, CollationFetching, cfg.Protocol)
	assert.Equal(t, protocolids.ReqCollationFetching, cfg.Name)
	assert.Equal(t, CollationFetching.DefaultLimits(), cfg.Limits)
	require.NotNil(t, cfg.InboundQueue)

	require.NoError(t, cfg.InboundQueue.TrySend(NewRawRequest(testPeer(1), []byte("x"))))
	req, status := rx.TryRecv()
	require.Equal(t, RecvReady, status)
	assert.Equal(t, []byte("x"), req.Payload)
}

// TestProtocol_ConfigWithQueueSize 测试自定义队列容量
func TestProtocol_ConfigWithQueueSize(t *testing.T) {
	limits := ChunkFetching.DefaultLimits()
	limits.QueueSize = 1
	_, cfg := ChunkFetching.ConfigWith(limits)

	require.NoError(t, cfg.InboundQueue.TrySend(NewRawRequest(testPeer(1), nil)))
	assert.ErrorIs(t, cfg.InboundQueue.TrySend(NewRawRequest(testPeer(1), nil)), ErrQueueFull)
}
