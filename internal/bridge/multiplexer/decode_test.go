package multiplexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dep2p/go-netbridge/internal/reqresp"
)

func isWithheld(p reqresp.Protocol) bool {
	return p == reqresp.StatementFetching || p == reqresp.DisputeSending
}

// TestDecoders_Exhaustive 每个参与合并的协议都有解码函数，专用协议没有
func TestDecoders_Exhaustive(t *testing.T) {
	for _, p := range reqresp.All() {
		_, ok := decoders[p]
		assert.Equal(t, !isWithheld(p), ok, p.String())
	}
	assert.Len(t, decoders, len(reqresp.All())-2)
}

// TestMultiplexSingle_Variants 每个协议解码为对应变体并路由到正确子系统
func TestMultiplexSingle_Variants(t *testing.T) {
	want := map[reqresp.Protocol]Subsystem{
		reqresp.ChunkFetching:         SubsystemAvailabilityDistribution,
		reqresp.CollationFetching:     SubsystemCollatorProtocol,
		reqresp.PoVFetching:           SubsystemAvailabilityDistribution,
		reqresp.AvailableDataFetching: SubsystemAvailabilityRecovery,
	}

	for p, subsystem := range want {
		raw := reqresp.NewRawRequest(testPeer(2), validPayload(t, p, 5))
		msg, err := multiplexSingle(p, raw)
		require.NoError(t, err, p.String())
		assert.Equal(t, p, msg.Protocol())
		assert.Equal(t, subsystem, msg.Subsystem())
		assert.Equal(t, testPeer(2), msg.Peer())
	}
}

// TestMultiplexSingle_ReplySinkKept 解码成功时响应槽随消息交付
func TestMultiplexSingle_ReplySinkKept(t *testing.T) {
	raw := reqresp.NewRawRequest(testPeer(1), validPayload(t, reqresp.AvailableDataFetching, 1))
	msg, err := multiplexSingle(reqresp.AvailableDataFetching, raw)
	require.NoError(t, err)

	data := msg.(*AvailableDataFetching)
	assert.Same(t, raw.PendingResponse, data.Request.PendingResponse)
	require.NoError(t, data.Request.SendResponse([]byte("data")))
}

// TestMultiplexSingle_WithheldPanics 专用协议进入合并流属于内部不变量破坏
func TestMultiplexSingle_WithheldPanics(t *testing.T) {
	raw := reqresp.NewRawRequest(testPeer(1), nil)
	assert.Panics(t, func() { _, _ = multiplexSingle(reqresp.StatementFetching, raw) })
	assert.Panics(t, func() { _, _ = multiplexSingle(reqresp.DisputeSending, raw) })
	assert.Panics(t, func() { _, _ = multiplexSingle(reqresp.Protocol(42), raw) })
}

// TestSubsystem_String 测试子系统名称
func TestSubsystem_String(t *testing.T) {
	assert.Equal(t, "collator-protocol", SubsystemCollatorProtocol.String())
	assert.Equal(t, "unknown", Subsystem(9).String())
}
