package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/dep2p/go-netbridge/pkg/types"
)

func testHash(b byte) types.Hash {
	var h types.Hash
	for i := range h {
		h[i] = b
	}
	return h
}

// TestChunkFetchingRequest_Decode 测试分片请求编解码
func TestChunkFetchingRequest_Decode(t *testing.T) {
	req := ChunkFetchingRequest{CandidateHash: testHash(1), Index: 42}

	got, err := DecodeChunkFetchingRequest(req.Marshal())
	require.NoError(t, err)
	assert.Equal(t, req, got)
}

// TestDisputeRequest_Decode 测试嵌套投票编解码
func TestDisputeRequest_Decode(t *testing.T) {
	req := DisputeRequest{
		CandidateHash: testHash(9),
		Session:       7,
		ValidVote:     Vote{Validator: 1, Signature: []byte{1, 2, 3}},
		InvalidVote:   Vote{Validator: 2, Signature: []byte{4, 5, 6}},
	}

	got, err := DecodeDisputeRequest(req.Marshal())
	require.NoError(t, err)
	assert.Equal(t, req, got)
}

// TestDecode_ZeroScalarsOmitted 测试零值整数和空签名不编码，缺失时解码为零值
func TestDecode_ZeroScalarsOmitted(t *testing.T) {
	req := ChunkFetchingRequest{CandidateHash: testHash(4)}
	b := req.Marshal()
	assert.Equal(t, appendHash(nil, 1, testHash(4)), b)

	got, err := DecodeChunkFetchingRequest(b)
	require.NoError(t, err)
	assert.Equal(t, req, got)

	dispute := DisputeRequest{CandidateHash: testHash(5), InvalidVote: Vote{Validator: 3}}
	decoded, err := DecodeDisputeRequest(dispute.Marshal())
	require.NoError(t, err)
	assert.Equal(t, testHash(5), decoded.CandidateHash)
	assert.Equal(t, SessionIndex(0), decoded.Session)
	assert.Equal(t, ValidatorIndex(0), decoded.ValidVote.Validator)
	assert.Empty(t, decoded.ValidVote.Signature)
	assert.Equal(t, ValidatorIndex(3), decoded.InvalidVote.Validator)
}

// TestDecode_SkipsUnknownFields 测试未知字段被跳过
func TestDecode_SkipsUnknownFields(t *testing.T) {
	b := PoVFetchingRequest{CandidateHash: testHash(3)}.Marshal()
	b = protowire.AppendTag(b, 15, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte("future extension"))

	got, err := DecodePoVFetchingRequest(b)
	require.NoError(t, err)
	assert.Equal(t, testHash(3), got.CandidateHash)
}

// TestDecode_Malformed 测试畸形载荷
func TestDecode_Malformed(t *testing.T) {
	shortHash := protowire.AppendTag(nil, 1, protowire.BytesType)
	shortHash = protowire.AppendBytes(shortHash, []byte{1, 2, 3})

	wrongType := protowire.AppendTag(nil, 1, protowire.VarintType)
	wrongType = protowire.AppendVarint(wrongType, 5)

	full := StatementFetchingRequest{RelayParent: testHash(1), CandidateHash: testHash(2)}.Marshal()

	overflow := appendHash(nil, 1, testHash(1))
	overflow = protowire.AppendTag(overflow, 2, protowire.VarintType)
	overflow = protowire.AppendVarint(overflow, 1<<40)

	tests := []struct {
		name   string
		decode func([]byte) error
		input  []byte
	}{
		{"empty", func(b []byte) error { _, err := DecodeAvailableDataFetchingRequest(b); return err }, nil},
		{"garbage", func(b []byte) error { _, err := DecodeChunkFetchingRequest(b); return err }, []byte{0xff, 0xff, 0xff}},
		{"short hash", func(b []byte) error { _, err := DecodePoVFetchingRequest(b); return err }, shortHash},
		{"wrong wire type", func(b []byte) error { _, err := DecodePoVFetchingRequest(b); return err }, wrongType},
		{"missing hash", func(b []byte) error { _, err := DecodeCollationFetchingRequest(b); return err }, CollationFetchingRequest{ParaID: 2000}.Marshal()[34:]},
		{"missing vote", func(b []byte) error { _, err := DecodeDisputeRequest(b); return err }, appendHash(nil, 1, testHash(1))},
		{"truncated", func(b []byte) error { _, err := DecodeStatementFetchingRequest(b); return err }, full[:len(full)-4]},
		{"uint32 overflow", func(b []byte) error { _, err := DecodeChunkFetchingRequest(b); return err }, overflow},
		{"duplicated field", func(b []byte) error { _, err := DecodePoVFetchingRequest(b); return err }, append(appendHash(nil, 1, testHash(1)), appendHash(nil, 1, testHash(2))...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.decode(tt.input), ErrMalformed)
		})
	}
}
