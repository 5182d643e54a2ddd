package types

import (
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPeerID(b byte) PeerID {
	var id PeerID
	for i := range id {
		id[i] = b + byte(i)
	}
	return id
}

// TestPeerID_String 测试 Base58 表示
func TestPeerID_String(t *testing.T) {
	id := testPeerID(1)

	decoded, err := base58.Decode(id.String())
	require.NoError(t, err)
	assert.Equal(t, id[:], decoded)
	assert.Len(t, id.ShortString(), 8)
	assert.Equal(t, id.String()[:8], id.ShortString())
}

// TestPeerID_Empty 测试空 ID
func TestPeerID_Empty(t *testing.T) {
	assert.True(t, EmptyPeerID.IsEmpty())
	assert.Equal(t, "", EmptyPeerID.String())
	assert.Equal(t, "", EmptyPeerID.ShortString())
	assert.False(t, testPeerID(7).IsEmpty())
}

// TestHashFromBytes 测试哈希构造
func TestHashFromBytes(t *testing.T) {
	_, err := HashFromBytes(make([]byte, 31))
	assert.ErrorIs(t, err, ErrInvalidHash)

	b := make([]byte, 32)
	b[0] = 0xab
	h, err := HashFromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, "0xab", h.String()[:4])
}
