package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestProtocolID_Parts 测试协议 ID 的名称和版本
func TestProtocolID_Parts(t *testing.T) {
	tests := []struct {
		id      ProtocolID
		name    string
		version string
	}{
		{"/dep2p/req/chunk_fetching/1", "/dep2p/req/chunk_fetching", "1"},
		{"/dep2p/req/dispute_sending/2", "/dep2p/req/dispute_sending", "2"},
		{"/simple", "/simple", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			name, version := tt.id.Split()
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.version, version)
			assert.Equal(t, tt.name, tt.id.Name())
			assert.Equal(t, tt.version, tt.id.Version())
			assert.Equal(t, string(tt.id), tt.id.String())
		})
	}
}

// TestReputationChange 测试信誉变更级别
func TestReputationChange(t *testing.T) {
	assert.Less(t, CostMajor("x").Value, CostMinor("x").Value)
	assert.Less(t, CostMinor("x").Value, int32(0))
	assert.Greater(t, BenefitMinor("x").Value, int32(0))

	assert.True(t, Malicious("x").IsMalicious())
	assert.False(t, CostMajor("x").IsMalicious())
	assert.Equal(t, "x", Malicious("x").Reason)
}
