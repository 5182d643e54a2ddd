package types

import (
	"encoding/hex"

	"github.com/mr-tron/base58"
)

// ============================================================================
//                              PeerID - 节点标识
// ============================================================================

// PeerID 远端节点唯一标识符
//
// 由节点公钥派生，用于请求来源归属和信誉惩罚。
//
// 外部表示格式：
//   - String(): Base58 编码
//   - ShortString(): Base58 前 8 个字符（日志简短标识）
type PeerID [32]byte

// EmptyPeerID 空节点 ID
var EmptyPeerID PeerID

// String 返回 PeerID 的 Base58 字符串表示
func (id PeerID) String() string {
	if id.IsEmpty() {
		return ""
	}
	return base58.Encode(id[:])
}

// ShortString 返回 PeerID 的短字符串表示
func (id PeerID) ShortString() string {
	s := id.String()
	if len(s) > 8 {
		return s[:8]
	}
	return s
}

// IsEmpty 检查 PeerID 是否为空
func (id PeerID) IsEmpty() bool {
	return id == EmptyPeerID
}

// ============================================================================
//                              Hash - 哈希
// ============================================================================

// Hash 32 字节哈希（候选哈希、中继父块哈希等）
type Hash [32]byte

// String 返回十六进制表示
func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// HashFromBytes 从字节切片创建 Hash
func HashFromBytes(b []byte) (Hash, error) {
	if len(b) != len(Hash{}) {
		return Hash{}, ErrInvalidHash
	}
	var h Hash
	copy(h[:], b)
	return h, nil
}
