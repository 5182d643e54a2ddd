package types

import "errors"

// ErrInvalidHash 无效的哈希
var ErrInvalidHash = errors.New("invalid hash: must be 32 bytes")
