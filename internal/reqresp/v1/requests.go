package v1

import "github.com/dep2p/go-netbridge/pkg/types"

// ValidatorIndex 验证者在会话中的索引
type ValidatorIndex uint32

// ParaID 平行链 ID
type ParaID uint32

// SessionIndex 会话索引
type SessionIndex uint32

// ChunkFetchingRequest 请求某个候选块的一个纠删码分片
type ChunkFetchingRequest struct {
	CandidateHash types.Hash
	Index         ValidatorIndex
}

// CollationFetchingRequest 向整理者请求整理块
type CollationFetchingRequest struct {
	RelayParent types.Hash
	ParaID      ParaID
}

// PoVFetchingRequest 请求候选块的有效性证明
type PoVFetchingRequest struct {
	CandidateHash types.Hash
}

// AvailableDataFetchingRequest 请求候选块的完整可用数据
type AvailableDataFetchingRequest struct {
	CandidateHash types.Hash
}

// StatementFetchingRequest 请求超出 gossip 大小限制的语句
type StatementFetchingRequest struct {
	RelayParent   types.Hash
	CandidateHash types.Hash
}

// Vote 一张签名投票
type Vote struct {
	Validator ValidatorIndex
	Signature []byte
}

// DisputeRequest 发送一对相互冲突的投票以发起争议
type DisputeRequest struct {
	CandidateHash types.Hash
	Session       SessionIndex
	ValidVote     Vote
	InvalidVote   Vote
}
