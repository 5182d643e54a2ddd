package v1

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/dep2p/go-netbridge/pkg/types"
)

// ============================================================================
//                              编码
// ============================================================================

// Marshal 编码分片请求
func (r ChunkFetchingRequest) Marshal() []byte {
	b := appendHash(nil, 1, r.CandidateHash)
	return appendUint32(b, 2, uint32(r.Index))
}

// Marshal 编码整理块请求
func (r CollationFetchingRequest) Marshal() []byte {
	b := appendHash(nil, 1, r.RelayParent)
	return appendUint32(b, 2, uint32(r.ParaID))
}

// Marshal 编码 PoV 请求
func (r PoVFetchingRequest) Marshal() []byte {
	return appendHash(nil, 1, r.CandidateHash)
}

// Marshal 编码可用数据请求
func (r AvailableDataFetchingRequest) Marshal() []byte {
	return appendHash(nil, 1, r.CandidateHash)
}

// Marshal 编码语句请求
func (r StatementFetchingRequest) Marshal() []byte {
	b := appendHash(nil, 1, r.RelayParent)
	return appendHash(b, 2, r.CandidateHash)
}

// Marshal 编码投票
func (v Vote) Marshal() []byte {
	b := appendUint32(nil, 1, uint32(v.Validator))
	if len(v.Signature) == 0 {
		return b
	}
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	return protowire.AppendBytes(b, v.Signature)
}

// Marshal 编码争议请求
func (r DisputeRequest) Marshal() []byte {
	b := appendHash(nil, 1, r.CandidateHash)
	b = appendUint32(b, 2, uint32(r.Session))
	b = protowire.AppendTag(b, 3, protowire.BytesType)
	b = protowire.AppendBytes(b, r.ValidVote.Marshal())
	b = protowire.AppendTag(b, 4, protowire.BytesType)
	return protowire.AppendBytes(b, r.InvalidVote.Marshal())
}

func appendHash(b []byte, num protowire.Number, h types.Hash) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, h[:])
}

// appendUint32 零值不编码
func appendUint32(b []byte, num protowire.Number, v uint32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

// ============================================================================
//                              解码
// ============================================================================

// DecodeChunkFetchingRequest 解码分片请求
func DecodeChunkFetchingRequest(b []byte) (ChunkFetchingRequest, error) {
	var r ChunkFetchingRequest
	err := decodeMessage(b, fieldSet{
		1: required(hashField(&r.CandidateHash)),
		2: optional(uint32Field((*uint32)(&r.Index))),
	})
	return r, err
}

// DecodeCollationFetchingRequest 解码整理块请求
func DecodeCollationFetchingRequest(b []byte) (CollationFetchingRequest, error) {
	var r CollationFetchingRequest
	err := decodeMessage(b, fieldSet{
		1: required(hashField(&r.RelayParent)),
		2: optional(uint32Field((*uint32)(&r.ParaID))),
	})
	return r, err
}

// DecodePoVFetchingRequest 解码 PoV 请求
func DecodePoVFetchingRequest(b []byte) (PoVFetchingRequest, error) {
	var r PoVFetchingRequest
	err := decodeMessage(b, fieldSet{
		1: required(hashField(&r.CandidateHash)),
	})
	return r, err
}

// DecodeAvailableDataFetchingRequest 解码可用数据请求
func DecodeAvailableDataFetchingRequest(b []byte) (AvailableDataFetchingRequest, error) {
	var r AvailableDataFetchingRequest
	err := decodeMessage(b, fieldSet{
		1: required(hashField(&r.CandidateHash)),
	})
	return r, err
}

// DecodeStatementFetchingRequest 解码语句请求
func DecodeStatementFetchingRequest(b []byte) (StatementFetchingRequest, error) {
	var r StatementFetchingRequest
	err := decodeMessage(b, fieldSet{
		1: required(hashField(&r.RelayParent)),
		2: required(hashField(&r.CandidateHash)),
	})
	return r, err
}

// DecodeDisputeRequest 解码争议请求
func DecodeDisputeRequest(b []byte) (DisputeRequest, error) {
	var r DisputeRequest
	err := decodeMessage(b, fieldSet{
		1: required(hashField(&r.CandidateHash)),
		2: optional(uint32Field((*uint32)(&r.Session))),
		3: required(voteField(&r.ValidVote)),
		4: required(voteField(&r.InvalidVote)),
	})
	return r, err
}

func decodeVote(b []byte) (Vote, error) {
	var v Vote
	err := decodeMessage(b, fieldSet{
		1: optional(uint32Field((*uint32)(&v.Validator))),
		2: optional(func(typ protowire.Type, b []byte) (int, error) {
			if typ != protowire.BytesType {
				return 0, malformed("signature: wire type %d", typ)
			}
			sig, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return 0, malformed("signature: %v", protowire.ParseError(n))
			}
			v.Signature = append([]byte(nil), sig...)
			return n, nil
		}),
	})
	return v, err
}

// fieldDecoder 解码单个字段的值，返回消耗的字节数
type fieldDecoder func(typ protowire.Type, b []byte) (int, error)

// field 字段解码器；optional 字段缺失时保持零值
type field struct {
	decode   fieldDecoder
	optional bool
}

func required(dec fieldDecoder) field { return field{decode: dec} }

func optional(dec fieldDecoder) field { return field{decode: dec, optional: true} }

// fieldSet 按字段编号索引的已知字段
type fieldSet map[protowire.Number]field

func decodeMessage(b []byte, fields fieldSet) error {
	seen := make(map[protowire.Number]bool, len(fields))
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return malformed("tag: %v", protowire.ParseError(n))
		}
		b = b[n:]

		f, known := fields[num]
		if !known {
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return malformed("field %d: %v", num, protowire.ParseError(m))
			}
			b = b[m:]
			continue
		}
		if seen[num] {
			return malformed("field %d: duplicated", num)
		}
		m, err := f.decode(typ, b)
		if err != nil {
			return err
		}
		seen[num] = true
		b = b[m:]
	}
	for num, f := range fields {
		if !f.optional && !seen[num] {
			return malformed("field %d: missing", num)
		}
	}
	return nil
}

func hashField(dst *types.Hash) fieldDecoder {
	return func(typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.BytesType {
			return 0, malformed("hash: wire type %d", typ)
		}
		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return 0, malformed("hash: %v", protowire.ParseError(n))
		}
		h, err := types.HashFromBytes(v)
		if err != nil {
			return 0, malformed("hash: %d bytes", len(v))
		}
		*dst = h
		return n, nil
	}
}

func uint32Field(dst *uint32) fieldDecoder {
	return func(typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.VarintType {
			return 0, malformed("uint32: wire type %d", typ)
		}
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return 0, malformed("uint32: %v", protowire.ParseError(n))
		}
		if v > math.MaxUint32 {
			return 0, malformed("uint32: overflow %d", v)
		}
		*dst = uint32(v)
		return n, nil
	}
}

func voteField(dst *Vote) fieldDecoder {
	return func(typ protowire.Type, b []byte) (int, error) {
		if typ != protowire.BytesType {
			return 0, malformed("vote: wire type %d", typ)
		}
		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return 0, malformed("vote: %v", protowire.ParseError(n))
		}
		vote, err := decodeVote(v)
		if err != nil {
			return 0, err
		}
		*dst = vote
		return n, nil
	}
}
