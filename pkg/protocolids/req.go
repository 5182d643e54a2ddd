package protocolids

import (
	"strings"

	"github.com/dep2p/go-netbridge/pkg/types"
)

// ReqPrefix 请求/响应协议前缀
const ReqPrefix = "/dep2p/req/"

// ReqChunkFetching 纠删码分片获取
const ReqChunkFetching types.ProtocolID = "/dep2p/req/chunk_fetching/1"

// ReqCollationFetching 整理块（collation）获取
const ReqCollationFetching types.ProtocolID = "/dep2p/req/collation_fetching/1"

// ReqPoVFetching 有效性证明（PoV）获取
const ReqPoVFetching types.ProtocolID = "/dep2p/req/pov_fetching/1"

// ReqAvailableDataFetching 完整可用数据获取
const ReqAvailableDataFetching types.ProtocolID = "/dep2p/req/available_data_fetching/1"

// ReqStatementFetching 大语句（statement）获取
const ReqStatementFetching types.ProtocolID = "/dep2p/req/statement_fetching/1"

// ReqDisputeSending 争议投票发送
const ReqDisputeSending types.ProtocolID = "/dep2p/req/dispute_sending/1"

// AllReq 返回全部请求协议 ID（注册顺序）
func AllReq() []types.ProtocolID {
	return []types.ProtocolID{
		ReqChunkFetching,
		ReqCollationFetching,
		ReqPoVFetching,
		ReqAvailableDataFetching,
		ReqStatementFetching,
		ReqDisputeSending,
	}
}

// IsRequestProtocol 检查是否为请求/响应协议
func IsRequestProtocol(id types.ProtocolID) bool {
	return strings.HasPrefix(string(id), ReqPrefix)
}

// ReqShortName 返回请求协议的短名（去掉前缀和版本）
//
// 例如 "/dep2p/req/chunk_fetching/1" 返回 "chunk_fetching"。
// 非请求协议返回空串。
func ReqShortName(id types.ProtocolID) string {
	if !IsRequestProtocol(id) {
		return ""
	}
	return strings.TrimPrefix(id.Name(), ReqPrefix)
}
