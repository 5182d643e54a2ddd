package multiplexer

import (
	"fmt"

	"github.com/dep2p/go-netbridge/internal/reqresp"
	v1 "github.com/dep2p/go-netbridge/internal/reqresp/v1"
)

// decodeFunc 把原始请求解码为 Message
type decodeFunc func(raw *reqresp.RawRequest) (Message, error)

// decoders 参与合并的协议的解码表
//
// 不参与合并的协议不在表中。
var decoders = map[reqresp.Protocol]decodeFunc{
	reqresp.ChunkFetching: func(raw *reqresp.RawRequest) (Message, error) {
		req, err := decodeIncoming(raw, v1.DecodeChunkFetchingRequest)
		if err != nil {
			return nil, err
		}
		return &ChunkFetching{Request: req}, nil
	},
	reqresp.CollationFetching: func(raw *reqresp.RawRequest) (Message, error) {
		req, err := decodeIncoming(raw, v1.DecodeCollationFetchingRequest)
		if err != nil {
			return nil, err
		}
		return &CollationFetching{Request: req}, nil
	},
	reqresp.PoVFetching: func(raw *reqresp.RawRequest) (Message, error) {
		req, err := decodeIncoming(raw, v1.DecodePoVFetchingRequest)
		if err != nil {
			return nil, err
		}
		return &PoVFetching{Request: req}, nil
	},
	reqresp.AvailableDataFetching: func(raw *reqresp.RawRequest) (Message, error) {
		req, err := decodeIncoming(raw, v1.DecodeAvailableDataFetchingRequest)
		if err != nil {
			return nil, err
		}
		return &AvailableDataFetching{Request: req}, nil
	},
}

func decodeIncoming[T any](raw *reqresp.RawRequest, decode reqresp.DecodeFunc[T]) (*reqresp.IncomingRequest[T], error) {
	payload, err := decode(raw.Payload)
	if err != nil {
		return nil, err
	}
	return reqresp.NewIncomingRequest(raw.Peer, payload, raw.PendingResponse), nil
}

// multiplexSingle 解码一个原始请求
//
// 解码失败时丢弃响应槽（远端看到取消），返回归属来源节点的 *MultiplexError。
func multiplexSingle(p reqresp.Protocol, raw *reqresp.RawRequest) (Message, error) {
	decode, ok := decoders[p]
	if !ok {
		switch p {
		case reqresp.StatementFetching:
			panic("multiplexer: statement fetching requests are handled directly")
		case reqresp.DisputeSending:
			panic("multiplexer: dispute sending requests are handled directly")
		default:
			panic(fmt.Sprintf("multiplexer: no decoder for protocol %s", p))
		}
	}

	msg, err := decode(raw)
	if err != nil {
		raw.PendingResponse.Cancel()
		return nil, &MultiplexError{Peer: raw.Peer, Protocol: p, Err: err}
	}
	return msg, nil
}
