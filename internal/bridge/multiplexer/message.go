package multiplexer

import (
	"github.com/dep2p/go-netbridge/internal/reqresp"
	v1 "github.com/dep2p/go-netbridge/internal/reqresp/v1"
	"github.com/dep2p/go-netbridge/pkg/types"
)

// Subsystem 消息的目标子系统
type Subsystem int

const (
	// SubsystemAvailabilityDistribution 可用性分发（分片、PoV）
	SubsystemAvailabilityDistribution Subsystem = iota
	// SubsystemCollatorProtocol 整理者协议
	SubsystemCollatorProtocol
	// SubsystemAvailabilityRecovery 可用性恢复
	SubsystemAvailabilityRecovery
)

// String 返回子系统名称
func (s Subsystem) String() string {
	switch s {
	case SubsystemAvailabilityDistribution:
		return "availability-distribution"
	case SubsystemCollatorProtocol:
		return "collator-protocol"
	case SubsystemAvailabilityRecovery:
		return "availability-recovery"
	default:
		return "unknown"
	}
}

// Message 合并流产出的类型化请求
//
// 变体集合是封闭的：*ChunkFetching、*CollationFetching、*PoVFetching、
// *AvailableDataFetching。路由方使用 type switch 分发。
type Message interface {
	// Protocol 请求所属协议
	Protocol() reqresp.Protocol

	// Peer 来源节点
	Peer() types.PeerID

	// Subsystem 目标子系统
	Subsystem() Subsystem

	isMessage()
}

// ChunkFetching 分片请求
type ChunkFetching struct {
	Request *reqresp.IncomingRequest[v1.ChunkFetchingRequest]
}

// CollationFetching 整理块请求
type CollationFetching struct {
	Request *reqresp.IncomingRequest[v1.CollationFetchingRequest]
}

// PoVFetching PoV 请求
type PoVFetching struct {
	Request *reqresp.IncomingRequest[v1.PoVFetchingRequest]
}

// AvailableDataFetching 可用数据请求
type AvailableDataFetching struct {
	Request *reqresp.IncomingRequest[v1.AvailableDataFetchingRequest]
}

func (*ChunkFetching) Protocol() reqresp.Protocol         { return reqresp.ChunkFetching }
func (*CollationFetching) Protocol() reqresp.Protocol     { return reqresp.CollationFetching }
func (*PoVFetching) Protocol() reqresp.Protocol           { return reqresp.PoVFetching }
func (*AvailableDataFetching) Protocol() reqresp.Protocol { return reqresp.AvailableDataFetching }

func (m *ChunkFetching) Peer() types.PeerID         { return m.Request.Peer }
func (m *CollationFetching) Peer() types.PeerID     { return m.Request.Peer }
func (m *PoVFetching) Peer() types.PeerID           { return m.Request.Peer }
func (m *AvailableDataFetching) Peer() types.PeerID { return m.Request.Peer }

func (*ChunkFetching) Subsystem() Subsystem         { return SubsystemAvailabilityDistribution }
func (*CollationFetching) Subsystem() Subsystem     { return SubsystemCollatorProtocol }
func (*PoVFetching) Subsystem() Subsystem           { return SubsystemAvailabilityDistribution }
func (*AvailableDataFetching) Subsystem() Subsystem { return SubsystemAvailabilityRecovery }

func (*ChunkFetching) isMessage()         {}
func (*CollationFetching) isMessage()     {}
func (*PoVFetching) isMessage()           {}
func (*AvailableDataFetching) isMessage() {}
