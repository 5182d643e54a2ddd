package interfaces

//go:generate mockgen -source=reputation.go -destination=../../tests/mocks/reputation.go -package=mocks

import "github.com/dep2p/go-netbridge/pkg/types"

// CostMalformedMessage 节点发送了无法解码的请求
var CostMalformedMessage = types.CostMajor("malformed request")

// PeerReporter 节点信誉变更的上报方
type PeerReporter interface {
	// ReportPeer 上报一个节点的信誉变更
	//
	// 可能被多个 goroutine 并发调用，实现方需自行同步。
	ReportPeer(peer types.PeerID, change types.ReputationChange)
}
