package mocks

import (
	"sync"

	"github.com/dep2p/go-netbridge/pkg/types"
)

// RecordingReporter 记录所有信誉上报的 PeerReporter
//
// 适合只关心最终上报结果、不关心调用顺序的测试。可并发使用。
type RecordingReporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report 一次信誉上报
type Report struct {
	Peer   types.PeerID
	Change types.ReputationChange
}

// ReportPeer 实现 interfaces.PeerReporter
func (r *RecordingReporter) ReportPeer(peer types.PeerID, change types.ReputationChange) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, Report{Peer: peer, Change: change})
}

// Reports 返回已记录上报的副本
func (r *RecordingReporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Report(nil), r.reports...)
}

// Total 返回某节点全部上报值之和
func (r *RecordingReporter) Total(peer types.PeerID) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, rep := range r.reports {
		if rep.Peer == peer {
			total += int64(rep.Change.Value)
		}
	}
	return total
}
