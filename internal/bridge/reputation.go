package bridge

import (
	"math"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dep2p/go-netbridge/pkg/interfaces"
	"github.com/dep2p/go-netbridge/pkg/types"
)

// aggregatedReason 汇总上报的变更原因
const aggregatedReason = "aggregated reputation change"

type peerReport struct {
	peer  types.PeerID
	value int32
}

// ReputationAggregator 按节点汇总信誉变更
//
// 普通变更先在 LRU 中累加，Flush 时一次性上报；恶意级别的变更立即上报。
// 缓存满时最久未更新的节点被提前上报并移出，不会丢失变更。
type ReputationAggregator struct {
	reporter interfaces.PeerReporter

	mu      sync.Mutex
	cache   *lru.Cache[types.PeerID, int32]
	evicted []peerReport
}

// NewReputationAggregator 创建信誉汇总器
func NewReputationAggregator(reporter interfaces.PeerReporter, size int) (*ReputationAggregator, error) {
	a := &ReputationAggregator{reporter: reporter}
	cache, err := lru.NewWithEvict[types.PeerID, int32](size, a.onEvict)
	if err != nil {
		return nil, err
	}
	a.cache = cache
	return a, nil
}

// onEvict 在持有 mu 的调用方 goroutine 中被同步调用
func (a *ReputationAggregator) onEvict(peer types.PeerID, value int32) {
	a.evicted = append(a.evicted, peerReport{peer: peer, value: value})
}

// Modify 记录一次信誉变更
func (a *ReputationAggregator) Modify(peer types.PeerID, change types.ReputationChange) {
	if change.IsMalicious() {
		logger.Debug("立即上报恶意行为",
			"peer", peer.ShortString(),
			"reason", change.Reason)
		a.reporter.ReportPeer(peer, change)
		return
	}

	a.mu.Lock()
	cur, _ := a.cache.Get(peer)
	a.cache.Add(peer, saturatingAdd(cur, change.Value))
	reports := a.takeEvicted()
	a.mu.Unlock()

	a.report(reports)
}

// Flush 上报并清空所有汇总的变更，返回清空的节点数
func (a *ReputationAggregator) Flush() int {
	a.mu.Lock()
	a.cache.Purge()
	reports := a.takeEvicted()
	a.mu.Unlock()

	a.report(reports)
	return len(reports)
}

// Len 返回有待上报变更的节点数
func (a *ReputationAggregator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cache.Len()
}

func (a *ReputationAggregator) takeEvicted() []peerReport {
	reports := a.evicted
	a.evicted = nil
	return reports
}

func (a *ReputationAggregator) report(reports []peerReport) {
	for _, r := range reports {
		if r.value == 0 {
			continue
		}
		a.reporter.ReportPeer(r.peer, types.ReputationChange{Value: r.value, Reason: aggregatedReason})
	}
}

func saturatingAdd(a, b int32) int32 {
	sum := int64(a) + int64(b)
	switch {
	case sum > math.MaxInt32:
		return math.MaxInt32
	case sum < math.MinInt32:
		return math.MinInt32
	default:
		return int32(sum)
	}
}
