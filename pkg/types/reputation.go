package types

import "math"

// ReputationChange 节点信誉变更
//
// 负值为惩罚，正值为奖励。由消费者汇总后交给节点管理层执行。
type ReputationChange struct {
	// Value 变更值
	Value int32

	// Reason 变更原因（仅用于日志）
	Reason string
}

// CostMinor 轻微惩罚
func CostMinor(reason string) ReputationChange {
	return ReputationChange{Value: -100_000, Reason: reason}
}

// CostMajor 严重惩罚
func CostMajor(reason string) ReputationChange {
	return ReputationChange{Value: -300_000, Reason: reason}
}

// Malicious 恶意行为，立即断开
func Malicious(reason string) ReputationChange {
	return ReputationChange{Value: math.MinInt32, Reason: reason}
}

// BenefitMinor 轻微奖励
func BenefitMinor(reason string) ReputationChange {
	return ReputationChange{Value: 10_000, Reason: reason}
}

// IsMalicious 是否为恶意级别的惩罚
func (r ReputationChange) IsMalicious() bool {
	return r.Value == math.MinInt32
}
