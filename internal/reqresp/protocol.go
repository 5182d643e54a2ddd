package reqresp

import (
	"fmt"
	"time"

	"github.com/dep2p/go-netbridge/pkg/protocolids"
	"github.com/dep2p/go-netbridge/pkg/types"
)

// Protocol 请求/响应协议枚举
//
// 集合是封闭的：新增协议必须同时在 All、protocolInfos 和
// bridge/multiplexer 的解码表中登记。
type Protocol int

const (
	// ChunkFetching 纠删码分片获取
	ChunkFetching Protocol = iota
	// CollationFetching 整理块获取
	CollationFetching
	// PoVFetching 有效性证明获取
	PoVFetching
	// AvailableDataFetching 完整可用数据获取
	AvailableDataFetching
	// StatementFetching 大语句获取（由语句分发子系统直接消费）
	StatementFetching
	// DisputeSending 争议投票发送（由争议分发子系统直接消费）
	DisputeSending

	protocolCount
)

const (
	// MaxPoVSize 有效性证明的最大尺寸
	MaxPoVSize = 5 * 1024 * 1024

	// MaxCodeSize 验证代码的最大尺寸
	MaxCodeSize = 3 * 1024 * 1024

	povResponseSize       = MaxPoVSize + 10_000
	statementResponseSize = MaxCodeSize + 10_000

	// DefaultRequestTimeout 未连接节点的默认请求超时
	DefaultRequestTimeout = 3 * time.Second

	// DefaultRequestTimeoutConnected 已连接节点的请求超时
	DefaultRequestTimeoutConnected = time.Second

	// DisputeRequestTimeout 争议请求超时，对端需要先导入投票才会应答
	DisputeRequestTimeout = 12 * time.Second
)

// Limits 单个协议的通道限制
type Limits struct {
	// MaxRequestSize 请求载荷上限（字节）
	MaxRequestSize uint64

	// MaxResponseSize 响应载荷上限（字节）
	MaxResponseSize uint64

	// RequestTimeout 等待本地应答的最长时间
	RequestTimeout time.Duration

	// QueueSize 入站队列容量
	QueueSize int
}

type protocolInfo struct {
	name   string
	id     types.ProtocolID
	limits Limits
}

var protocolInfos = [protocolCount]protocolInfo{
	ChunkFetching: {
		name: "chunk_fetching",
		id:   protocolids.ReqChunkFetching,
		limits: Limits{
			MaxRequestSize:  1_000,
			MaxResponseSize: povResponseSize / 10,
			RequestTimeout:  DefaultRequestTimeoutConnected,
			QueueSize:       100,
		},
	},
	CollationFetching: {
		name: "collation_fetching",
		id:   protocolids.ReqCollationFetching,
		limits: Limits{
			MaxRequestSize:  1_000,
			MaxResponseSize: povResponseSize + 1_000,
			RequestTimeout:  DefaultRequestTimeoutConnected,
			QueueSize:       100,
		},
	},
	PoVFetching: {
		name: "pov_fetching",
		id:   protocolids.ReqPoVFetching,
		limits: Limits{
			MaxRequestSize:  1_000,
			MaxResponseSize: povResponseSize,
			RequestTimeout:  DefaultRequestTimeoutConnected,
			QueueSize:       100,
		},
	},
	AvailableDataFetching: {
		name: "available_data_fetching",
		id:   protocolids.ReqAvailableDataFetching,
		limits: Limits{
			MaxRequestSize:  1_000,
			MaxResponseSize: povResponseSize + 1_000,
			RequestTimeout:  DefaultRequestTimeout,
			QueueSize:       100,
		},
	},
	StatementFetching: {
		name: "statement_fetching",
		id:   protocolids.ReqStatementFetching,
		limits: Limits{
			MaxRequestSize:  1_000,
			MaxResponseSize: statementResponseSize,
			RequestTimeout:  DefaultRequestTimeoutConnected,
			QueueSize:       20,
		},
	},
	DisputeSending: {
		name: "dispute_sending",
		id:   protocolids.ReqDisputeSending,
		limits: Limits{
			MaxRequestSize:  64_000,
			MaxResponseSize: 1_000,
			RequestTimeout:  DisputeRequestTimeout,
			QueueSize:       100,
		},
	},
}

// All 返回全部协议，顺序即注册顺序（也是轮询顺序）
func All() []Protocol {
	out := make([]Protocol, 0, protocolCount)
	for p := Protocol(0); p < protocolCount; p++ {
		out = append(out, p)
	}
	return out
}

// IsValid 是否为已知协议
func (p Protocol) IsValid() bool {
	return p >= 0 && p < protocolCount
}

// String 返回协议短名
func (p Protocol) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("protocol(%d)", int(p))
	}
	return protocolInfos[p].name
}

// ID 返回协议的线上名称
func (p Protocol) ID() types.ProtocolID {
	if !p.IsValid() {
		return ""
	}
	return protocolInfos[p].id
}

// DefaultLimits 返回协议的默认限制
func (p Protocol) DefaultLimits() Limits {
	if !p.IsValid() {
		return Limits{}
	}
	return protocolInfos[p].limits
}

// ParseProtocol 按短名或线上名称查找协议
func ParseProtocol(s string) (Protocol, bool) {
	for p := Protocol(0); p < protocolCount; p++ {
		if protocolInfos[p].name == s || string(protocolInfos[p].id) == s {
			return p, true
		}
	}
	return 0, false
}

// Config 出站通道配置
//
// 由传输层原样注册：该协议的入站请求经 InboundQueue 投递到对应的 Receiver。
type Config struct {
	// Protocol 协议枚举
	Protocol Protocol

	// Name 协议线上名称
	Name types.ProtocolID

	Limits

	// InboundQueue 入站队列的发送端
	InboundQueue *Sender
}

// Config 创建协议的接收端和出站通道配置（默认限制）
func (p Protocol) Config() (*Receiver, Config) {
	return p.ConfigWith(p.DefaultLimits())
}

// ConfigWith 使用指定限制创建接收端和出站通道配置
func (p Protocol) ConfigWith(limits Limits) (*Receiver, Config) {
	tx, rx := NewChannel(limits.QueueSize)
	return rx, Config{
		Protocol:     p,
		Name:         p.ID(),
		Limits:       limits,
		InboundQueue: tx,
	}
}
