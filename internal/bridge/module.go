package bridge

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	"github.com/dep2p/go-netbridge/config"
	"github.com/dep2p/go-netbridge/internal/bridge/multiplexer"
	"github.com/dep2p/go-netbridge/internal/reqresp"
	"github.com/dep2p/go-netbridge/pkg/interfaces"
)

// Params Bridge 依赖参数
type Params struct {
	fx.In

	UnifiedCfg *config.Config `optional:"true"`
}

// Module 返回 Fx 模块
//
// 提供：
//   - Config
//   - *multiplexer.Multiplexer 和 []reqresp.Config（交给传输层注册）
//   - *StatementFetchingReceiver、*DisputeSendingReceiver（由使用方驱动并关闭）
//   - *Bridge（随应用启动和停止）
//
// 使用方必须提供 multiplexer.MessageRouter 和 interfaces.PeerReporter，
// 可选提供 prometheus.Registerer。
func Module() fx.Option {
	return fx.Module("bridge",
		fx.Provide(
			ProvideConfig,
			ProvideMultiplexer,
			ProvideStatementFetchingReceiver,
			ProvideDisputeSendingReceiver,
			ProvideBridge,
		),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideConfig 从统一配置提供桥接器配置
func ProvideConfig(p Params) Config {
	return ConfigFromUnified(p.UnifiedCfg)
}

// multiplexerResult 多路复用器及其出站通道配置
type multiplexerResult struct {
	fx.Out

	Multiplexer *multiplexer.Multiplexer
	Configs     []reqresp.Config
}

// ProvideMultiplexer 提供多路复用器和出站通道配置
func ProvideMultiplexer(cfg Config) multiplexerResult {
	m, cfgs := multiplexer.New(multiplexer.WithLimits(cfg.Limits))
	return multiplexerResult{Multiplexer: m, Configs: cfgs}
}

// ProvideStatementFetchingReceiver 提供语句获取接收器
func ProvideStatementFetchingReceiver(m *multiplexer.Multiplexer) *StatementFetchingReceiver {
	return TakeStatementFetching(m)
}

// ProvideDisputeSendingReceiver 提供争议发送接收器
func ProvideDisputeSendingReceiver(m *multiplexer.Multiplexer) *DisputeSendingReceiver {
	return TakeDisputeSending(m)
}

// bridgeParams 桥接器依赖参数
type bridgeParams struct {
	fx.In

	Config      Config
	Multiplexer *multiplexer.Multiplexer
	Router      multiplexer.MessageRouter
	Reporter    interfaces.PeerReporter
	Registerer  prometheus.Registerer `optional:"true"`
}

// ProvideBridge 提供桥接器
func ProvideBridge(p bridgeParams) (*Bridge, error) {
	var opts []Option
	if p.Config.EnableMetrics {
		m, err := NewMetrics(p.Registerer)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithMetrics(m))
	}
	return New(p.Multiplexer, p.Router, p.Reporter, p.Config, opts...)
}

// registerLifecycle 注册桥接器生命周期
func registerLifecycle(lc fx.Lifecycle, b *Bridge) {
	lc.Append(fx.Hook{
		OnStart: b.Start,
		OnStop:  b.Stop,
	})
}
