package bridge

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/dep2p/go-netbridge/internal/reqresp"
)

const metricsNamespace = "netbridge"

// Metrics 合并流的 Prometheus 指标
//
// nil *Metrics 可以安全调用，所有记录操作为空操作。
type Metrics struct {
	requests        *prometheus.CounterVec
	decodeFailures  *prometheus.CounterVec
	routeFailures   *prometheus.CounterVec
	streamConcluded prometheus.Gauge
}

// NewMetrics 创建指标并注册到 reg
//
// reg 为 nil 时只创建不注册。
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "requests_total",
				Help:      "Incoming requests decoded and routed, by protocol.",
			},
			[]string{"protocol"},
		),
		decodeFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "decode_failures_total",
				Help:      "Incoming requests dropped because the payload could not be decoded.",
			},
			[]string{"protocol"},
		),
		routeFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "route_failures_total",
				Help:      "Decoded requests the router refused.",
			},
			[]string{"protocol"},
		),
		streamConcluded: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "stream_concluded",
				Help:      "1 once the merged incoming request stream has ended.",
			},
		),
	}

	if reg == nil {
		return m, nil
	}

	var errs error
	for _, c := range []prometheus.Collector{m.requests, m.decodeFailures, m.routeFailures, m.streamConcluded} {
		errs = multierr.Append(errs, reg.Register(c))
	}
	if errs != nil {
		return nil, errs
	}
	return m, nil
}

func (m *Metrics) observeRequest(p reqresp.Protocol) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(p.String()).Inc()
}

func (m *Metrics) observeDecodeFailure(p reqresp.Protocol) {
	if m == nil {
		return
	}
	m.decodeFailures.WithLabelValues(p.String()).Inc()
}

func (m *Metrics) observeRouteFailure(p reqresp.Protocol) {
	if m == nil {
		return
	}
	m.routeFailures.WithLabelValues(p.String()).Inc()
}

func (m *Metrics) observeConcluded() {
	if m == nil {
		return
	}
	m.streamConcluded.Set(1)
}
