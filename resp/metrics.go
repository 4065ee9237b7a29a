/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: respcore/resp/metrics.go
*/
package resp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics instruments the Parser and Writer: a struct of ready-to-use,
// promauto-registered metric handles built once at construction time,
// passed around by pointer, and left nil wherever a caller doesn't
// want the core wired to their Prometheus registry. Every Parser/Writer
// method that touches Metrics nil-checks first, so the hot path costs
// nothing when metrics aren't in use.
type Metrics struct {
	FramesParsed      prometheus.Counter
	BytesConsumed     prometheus.Counter
	IncompleteReads   prometheus.Counter
	ParseErrors       *prometheus.CounterVec
	FramesWritten     prometheus.Counter
	BytesWritten      prometheus.Counter
	DowngradesWritten prometheus.Counter
}

// NewMetrics registers a Metrics set on reg. Passing
// prometheus.DefaultRegisterer matches cc-backend's top-level wiring;
// tests typically pass a fresh prometheus.NewRegistry() instead.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FramesParsed: factory.NewCounter(prometheus.CounterOpts{
			Name: "resp_frames_parsed_total",
			Help: "Number of complete RESP frames successfully parsed.",
		}),
		BytesConsumed: factory.NewCounter(prometheus.CounterOpts{
			Name: "resp_bytes_consumed_total",
			Help: "Number of input bytes consumed while parsing complete frames.",
		}),
		IncompleteReads: factory.NewCounter(prometheus.CounterOpts{
			Name: "resp_incomplete_reads_total",
			Help: "Number of TryParse calls that returned incomplete (need more data).",
		}),
		ParseErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "resp_parse_errors_total",
			Help: "Number of fatal parse errors, labeled by error kind.",
		}, []string{"kind"}),
		FramesWritten: factory.NewCounter(prometheus.CounterOpts{
			Name: "resp_frames_written_total",
			Help: "Number of RESP frames written to a sink.",
		}),
		BytesWritten: factory.NewCounter(prometheus.CounterOpts{
			Name: "resp_bytes_written_total",
			Help: "Number of bytes written to a sink.",
		}),
		DowngradesWritten: factory.NewCounter(prometheus.CounterOpts{
			Name: "resp_downgrades_written_total",
			Help: "Number of RESP3-only tags downgraded while writing at RESP2.",
		}),
	}
}

func (m *Metrics) observeParseError(kind string) {
	if m == nil {
		return
	}
	m.ParseErrors.WithLabelValues(kind).Inc()
}

func (m *Metrics) observeIncomplete() {
	if m == nil {
		return
	}
	m.IncompleteReads.Inc()
}

func (m *Metrics) observeParsed(bytesConsumed int) {
	if m == nil {
		return
	}
	m.FramesParsed.Inc()
	m.BytesConsumed.Add(float64(bytesConsumed))
}

func (m *Metrics) observeWritten(n int) {
	if m == nil {
		return
	}
	m.FramesWritten.Inc()
	m.BytesWritten.Add(float64(n))
}

func (m *Metrics) observeDowngrade() {
	if m == nil {
		return
	}
	m.DowngradesWritten.Inc()
}
