package monitor

import (
	"math/rand/v2"
	"sync"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat/distuv"
)

// Simulated round trip of a quote refresh in milliseconds.
const (
	minLatency = 20
	maxLatency = 240
)

// Live carries the monitor baseline between refreshes. Run is invoked by the
// scheduler from its own goroutines.
type Live struct {
	mu      sync.Mutex
	src     rand.Source
	metrics []Metric
	ticks   int
	latency int
	log     zerolog.Logger
}

func NewLive(src rand.Source, metrics []Metric, log zerolog.Logger) *Live {
	if metrics == nil {
		metrics = DefaultMetrics()
	}
	return &Live{
		src:     src,
		metrics: append([]Metric(nil), metrics...),
		log:     log.With().Str("component", "monitor").Logger(),
	}
}

func (l *Live) Name() string {
	return "algorithm_monitor"
}

// Run perturbs the current baseline and keeps the result for the next tick.
func (l *Live) Run() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.metrics = Perturb(l.src, l.metrics)
	l.latency = int(distuv.Uniform{Min: minLatency, Max: maxLatency, Src: l.src}.Rand())
	l.ticks++

	totals := Summarize(l.metrics)
	l.log.Debug().
		Int("tick", l.ticks).
		Float64("cpu", totals.CPUUsage).
		Float64("memory", totals.MemoryUsage).
		Int("latency_ms", l.latency).
		Msg("Metrics refreshed")
	return nil
}

// Snapshot returns a copy of the current metrics and the number of completed refreshes.
func (l *Live) Snapshot() ([]Metric, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Metric(nil), l.metrics...), l.ticks
}

// Latency is the simulated round trip of the last refresh. It is zero, which
// classifies as offline, until the first refresh.
func (l *Live) Latency() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.latency
}
