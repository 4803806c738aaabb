package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics summarizes one search invocation.
type SearchMetrics struct {
	StartTime    time.Time
	Duration     time.Duration
	Iterations   int64
	FullPlayouts int64
}

type MetricsCollector interface {
	Start()
	AddIteration()
	AddFullPlayout()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime    time.Time
	iterations   atomic.Int64
	fullPlayouts atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
}

func (m *metricsCollector) AddIteration() {
	m.iterations.Add(1)
}

func (m *metricsCollector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Iterations:   m.iterations.Load(),
		FullPlayouts: m.fullPlayouts.Load(),
	}
}

// dummyCollector keeps the hot path free of bookkeeping when metrics
// are not requested.
type dummyCollector struct{}

func NewDummyCollector() MetricsCollector { return dummyCollector{} }

func (dummyCollector) Start()                  {}
func (dummyCollector) AddIteration()           {}
func (dummyCollector) AddFullPlayout()         {}
func (dummyCollector) Complete() SearchMetrics { return SearchMetrics{} }
