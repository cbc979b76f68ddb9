// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slabmq

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is an optional Prometheus instrumentation layer for a
// Queue, registered via Builder.Metrics. It tracks allocation and
// delivery throughput and blocked-reader activity so operators can
// see freelist pressure and consumer starvation without instrumenting
// the call sites themselves.
type Metrics struct {
	allocsTotal   prometheus.Counter
	allocsBlocked prometheus.Counter
	freesTotal    prometheus.Counter
	writesTotal   prometheus.Counter
	readsTotal    prometheus.Counter
	readsBlocked  prometheus.Counter
	readerWakeups prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		allocsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "slabmq",
			Name:      "allocs_total",
			Help:      "Number of successful Alloc calls.",
		}),
		allocsBlocked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "slabmq",
			Name:      "allocs_would_block_total",
			Help:      "Number of Alloc calls that found the freelist empty.",
		}),
		freesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "slabmq",
			Name:      "frees_total",
			Help:      "Number of Free calls.",
		}),
		writesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "slabmq",
			Name:      "writes_total",
			Help:      "Number of messages written to the delivery ring.",
		}),
		readsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "slabmq",
			Name:      "reads_total",
			Help:      "Number of messages delivered via TryRead or Read.",
		}),
		readsBlocked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "slabmq",
			Name:      "read_parks_total",
			Help:      "Number of times a Read call parked waiting for a writer.",
		}),
		readerWakeups: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "slabmq",
			Name:      "reader_wakeups_total",
			Help:      "Number of parked readers woken by Write.",
		}),
	}
}

func (m *Metrics) observeAlloc(err error) {
	if err != nil {
		m.allocsBlocked.Inc()
		return
	}
	m.allocsTotal.Inc()
}

func (m *Metrics) observeFree() {
	m.freesTotal.Inc()
}

func (m *Metrics) observeWrite() {
	m.writesTotal.Inc()
}

func (m *Metrics) observeRead() {
	m.readsTotal.Inc()
}

func (m *Metrics) observeBlock() {
	m.readsBlocked.Inc()
}

func (m *Metrics) observeWake() {
	m.readerWakeups.Inc()
}
