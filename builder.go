// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slabmq

import "github.com/prometheus/client_golang/prometheus"

// Builder configures and creates a Queue with a fluent API, mirroring
// the construction-time options a compiled implementation would fix
// at build time via header constants (cache line size, message
// padding) or leave to explicit init arguments (message size, depth).
//
// Example:
//
//	q, err := slabmq.NewBuilder(64, 1024).
//		Metrics(prometheus.DefaultRegisterer).
//		Build()
type Builder struct {
	messageSize   int
	maxDepth      int
	cacheLineSize int
	registerer    prometheus.Registerer
}

// Option configures a Builder. See CacheLineSizeOption and
// MetricsOption for the concrete options; both are also available as
// Builder methods for fluent construction.
type Option func(*Builder)

// NewBuilder creates a Builder for a queue of maxDepth slots of
// messageSize bytes each. Call Build to construct the Queue.
func NewBuilder(messageSize, maxDepth int) *Builder {
	return &Builder{
		messageSize:   messageSize,
		maxDepth:      maxDepth,
		cacheLineSize: 64,
	}
}

// With applies opts in order and returns b for chaining.
func (b *Builder) With(opts ...Option) *Builder {
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// CacheLineSize sets the cache line size stored on the Builder.
// Defaults to 64. It does not change any padding: the compile-time pad
// type between ring and Queue fields is 64 bytes regardless of this
// setting, and Build does not pass the value on to the Queue or its
// metrics.
func (b *Builder) CacheLineSize(n int) *Builder {
	b.cacheLineSize = n
	return b
}

// Metrics registers a Prometheus-backed instrumentation layer against
// reg: allocation/free/write/read counters plus blocked-reader park
// and wakeup counts. Passing nil (the default) builds a Queue with no
// metrics overhead.
func (b *Builder) Metrics(reg prometheus.Registerer) *Builder {
	b.registerer = reg
	return b
}

// CacheLineSizeOption is the functional-option form of
// Builder.CacheLineSize, for callers that prefer passing Option values
// to New instead of chaining a Builder.
func CacheLineSizeOption(n int) Option {
	return func(b *Builder) { b.CacheLineSize(n) }
}

// MetricsOption is the functional-option form of Builder.Metrics.
func MetricsOption(reg prometheus.Registerer) Option {
	return func(b *Builder) { b.Metrics(reg) }
}

// Build constructs the Queue. Returns ErrInvalidMessageSize or
// ErrInvalidDepth if the configured parameters are out of range.
func (b *Builder) Build() (*Queue, error) {
	s, err := newSlab(b.messageSize, b.maxDepth)
	if err != nil {
		return nil, err
	}

	var metrics *Metrics
	if b.registerer != nil {
		metrics = newMetrics(b.registerer)
	}

	return newQueue(s, metrics), nil
}
