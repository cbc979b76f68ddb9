// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slabmq

import (
	"context"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// readSpinIterations is the bounded pre-lock spin Read performs before
// parking, absorbing a near-miss write without a syscall/futex.
const readSpinIterations = 10

// Queue is a fixed-capacity, multi-producer/multi-consumer in-process
// message queue. A producer calls Alloc for a slot, fills its bytes,
// and hands it to Write; a consumer calls Read or TryRead, uses the
// bytes, and returns the slot with Free.
//
// All operations except Read are non-blocking and safe under
// concurrent producers and consumers. See the package doc for the
// full ownership-transfer protocol.
type Queue struct {
	_       pad
	slab    *slab
	alloc   *allocator
	ring    *ring // delivery ring: producers Write, consumers TryRead
	waiter  *readWaiter
	metrics *Metrics
	_       pad
	closed  atomix.Bool
}

// New creates a Queue with maxDepth message slots of messageSize bytes
// each. maxDepth rounds up to the next power of two for the ring's
// capacity; the logical bound stays maxDepth (excess ring cells stay
// permanently empty).
func New(messageSize, maxDepth int, opts ...Option) (*Queue, error) {
	return NewBuilder(messageSize, maxDepth).With(opts...).Build()
}

func newQueue(s *slab, metrics *Metrics) *Queue {
	return &Queue{
		slab:    s,
		alloc:   newAllocator(s),
		ring:    newRing(s.maxDepth),
		waiter:  newReadWaiter(),
		metrics: metrics,
	}
}

// Alloc dispenses a slot from the freelist. The returned slot is owned
// exclusively by the caller until it is passed to Write or Free.
// Returns ErrWouldBlock if the freelist is currently empty.
func (q *Queue) Alloc() (SlotHandle, error) {
	h, err := q.alloc.alloc()
	if q.metrics != nil {
		q.metrics.observeAlloc(err)
	}
	return h, err
}

// Free returns a slot to the freelist. h must have come from this
// Queue's allocator and must not currently be enqueued; violating
// this is undefined behavior (spec §7).
func (q *Queue) Free(h SlotHandle) {
	q.alloc.free(h)
	if q.metrics != nil {
		q.metrics.observeFree()
	}
}

// Write enqueues h for delivery to a consumer. h must have come from
// this Queue's allocator and must not already be enqueued. Write never
// fails: a caller holds at most maxDepth outstanding slots by
// construction, so the delivery ring can never overflow.
func (q *Queue) Write(h SlotHandle) {
	q.ring.put(h)
	woke := q.waiter.wake()
	if q.metrics != nil {
		q.metrics.observeWrite()
		if woke {
			q.metrics.observeWake()
		}
	}
}

// TryRead removes and returns the next message, if any, without
// blocking. Returns ErrWouldBlock if no message is currently
// available.
func (q *Queue) TryRead() (SlotHandle, error) {
	h, ok := q.ring.take()
	if !ok {
		return SlotHandle{}, ErrWouldBlock
	}
	if q.metrics != nil {
		q.metrics.observeRead()
	}
	return h, nil
}

// ReadBlocking blocks until a message is available and returns it.
// Equivalent to Read(context.Background()).
func (q *Queue) ReadBlocking() (SlotHandle, error) {
	return q.Read(context.Background())
}

// Read blocks until a message is available, ctx is done, or the Queue
// is closed. A consumer parked here is released by the very next
// Write that finds a blocked reader (spec §4.4/§8 wake-up
// correctness): Write publishes its slot, then wakes at most one
// parked reader under the same lock the reader used to park, so no
// wake-up is ever lost. A cancelled ctx or Close wakes every parked
// reader; those with nothing to return park again.
func (q *Queue) Read(ctx context.Context) (SlotHandle, error) {
	if h, err := q.tryReadSpin(); err == nil {
		return h, nil
	}

	var stop chan struct{}
	if done := ctx.Done(); done != nil {
		stop = make(chan struct{})
		go func() {
			select {
			case <-done:
				q.waiter.broadcastAll()
			case <-stop:
			}
		}()
		defer close(stop)
	}

	q.waiter.mu.Lock()
	defer q.waiter.mu.Unlock()
	for {
		if h, ok := q.ring.take(); ok {
			if q.metrics != nil {
				q.metrics.observeRead()
			}
			return h, nil
		}
		if q.closed.LoadAcquire() {
			return SlotHandle{}, ErrClosed
		}
		if err := ctx.Err(); err != nil {
			return SlotHandle{}, err
		}
		q.waiter.blocked++
		if q.metrics != nil {
			q.metrics.observeBlock()
		}
		q.waiter.cond.Wait()
	}
}

// tryReadSpin absorbs a near-miss write with a short bounded spin
// before Read pays for a mutex and a park.
func (q *Queue) tryReadSpin() (SlotHandle, error) {
	sw := spin.Wait{}
	for i := 0; i < readSpinIterations; i++ {
		if h, ok := q.ring.take(); ok {
			if q.metrics != nil {
				q.metrics.observeRead()
			}
			return h, nil
		}
		sw.Once()
	}
	return SlotHandle{}, ErrWouldBlock
}

// Bytes returns the payload bytes backing h. The returned slice
// aliases the Queue's slab; callers must stop using it once h has been
// passed to Write or Free.
func (q *Queue) Bytes(h SlotHandle) []byte {
	return q.slab.bytes(h)
}

// Cap returns the logical capacity (max_depth) of the queue.
func (q *Queue) Cap() int {
	return q.slab.maxDepth
}

// Close marks the Queue closed and wakes any readers parked in Read
// with ErrClosed. It does not drop the slab, ring storage, or wake
// coordinator; they are collected once the Queue itself is
// unreachable. The caller must
// ensure no slot is in flight and no concurrent Alloc/Free/Write/
// TryRead/Read call is in progress; behavior is undefined otherwise
// (spec §4.5/§7).
func (q *Queue) Close() error {
	q.closed.StoreRelease(true)
	q.waiter.broadcastAll()
	return nil
}
