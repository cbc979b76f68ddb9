// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package slabmq provides a fixed-capacity, multi-producer/
// multi-consumer in-process message queue backed by a slab allocator.
//
// A producer allocates a message slot, fills it, and hands it to the
// queue; a consumer reads the slot, uses it, and returns it to the
// allocator:
//
//	Alloc -> fill payload -> Write -> TryRead/Read -> consume -> Free
//
// # Quick Start
//
//	q, err := slabmq.New(64, 1024) // 64-byte messages, 1024 slots
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer q.Close()
//
//	h, err := q.Alloc()
//	if err != nil {
//	    // freelist exhausted, retry/backoff/drop
//	}
//	copy(q.Bytes(h), payload)
//	q.Write(h)
//
//	// elsewhere, concurrently:
//	h, err := q.TryRead()
//	if err == nil {
//	    process(q.Bytes(h))
//	    q.Free(h)
//	}
//
// # Basic Usage
//
// Alloc, Free, Write, and TryRead never block. Alloc and TryRead
// return ErrWouldBlock when they cannot proceed (freelist empty, queue
// empty); Free and Write return nothing. Read blocks until a message is available, the supplied
// context is done, or the queue is closed:
//
//	backoff := iox.Backoff{}
//	for {
//	    h, err := q.Alloc()
//	    if err == nil {
//	        break
//	    }
//	    if !slabmq.IsWouldBlock(err) {
//	        return err
//	    }
//	    backoff.Wait()
//	}
//
// # Common Patterns
//
// Pipeline stage (any number of producers/consumers):
//
//	go func() { // producer
//	    for payload := range input {
//	        h, err := q.Alloc()
//	        for err != nil {
//	            runtime.Gosched()
//	            h, err = q.Alloc()
//	        }
//	        copy(q.Bytes(h), payload)
//	        q.Write(h)
//	    }
//	}()
//
//	go func() { // consumer
//	    for {
//	        h, err := q.Read(ctx)
//	        if err != nil {
//	            return // ctx done or queue closed
//	        }
//	        process(q.Bytes(h))
//	        q.Free(h)
//	    }
//	}()
//
// # Capacity
//
// maxDepth rounds up to the next power of two for the underlying ring
// capacity; the logical bound stays maxDepth (extra ring cells remain
// permanently empty). Minimum maxDepth is 1.
//
// # Blocking Read and Wake-up
//
// Each Write wakes at most one reader parked in Read: the
// blocked-reader count and the decision to signal both happen under
// the same lock the consumer used to park, so no wake-up is lost.
// Cancelling a Read's context, or calling Close, wakes every parked
// reader; a reader that then finds no message, no Close and a live
// context parks again. See [Queue.Read].
//
// # Error Handling
//
// ErrWouldBlock is sourced from [code.hybscloud.com/iox] for ecosystem
// consistency with the rest of the hybscloud.com queue packages.
// Programming faults — double-free, a slot from a different Queue,
// use after Close — are not detected; behavior is undefined, matching
// the bounded-ring protocol's fast path having no defensive checks.
//
// # Thread Safety
//
// Alloc, Free, Write, and TryRead are safe under any number of
// concurrent producers and consumers. Read is likewise safe to call
// concurrently from multiple goroutines; each call receives a
// distinct message.
//
// # Race Detection
//
// Go's race detector is not designed for lock-free algorithm
// verification: it tracks explicit synchronization primitives but
// cannot observe happens-before relationships established purely
// through acquire/release atomics on separate memory locations. The
// ring's cell-handshake protocol is correct under the Go memory model
// but may report false positives under -race; see [RaceEnabled] and
// the package's stress tests for how this is handled.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives
// with explicit memory ordering, [code.hybscloud.com/spin] for
// CPU-pause-backed spin/backoff, and [code.hybscloud.com/iox] for
// semantic sentinel errors. Prometheus instrumentation
// (github.com/prometheus/client_golang) is optional, enabled via
// Builder.Metrics.
package slabmq
