// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slabmq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// emptyCell is the sentinel stored in a ring cell with nothing in it.
// Occupied cells store the slot index plus one, so slot index 0 stays
// distinguishable from an empty cell.
const emptyCell uint64 = 0

// ring is the bounded concurrent cell-handshake ring shared by the
// allocator (as a freelist) and the delivery queue (as a FIFO).
//
// Two roles reserve cells against the same array: put (a producer of
// items into the ring — Free for the allocator, Write for the queue)
// and take (a consumer of items — Alloc for the allocator, TryRead for
// the queue). Both reserve a cell index with fetch-and-add on their own
// cursor, then spin on that single cell until its counterpart has
// published or cleared it. No global lock is taken on this path.
type ring struct {
	_          pad
	putCursor  atomix.Uint64
	_          pad
	takeCursor atomix.Uint64
	_          pad
	count      atomix.Int64 // items currently available to take()
	_          pad
	cells      []atomix.Uint64
	mask       uint64
	capacity   uint64
}

// newRing builds a ring whose capacity is the next power of two at
// least as large as logicalBound. Cells beyond logicalBound stay empty
// forever; logicalBound is the caller-visible bound (spec.md calls
// this max_depth), capacity is the masking modulus.
func newRing(logicalBound int) *ring {
	n := uint64(roundToPow2(logicalBound))
	return &ring{
		cells:    make([]atomix.Uint64, n),
		mask:     n - 1,
		capacity: n,
	}
}

// take reserves the next cell in consumer order, decrementing count
// first so a concurrent take on an empty ring fails fast instead of
// spinning forever.
func (r *ring) take() (SlotHandle, bool) {
	prev := r.count.AddAcqRel(-1) + 1 // AddAcqRel returns the new value
	if prev <= 0 {
		r.count.AddAcqRel(1)
		return SlotHandle{}, false
	}

	i := r.takeCursor.AddAcqRel(1) - 1
	cell := &r.cells[i&r.mask]

	sw := spin.Wait{}
	for cell.LoadAcquire() == emptyCell {
		sw.Once()
	}

	v := cell.LoadAcquire()
	cell.StoreRelease(emptyCell)
	return SlotHandle{idx: uint32(v - 1)}, true
}

// put reserves the next cell in producer order and publishes h into
// it, spinning only if a slower take() has not yet cleared that cell
// from a previous lap around the ring.
func (r *ring) put(h SlotHandle) {
	i := r.putCursor.AddAcqRel(1) - 1
	cell := &r.cells[i&r.mask]

	sw := spin.Wait{}
	for cell.LoadAcquire() != emptyCell {
		sw.Once()
	}

	cell.StoreRelease(uint64(h.idx) + 1)
	r.count.AddAcqRel(1)
}

// seed pre-fills the first n cells with slot indices [0, n), used by
// the allocator to start with a full freelist. Must only be called
// before the ring is shared with other goroutines.
func (r *ring) seed(n int) {
	for i := 0; i < n; i++ {
		r.cells[i].StoreRelaxed(uint64(i) + 1)
	}
	r.putCursor.StoreRelaxed(uint64(n))
	r.count.StoreRelaxed(int64(n))
}

// roundToPow2 rounds n up to the next power of 2. Mirrors the
// teacher package's helper of the same name; n must be >= 1.
func roundToPow2(n int) int {
	if n < 2 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}

// pad is cache-line padding that isolates hot ring fields from each
// other and, at the Queue level, isolates allocator state from queue
// state so the two rings' false-sharing footprints don't overlap.
type pad [64]byte
