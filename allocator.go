// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slabmq

// allocator is a bounded concurrent freelist: it dispenses and
// reclaims slot handles carved from a slab. alloc and free take no
// lock; each may spin on a single ring cell until its counterpart has
// published or cleared it, as described on ring.
type allocator struct {
	slab *slab
	r    *ring
}

func newAllocator(s *slab) *allocator {
	r := newRing(s.maxDepth)
	r.seed(s.maxDepth)
	return &allocator{slab: s, r: r}
}

// alloc returns a slot owned exclusively by the caller until it is
// handed to Write or returned via free. Returns ErrWouldBlock if the
// freelist is currently empty.
func (a *allocator) alloc() (SlotHandle, error) {
	h, ok := a.r.take()
	if !ok {
		return SlotHandle{}, ErrWouldBlock
	}
	return h, nil
}

// free returns h to the freelist. h must have come from this
// allocator and must not currently be enqueued; violating this is
// undefined behavior, per spec.
func (a *allocator) free(h SlotHandle) {
	a.r.put(h)
}
