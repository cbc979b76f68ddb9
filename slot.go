// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slabmq

import "unsafe"

// SlotHandle identifies one message slot inside a Slab.
//
// SlotHandle is a value type, not a pointer: ownership of the slot it
// names moves between the allocator, a producer, the delivery ring, and
// a consumer by copying the handle, never by sharing a pointer. The
// zero SlotHandle names slot 0. Alloc and TryRead also return it
// alongside a non-nil error; there it names no slot and must not be
// used.
type SlotHandle struct {
	idx uint32
}

// scalarAlignment is the alignment of the widest primitive scalar this
// module knows about, mirroring the union of types message_queue.h
// placed at slot offset 0 (char, short, int, long, float, double,
// pointer). A payload placed at offset 0 of a slot is naturally
// aligned for any of them.
func scalarAlignment() uintptr {
	var (
		i16 int16
		i32 int32
		i64 int64
		f32 float32
		f64 float64
		p   uintptr
	)
	max := unsafe.Alignof(i16)
	for _, a := range [...]uintptr{
		unsafe.Alignof(i32),
		unsafe.Alignof(i64),
		unsafe.Alignof(f32),
		unsafe.Alignof(f64),
		unsafe.Alignof(p),
	} {
		if a > max {
			max = a
		}
	}
	return max
}

var slotAlignment = scalarAlignment()

// alignUp rounds n up to the next multiple of align. align must be a
// power of two.
func alignUp(n int, align uintptr) int {
	a := int(align)
	return (n + a - 1) &^ (a - 1)
}
