// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slabmq

import (
	"errors"
	"sync"
	"testing"
)

func TestAllocatorExhaustionAndReturn(t *testing.T) {
	s, err := newSlab(4, 2)
	if err != nil {
		t.Fatalf("newSlab: %v", err)
	}
	a := newAllocator(s)

	h1, err := a.alloc()
	if err != nil {
		t.Fatalf("alloc 1: %v", err)
	}
	h2, err := a.alloc()
	if err != nil {
		t.Fatalf("alloc 2: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("alloc returned the same slot twice: %v", h1)
	}

	if _, err := a.alloc(); !errors.Is(err, ErrWouldBlock) {
		t.Fatalf("alloc on exhausted freelist: got %v, want ErrWouldBlock", err)
	}

	a.free(h1)

	h3, err := a.alloc()
	if err != nil {
		t.Fatalf("alloc after free: %v", err)
	}
	if h3 != h1 {
		t.Fatalf("alloc after free: got %v, want reclaimed slot %v", h3, h1)
	}
}

func TestAllocatorSlotUniquenessConcurrent(t *testing.T) {
	if RaceEnabled {
		t.Skip("cell-handshake ordering relies on atomics the race detector cannot see")
	}

	const depth = 64
	const producers = 8
	const perProducer = 2000

	s, err := newSlab(4, depth)
	if err != nil {
		t.Fatalf("newSlab: %v", err)
	}
	a := newAllocator(s)

	seen := make([]int32, depth)
	var mu sync.Mutex

	done := make(chan struct{}, producers)
	for p := 0; p < producers; p++ {
		go func() {
			defer func() { done <- struct{}{} }()
			held := make([]SlotHandle, 0, 8)
			release := func() {
				mu.Lock()
				seen[held[0].idx]--
				mu.Unlock()
				a.free(held[0])
				held = held[1:]
			}
			for i := 0; i < perProducer; i++ {
				h, err := a.alloc()
				if err != nil {
					if len(held) > 0 {
						release()
					}
					continue
				}
				mu.Lock()
				seen[h.idx]++
				dup := seen[h.idx] > 1
				mu.Unlock()
				if dup {
					t.Errorf("slot %d handed out while still held", h.idx)
				}
				held = append(held, h)
				if len(held) > 4 {
					release()
				}
			}
			for len(held) > 0 {
				release()
			}
		}()
	}
	for p := 0; p < producers; p++ {
		<-done
	}

	for i, c := range seen {
		if c < 0 {
			t.Fatalf("slot %d: negative outstanding count %d", i, c)
		}
	}
}
