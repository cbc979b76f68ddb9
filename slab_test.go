// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slabmq

import "testing"

func TestSlabAlignsMessageSize(t *testing.T) {
	s, err := newSlab(1, 4)
	if err != nil {
		t.Fatalf("newSlab: %v", err)
	}
	if s.paddedSize < 1 {
		t.Fatalf("paddedSize: got %d, want >= 1", s.paddedSize)
	}
	if s.paddedSize%int(slotAlignment) != 0 {
		t.Fatalf("paddedSize %d not aligned to %d", s.paddedSize, slotAlignment)
	}
	if len(s.buf) != s.paddedSize*4 {
		t.Fatalf("buf len: got %d, want %d", len(s.buf), s.paddedSize*4)
	}
}

func TestSlabSlotsAreDisjoint(t *testing.T) {
	s, err := newSlab(8, 4)
	if err != nil {
		t.Fatalf("newSlab: %v", err)
	}
	for i := 0; i < 4; i++ {
		b := s.bytes(SlotHandle{idx: uint32(i)})
		if len(b) != 8 {
			t.Fatalf("slot %d: len %d, want 8", i, len(b))
		}
		for j := range b {
			b[j] = byte(i)
		}
	}
	for i := 0; i < 4; i++ {
		b := s.bytes(SlotHandle{idx: uint32(i)})
		for j, v := range b {
			if v != byte(i) {
				t.Fatalf("slot %d byte %d: got %d, want %d (slots overlap)", i, j, v, i)
			}
		}
	}
}

func TestNewSlabRejectsInvalidParams(t *testing.T) {
	if _, err := newSlab(0, 4); err == nil {
		t.Fatal("messageSize=0: want error, got nil")
	}
	if _, err := newSlab(8, 0); err == nil {
		t.Fatal("maxDepth=0: want error, got nil")
	}
}
