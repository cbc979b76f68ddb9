// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slabmq

import "fmt"

// slab is a fixed backing buffer of maxDepth message slots, each
// paddedSize bytes. It owns the raw memory for the lifetime of the
// Queue that created it and never resizes.
type slab struct {
	paddedSize  int // messageSize rounded up for alignment
	messageSize int // caller-requested payload size
	maxDepth    int
	buf         []byte
}

func newSlab(messageSize, maxDepth int) (*slab, error) {
	if messageSize < 1 {
		return nil, fmt.Errorf("slabmq: message size %d: %w", messageSize, ErrInvalidMessageSize)
	}
	if maxDepth < 1 {
		return nil, fmt.Errorf("slabmq: max depth %d: %w", maxDepth, ErrInvalidDepth)
	}

	padded := alignUp(messageSize, slotAlignment)
	return &slab{
		paddedSize:  padded,
		messageSize: messageSize,
		maxDepth:    maxDepth,
		buf:         make([]byte, padded*maxDepth),
	}, nil
}

// bytes returns the backing region for h. The returned slice aliases
// the slab's storage; callers must not retain it past the slot's
// lifetime (Free/reuse).
func (s *slab) bytes(h SlotHandle) []byte {
	off := int(h.idx) * s.paddedSize
	return s.buf[off : off+s.messageSize : off+s.messageSize]
}
