// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slabmq

import "sync"

// readWaiter coordinates blocking Read calls with Write's wake-up.
//
// It stands in for the original implementation's named POSIX
// semaphore (sem_open keyed on pid+address, immediately sem_unlink'd).
// A named semaphore risks colliding across a destroy-then-reuse of the
// same address; an unnamed condition variable has no namespace to
// collide in. The increment-and-wait and decrement-and-signal halves
// of the protocol both happen under mu, so every blocked reader is
// paired with exactly one wake and no wake-up is ever lost.
type readWaiter struct {
	mu      sync.Mutex
	cond    *sync.Cond
	blocked int
}

func newReadWaiter() *readWaiter {
	w := &readWaiter{}
	w.cond = sync.NewCond(&w.mu)
	return w
}

// wake is called by Write after publishing a message. If a reader is
// parked, exactly one is released and wake reports true.
func (w *readWaiter) wake() bool {
	w.mu.Lock()
	woke := w.blocked > 0
	if woke {
		w.blocked--
		w.cond.Signal()
	}
	w.mu.Unlock()
	return woke
}

// broadcastAll wakes every parked reader unconditionally, used when a
// Read's context is cancelled so that goroutine can re-check ctx.Err()
// and return instead of waiting for an unrelated Write.
func (w *readWaiter) broadcastAll() {
	w.mu.Lock()
	w.cond.Broadcast()
	w.mu.Unlock()
}
