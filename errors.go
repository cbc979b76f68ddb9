// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package slabmq

import "code.hybscloud.com/iox"

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For Alloc: the freelist is empty (capacity exhaustion).
// For TryRead: the queue is empty (no message available).
//
// ErrWouldBlock is a control-flow signal, not a failure: callers
// typically retry with backoff rather than propagate it. This is an
// alias for [iox.ErrWouldBlock] for consistency with the rest of the
// hybscloud.com queue ecosystem.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    h, err := q.Alloc()
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if !slabmq.IsWouldBlock(err) {
//	        return err
//	    }
//	    backoff.Wait()
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// IsWouldBlock reports whether err indicates the operation would
// block. Delegates to [iox.IsWouldBlock] for wrapped-error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// ErrInvalidMessageSize is returned by New/Build when messageSize < 1.
var ErrInvalidMessageSize = errString("slabmq: message size must be >= 1")

// ErrInvalidDepth is returned by New/Build when maxDepth < 1.
var ErrInvalidDepth = errString("slabmq: max depth must be >= 1")

// ErrClosed is returned by Read when the queue is closed while a
// reader is parked.
var ErrClosed = errString("slabmq: queue closed")

type errString string

func (e errString) Error() string { return string(e) }
