// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates that Dequeue found the queue empty.
//
// An empty queue is a normal, frequent outcome for a polling consumer.
// ErrWouldBlock is a control flow signal, not a failure: retry later
// (with backoff or yield) instead of propagating it.
//
// Enqueue never returns ErrWouldBlock because the queue is unbounded.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    ev, err := q.Dequeue()
//	    if mpsc.IsWouldBlock(err) {
//	        backoff.Wait()
//	        continue
//	    }
//	    backoff.Reset()
//	    handle(ev)
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// ErrAllocFailed reports that the configured [Allocator] refused a node.
// Errors returned by Build and Enqueue wrap both ErrAllocFailed and the
// allocator's own error, so errors.Is matches either.
var ErrAllocFailed = errors.New("mpsc: node allocation failed")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil, ErrWouldBlock, or ErrMore.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
