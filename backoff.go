// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mpsc

import (
	"runtime"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// BackoffPolicy selects what a producer does after losing the race to link
// its node onto the tail.
//
// Every lost race means another producer succeeded, so the retry loop makes
// system-wide progress under any policy. The policy only trades CPU usage
// against latency; it never affects which elements are delivered or in what
// per-producer order.
type BackoffPolicy uint8

const (
	// BackoffSpin issues CPU pause instructions via [spin.Wait].
	// This is the default and suits short critical windows.
	BackoffSpin BackoffPolicy = iota

	// BackoffNone retries immediately.
	BackoffNone

	// BackoffYield yields the processor with runtime.Gosched.
	// Useful when producers outnumber GOMAXPROCS.
	BackoffYield

	// BackoffAdaptive uses [iox.Backoff], which escalates from spinning to
	// yielding to short sleeps under sustained contention.
	BackoffAdaptive
)

// String returns the policy name.
func (p BackoffPolicy) String() string {
	switch p {
	case BackoffSpin:
		return "spin"
	case BackoffNone:
		return "none"
	case BackoffYield:
		return "yield"
	case BackoffAdaptive:
		return "adaptive"
	default:
		return "unknown"
	}
}

func (p BackoffPolicy) valid() bool {
	return p <= BackoffAdaptive
}

// retrier holds the backoff state of a single Enqueue call.
type retrier struct {
	policy BackoffPolicy
	sw     spin.Wait
	bo     iox.Backoff
}

func (r *retrier) wait() {
	switch r.policy {
	case BackoffSpin:
		r.sw.Once()
	case BackoffYield:
		runtime.Gosched()
	case BackoffAdaptive:
		r.bo.Wait()
	}
}
