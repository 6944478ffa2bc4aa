// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package mpsc

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent tests: the detector cannot see the
// acquire-release edges atomix establishes on node links, so the payload
// hand-off between producer and consumer shows up as a false positive.
const RaceEnabled = true
