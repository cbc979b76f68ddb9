// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package slabmq

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent stress cases that trigger false
// positives under -race due to cross-variable memory ordering the
// detector cannot observe (see doc.go's "Race Detection" section).
const RaceEnabled = true
