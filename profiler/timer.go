// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profiler

import "time"

// wallTimer is a host-clock timer, independent of device timestamps.
type wallTimer struct {
	startedAt time.Time
	stoppedAt time.Time
	stopped   bool
}

func (t *wallTimer) start() {
	t.startedAt = time.Now()
	t.stopped = false
}

func (t *wallTimer) stop() {
	t.stoppedAt = time.Now()
	t.stopped = true
}

// elapsed returns the seconds since start, or between start and stop
// if stop was called.
func (t *wallTimer) elapsed() float64 {
	end := time.Now()
	if t.stopped {
		end = t.stoppedAt
	}
	return end.Sub(t.startedAt).Seconds()
}
