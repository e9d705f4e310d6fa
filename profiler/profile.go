// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profiler implements the profiling engine: it ingests
// timestamped device events from one or more named command queues,
// computes per-event-name aggregate statistics, and computes an
// event-overlap matrix and an overlap-discounted effective total
// execution time via a sweep-line algorithm over event start/end
// instants.
package profiler

import (
	"math"
)

// Profile is the root object of the profiling engine. It owns all
// ingested records, the computed aggregates and overlap matrix, and
// the optional wall-clock timer. A Profile is not safe for concurrent
// use; callers wanting parallelism should use separate Profiles.
type Profile struct {
	registry *registry
	interner *interner

	numEvents uint32
	events    []EventRecord
	instants  []EventInstant

	startTime uint64

	aggregates map[string]*AggregateEntry
	durations  map[string][]uint64 // nanoseconds, per event-name

	overlapMatrix      *OverlapMatrix
	totalEventsTime    uint64
	totalEventsEffTime uint64
	totalOverlap       uint64

	calculated bool
	timer      *wallTimer

	// onWarn receives non-fatal diagnostics (currently just the
	// duplicate-queue-name warning). Defaults to a no-op; set via
	// SetWarnFunc before AddQueue.
	onWarn func(format string, args ...interface{})
}

// New creates an empty profile. Queues must be registered with
// AddQueue before Calculate is called.
func New() *Profile {
	p := &Profile{
		startTime: math.MaxUint64,
	}
	p.registry = newRegistry(func(format string, args ...interface{}) {
		if p.onWarn != nil {
			p.onWarn(format, args...)
		}
	})
	p.interner = newInterner()
	return p
}

// SetWarnFunc installs a callback invoked for non-fatal diagnostics,
// such as registering a queue name that is already in use. It must be
// called before AddQueue to take effect for that warning.
func (p *Profile) SetWarnFunc(fn func(format string, args ...interface{})) {
	p.onWarn = fn
}

// AddQueue registers a queue for profiling under the given name. It
// is a precondition violation to call AddQueue after Calculate.
func (p *Profile) AddQueue(name string, q Queue) error {
	return p.registry.add(name, q)
}

// Start captures the current host time as the wall-clock timer's
// start. Independent of device timestamps; entirely optional.
func (p *Profile) Start() {
	if p.timer == nil {
		p.timer = &wallTimer{}
	}
	p.timer.start()
}

// Stop freezes the wall-clock timer.
func (p *Profile) Stop() {
	if p.timer != nil {
		p.timer.stop()
	}
}

// TimeElapsed returns the seconds elapsed on the wall-clock timer,
// since Start (if not stopped) or between Start and Stop. Returns 0 if
// Start was never called.
func (p *Profile) TimeElapsed() float64 {
	if p.timer == nil {
		return 0
	}
	return p.timer.elapsed()
}

// Calculate runs the ingest, aggregate and overlap passes, in order.
// It is one-shot: calling it a second time is a precondition
// violation. After Calculate succeeds (or fails), the Profile's queue
// registry is sealed — AddQueue will refuse further calls regardless
// of outcome.
func (p *Profile) Calculate() error {
	if p.calculated {
		return newError(Precondition, "Profile.Calculate", "Calculate has already run on this profile", nil)
	}
	p.registry.seal()
	p.calculated = true

	if err := p.ingest(); err != nil {
		return err
	}
	p.aggregate()
	p.overlap()
	return nil
}

// GetAggregate returns the aggregate statistics for the given event
// name, if calculate has run and the name was observed.
func (p *Profile) GetAggregate(eventName string) (AggregateEntry, bool) {
	if !p.calculated {
		return AggregateEntry{}, false
	}
	agg, ok := p.aggregates[eventName]
	if !ok {
		return AggregateEntry{}, false
	}
	return *agg, true
}

// TotalEventsTime is the sum of all events' durations, double-counting
// any overlapping intervals. Valid after Calculate.
func (p *Profile) TotalEventsTime() uint64 { return p.totalEventsTime }

// TotalEventsEffTime is TotalEventsTime minus TotalOverlap: the "wall"
// occupied by device work. Valid after Calculate.
func (p *Profile) TotalEventsEffTime() uint64 { return p.totalEventsEffTime }

// TotalOverlap is the sum of all pairwise overlaps in the overlap
// matrix. Valid after Calculate.
func (p *Profile) TotalOverlap() uint64 { return p.totalOverlap }

// StartTime is the earliest device t_start seen across all ingested
// events. Valid after Calculate.
func (p *Profile) StartTime() uint64 { return p.startTime }

// OverlapMatrix returns the computed overlap matrix. Valid after
// Calculate.
func (p *Profile) OverlapMatrix() *OverlapMatrix { return p.overlapMatrix }

// NumEventNames returns the number of distinct event names observed.
// Valid after Calculate.
func (p *Profile) NumEventNames() int {
	if p.overlapMatrix == nil {
		return 0
	}
	return p.overlapMatrix.N()
}

// EventNames returns the distinct event names in name-id order. Valid
// after Calculate.
func (p *Profile) EventNames() []string {
	names := make([]string, p.NumEventNames())
	copy(names, p.interner.names)
	return names
}

// Durations returns, for a given event name, the duration (t_end -
// t_start) of every event observed under that name, in the order the
// aggregator processed them. Valid after Calculate; used by the stats
// package to compute distributional summaries beyond AggregateEntry's
// absolute/relative totals.
func (p *Profile) Durations(eventName string) []uint64 {
	return p.durations[eventName]
}

// Events returns every ingested event record, unordered. Valid after
// Calculate; used by the exporter and the timeline renderer.
func (p *Profile) Events() []EventRecord {
	return p.events
}
