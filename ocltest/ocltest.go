// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ocltest provides an in-memory stub implementation of the
// profiler.Queue / profiler.Event contract, for tests and demos that
// have no real device to profile. It is grounded on the
// _cl_event/_cl_command_queue stub structs used by cf4ocl's own test
// suite (tests/lib/ocl_stub/ocl_impl.h).
package ocltest

import "github.com/cl4prof/clprof/profiler"

// Event is a fixed, in-memory event: a name and its four device
// timestamps.
type Event struct {
	Name                            string
	TQueued, TSubmit, TStart, TEnd uint64
}

func (e Event) FinalName() string { return e.Name }

func (e Event) ProfilingInfo(kind profiler.ProfilingInfoKind) (uint64, error) {
	switch kind {
	case profiler.Queued:
		return e.TQueued, nil
	case profiler.Submit:
		return e.TSubmit, nil
	case profiler.Start:
		return e.TStart, nil
	case profiler.End:
		return e.TEnd, nil
	}
	return 0, nil
}

// Queue is a builder for a fixed, in-memory, ordered list of events.
type Queue struct {
	events []profiler.Event
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Add appends an event named name, running from tStart to tEnd, with
// tQueued and tSubmit preceding tStart. Returns the queue for
// chaining.
func (q *Queue) Add(name string, tQueued, tSubmit, tStart, tEnd uint64) *Queue {
	q.events = append(q.events, Event{name, tQueued, tSubmit, tStart, tEnd})
	return q
}

// AddSimple appends an event named name spanning [tStart, tEnd], with
// t_queued and t_submit both equal to tStart. Convenient for tests
// that don't care about the queued/submit timestamps.
func (q *Queue) AddSimple(name string, tStart, tEnd uint64) *Queue {
	return q.Add(name, tStart, tStart, tStart, tEnd)
}

func (q *Queue) Events() []profiler.Event {
	return q.events
}

// FailingEvent is an Event whose ProfilingInfo always fails, for
// exercising the INFO_UNAVAILABLE error path.
type FailingEvent struct {
	Name string
	Err  error
}

func (e FailingEvent) FinalName() string { return e.Name }

func (e FailingEvent) ProfilingInfo(profiler.ProfilingInfoKind) (uint64, error) {
	return 0, e.Err
}
