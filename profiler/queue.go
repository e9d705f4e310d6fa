// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profiler

// ProfilingInfoKind identifies which of an event's four device
// timestamps is being queried.
type ProfilingInfoKind int

const (
	Queued ProfilingInfoKind = iota
	Submit
	Start
	End
)

// Event is the profiling core's only view of a device event: a
// display name and four nanosecond device timestamps. Implementations
// are expected to represent events that have already completed and
// carry profiling data; querying an event that hasn't requires no
// special handling here since the contract is "fails or returns a
// timestamp".
type Event interface {
	// FinalName returns the event's display name, falling back to a
	// command-type string when the event wasn't explicitly named.
	FinalName() string
	// ProfilingInfo returns the device timestamp of the given kind,
	// or an error if it could not be queried.
	ProfilingInfo(kind ProfilingInfoKind) (uint64, error)
}

// Queue is the profiling core's only view of a command queue: an
// ordered list of completed events.
type Queue interface {
	// Events returns the queue's events in arrival order.
	Events() []Event
}

// registry owns a set of named queues. A queue name may be
// registered at most once at a time; registering an already-used name
// replaces the previous entry (and the caller is warned via onWarn).
type registry struct {
	queues map[string]Queue
	order  []string
	onWarn func(format string, args ...interface{})
	sealed bool
}

func newRegistry(onWarn func(format string, args ...interface{})) *registry {
	if onWarn == nil {
		onWarn = func(string, ...interface{}) {}
	}
	return &registry{
		queues: make(map[string]Queue),
		onWarn: onWarn,
	}
}

// add registers a queue under name. It is a precondition violation to
// call add after the registry has been sealed (i.e. after Calculate
// has run).
func (r *registry) add(name string, q Queue) error {
	if r.sealed {
		return newError(Precondition, "Profile.AddQueue", "cannot add a queue after Calculate has run", nil)
	}
	if _, exists := r.queues[name]; exists {
		r.onWarn("profile already contains a queue named %q; replacing it", name)
	} else {
		r.order = append(r.order, name)
	}
	r.queues[name] = q
	return nil
}

func (r *registry) seal() {
	r.sealed = true
}

// names returns the registered queue names in registration order.
func (r *registry) names() []string {
	return r.order
}
