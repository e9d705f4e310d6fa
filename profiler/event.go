// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profiler

// EventRecord is one observed device event: a display name, the name
// of the queue it ran on, and its four monotonic device timestamps in
// nanoseconds. Produced during ingest and immutable thereafter.
type EventRecord struct {
	EventName string
	QueueName string
	TQueued   uint64
	TSubmit   uint64
	TStart    uint64
	TEnd      uint64
}

// InstantType distinguishes the two endpoints an EventRecord
// contributes to the instant list.
type InstantType int

const (
	InstantStart InstantType = iota
	InstantEnd
)

// EventInstant is one endpoint (start or end) of an event. Every
// EventRecord contributes exactly two instants, START and END,
// sharing the same EventID.
type EventInstant struct {
	EventName string
	QueueName string
	EventID   uint32
	NameID    uint32
	Instant   uint64
	Type      InstantType
}

// AggregateEntry holds the per-event-name absolute and relative time
// computed by the aggregator.
type AggregateEntry struct {
	EventName    string
	AbsoluteTime uint64  // nanoseconds
	RelativeTime float64 // in [0, 1]; 0 if total_events_time is 0
}

// OverlapMatrix is an upper-triangular N x N matrix of nanoseconds,
// stored row-major. Entry (i, j) with i <= j holds the total overlap
// between events of name-id i and name-id j. Entries with i > j are
// always 0.
type OverlapMatrix struct {
	n    int
	data []uint64
}

func newOverlapMatrix(n int) *OverlapMatrix {
	return &OverlapMatrix{n: n, data: make([]uint64, n*n)}
}

// N returns the matrix's dimension (the number of distinct event
// names).
func (m *OverlapMatrix) N() int {
	return m.n
}

// At returns the overlap between name-ids i and j, in nanoseconds.
// The matrix is symmetric; callers may pass i, j in either order.
func (m *OverlapMatrix) At(i, j uint32) uint64 {
	if i > j {
		i, j = j, i
	}
	return m.data[int(i)*m.n+int(j)]
}

func (m *OverlapMatrix) add(i, j uint32, delta uint64) {
	if i > j {
		i, j = j, i
	}
	m.data[int(i)*m.n+int(j)] += delta
}

// raw returns the stored entry at exactly (i, j), with no
// i<=j canonicalization. Used internally to iterate the matrix in
// row-major order without double-reporting each pair, since only
// entries with i<=j are ever written.
func (m *OverlapMatrix) raw(i, j uint32) uint64 {
	return m.data[int(i)*m.n+int(j)]
}
