// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profiler

import "sort"

// aggregate computes one AggregateEntry per distinct event name and
// the grand total_events_time, by sorting instants so that each
// event's START is immediately followed by its END and summing the
// gaps.
func (p *Profile) aggregate() {
	p.aggregates = make(map[string]*AggregateEntry, p.interner.len())
	for name := range p.interner.ids {
		p.aggregates[name] = &AggregateEntry{EventName: name}
	}

	sorted := make([]EventInstant, len(p.instants))
	copy(sorted, p.instants)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].EventID != sorted[j].EventID {
			return sorted[i].EventID < sorted[j].EventID
		}
		// START sorts before END for the same event-id; this is the
		// only tie the sort needs to break, since every event
		// contributes exactly one START and one END.
		return sorted[i].Type == InstantStart && sorted[j].Type == InstantEnd
	})

	p.durations = make(map[string][]uint64, p.interner.len())
	for i := 0; i+1 < len(sorted); i += 2 {
		start, end := sorted[i], sorted[i+1]
		dur := end.Instant - start.Instant
		p.aggregates[start.EventName].AbsoluteTime += dur
		p.totalEventsTime += dur
		p.durations[start.EventName] = append(p.durations[start.EventName], dur)
	}

	for _, agg := range p.aggregates {
		if p.totalEventsTime > 0 {
			agg.RelativeTime = float64(agg.AbsoluteTime) / float64(p.totalEventsTime)
		}
	}
}
