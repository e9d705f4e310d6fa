// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profiler

import "sort"

// overlap computes the OverlapMatrix and total_overlap via a
// sweep-line pass over instants sorted by time. Each currently-open
// event tracks the instant at which any other event became open
// alongside it; when either of a pair closes, the elapsed time since
// that shared-open instant is exactly the time both were open
// simultaneously, and is added to the pair's matrix entry and to the
// running total.
func (p *Profile) overlap() {
	n := p.interner.len()
	p.overlapMatrix = newOverlapMatrix(n)

	sorted := make([]EventInstant, len(p.instants))
	copy(sorted, p.instants)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Instant != sorted[j].Instant {
			return sorted[i].Instant < sorted[j].Instant
		}
		// START before END at the same instant avoids spurious
		// negative intervals; zero-duration overlaps come out to 0
		// either way.
		return sorted[i].Type == InstantStart && sorted[j].Type == InstantEnd
	})

	occurring := make(map[uint32]uint32) // event-id -> name-id
	// pairStart[min(a,b)][max(a,b)] = instant both became open.
	pairStart := make(map[uint32]map[uint32]uint64)

	var totalOverlap uint64

	for _, inst := range sorted {
		switch inst.Type {
		case InstantStart:
			for otherID := range occurring {
				lo, hi := inst.EventID, otherID
				if lo > hi {
					lo, hi = hi, lo
				}
				inner, ok := pairStart[lo]
				if !ok {
					inner = make(map[uint32]uint64)
					pairStart[lo] = inner
				}
				inner[hi] = inst.Instant
			}
			occurring[inst.EventID] = inst.NameID

		case InstantEnd:
			delete(occurring, inst.EventID)
			for otherID, otherNameID := range occurring {
				lo, hi := inst.EventID, otherID
				if lo > hi {
					lo, hi = hi, lo
				}
				start := pairStart[lo][hi]
				delta := inst.Instant - start

				p.overlapMatrix.add(inst.NameID, otherNameID, delta)
				totalOverlap += delta
			}
		}
	}

	p.totalOverlap = totalOverlap
	p.totalEventsEffTime = p.totalEventsTime - totalOverlap
}
