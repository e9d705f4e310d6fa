// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profiler

import (
	"fmt"
	"io"
	"sort"
)

// PrintInfo writes a human-readable profiling summary to w: the
// wall-clock elapsed time (if Start was called), the total events
// time, an aggregate-by-event-name table sorted by sortKind, and, if
// any overlaps were found, the effective time, the savings, and an
// overlap table. It is a precondition violation to call PrintInfo
// before Calculate. Best-effort: a write failure partway through does
// not roll back what was already written.
func (p *Profile) PrintInfo(w io.Writer, sortKind AggregateSort) error {
	if !p.calculated {
		return newError(Precondition, "Profile.PrintInfo", "Calculate has not run", nil)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "   =========================== Timing/Profiling ===========================")
	fmt.Fprintln(w)

	if p.timer != nil {
		fmt.Fprintf(w, "     Total elapsed time        : %fs\n", p.TimeElapsed())
	}

	if p.totalEventsTime > 0 {
		fmt.Fprintf(w, "     Total of all events       : %fs\n", float64(p.totalEventsTime)*1e-9)
	}

	if len(p.aggregates) > 0 {
		fmt.Fprintf(w, "     Aggregate times by event  :\n")
		aggs := p.sortedAggregates(sortKind)
		fmt.Fprintln(w, "       ------------------------------------------------------------------")
		fmt.Fprintln(w, "       | Event name                     | Rel. time (%) | Abs. time (s) |")
		fmt.Fprintln(w, "       ------------------------------------------------------------------")
		for _, agg := range aggs {
			fmt.Fprintf(w, "       | %-30.30s | %13.4f | %13.4e |\n",
				agg.EventName, agg.RelativeTime*100.0, float64(agg.AbsoluteTime)*1e-9)
		}
		fmt.Fprintln(w, "       ------------------------------------------------------------------")
	}

	overlapLines := p.overlapLines()
	if len(overlapLines) > 0 {
		fmt.Fprintf(w, "     Tot. of all events (eff.) : %es\n", float64(p.totalEventsEffTime)*1e-9)
		fmt.Fprintf(w, "                                 %es saved with overlaps\n",
			float64(p.totalEventsTime-p.totalEventsEffTime)*1e-9)
		fmt.Fprintf(w, "     Event overlap times       :\n")
		fmt.Fprintln(w, "       ------------------------------------------------------------------")
		fmt.Fprintln(w, "       | Event 1                | Event2                 | Overlap (s)  |")
		fmt.Fprintln(w, "       ------------------------------------------------------------------")
		for _, line := range overlapLines {
			fmt.Fprint(w, line)
		}
		fmt.Fprintln(w, "       ------------------------------------------------------------------")
	}

	return nil
}

func (p *Profile) sortedAggregates(sortKind AggregateSort) []*AggregateEntry {
	aggs := make([]*AggregateEntry, 0, len(p.aggregates))
	for _, agg := range p.aggregates {
		aggs = append(aggs, agg)
	}
	switch sortKind {
	case SortName:
		sort.Slice(aggs, func(i, j int) bool { return aggs[i].EventName < aggs[j].EventName })
	case SortTime:
		// Descending by absolute time, intentionally.
		sort.Slice(aggs, func(i, j int) bool { return aggs[i].AbsoluteTime > aggs[j].AbsoluteTime })
	}
	return aggs
}

func (p *Profile) overlapLines() []string {
	if p.overlapMatrix == nil {
		return nil
	}
	n := p.overlapMatrix.N()
	var lines []string
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := p.overlapMatrix.raw(uint32(i), uint32(j))
			if v == 0 {
				continue
			}
			lines = append(lines, fmt.Sprintf("       | %-22.22s | %-22.22s | %12.4e |\n",
				p.interner.nameOf(uint32(i)), p.interner.nameOf(uint32(j)), float64(v)*1e-9))
		}
	}
	return lines
}
