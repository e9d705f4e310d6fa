// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats computes distributional summaries over a profile's
// per-event-name durations, using github.com/aclements/go-moremath/stats
// for the percentile and standard-deviation math.
package stats

import (
	"sort"

	"github.com/aclements/go-moremath/stats"

	"github.com/cl4prof/clprof/profiler"
)

// Summary is a distributional summary of one event name's observed
// durations, in nanoseconds.
type Summary struct {
	EventName string
	Count     int
	Min       float64
	Max       float64
	Mean      float64
	StdDev    float64
	Median    float64
	P90       float64
	P99       float64
}

// Summarize computes a Summary for the given event name's durations in
// p. Reports false if the name was never observed (or Calculate has
// not run, in which case Profile.Durations returns nothing).
func Summarize(p *profiler.Profile, name string) (Summary, bool) {
	durations := p.Durations(name)
	if len(durations) == 0 {
		return Summary{}, false
	}

	xs := make([]float64, len(durations))
	for i, d := range durations {
		xs[i] = float64(d)
	}
	sample := stats.Sample{Xs: xs}
	min, max := sample.Bounds()

	return Summary{
		EventName: name,
		Count:     len(xs),
		Min:       min,
		Max:       max,
		Mean:      sample.Mean(),
		StdDev:    sample.StdDev(),
		Median:    sample.Percentile(0.5),
		P90:       sample.Percentile(0.9),
		P99:       sample.Percentile(0.99),
	}, true
}

// SummarizeAll computes a Summary for every event name observed in p,
// ordered by event name.
func SummarizeAll(p *profiler.Profile) []Summary {
	names := p.EventNames()
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)

	summaries := make([]Summary, 0, len(sorted))
	for _, name := range sorted {
		if s, ok := Summarize(p, name); ok {
			summaries = append(summaries, s)
		}
	}
	return summaries
}
