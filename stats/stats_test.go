// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats_test

import (
	"testing"

	"github.com/cl4prof/clprof/ocltest"
	"github.com/cl4prof/clprof/profiler"
	"github.com/cl4prof/clprof/stats"
)

func TestSummarizeUnknownName(t *testing.T) {
	p := profiler.New()
	if err := p.AddQueue("q0", ocltest.NewQueue().AddSimple("k", 0, 10)); err != nil {
		t.Fatal(err)
	}
	if err := p.Calculate(); err != nil {
		t.Fatal(err)
	}

	if _, ok := stats.Summarize(p, "nope"); ok {
		t.Fatal("expected ok=false for an unobserved event name")
	}
}

func TestSummarizeComputesMeanAndBounds(t *testing.T) {
	p := profiler.New()
	q := ocltest.NewQueue().
		AddSimple("k", 0, 10).
		AddSimple("k", 0, 20).
		AddSimple("k", 0, 30)
	if err := p.AddQueue("q0", q); err != nil {
		t.Fatal(err)
	}
	if err := p.Calculate(); err != nil {
		t.Fatal(err)
	}

	summary, ok := stats.Summarize(p, "k")
	if !ok {
		t.Fatal("expected ok=true")
	}
	if summary.Count != 3 {
		t.Errorf("Count = %d, want 3", summary.Count)
	}
	if summary.Min != 10 {
		t.Errorf("Min = %v, want 10", summary.Min)
	}
	if summary.Max != 30 {
		t.Errorf("Max = %v, want 30", summary.Max)
	}
	if summary.Mean != 20 {
		t.Errorf("Mean = %v, want 20", summary.Mean)
	}
	if summary.P90 < summary.Min || summary.P90 > summary.Max {
		t.Errorf("P90 = %v, want within [%v, %v]", summary.P90, summary.Min, summary.Max)
	}
	if summary.P99 < summary.Min || summary.P99 > summary.Max {
		t.Errorf("P99 = %v, want within [%v, %v]", summary.P99, summary.Min, summary.Max)
	}
	if summary.P99 < summary.P90 {
		t.Errorf("P99 = %v, want >= P90 = %v", summary.P99, summary.P90)
	}
}

func TestSummarizeAllOrdersByName(t *testing.T) {
	p := profiler.New()
	q := ocltest.NewQueue().
		AddSimple("zzz", 0, 10).
		AddSimple("aaa", 0, 10)
	if err := p.AddQueue("q0", q); err != nil {
		t.Fatal(err)
	}
	if err := p.Calculate(); err != nil {
		t.Fatal(err)
	}

	summaries := stats.SummarizeAll(p)
	if len(summaries) != 2 {
		t.Fatalf("len(summaries) = %d, want 2", len(summaries))
	}
	if summaries[0].EventName != "aaa" || summaries[1].EventName != "zzz" {
		t.Errorf("unexpected order: %v", summaries)
	}
}
