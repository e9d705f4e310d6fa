// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeline_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/cl4prof/clprof/ocltest"
	"github.com/cl4prof/clprof/profiler"
	"github.com/cl4prof/clprof/timeline"
)

func TestRenderProducesDecodablePNG(t *testing.T) {
	p := profiler.New()
	q := ocltest.NewQueue().
		AddSimple("copy", 0, 100).
		AddSimple("kernel", 50, 300)
	if err := p.AddQueue("gpu0", q); err != nil {
		t.Fatal(err)
	}
	if err := p.Calculate(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := timeline.Render(&buf, p, timeline.Options{}); err != nil {
		t.Fatal(err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding rendered PNG: %v", err)
	}
	if img.Bounds().Dx() != 900 {
		t.Errorf("width = %d, want 900 (default)", img.Bounds().Dx())
	}
}

func TestRenderCustomWidth(t *testing.T) {
	p := profiler.New()
	if err := p.AddQueue("gpu0", ocltest.NewQueue().AddSimple("k", 0, 10)); err != nil {
		t.Fatal(err)
	}
	if err := p.Calculate(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := timeline.Render(&buf, p, timeline.Options{Width: 400}); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 400 {
		t.Errorf("width = %d, want 400", img.Bounds().Dx())
	}
}

func TestRenderMultiQueueLanes(t *testing.T) {
	p := profiler.New()
	if err := p.AddQueue("gpu1", ocltest.NewQueue().AddSimple("a", 0, 10)); err != nil {
		t.Fatal(err)
	}
	if err := p.AddQueue("gpu0", ocltest.NewQueue().AddSimple("b", 0, 10)); err != nil {
		t.Fatal(err)
	}
	if err := p.Calculate(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := timeline.Render(&buf, p, timeline.Options{}); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Fatal(err)
	}
}
