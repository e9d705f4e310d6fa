// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profiler_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cl4prof/clprof/ocltest"
	"github.com/cl4prof/clprof/profiler"
)

func TestExportCustomDelimiters(t *testing.T) {
	p := profiler.New()
	mustAddQueue(t, p, "gpu0", ocltest.NewQueue().Add("k", 0, 0, 0, 50))
	mustCalculate(t, p)

	profiler.SetExportOpts(profiler.ExportOptions{
		Separator:   ",",
		Newline:     ";",
		QueueDelim:  "'",
		EvNameDelim: "\"",
		ZeroStart:   false,
	})
	defer profiler.SetExportOpts(profiler.DefaultExportOptions())

	var buf bytes.Buffer
	if err := p.ExportInfo(&buf); err != nil {
		t.Fatal(err)
	}
	want := "'gpu0',0,50,\"k\";"
	if buf.String() != want {
		t.Errorf("export = %q, want %q", buf.String(), want)
	}
}

func TestExportOrdersByStart(t *testing.T) {
	p := profiler.New()
	q := ocltest.NewQueue().
		AddSimple("second", 100, 150).
		AddSimple("first", 0, 50)
	mustAddQueue(t, p, "q0", q)
	mustCalculate(t, p)

	profiler.SetExportOpts(profiler.DefaultExportOptions())
	var buf bytes.Buffer
	if err := p.ExportInfo(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "first") || !strings.Contains(lines[1], "second") {
		t.Errorf("expected first before second, got %v", lines)
	}
}

func TestExportSortByEventName(t *testing.T) {
	p := profiler.New()
	q := ocltest.NewQueue().
		AddSimple("zzz", 0, 50).
		AddSimple("aaa", 100, 150)
	mustAddQueue(t, p, "q0", q)
	mustCalculate(t, p)

	opts := profiler.DefaultExportOptions()
	opts.SortBy = profiler.SortNameEvent
	profiler.SetExportOpts(opts)
	defer profiler.SetExportOpts(profiler.DefaultExportOptions())

	var buf bytes.Buffer
	if err := p.ExportInfo(&buf); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "aaa") || !strings.Contains(lines[1], "zzz") {
		t.Errorf("expected aaa before zzz under SortNameEvent, got %v", lines)
	}
}

func TestExportBeforeCalculateIsPrecondition(t *testing.T) {
	p := profiler.New()
	var buf bytes.Buffer
	err := p.ExportInfo(&buf)
	assertPrecondition(t, err)
}

func TestExportInfoFileOpensAndWrites(t *testing.T) {
	p := profiler.New()
	mustAddQueue(t, p, "q0", ocltest.NewQueue().AddSimple("k", 0, 10))
	mustCalculate(t, p)

	path := t.TempDir() + "/export.tsv"
	if err := p.ExportInfoFile(path); err != nil {
		t.Fatal(err)
	}
}

func TestExportInfoFileBadPathIsOpenFileError(t *testing.T) {
	p := profiler.New()
	mustAddQueue(t, p, "q0", ocltest.NewQueue().AddSimple("k", 0, 10))
	mustCalculate(t, p)

	err := p.ExportInfoFile("/nonexistent-dir-xyz/export.tsv")
	if err == nil {
		t.Fatal("expected an error")
	}
	var perr *profiler.Error
	if !asError(err, &perr) {
		t.Fatalf("expected *profiler.Error, got %T", err)
	}
	if perr.Kind != profiler.OpenFile {
		t.Errorf("Kind = %v, want OpenFile", perr.Kind)
	}
}

func asError(err error, target **profiler.Error) bool {
	pe, ok := err.(*profiler.Error)
	if !ok {
		return false
	}
	*target = pe
	return true
}
