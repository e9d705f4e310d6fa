// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profiler

import "testing"

func TestInternerAssignsSequentialIDsFirstSeen(t *testing.T) {
	in := newInterner()
	ids := map[string]uint32{
		"b": in.intern("b"),
		"a": in.intern("a"),
		"c": in.intern("c"),
	}
	if ids["b"] != 0 || ids["a"] != 1 || ids["c"] != 2 {
		t.Fatalf("unexpected ids: %v", ids)
	}
	if in.len() != 3 {
		t.Fatalf("len() = %d, want 3", in.len())
	}
}

func TestInternerIdempotent(t *testing.T) {
	in := newInterner()
	first := in.intern("k")
	second := in.intern("k")
	if first != second {
		t.Fatalf("intern not idempotent: %d != %d", first, second)
	}
	if in.len() != 1 {
		t.Fatalf("len() = %d, want 1", in.len())
	}
}

func TestInternerBuildIsBijective(t *testing.T) {
	in := newInterner()
	names := []string{"x", "y", "z"}
	for _, n := range names {
		in.intern(n)
	}
	in.build()
	for _, n := range names {
		id := in.ids[n]
		if got := in.nameOf(id); got != n {
			t.Errorf("nameOf(intern(%q)) = %q, want %q", n, got, n)
		}
	}
}

func TestOverlapMatrixSymmetricAccess(t *testing.T) {
	m := newOverlapMatrix(3)
	m.add(0, 2, 50)
	if got := m.At(0, 2); got != 50 {
		t.Errorf("At(0,2) = %d, want 50", got)
	}
	if got := m.At(2, 0); got != 50 {
		t.Errorf("At(2,0) = %d, want 50", got)
	}
	if got := m.raw(0, 2); got != 50 {
		t.Errorf("raw(0,2) = %d, want 50", got)
	}
	if got := m.raw(2, 0); got != 0 {
		t.Errorf("raw(2,0) = %d, want 0 (lower triangle never written)", got)
	}
}

func TestOverlapMatrixAccumulates(t *testing.T) {
	m := newOverlapMatrix(2)
	m.add(0, 1, 10)
	m.add(1, 0, 5)
	if got := m.At(0, 1); got != 15 {
		t.Errorf("At(0,1) = %d, want 15", got)
	}
}
