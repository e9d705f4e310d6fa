// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profiler

// interner assigns dense uint32 ids to event-name strings in
// first-seen order. The reverse id->name map is built lazily, once,
// after ingest completes — name lookups are not needed during ingest
// itself.
type interner struct {
	ids   map[string]uint32
	names []string // names[id] == name, valid once built is true
	built bool
}

func newInterner() *interner {
	return &interner{ids: make(map[string]uint32)}
}

// intern returns the id for name, assigning a fresh one if name
// hasn't been seen before. Idempotent.
func (in *interner) intern(name string) uint32 {
	if id, ok := in.ids[name]; ok {
		return id
	}
	id := uint32(len(in.ids))
	in.ids[name] = id
	return id
}

// len returns the number of distinct names interned so far.
func (in *interner) len() int {
	return len(in.ids)
}

// build materializes the reverse id->name map. Must be called once,
// after all names have been interned and before nameOf is used.
func (in *interner) build() {
	in.names = make([]string, len(in.ids))
	for name, id := range in.ids {
		in.names[id] = name
	}
	in.built = true
}

// nameOf returns the name for id. build must have been called first.
func (in *interner) nameOf(id uint32) string {
	return in.names[id]
}
