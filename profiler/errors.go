// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profiler

import "fmt"

// Kind categorizes the ways a profiling operation can fail.
type Kind int

const (
	// InfoUnavailable means a device profiling info query failed
	// during ingest.
	InfoUnavailable Kind = iota
	// StreamWrite means the exporter failed to write a record.
	StreamWrite
	// OpenFile means the file exporter could not open its path.
	OpenFile
	// Precondition means the caller misused the API: adding a queue
	// after Calculate, calling Calculate twice, or reporting before
	// Calculate.
	Precondition
)

func (k Kind) String() string {
	switch k {
	case InfoUnavailable:
		return "INFO_UNAVAILABLE"
	case StreamWrite:
		return "STREAM_WRITE"
	case OpenFile:
		return "OPEN_FILE"
	case Precondition:
		return "PRECONDITION"
	default:
		return "UNKNOWN"
	}
}

// Error is the structured error type returned by profiling
// operations. It carries a Kind, a domain (the name of the component
// or object that failed) and a human-readable message.
type Error struct {
	Kind    Kind
	Domain  string
	Message string
	Err     error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.Domain != "" {
		return fmt.Sprintf("%s: %s: %s", e.Domain, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, domain, message string, err error) *Error {
	return &Error{Kind: kind, Domain: domain, Message: message, Err: err}
}
