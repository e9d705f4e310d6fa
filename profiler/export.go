// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profiler

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
)

// ExportOptions configures the exporter's line format. The zero value
// is not valid configuration on its own — use DefaultExportOptions.
type ExportOptions struct {
	Separator   string
	Newline     string
	QueueDelim  string
	EvNameDelim string
	ZeroStart   bool
	SortBy      EventSort
}

// DefaultExportOptions returns the exporter's default configuration.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Separator:   "\t",
		Newline:     "\n",
		QueueDelim:  "",
		EvNameDelim: "",
		ZeroStart:   true,
		SortBy:      SortTStart,
	}
}

var (
	exportOptsMu  sync.Mutex
	exportOptions = DefaultExportOptions()
)

// GetExportOpts returns a copy of the current process-wide export
// options.
func GetExportOpts() ExportOptions {
	exportOptsMu.Lock()
	defer exportOptsMu.Unlock()
	return exportOptions
}

// SetExportOpts replaces the process-wide export options. Concurrent
// callers must snapshot-read (GetExportOpts) before copy-writing if
// they want a read-modify-write.
func SetExportOpts(opts ExportOptions) {
	exportOptsMu.Lock()
	defer exportOptsMu.Unlock()
	exportOptions = opts
}

// ExportInfo writes one line per event to w, ordered by the current
// process-wide export options' SortBy (t_start ascending by default),
// using those same options for delimiting. Each line has the form:
//
//	<queue_delim><queue_name><queue_delim><sep><t_start><sep><t_end><sep><evname_delim><event_name><evname_delim><newline>
//
// When ZeroStart is true, t_start and t_end are emitted relative to
// the profile's StartTime. A write failure aborts the export and
// returns a StreamWrite error.
func (p *Profile) ExportInfo(w io.Writer) error {
	if !p.calculated {
		return newError(Precondition, "Profile.ExportInfo", "Calculate has not run", nil)
	}

	opts := GetExportOpts()

	events := make([]EventRecord, len(p.events))
	copy(events, p.events)
	less := lessEvent(opts.SortBy)
	sort.Slice(events, func(i, j int) bool { return less(events[i], events[j]) })

	for _, ev := range events {
		tStart, tEnd := ev.TStart, ev.TEnd
		if opts.ZeroStart {
			tStart -= p.startTime
			tEnd -= p.startTime
		}
		_, err := fmt.Fprintf(w, "%s%s%s%s%d%s%d%s%s%s%s%s",
			opts.QueueDelim, ev.QueueName, opts.QueueDelim,
			opts.Separator, tStart,
			opts.Separator, tEnd,
			opts.Separator, opts.EvNameDelim, ev.EventName, opts.EvNameDelim,
			opts.Newline)
		if err != nil {
			return newError(StreamWrite, "Profile.ExportInfo", "writing exported record", err)
		}
	}

	return nil
}

// ExportInfoFile opens path for writing, delegates to ExportInfo, and
// closes the file on every exit path.
func (p *Profile) ExportInfoFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return newError(OpenFile, "Profile.ExportInfoFile", fmt.Sprintf("opening %q", path), err)
	}
	defer f.Close()

	return p.ExportInfo(f)
}
