// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command clprofdemo generates a synthetic multi-queue event trace and
// runs it through the profiling engine, printing a human-readable
// report, an event-duration statistics table, and optionally
// exporting a TSV trace and a PNG timeline.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/fatih/color"
	"github.com/golang/glog"
	"github.com/olekukonko/tablewriter"

	"github.com/cl4prof/clprof/ocltest"
	"github.com/cl4prof/clprof/profiler"
	"github.com/cl4prof/clprof/stats"
	"github.com/cl4prof/clprof/timeline"
)

const demoVersion = "0.1.0"

const usage = `clprofdemo: synthetic device-profiling demo.

Usage:
  clprofdemo [--queues=<n>] [--events=<n>] [--seed=<seed>] [--no-report]
             [--export=<path>] [--timeline=<path>]
  clprofdemo -h | --help
  clprofdemo --version

Options:
  -h --help           Show this screen.
  --version            Show version.
  --queues=<n>         Number of synthetic queues to generate. [default: 2]
  --events=<n>         Number of events per queue. [default: 6]
  --seed=<seed>        Random seed for synthetic generation. [default: 1]
  --no-report          Skip the human-readable PrintInfo report.
  --export=<path>      Export the raw trace as TSV to this path.
  --timeline=<path>    Render a PNG timeline to this path.
`

func main() {
	flag.CommandLine.Parse(nil) // seed glog's own flag defaults; docopt owns the user-facing flags

	opts, err := docopt.ParseArgs(usage, os.Args[1:], demoVersion)
	if err != nil {
		glog.Fatalf("[clprofdemo]parsing args: %s", err)
	}

	numQueues := mustInt(opts, "--queues")
	numEvents := mustInt(opts, "--events")
	seed := int64(mustInt(opts, "--seed"))

	glog.Infof("[clprofdemo]generating %d queues x %d events, seed=%d\n", numQueues, numEvents, seed)

	p := profiler.New()
	p.SetWarnFunc(glog.Warningf)
	p.Start()
	if err := generate(p, numQueues, numEvents, seed); err != nil {
		glog.Fatalf("[clprofdemo]generating trace: %s", err)
	}
	p.Stop()

	if err := p.Calculate(); err != nil {
		glog.Fatalf("[clprofdemo]calculate: %s", err)
	}
	glog.Infof("[clprofdemo]calculate done in %fs\n", p.TimeElapsed())

	noReport, _ := opts.Bool("--no-report")
	if !noReport {
		if err := p.PrintInfo(os.Stdout, profiler.SortTime); err != nil {
			glog.Fatalf("[clprofdemo]print: %s", err)
		}
	}

	printStatsTable(p)

	if exportPath, _ := opts.String("--export"); exportPath != "" {
		if err := p.ExportInfoFile(exportPath); err != nil {
			glog.Fatalf("[clprofdemo]export: %s", err)
		}
		glog.Infof("[clprofdemo]exported trace to %s\n", exportPath)
	}

	if timelinePath, _ := opts.String("--timeline"); timelinePath != "" {
		if err := renderTimeline(p, timelinePath); err != nil {
			glog.Fatalf("[clprofdemo]timeline: %s", err)
		}
		glog.Infof("[clprofdemo]rendered timeline to %s\n", timelinePath)
	}

	glog.Flush()
}

// generate populates p with numQueues synthetic queues of numEvents
// events each, using a rand.Rand seeded explicitly (never the global
// source) so a given seed always reproduces the same trace.
func generate(p *profiler.Profile, numQueues, numEvents int, seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	names := []string{"copy_h2d", "kernel", "copy_d2h", "barrier"}

	var cursor uint64
	for qi := 0; qi < numQueues; qi++ {
		q := ocltest.NewQueue()
		t := cursor
		for ei := 0; ei < numEvents; ei++ {
			name := names[rng.Intn(len(names))]
			dur := uint64(50+rng.Intn(200)) * 1000
			tStart := t
			tEnd := tStart + dur
			q.Add(name, tStart, tStart, tStart, tEnd)
			t = tStart + uint64(rng.Intn(int(dur)+1))
		}
		queueName := fmt.Sprintf("queue%d", qi)
		if err := p.AddQueue(queueName, q); err != nil {
			return err
		}
		cursor += uint64(rng.Intn(1000))
	}
	return nil
}

func renderTimeline(p *profiler.Profile, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return timeline.Render(f, p, timeline.Options{})
}

func printStatsTable(p *profiler.Profile) {
	summaries := stats.SummarizeAll(p)
	if len(summaries) == 0 {
		return
	}

	table := tablewriter.NewTable(os.Stdout)
	table.Header([]string{"Event", "Count", "Min (ns)", "Mean (ns)", "Max (ns)", "StdDev (ns)"})

	for _, s := range summaries {
		name := color.CyanString(s.EventName)
		table.Append([]string{
			name,
			fmt.Sprintf("%d", s.Count),
			fmt.Sprintf("%.0f", s.Min),
			fmt.Sprintf("%.0f", s.Mean),
			fmt.Sprintf("%.0f", s.Max),
			fmt.Sprintf("%.0f", s.StdDev),
		})
	}
	table.Render()
}

func mustInt(opts docopt.Opts, key string) int {
	n, err := opts.Int(key)
	if err != nil {
		glog.Fatalf("[clprofdemo]%s: %s", key, err)
	}
	return n
}
