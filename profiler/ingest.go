// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profiler

// ingest walks every registered queue's events in registration order
// and, within a queue, in arrival order, assigning each a fresh
// monotonic event-id and extracting its four device timestamps. Any
// profiling-info query failure aborts ingest immediately; no partial
// event is committed.
func (p *Profile) ingest() error {
	for _, qname := range p.registry.names() {
		q := p.registry.queues[qname]
		for _, evt := range q.Events() {
			if err := p.ingestOne(qname, evt); err != nil {
				return err
			}
		}
	}
	p.interner.build()
	return nil
}

func (p *Profile) ingestOne(queueName string, evt Event) error {
	p.numEvents++
	eventID := p.numEvents

	name := evt.FinalName()
	nameID := p.interner.intern(name)

	tQueued, err := evt.ProfilingInfo(Queued)
	if err != nil {
		return newError(InfoUnavailable, "Profile.Calculate", "querying t_queued", err)
	}
	tSubmit, err := evt.ProfilingInfo(Submit)
	if err != nil {
		return newError(InfoUnavailable, "Profile.Calculate", "querying t_submit", err)
	}
	tStart, err := evt.ProfilingInfo(Start)
	if err != nil {
		return newError(InfoUnavailable, "Profile.Calculate", "querying t_start", err)
	}
	tEnd, err := evt.ProfilingInfo(End)
	if err != nil {
		return newError(InfoUnavailable, "Profile.Calculate", "querying t_end", err)
	}

	if tStart < p.startTime {
		p.startTime = tStart
	}

	p.instants = append(p.instants,
		EventInstant{EventName: name, QueueName: queueName, EventID: eventID, NameID: nameID, Instant: tStart, Type: InstantStart},
		EventInstant{EventName: name, QueueName: queueName, EventID: eventID, NameID: nameID, Instant: tEnd, Type: InstantEnd},
	)
	p.events = append(p.events, EventRecord{
		EventName: name,
		QueueName: queueName,
		TQueued:   tQueued,
		TSubmit:   tSubmit,
		TStart:    tStart,
		TEnd:      tEnd,
	})

	return nil
}
