// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timeline rasterizes a profile as a PNG: one horizontal lane
// per queue, a rectangle per event, and a darkened overlay wherever
// two events' intervals intersect. Labels follow a new-context/
// DrawString rasterization pipeline built on image/draw and
// golang/freetype.
package timeline

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"sort"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/cl4prof/clprof/profiler"
	"github.com/cl4prof/clprof/scale"
)

const (
	laneHeight  = 28
	lanePadding = 4
	labelWidth  = 120
	marginTop   = 24
	marginRight = 16
	fontSize    = 11
)

// Options configures the rendered image. The zero value is valid and
// produces a 900px-wide timeline.
type Options struct {
	// Width is the total image width in pixels, including the queue
	// label column. 0 means 900.
	Width int
}

// Render draws p as a PNG timeline to w. It is a precondition
// violation to call Render before p.Calculate.
func Render(w io.Writer, p *profiler.Profile, opts Options) error {
	if opts.Width <= 0 {
		opts.Width = 900
	}

	events := p.Events()
	if len(events) == 0 {
		return fmt.Errorf("timeline: profile has no events; did Calculate run?")
	}

	lanes, laneOf := laneQueues(events)

	minT, maxT := timeBounds(events, p.StartTime())

	plotWidth := opts.Width - labelWidth - marginRight
	var timeScale scale.Interface = scale.NewLinearRange(float64(minT), float64(maxT))
	pxScale := scale.NewOutputScale(float64(labelWidth), float64(labelWidth+plotWidth))

	height := marginTop + len(lanes)*(laneHeight+lanePadding)
	img := image.NewNRGBA(image.Rect(0, 0, opts.Width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	ctx, fontHeight, err := newFontContext(img)
	if err != nil {
		return err
	}

	palette := buildPalette(p.EventNames())

	for laneIdx, queueName := range lanes {
		y := marginTop + laneIdx*(laneHeight+lanePadding)
		ctx.DrawString(queueName, freetype.Pt(4, y+laneHeight/2+fontHeight/2))
	}

	for _, ev := range events {
		laneIdx := laneOf[ev.QueueName]
		y0 := marginTop + laneIdx*(laneHeight+lanePadding)
		x0 := xOf(timeScale, pxScale, float64(ev.TStart)-float64(p.StartTime()))
		x1 := xOf(timeScale, pxScale, float64(ev.TEnd)-float64(p.StartTime()))
		if x1 <= x0 {
			x1 = x0 + 1
		}
		rect := image.Rect(x0, y0, x1, y0+laneHeight)
		col := palette[ev.EventName]
		draw.Draw(img, rect, image.NewUniform(col), image.Point{}, draw.Src)
	}

	drawOverlaps(img, events, timeScale, pxScale, p.StartTime(), lanes, laneOf)

	return png.Encode(w, img)
}

func timeBounds(events []profiler.EventRecord, start uint64) (minT, maxT uint64) {
	maxT = 0
	for _, ev := range events {
		if ev.TEnd-start > maxT {
			maxT = ev.TEnd - start
		}
	}
	return 0, maxT
}

func xOf(timeScale scale.Interface, pxScale scale.OutputScale, t float64) int {
	frac := timeScale.Of(t)
	pxScale.Clamp()
	px, _ := pxScale.Of(frac)
	return int(px)
}

func laneQueues(events []profiler.EventRecord) ([]string, map[string]int) {
	seen := make(map[string]bool)
	var names []string
	for _, ev := range events {
		if !seen[ev.QueueName] {
			seen[ev.QueueName] = true
			names = append(names, ev.QueueName)
		}
	}
	sort.Strings(names)

	laneOf := make(map[string]int, len(names))
	for i, name := range names {
		laneOf[name] = i
	}
	return names, laneOf
}

// buildPalette assigns each distinct event name a stable color, cycled
// from a small fixed palette in name-id order (so the same event name
// always gets the same color across renders of the same profile).
func buildPalette(names []string) map[string]color.NRGBA {
	base := []color.NRGBA{
		{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
		{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
		{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
		{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
		{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
		{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
		{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
		{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
	}
	palette := make(map[string]color.NRGBA, len(names))
	for i, name := range names {
		palette[name] = base[i%len(base)]
	}
	return palette
}

// drawOverlaps darkens, on the lane of each of the two events, the
// time span where a pair of event intervals intersect, regardless of
// which queue each event ran on. It walks event pairs directly by i<j
// index, the same non-double-counting discipline the profiler package
// uses when reading its own overlap matrix, since here too each pair
// must be drawn exactly once.
func drawOverlaps(img *image.NRGBA, events []profiler.EventRecord, timeScale scale.Interface, pxScale scale.OutputScale, start uint64, lanes []string, laneOf map[string]int) {
	shade := color.NRGBA{R: 0, G: 0, B: 0, A: 0x60}
	for i := 0; i < len(events); i++ {
		for j := i + 1; j < len(events); j++ {
			a, b := events[i], events[j]
			loT, hiT := maxU64(a.TStart, b.TStart), minU64(a.TEnd, b.TEnd)
			if loT >= hiT {
				continue
			}
			x0 := xOf(timeScale, pxScale, float64(loT)-float64(start))
			x1 := xOf(timeScale, pxScale, float64(hiT)-float64(start))
			if x1 <= x0 {
				continue
			}

			queues := []string{a.QueueName}
			if b.QueueName != a.QueueName {
				queues = append(queues, b.QueueName)
			}
			for _, qn := range queues {
				y0 := marginTop + laneOf[qn]*(laneHeight+lanePadding)
				rect := image.Rect(x0, y0, x1, y0+laneHeight)
				draw.Draw(img, rect, image.NewUniform(shade), image.Point{}, draw.Over)
			}
		}
	}
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

func minU64(a, b uint64) uint64 {
	if a < b {
		return a
	}
	return b
}

// newFontContext loads the embedded Go Regular font (avoiding any
// dependency on fonts installed on the host, unlike cmd/memanim's
// hard-coded DejaVu path) and returns a freetype context ready to draw
// onto img in black at fontSize points, plus the font's line height in
// pixels.
func newFontContext(img *image.NRGBA) (*freetype.Context, int, error) {
	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, 0, fmt.Errorf("timeline: parsing embedded font: %w", err)
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(font)
	ctx.SetFontSize(fontSize)
	ctx.SetSrc(image.Black)
	ctx.SetDst(img)
	ctx.SetClip(img.Bounds())

	bounds := font.Bounds(ctx.PointToFixed(fontSize))
	height := int((bounds.Max.Y - bounds.Min.Y) >> 6)
	return ctx, height, nil
}
