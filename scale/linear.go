// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// Linear maps an input range linearly onto [0, 1]. It is the scale
// used to place events on a timeline: the input range is the
// profile's observed instant range (nanoseconds since StartTime), and
// Of(x) gives the fractional position along the timeline's width.
type Linear struct {
	min, width float64
}

// NewLinear returns a linear scale covering the range spanned by
// input. A single-point (or empty) input produces a degenerate scale
// whose Of always returns 0, rather than dividing by zero.
func NewLinear(input []float64) Linear {
	if len(input) == 0 {
		return Linear{0, 0}
	}
	min, max := minmax(input)
	return Linear{min, max - min}
}

// NewLinearRange returns a linear scale covering [lo, hi] directly,
// without scanning a sample slice. Used when the range is already
// known, such as the span from a profile's StartTime to its latest
// t_end.
func NewLinearRange(lo, hi float64) Linear {
	return Linear{lo, hi - lo}
}

func (s Linear) Of(x float64) float64 {
	if s.width == 0 {
		return 0
	}
	return (x - s.min) / s.width
}

func (s Linear) Ticks(n int) (major, minor []float64) {
	if n <= 0 {
		return nil, nil
	}
	major, minor = make([]float64, n), []float64{}

	for i := range major {
		major[i] = float64(i)*s.width/float64(n) + s.min
	}

	return
}
