// SPDX-FileCopyrightText: 2026 The saleae-go Authors
//
// SPDX-License-Identifier: MIT

package saleae // import "go.cryptoscope.co/saleae"

import (
	"context"

	"github.com/ssbc/go-luigi"
)

// Sample is one reconstructed interval of a digital capture: the
// signal level and how long it was held before the next transition.
type Sample struct {
	High     bool
	Duration float64
}

// SampleIter walks a digital capture's transition times and yields
// one Sample per entry. It borrows the TransitionTimes slice and does
// not copy or mutate it.
type SampleIter struct {
	times   []float64
	initial bool
	i       int
}

// IterSamples returns a fresh iterator over the reconstructed
// samples. Each call starts a new, independent walk from the first
// transition.
func (d DigitalData) IterSamples() *SampleIter {
	return &SampleIter{
		times:   d.TransitionTimes,
		initial: d.InitialState.Bool(),
	}
}

// Next returns the next sample. The second return is false once all
// transition times have been consumed.
func (it *SampleIter) Next() (Sample, bool) {
	if it.i >= len(it.times) {
		return Sample{}, false
	}

	var prev float64
	if it.i > 0 {
		prev = it.times[it.i-1]
	}

	s := Sample{
		// alternating signal, starting at the initial state
		High: it.initial != (it.i&1 == 1),
		// this transition time minus the last one
		Duration: it.times[it.i] - prev,
	}
	it.i++

	return s, true
}

// SampleSource exposes the same walk as a luigi stream. Next yields
// Sample values and ends with luigi.EOS once the transition times are
// exhausted.
func (d DigitalData) SampleSource() luigi.Source {
	return &sampleSource{iter: d.IterSamples()}
}

type sampleSource struct {
	iter *SampleIter
}

func (src *sampleSource) Next(ctx context.Context) (interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s, ok := src.iter.Next()
	if !ok {
		return nil, luigi.EOS{}
	}
	return s, nil
}
