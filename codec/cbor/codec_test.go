// SPDX-FileCopyrightText: 2026 The saleae-go Authors
//
// SPDX-License-Identifier: MIT

package cbor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"go.cryptoscope.co/saleae"
)

func TestMarshalRoundtrip(t *testing.T) {
	r := require.New(t)

	c := New()

	exps := []*saleae.Export{
		{FileData: saleae.DigitalData{
			InitialState:    saleae.Low,
			BeginTime:       0,
			EndTime:         2.5,
			TransitionTimes: []float64{1.0, 3.0, 3.5},
		}},
		{FileData: saleae.AnalogData{
			BeginTime:  0.125,
			SampleRate: 12500000,
			Downsample: 8,
			Samples:    []float64{0.01, -0.02, 3.314},
		}},
	}

	for i, exp := range exps {
		data, err := c.Marshal(exp)
		r.NoError(err, "failed to marshal case %d", i)

		got, err := c.Unmarshal(data)
		r.NoError(err, "failed to unmarshal case %d", i)
		r.Equal(exp, got, "roundtrip mismatch in case %d", i)
	}
}

func TestStreamRoundtrip(t *testing.T) {
	r := require.New(t)

	c := New()

	exp := &saleae.Export{FileData: saleae.DigitalData{
		InitialState:    saleae.High,
		BeginTime:       0.5,
		EndTime:         8,
		TransitionTimes: []float64{0.75, 1.5, 6.25},
	}}

	var buf bytes.Buffer
	r.NoError(c.NewEncoder(&buf).Encode(exp))

	got, err := c.NewDecoder(&buf).Decode()
	r.NoError(err)
	r.Equal(exp, got)
}
