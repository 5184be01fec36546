// SPDX-FileCopyrightText: 2026 The saleae-go Authors
//
// SPDX-License-Identifier: MIT

package json

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
			InitialState:    saleae.High,
			BeginTime:       0.25,
			EndTime:         4,
			TransitionTimes: []float64{0.5, 1.75, 3.125},
		}},
		{FileData: saleae.AnalogData{
			BeginTime:  1,
			SampleRate: 1000,
			Downsample: 1,
			Samples:    []float64{0.1, 0.2, 0.15},
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

	exp := &saleae.Export{FileData: saleae.AnalogData{
		SampleRate: 625000,
		Downsample: 4,
		Samples:    []float64{3.3, 0, -3.3},
	}}

	var buf bytes.Buffer
	r.NoError(c.NewEncoder(&buf).Encode(exp))

	got, err := c.NewDecoder(&buf).Decode()
	r.NoError(err)
	r.Equal(exp, got)
}

func TestUnmarshalUnknownKind(t *testing.T) {
	r := require.New(t)

	_, err := New().Unmarshal([]byte(`{"version":0,"kind":"quantum"}`))
	r.Error(err)
}

func TestUnmarshalMissingPayload(t *testing.T) {
	r := require.New(t)

	_, err := New().Unmarshal([]byte(`{"version":0,"kind":"digital"}`))
	r.Error(err)
}
