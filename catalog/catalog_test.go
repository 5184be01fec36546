// SPDX-FileCopyrightText: 2026 The saleae-go Authors
//
// SPDX-License-Identifier: MIT

package catalog

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"go.cryptoscope.co/saleae"
)

func TestDescribeDigital(t *testing.T) {
	r := require.New(t)

	exp := &saleae.Export{FileData: saleae.DigitalData{
		InitialState:    saleae.High,
		BeginTime:       0.5,
		EndTime:         4.5,
		TransitionTimes: []float64{1, 2, 3},
	}}

	info := Describe("ch0/digital_0.bin", exp)
	r.Equal(Info{
		Path:      "ch0/digital_0.bin",
		Kind:      KindDigital,
		BeginTime: 0.5,
		EndTime:   4.5,
		Records:   3,
	}, info)
}

func TestDescribeAnalog(t *testing.T) {
	r := require.New(t)

	exp := &saleae.Export{FileData: saleae.AnalogData{
		BeginTime:  1.25,
		SampleRate: 625000,
		Downsample: 4,
		Samples:    []float64{0.1, 0.2},
	}}

	info := Describe("ch1/analog_1.bin", exp)
	r.Equal(Info{
		Path:       "ch1/analog_1.bin",
		Kind:       KindAnalog,
		BeginTime:  1.25,
		SampleRate: 625000,
		Downsample: 4,
		Records:    2,
	}, info)
}

func TestDescribeFile(t *testing.T) {
	r := require.New(t)

	dir, err := ioutil.TempDir("", t.Name())
	r.NoError(err)

	exp := &saleae.Export{FileData: saleae.AnalogData{
		SampleRate: 1000,
		Downsample: 1,
		Samples:    []float64{0.1, 0.2, 0.15},
	}}

	path := filepath.Join(dir, "analog_0.bin")
	r.NoError(exp.Save(path))

	info, err := DescribeFile(path)
	r.NoError(err)
	r.Equal(KindAnalog, info.Kind)
	r.EqualValues(3, info.Records)
	r.Equal(path, info.Path)

	// unreadable paths surface the underlying error
	_, err = DescribeFile(filepath.Join(dir, "missing.bin"))
	r.Error(err)

	if t.Failed() {
		t.Logf("test data at %q was not deleted due to test failure", dir)
	} else {
		os.RemoveAll(dir)
	}
}

func TestIsNotFound(t *testing.T) {
	r := require.New(t)

	err := ErrNotFound("some/path.bin")
	r.True(IsNotFound(err))
	r.False(IsNotFound(os.ErrNotExist))
}
