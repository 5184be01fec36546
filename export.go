// SPDX-FileCopyrightText: 2026 The saleae-go Authors
//
// SPDX-License-Identifier: MIT

// Package saleae implements reading and writing of Saleae Logic 2
// binary export files, both digital (edge-transition) and analog
// (sampled waveform) captures.
package saleae // import "go.cryptoscope.co/saleae"

import "fmt"

// magic is the signature every export file starts with.
var magic = [8]byte{'<', 'S', 'A', 'L', 'E', 'A', 'E', '>'}

const (
	tagDigital uint32 = 0
	tagAnalog  uint32 = 1
)

// Export is a single parsed capture export file.
type Export struct {
	// Version of the export file format. Only version 0 decodes.
	Version int32

	// FileData is the capture payload, either DigitalData or AnalogData.
	FileData Data
}

// Data is the payload of an export file. This is a closed variant:
// the only implementations are DigitalData and AnalogData. The wire
// tag is implied by the concrete type and never stored separately.
type Data interface {
	dataTag() uint32
}

// DigitalData is the payload of a digital capture. The signal starts
// at InitialState and flips at every entry of TransitionTimes.
type DigitalData struct {
	InitialState State

	BeginTime float64
	EndTime   float64

	// TransitionTimes holds the timestamps at which the signal
	// toggles, on the same time base as BeginTime and EndTime.
	TransitionTimes []float64
}

func (DigitalData) dataTag() uint32 { return tagDigital }

// AnalogData is the payload of an analog capture. Samples holds one
// voltage reading per effective sample interval; the codec treats the
// values as opaque.
type AnalogData struct {
	BeginTime float64

	// SampleRate is the capture rate in hertz.
	SampleRate uint64

	// Downsample is the divisor applied to the raw capture rate.
	Downsample uint64

	Samples []float64
}

func (AnalogData) dataTag() uint32 { return tagAnalog }

// Digital returns the digital capture payload.
//
// It panics if the export holds an analog capture. Use this when the
// capture kind is known up front; check FileData with a type switch
// otherwise.
func (e *Export) Digital() DigitalData {
	d, ok := e.FileData.(DigitalData)
	if !ok {
		panic(fmt.Sprintf("saleae: expected digital capture data, got %T", e.FileData))
	}
	return d
}

// Analog returns the analog capture payload.
//
// It panics if the export holds a digital capture.
func (e *Export) Analog() AnalogData {
	a, ok := e.FileData.(AnalogData)
	if !ok {
		panic(fmt.Sprintf("saleae: expected analog capture data, got %T", e.FileData))
	}
	return a
}
