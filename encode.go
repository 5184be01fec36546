// SPDX-FileCopyrightText: 2026 The saleae-go Authors
//
// SPDX-License-Identifier: MIT

package saleae // import "go.cryptoscope.co/saleae"

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Save writes the export to a file, creating or truncating it.
func (e *Export) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "error creating export file")
	}

	w := bufio.NewWriter(f)
	if err := e.Encode(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.Wrap(err, "error flushing export file")
	}

	return errors.Wrap(f.Close(), "error closing export file")
}

// Encode writes the export to w in the binary wire format. The stored
// Version is written as-is, counts are derived from the slice lengths.
func (e *Export) Encode(w io.Writer) error {
	if _, err := w.Write(magic[:]); err != nil {
		return errors.Wrap(err, "error writing file magic")
	}
	if err := binary.Write(w, binary.LittleEndian, e.Version); err != nil {
		return errors.Wrap(err, "error writing version")
	}
	return writeData(w, e.FileData)
}

func writeData(w io.Writer, d Data) error {
	switch v := d.(type) {
	case DigitalData:
		if err := binary.Write(w, binary.LittleEndian, tagDigital); err != nil {
			return errors.Wrap(err, "error writing capture data tag")
		}
		return writeDigital(w, v)
	case AnalogData:
		if err := binary.Write(w, binary.LittleEndian, tagAnalog); err != nil {
			return errors.Wrap(err, "error writing capture data tag")
		}
		return writeAnalog(w, v)
	}
	return errors.Errorf("saleae: unhandled capture data type %T", d)
}

func writeDigital(w io.Writer, d DigitalData) error {
	if err := writeState(w, d.InitialState); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, d.BeginTime); err != nil {
		return errors.Wrap(err, "error writing begin time")
	}
	if err := binary.Write(w, binary.LittleEndian, d.EndTime); err != nil {
		return errors.Wrap(err, "error writing end time")
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(d.TransitionTimes))); err != nil {
		return errors.Wrap(err, "error writing transition count")
	}
	return errors.Wrap(binary.Write(w, binary.LittleEndian, d.TransitionTimes), "error writing transition times")
}

func writeAnalog(w io.Writer, a AnalogData) error {
	if err := binary.Write(w, binary.LittleEndian, a.BeginTime); err != nil {
		return errors.Wrap(err, "error writing begin time")
	}
	if err := binary.Write(w, binary.LittleEndian, a.SampleRate); err != nil {
		return errors.Wrap(err, "error writing sample rate")
	}
	if err := binary.Write(w, binary.LittleEndian, a.Downsample); err != nil {
		return errors.Wrap(err, "error writing downsample factor")
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(a.Samples))); err != nil {
		return errors.Wrap(err, "error writing sample count")
	}
	return errors.Wrap(binary.Write(w, binary.LittleEndian, a.Samples), "error writing samples")
}
