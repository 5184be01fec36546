// SPDX-FileCopyrightText: 2026 The saleae-go Authors
//
// SPDX-License-Identifier: MIT

package saleae // import "go.cryptoscope.co/saleae"

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Open reads a capture export from a file on disk.
func Open(path string) (*Export, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "error opening export file")
	}
	defer f.Close()

	return Read(bufio.NewReader(f))
}

// ReadBytes parses a capture export from a buffer.
func ReadBytes(data []byte) (*Export, error) {
	return Read(bytes.NewReader(data))
}

// Read decodes a single capture export from r in one forward pass.
// The whole payload is read into memory; there is no partial result
// on error.
func Read(r io.Reader) (*Export, error) {
	var got [8]byte
	if _, err := io.ReadFull(r, got[:]); err != nil {
		return nil, errors.Wrap(err, "error reading file magic")
	}
	if got != magic {
		return nil, ErrWrongMagic{Got: got}
	}

	var version int32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, errors.Wrap(err, "error reading version")
	}
	if version != 0 {
		return nil, ErrUnsupportedVersion{Version: version}
	}

	data, err := readData(r)
	if err != nil {
		return nil, err
	}

	return &Export{Version: version, FileData: data}, nil
}

func readData(r io.Reader) (Data, error) {
	var tag uint32
	if err := binary.Read(r, binary.LittleEndian, &tag); err != nil {
		return nil, errors.Wrap(err, "error reading capture data tag")
	}

	switch tag {
	case tagDigital:
		return readDigital(r)
	case tagAnalog:
		return readAnalog(r)
	}
	return nil, ErrUnknownData{Tag: tag}
}

func readDigital(r io.Reader) (DigitalData, error) {
	var d DigitalData

	st, err := readState(r)
	if err != nil {
		return d, err
	}
	d.InitialState = st

	if err := binary.Read(r, binary.LittleEndian, &d.BeginTime); err != nil {
		return d, errors.Wrap(err, "error reading begin time")
	}
	if err := binary.Read(r, binary.LittleEndian, &d.EndTime); err != nil {
		return d, errors.Wrap(err, "error reading end time")
	}

	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return d, errors.Wrap(err, "error reading transition count")
	}

	d.TransitionTimes, err = readFloats(r, n)
	if err != nil {
		return d, errors.Wrapf(err, "error reading %d transition times", n)
	}

	return d, nil
}

func readAnalog(r io.Reader) (AnalogData, error) {
	var a AnalogData

	if err := binary.Read(r, binary.LittleEndian, &a.BeginTime); err != nil {
		return a, errors.Wrap(err, "error reading begin time")
	}
	if err := binary.Read(r, binary.LittleEndian, &a.SampleRate); err != nil {
		return a, errors.Wrap(err, "error reading sample rate")
	}
	if err := binary.Read(r, binary.LittleEndian, &a.Downsample); err != nil {
		return a, errors.Wrap(err, "error reading downsample factor")
	}

	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return a, errors.Wrap(err, "error reading sample count")
	}

	samples, err := readFloats(r, n)
	if err != nil {
		return a, errors.Wrapf(err, "error reading %d samples", n)
	}
	a.Samples = samples

	return a, nil
}

// floatChunk is the number of elements read per call while filling a
// count-prefixed sequence.
const floatChunk = 4096

// readFloats reads exactly n little-endian float64 values. The count
// field comes straight from the stream, so allocation is bounded by
// what the source actually delivers: values are read in fixed-size
// chunks and a count larger than the remaining stream ends in io.EOF
// or io.ErrUnexpectedEOF instead of one absurd allocation.
func readFloats(r io.Reader, n uint64) ([]float64, error) {
	sz := n
	if sz > floatChunk {
		sz = floatChunk
	}

	out := make([]float64, 0, sz)
	chunk := make([]float64, sz)

	for read := uint64(0); read < n; {
		c := n - read
		if c > floatChunk {
			c = floatChunk
		}

		if err := binary.Read(r, binary.LittleEndian, chunk[:c]); err != nil {
			return nil, err
		}
		out = append(out, chunk[:c]...)
		read += c
	}

	return out, nil
}
