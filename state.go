// SPDX-FileCopyrightText: 2026 The saleae-go Authors
//
// SPDX-License-Identifier: MIT

package saleae // import "go.cryptoscope.co/saleae"

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// State is the level of a digital signal.
type State uint32

const (
	Low  State = 0
	High State = 1
)

// Bool reports whether the state is High.
func (s State) Bool() bool { return s != Low }

// StateOf returns High for true and Low for false.
func StateOf(high bool) State {
	if high {
		return High
	}
	return Low
}

func (s State) String() string {
	if s == Low {
		return "low"
	}
	return "high"
}

// readState is lenient: zero is Low, every other wire value is High.
// The writer side only ever emits 0 or 1, see writeState.
func readState(r io.Reader) (State, error) {
	var v uint32
	if err := binary.Read(r, binary.LittleEndian, &v); err != nil {
		return Low, errors.Wrap(err, "error reading initial state")
	}
	if v == 0 {
		return Low, nil
	}
	return High, nil
}

func writeState(w io.Writer, s State) error {
	var v uint32
	if s.Bool() {
		v = 1
	}
	return errors.Wrap(binary.Write(w, binary.LittleEndian, v), "error writing initial state")
}
