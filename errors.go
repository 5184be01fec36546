// SPDX-FileCopyrightText: 2026 The saleae-go Authors
//
// SPDX-License-Identifier: MIT

package saleae // import "go.cryptoscope.co/saleae"

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// ErrWrongMagic is returned when a stream does not start with the
// export file signature.
type ErrWrongMagic struct {
	Got [8]byte
}

func (e ErrWrongMagic) Error() string {
	return fmt.Sprintf("saleae: wrong file magic %q, expected %q", e.Got[:], magic[:])
}

// IsWrongMagic returns whether a particular error is a wrong-magic error.
func IsWrongMagic(err error) bool {
	_, ok := errors.Cause(err).(ErrWrongMagic)
	return ok
}

// ErrUnsupportedVersion is returned for well-signed files with a
// version other than 0.
type ErrUnsupportedVersion struct {
	Version int32
}

func (e ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf("saleae: unsupported export version %d, only version 0 is supported", e.Version)
}

// IsUnsupportedVersion returns whether a particular error is a version error.
func IsUnsupportedVersion(err error) bool {
	_, ok := errors.Cause(err).(ErrUnsupportedVersion)
	return ok
}

// ErrUnknownData is returned when the payload tag selects neither the
// digital nor the analog case.
type ErrUnknownData struct {
	Tag uint32
}

func (e ErrUnknownData) Error() string {
	return fmt.Sprintf("saleae: unknown capture data tag %d", e.Tag)
}

// IsUnknownData returns whether a particular error is an unknown-tag error.
func IsUnknownData(err error) bool {
	_, ok := errors.Cause(err).(ErrUnknownData)
	return ok
}

// IsFormatError reports whether err means the stream was readable but
// is not a valid capture export: wrong magic, unsupported version,
// unknown tag, or a stream that ended before the stated counts were
// satisfied. A bare io.EOF counts as truncation here: it signals a
// clean end of data in the middle of a half-parsed record, while
// sources that fail mid-read report their own error instead. Other
// errors are failures of the underlying source.
func IsFormatError(err error) bool {
	cause := errors.Cause(err)
	if cause == io.EOF || cause == io.ErrUnexpectedEOF {
		return true
	}
	switch cause.(type) {
	case ErrWrongMagic, ErrUnsupportedVersion, ErrUnknownData:
		return true
	}
	return false
}
