// SPDX-FileCopyrightText: 2026 The saleae-go Authors
//
// SPDX-License-Identifier: MIT

// Package catalog keeps summaries of capture export files, keyed by
// their path, so tooling can manage directories of exports without
// re-decoding every file. Persistent implementations live in
// subpackages.
package catalog // import "go.cryptoscope.co/saleae/catalog"

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"go.cryptoscope.co/saleae"
)

// Kind names the payload shape of a cataloged capture.
type Kind string

const (
	KindDigital Kind = "digital"
	KindAnalog  Kind = "analog"
)

// Info is the catalog summary of one capture export.
type Info struct {
	Path string `json:"path"`
	Kind Kind   `json:"kind"`

	BeginTime float64 `json:"beginTime"`
	EndTime   float64 `json:"endTime,omitempty"` // digital only

	SampleRate uint64 `json:"sampleRate,omitempty"` // analog only
	Downsample uint64 `json:"downsample,omitempty"` // analog only

	// Records is the number of transitions (digital) or samples (analog).
	Records uint64 `json:"records"`
}

// Describe summarizes a decoded export for cataloging.
func Describe(path string, exp *saleae.Export) Info {
	info := Info{Path: path}

	switch d := exp.FileData.(type) {
	case saleae.DigitalData:
		info.Kind = KindDigital
		info.BeginTime = d.BeginTime
		info.EndTime = d.EndTime
		info.Records = uint64(len(d.TransitionTimes))
	case saleae.AnalogData:
		info.Kind = KindAnalog
		info.BeginTime = d.BeginTime
		info.SampleRate = d.SampleRate
		info.Downsample = d.Downsample
		info.Records = uint64(len(d.Samples))
	}

	return info
}

// DescribeFile decodes the export at path and summarizes it.
func DescribeFile(path string) (Info, error) {
	exp, err := saleae.Open(path)
	if err != nil {
		return Info{}, errors.Wrapf(err, "error describing capture %q", path)
	}
	return Describe(path, exp), nil
}

// Catalog stores capture summaries keyed by file path.
type Catalog interface {
	// Put stores or replaces the summary for info.Path.
	Put(ctx context.Context, info Info) error

	// Get returns the summary stored for path. The error satisfies
	// IsNotFound if the path was never put.
	Get(ctx context.Context, path string) (Info, error)

	// All returns every stored summary.
	All(ctx context.Context) ([]Info, error)

	// Delete removes the summary for path, if any.
	Delete(ctx context.Context, path string) error

	Close() error
}

type errNotFound struct {
	path string
}

func (e errNotFound) Error() string {
	return fmt.Sprintf("catalog: no capture stored for path %q", e.path)
}

// ErrNotFound returns the error Get uses for unknown paths.
func ErrNotFound(path string) error {
	return errNotFound{path: path}
}

// IsNotFound returns whether a particular error is a not-found error.
func IsNotFound(err error) bool {
	_, ok := errors.Cause(err).(errNotFound)
	return ok
}
