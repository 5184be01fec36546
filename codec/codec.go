// SPDX-FileCopyrightText: 2026 The saleae-go Authors
//
// SPDX-License-Identifier: MIT

// Package codec defines alternate interchange encodings for capture
// exports. The binary wire format stays the canonical on-disk form;
// these codecs exist for downstream tooling that wants captures in a
// structured encoding.
package codec // import "go.cryptoscope.co/saleae/codec"

import (
	"io"

	"github.com/pkg/errors"

	"go.cryptoscope.co/saleae"
)

type Codec interface {
	// Marshal encodes a single export and returns the serialized byte slice.
	Marshal(exp *saleae.Export) ([]byte, error)

	// Unmarshal decodes and returns the export stored in data.
	Unmarshal(data []byte) (*saleae.Export, error)

	NewEncoder(io.Writer) Encoder
	NewDecoder(io.Reader) Decoder
}

type Encoder interface {
	Encode(exp *saleae.Export) error
}

type Decoder interface {
	Decode() (*saleae.Export, error)
}

// Document is the codec-neutral form of an export. The capture kind
// is spelled out so documents stay self-describing without the wire
// format's numeric tag.
type Document struct {
	Version int32  `json:"version"`
	Kind    string `json:"kind"`

	Digital *saleae.DigitalData `json:"digital,omitempty"`
	Analog  *saleae.AnalogData  `json:"analog,omitempty"`
}

// NewDocument converts an export into its document form.
func NewDocument(exp *saleae.Export) (Document, error) {
	doc := Document{Version: exp.Version}

	switch d := exp.FileData.(type) {
	case saleae.DigitalData:
		doc.Kind = "digital"
		doc.Digital = &d
	case saleae.AnalogData:
		doc.Kind = "analog"
		doc.Analog = &d
	default:
		return doc, errors.Errorf("codec: unhandled capture data type %T", exp.FileData)
	}

	return doc, nil
}

// Export turns the document back into an export value.
func (doc Document) Export() (*saleae.Export, error) {
	exp := &saleae.Export{Version: doc.Version}

	switch doc.Kind {
	case "digital":
		if doc.Digital == nil {
			return nil, errors.New("codec: digital document without payload")
		}
		exp.FileData = *doc.Digital
	case "analog":
		if doc.Analog == nil {
			return nil, errors.New("codec: analog document without payload")
		}
		exp.FileData = *doc.Analog
	default:
		return nil, errors.Errorf("codec: unknown capture kind %q", doc.Kind)
	}

	return exp, nil
}
