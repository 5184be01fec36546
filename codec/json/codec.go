// SPDX-FileCopyrightText: 2026 The saleae-go Authors
//
// SPDX-License-Identifier: MIT

// Package json implements the capture interchange codec as
// kind-discriminated JSON documents.
package json // import "go.cryptoscope.co/saleae/codec/json"

import (
	"encoding/json"
	"io"

	"go.cryptoscope.co/saleae"
	cdc "go.cryptoscope.co/saleae/codec"
)

// New returns the JSON interchange codec.
func New() cdc.Codec {
	return jsonCodec{}
}

type jsonCodec struct{}

var _ cdc.Codec = jsonCodec{}

func (jsonCodec) Marshal(exp *saleae.Export) ([]byte, error) {
	doc, err := cdc.NewDocument(exp)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

func (jsonCodec) Unmarshal(data []byte) (*saleae.Export, error) {
	var doc cdc.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Export()
}

func (jsonCodec) NewEncoder(w io.Writer) cdc.Encoder {
	return encoder{enc: json.NewEncoder(w)}
}

func (jsonCodec) NewDecoder(r io.Reader) cdc.Decoder {
	return decoder{dec: json.NewDecoder(r)}
}

type encoder struct {
	enc *json.Encoder
}

func (e encoder) Encode(exp *saleae.Export) error {
	doc, err := cdc.NewDocument(exp)
	if err != nil {
		return err
	}
	return e.enc.Encode(doc)
}

type decoder struct {
	dec *json.Decoder
}

func (d decoder) Decode() (*saleae.Export, error) {
	var doc cdc.Document
	if err := d.dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Export()
}
