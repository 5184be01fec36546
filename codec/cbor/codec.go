// SPDX-FileCopyrightText: 2026 The saleae-go Authors
//
// SPDX-License-Identifier: MIT

// Package cbor implements the capture interchange codec in CBOR, for
// consumers that want a compact binary interchange form.
package cbor // import "go.cryptoscope.co/saleae/codec/cbor"

import (
	"io"

	ucodec "github.com/ugorji/go/codec"

	"go.cryptoscope.co/saleae"
	cdc "go.cryptoscope.co/saleae/codec"
)

var handle ucodec.CborHandle

// New returns the CBOR interchange codec.
func New() cdc.Codec {
	return cborCodec{}
}

type cborCodec struct{}

var _ cdc.Codec = cborCodec{}

func (cborCodec) Marshal(exp *saleae.Export) ([]byte, error) {
	doc, err := cdc.NewDocument(exp)
	if err != nil {
		return nil, err
	}

	var data []byte
	if err := ucodec.NewEncoderBytes(&data, &handle).Encode(doc); err != nil {
		return nil, err
	}
	return data, nil
}

func (cborCodec) Unmarshal(data []byte) (*saleae.Export, error) {
	var doc cdc.Document
	if err := ucodec.NewDecoderBytes(data, &handle).Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Export()
}

func (cborCodec) NewEncoder(w io.Writer) cdc.Encoder {
	return encoder{enc: ucodec.NewEncoder(w, &handle)}
}

func (cborCodec) NewDecoder(r io.Reader) cdc.Decoder {
	return decoder{dec: ucodec.NewDecoder(r, &handle)}
}

type encoder struct {
	enc *ucodec.Encoder
}

func (e encoder) Encode(exp *saleae.Export) error {
	doc, err := cdc.NewDocument(exp)
	if err != nil {
		return err
	}
	return e.enc.Encode(doc)
}

type decoder struct {
	dec *ucodec.Decoder
}

func (d decoder) Decode() (*saleae.Export, error) {
	var doc cdc.Document
	if err := d.dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Export()
}
