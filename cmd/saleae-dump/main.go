// SPDX-FileCopyrightText: 2026 The saleae-go Authors
//
// SPDX-License-Identifier: MIT

// saleae-dump prints the contents of a Saleae Logic 2 binary export
// file, either as a human-readable listing or as JSON.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"go.mindeco.de/logging"

	"go.cryptoscope.co/saleae"
	jsoncodec "go.cryptoscope.co/saleae/codec/json"
)

var check = logging.CheckFatal

func main() {
	asJSON := flag.Bool("json", false, "print the capture as JSON instead of a listing")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-json] <capture.bin>\n", os.Args[0])
		os.Exit(1)
	}
	logging.SetupLogging(nil)

	path := flag.Arg(0)

	exp, err := saleae.Open(path)
	if err != nil {
		if saleae.IsFormatError(err) {
			check(errors.Wrapf(err, "%s is not a valid capture export", path))
		}
		check(errors.Wrapf(err, "error reading %s", path))
	}

	if *asJSON {
		check(jsoncodec.New().NewEncoder(os.Stdout).Encode(exp))
		return
	}

	switch d := exp.FileData.(type) {
	case saleae.DigitalData:
		fmt.Printf("digital capture: initial %s, %g to %g, %d transitions\n",
			d.InitialState, d.BeginTime, d.EndTime, len(d.TransitionTimes))

		it := d.IterSamples()
		for s, ok := it.Next(); ok; s, ok = it.Next() {
			fmt.Printf("%s\t%g\n", saleae.StateOf(s.High), s.Duration)
		}

	case saleae.AnalogData:
		fmt.Printf("analog capture: begin %g, %d Hz, downsample %d, %d samples\n",
			d.BeginTime, d.SampleRate, d.Downsample, len(d.Samples))

		for _, v := range d.Samples {
			fmt.Printf("%g\n", v)
		}
	}
}
