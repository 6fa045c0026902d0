package main

import (
	"github.com/neurlang/speechfront/feature"
	"github.com/neurlang/speechfront/internal/cli"
	"github.com/spf13/pflag"
)

func main() {
	flags := cli.Register(pflag.CommandLine)
	numMels := pflag.Int("n-mels", 80, "number of mel bands")
	logMel := pflag.Bool("log-mel", true, "convert to decibels relative to the peak")
	htk := pflag.Bool("htk", false, "use the HTK mel scale")
	pflag.Parse()

	// Create a new instance of Extractor
	var e = feature.NewExtractor()

	// Set parameters
	e.NumMels = *numMels
	e.LogMel = *logMel
	e.HTK = *htk

	cli.Run(feature.KindMel, e, flags, pflag.Args())
}
