package main

import (
	"github.com/neurlang/speechfront/feature"
	"github.com/neurlang/speechfront/internal/cli"
	"github.com/spf13/pflag"
)

func main() {
	flags := cli.Register(pflag.CommandLine)
	numMFCC := pflag.Int("n-mfcc", 33, "number of cepstral coefficients")
	pflag.Parse()

	var e = feature.NewExtractor()
	e.NumMFCC = *numMFCC

	cli.Run(feature.KindMFCC, e, flags, pflag.Args())
}
