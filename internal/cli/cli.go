// Package cli holds the plumbing shared by the feature extraction commands.
package cli

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/neurlang/speechfront/augment"
	"github.com/neurlang/speechfront/feature"
	"github.com/spf13/pflag"
)

// Flags are the options common to tomel and tomfcc.
type Flags struct {
	LogLevel    logger.Level
	Format      string
	DelSilence  bool
	Reverse     bool
	Resampler   string
	PNG         bool
	Half        bool
	SpecAugment bool
	Seed        int64
}

// Register declares the common flags on fs.
func Register(fs *pflag.FlagSet) *Flags {
	f := &Flags{LogLevel: logger.LevelInfo}
	fs.Var(&f.LogLevel, "log-level", "Log level")
	fs.StringVar(&f.Format, "format", string(feature.FormatPCM), "input format: pcm, wav or flac")
	fs.BoolVar(&f.DelSilence, "del-silence", false, "drop regions 30 dB below the peak before analysis")
	fs.BoolVar(&f.Reverse, "reverse", true, "reverse the time axis of the features")
	fs.StringVar(&f.Resampler, "resampler", "beep", "resampler for wav and flac input: beep or soxr")
	fs.BoolVar(&f.PNG, "png", true, "write <input>.png")
	fs.BoolVar(&f.Half, "half", false, "write <input>.f16 (float16 matrix)")
	fs.BoolVar(&f.SpecAugment, "spec-augment", false, "apply time and frequency masking before writing")
	fs.Int64Var(&f.Seed, "seed", 0, "random seed for --spec-augment, 0 picks one from the clock")
	return f
}

// Context returns a context carrying a logrus logger at the requested level.
func (f *Flags) Context() context.Context {
	l := logrus.Default().WithLevel(f.LogLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	return ctx
}

// Apply copies the flags into e.
func (f *Flags) Apply(e *feature.Extractor) error {
	format, err := feature.ParseFormat(f.Format)
	if err != nil {
		return err
	}
	e.Format = format
	e.DelSilence = f.DelSilence
	e.Reverse = f.Reverse

	switch f.Resampler {
	case "beep":
		e.Resampler = feature.BeepResampler{Quality: 4}
	case "soxr":
		e.Resampler = feature.SoxrResampler{}
	default:
		return fmt.Errorf("unknown resampler '%s'", f.Resampler)
	}
	return nil
}

// Run extracts kind features from every positional argument and writes the
// requested outputs next to each input. It exits non-zero if any file failed.
func Run(kind feature.Kind, e *feature.Extractor, f *Flags, paths []string) {
	ctx := f.Context()
	defer belt.Flush(ctx)

	if len(paths) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <file>...\n", os.Args[0])
		pflag.PrintDefaults()
		os.Exit(1)
	}
	if err := f.Apply(e); err != nil {
		logger.Errorf(ctx, "%v", err)
		os.Exit(1)
	}

	var rnd augment.Source
	if f.SpecAugment {
		seed := f.Seed
		if seed == 0 {
			seed = rand.Int63()
		}
		logger.Infof(ctx, "spec-augment seed: %d", seed)
		rnd = rand.New(rand.NewSource(seed))
	}

	items, err := e.Batch(ctx, kind, paths)
	failed := err != nil
	if err != nil {
		logger.Errorf(ctx, "%v", err)
	}

	for _, item := range items {
		if !item.OK() {
			failed = true
			continue
		}
		feat := item.Features
		if rnd != nil {
			feat = augment.SpecAugment(feat, augment.DefaultConfig(), rnd)
		}
		if err := write(item.Path, feat, f); err != nil {
			logger.Errorf(ctx, "unable to write the %v of '%s': %v", kind, item.Path, err)
			failed = true
			continue
		}
		logger.Infof(ctx, "%s: %d frames x %d channels", item.Path, feat.Frames(), feat.Channels())
	}

	if failed {
		belt.Flush(ctx)
		os.Exit(1)
	}
}

func write(path string, feat feature.Matrix, f *Flags) error {
	if f.PNG {
		if err := feature.WritePNG(path+".png", feat, true); err != nil {
			return err
		}
	}
	if f.Half {
		if err := feature.SaveHalf(path+".f16", feat); err != nil {
			return err
		}
	}
	return nil
}
