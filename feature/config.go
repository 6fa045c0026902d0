package feature

import (
	"fmt"
	"strings"
)

// Format is the container format of an input audio file.
type Format string

const (
	// FormatPCM is headerless signed 16-bit little-endian mono at the extractor sample rate.
	FormatPCM Format = "pcm"
	// FormatWav is a RIFF WAVE file of any rate, resampled on load.
	FormatWav Format = "wav"
	// FormatFlac is a FLAC file of any rate, resampled on load.
	FormatFlac Format = "flac"
)

// ParseFormat converts a format tag into a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if err := f.validate(); err != nil {
		return "", err
	}
	return f, nil
}

func (f Format) validate() error {
	switch f {
	case FormatPCM, FormatWav, FormatFlac:
		return nil
	}
	return fmt.Errorf("%w: '%s'", ErrInvalidFormat, string(f))
}

// Extractor represents the configuration for computing acoustic features.
type Extractor struct {
	SampleRate  int
	FrameLength int
	HopLength   int
	NumMels     int
	Format      Format

	// DelSilence drops the regions quieter than TopDB below the peak before analysis.
	DelSilence bool
	TopDB      float64

	// Reverse flips the time axis of the returned matrix.
	Reverse bool

	// LogMel converts the mel-spectrogram to decibels relative to its maximum.
	LogMel bool

	// HTK selects the HTK mel scale instead of the Slaney one.
	HTK bool

	NumMFCC  int
	MFCCMels int

	// Resampler converts WAV and FLAC input to SampleRate.
	Resampler Resampler
}

// validate checks the fields a struct literal may leave at their zero value.
func (e *Extractor) validate() error {
	if err := e.Format.validate(); err != nil {
		return err
	}
	switch {
	case e.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, e.SampleRate)
	case e.FrameLength <= 0:
		return fmt.Errorf("%w: frame length %d", ErrInvalidConfig, e.FrameLength)
	case e.HopLength <= 0:
		return fmt.Errorf("%w: hop length %d", ErrInvalidConfig, e.HopLength)
	case e.Format != FormatPCM && e.Resampler == nil:
		return fmt.Errorf("%w: no resampler for %s input", ErrInvalidConfig, e.Format)
	}
	return nil
}

// NewExtractor creates a new Extractor instance with default values.
func NewExtractor() *Extractor {
	return &Extractor{
		SampleRate:  16000,
		FrameLength: 400,
		HopLength:   160,
		NumMels:     128,
		Format:      FormatPCM,
		TopDB:       30,
		Reverse:     true,
		LogMel:      true,
		NumMFCC:     33,
		MFCCMels:    128,
		Resampler:   BeepResampler{Quality: 4},
	}
}
