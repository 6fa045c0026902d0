package feature

import (
	"context"
	"errors"
	"fmt"

	"github.com/facebookincubator/go-belt/tool/logger"
)

const topDBFloor = 80

// Kind selects which features Extract computes.
type Kind int

const (
	KindMel Kind = iota
	KindMFCC
)

func (k Kind) String() string {
	switch k {
	case KindMel:
		return "mel"
	case KindMFCC:
		return "mfcc"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Extract dispatches to MelSpectrogram or MFCC.
func (e *Extractor) Extract(ctx context.Context, kind Kind, path string) (Result, error) {
	switch kind {
	case KindMel:
		return e.MelSpectrogram(ctx, path)
	case KindMFCC:
		return e.MFCC(ctx, path)
	}
	return Result{}, fmt.Errorf("unknown feature kind %v", kind)
}

// MelSpectrogram computes a [frames][NumMels] mel-spectrogram of the file at path.
//
// An unsupported Format fails before the file is touched. A file that cannot
// be read is logged and reported through Result.Err with a nil error.
// Decoding failures are returned as errors.
func (e *Extractor) MelSpectrogram(ctx context.Context, path string) (Result, error) {
	buf, res, err := e.prepare(ctx, path)
	if err != nil || !res.OK() {
		return res, err
	}

	ospectrum := e.melPower(buf, e.NumMels)
	if e.LogMel {
		amplitudeToDB(ospectrum, topDBFloor)
	}

	res.Features = e.finish(ospectrum)
	logger.Debugf(ctx, "mel-spectrogram of '%s': %d frames x %d mels", path, res.Features.Frames(), e.NumMels)
	return res, nil
}

// MFCC computes [frames][NumMFCC] cepstral coefficients of the file at path,
// with the same error contract as MelSpectrogram.
func (e *Extractor) MFCC(ctx context.Context, path string) (Result, error) {
	if e.NumMFCC > e.MFCCMels {
		return Result{}, fmt.Errorf("cannot take %d coefficients from %d mel bands", e.NumMFCC, e.MFCCMels)
	}

	buf, res, err := e.prepare(ctx, path)
	if err != nil || !res.OK() {
		return res, err
	}

	melspectrum := e.melPower(buf, e.MFCCMels)
	powerToDB(melspectrum, topDBFloor)

	cepstrum := make([][]float64, len(melspectrum))
	for t, frame := range melspectrum {
		cepstrum[t] = dct2(frame, e.NumMFCC)
	}

	res.Features = e.finish(cepstrum)
	logger.Debugf(ctx, "mfcc of '%s': %d frames x %d coefficients", path, res.Features.Frames(), e.NumMFCC)
	return res, nil
}

func (e *Extractor) prepare(ctx context.Context, path string) ([]float64, Result, error) {
	buf, err := e.signal(ctx, path)
	if err != nil {
		var readErr *ReadError
		if errors.As(err, &readErr) {
			logger.Warnf(ctx, "%v", readErr)
			return nil, Result{Err: readErr}, nil
		}
		return nil, Result{}, err
	}

	if e.DelSilence {
		var before = len(buf)
		buf = RemoveSilence(buf, e.TopDB)
		logger.Tracef(ctx, "silence removal of '%s': %d -> %d samples", path, before, len(buf))
	}
	if len(buf) == 0 {
		return nil, Result{}, fmt.Errorf("'%s': %w", path, ErrEmptySignal)
	}
	return buf, Result{}, nil
}

func (e *Extractor) finish(buf [][]float64) Matrix {
	m := toMatrix(buf)
	if e.Reverse {
		m.Reverse()
	}
	return m
}
