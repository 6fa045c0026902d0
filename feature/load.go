package feature

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/meta"
)

// signal loads the file at path as mono samples at e.SampleRate.
// Open and read failures are returned as *ReadError, everything else is fatal.
func (e *Extractor) signal(ctx context.Context, path string) ([]float64, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}

	var (
		buf []float64
		sr  int
		err error
	)
	switch e.Format {
	case FormatPCM:
		buf, err = LoadPCM(path)
		sr = e.SampleRate
	case FormatWav:
		buf, sr, err = LoadWav(path)
	case FormatFlac:
		buf, sr, err = LoadFlac(path)
	}
	if err != nil {
		return nil, err
	}
	logger.Tracef(ctx, "loaded '%s': %d samples at %d Hz", path, len(buf), sr)

	if sr != e.SampleRate {
		buf, err = e.Resampler.Resample(buf, sr, e.SampleRate)
		if err != nil {
			return nil, fmt.Errorf("unable to resample '%s' from %d to %d: %w", path, sr, e.SampleRate, err)
		}
	}
	return buf, nil
}

// LoadPCM loads a headerless signed 16-bit little-endian file.
// The samples keep their integer magnitude.
func LoadPCM(path string) ([]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	if len(raw) == 0 || len(raw)%2 != 0 {
		return nil, &ReadError{Path: path, Err: fmt.Errorf("size %d is not a positive multiple of 2: %w", len(raw), ErrFileNotLoaded)}
	}

	out := make([]float64, len(raw)/2)
	for i := range out {
		out[i] = float64(int16(binary.LittleEndian.Uint16(raw[i*2:])))
	}
	return out, nil
}

// LoadWav loads a wav file, mixes it down to mono and returns it with its sample rate.
func LoadWav(path string) (out []float64, sampleRate int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, &ReadError{Path: path, Err: err}
	}
	defer file.Close()

	stream, format, err := wav.Decode(file)
	if err != nil {
		return nil, 0, fmt.Errorf("unable to decode wav '%s': %w", path, err)
	}

	out = drain(stream)
	if err := stream.Err(); err != nil {
		return nil, 0, fmt.Errorf("unable to stream wav '%s': %w", path, err)
	}
	if len(out) == 0 {
		return nil, 0, fmt.Errorf("'%s': %w", path, ErrFileNotLoaded)
	}
	if gain := wavGain(format.Precision); gain != 1 {
		for i := range out {
			out[i] *= gain
		}
	}
	return out, int(format.SampleRate), nil
}

// wavGain maps beep's decoded samples back to [-1, 1]. beep encodes signed
// samples against 2^(bits-1)-1 but decodes them against 2^bits-1.
func wavGain(precision int) float64 {
	if precision < 2 {
		return 1
	}
	bits := uint(8 * precision)
	return float64(uint64(1)<<bits-1) / float64(uint64(1)<<(bits-1)-1)
}

// LoadFlac loads a flac file, mixes it down to mono and returns it with its sample rate.
func LoadFlac(path string) (out []float64, sampleRate int, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, &ReadError{Path: path, Err: err}
	}
	defer file.Close()

	stream, err := flac.New(file)
	if err != nil {
		return nil, 0, fmt.Errorf("unable to decode flac '%s': %w", path, err)
	}

	scale, err := flacScale(stream.Info)
	if err != nil {
		return nil, 0, fmt.Errorf("'%s': %w", path, err)
	}
	for {
		frame, err := stream.ParseNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("unable to parse a flac frame of '%s': %w", path, err)
		}
		channels := len(frame.Subframes)
		if channels == 0 {
			continue
		}
		for i := 0; i < int(frame.BlockSize); i++ {
			var sum float64
			for _, sub := range frame.Subframes {
				sum += float64(sub.Samples[i])
			}
			out = append(out, sum/float64(channels)/scale)
		}
	}
	if len(out) == 0 {
		return nil, 0, fmt.Errorf("'%s': %w", path, ErrFileNotLoaded)
	}
	return out, int(stream.Info.SampleRate), nil
}

// flacScale returns the full-scale magnitude of a stream's samples.
func flacScale(info *meta.StreamInfo) (float64, error) {
	if info.NChannels == 0 || info.BitsPerSample == 0 || info.BitsPerSample > 32 {
		return 0, fmt.Errorf("%d channels of %d bits: %w", info.NChannels, info.BitsPerSample, ErrFileNotLoaded)
	}
	return float64(int64(1) << (info.BitsPerSample - 1)), nil
}

// SaveWav saves mono wav file from sample vector
func SaveWav(path string, vec []float64, sr int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(sr),
		NumChannels: 1,
		Precision:   2,
	}
	if err := wav.Encode(f, newSliceStreamer(vec), format); err != nil {
		f.Close()
		return fmt.Errorf("unable to encode wav '%s': %w", path, err)
	}

	return f.Close()
}

// drain reads a streamer to the end, averaging the two channels.
func drain(stream beep.Streamer) (out []float64) {
	var samples = make([][2]float64, 512)
	for {
		n, ok := stream.Stream(samples)
		for i := 0; i < n; i++ {
			out = append(out, (samples[i][0]+samples[i][1])/2)
		}
		if !ok {
			break
		}
	}
	return
}

type sliceStreamer struct {
	buf []float64
	pos int
}

func newSliceStreamer(buf []float64) *sliceStreamer {
	return &sliceStreamer{buf: buf}
}

func (s *sliceStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for n < len(samples) && s.pos < len(s.buf) {
		samples[n][0] = s.buf[s.pos]
		samples[n][1] = s.buf[s.pos]
		n++
		s.pos++
	}
	return n, true
}

func (s *sliceStreamer) Err() error {
	return nil
}
