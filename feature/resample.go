package feature

import (
	"fmt"

	"github.com/faiface/beep"
	resampling "github.com/tphakala/go-audio-resampling"
)

// Resampler converts mono samples between sample rates.
type Resampler interface {
	Resample(samples []float64, from, to int) ([]float64, error)
}

// BeepResampler resamples with beep's interpolating resampler.
// Quality must be in [1, 64].
type BeepResampler struct {
	Quality int
}

var _ Resampler = BeepResampler{}

func (r BeepResampler) Resample(samples []float64, from, to int) ([]float64, error) {
	if from == to {
		return samples, nil
	}
	if from <= 0 || to <= 0 {
		return nil, fmt.Errorf("invalid sample rates %d -> %d", from, to)
	}
	if r.Quality < 1 || r.Quality > 64 {
		return nil, fmt.Errorf("invalid resampling quality %d", r.Quality)
	}

	rs := beep.Resample(r.Quality, beep.SampleRate(from), beep.SampleRate(to), newSliceStreamer(samples))
	out := drain(rs)
	if err := rs.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SoxrResampler resamples with a pure Go port of the SoX resampler at high quality.
type SoxrResampler struct{}

var _ Resampler = SoxrResampler{}

func (r SoxrResampler) Resample(samples []float64, from, to int) ([]float64, error) {
	if from == to {
		return samples, nil
	}

	rs, err := resampling.New(&resampling.Config{
		InputRate:  float64(from),
		OutputRate: float64(to),
		Channels:   1,
		Quality:    resampling.QualitySpec{Preset: resampling.QualityHigh},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create resampler: %w", err)
	}

	out, err := rs.Process(samples)
	if err != nil {
		return nil, fmt.Errorf("resample error: %w", err)
	}
	return out, nil
}
