package augment

import (
	"math/rand"

	"github.com/neurlang/speechfront/feature"
)

// Source is the randomness used to place masks. *rand.Rand implements it.
type Source interface {
	Float64() float64
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) Intn(n int) int   { return rand.Intn(n) }

// Config holds the masking hyperparameters.
type Config struct {
	// MaxTimeWidth bounds the width of a time mask, exclusive.
	MaxTimeWidth int
	// MaxFreqWidth bounds the width of a frequency mask, exclusive.
	MaxFreqWidth int

	TimeMasks int
	FreqMasks int
}

// DefaultConfig returns T=70, F=20 with two masks on each axis.
func DefaultConfig() Config {
	return Config{
		MaxTimeWidth: 70,
		MaxFreqWidth: 20,
		TimeMasks:    2,
		FreqMasks:    2,
	}
}

// Axis is the dimension a Mask spans.
type Axis int

const (
	AxisTime Axis = iota
	AxisFreq
)

func (a Axis) String() string {
	if a == AxisTime {
		return "time"
	}
	return "freq"
}

// Mask is a half-open [Start, Start+Width) span on one axis.
type Mask struct {
	Axis  Axis
	Start int
	Width int
}

// Plan draws the masks for a frames × channels matrix. Time masks come first.
// A drawn width larger than its axis is clamped to the axis length.
func Plan(frames, channels int, cfg Config, rnd Source) []Mask {
	if rnd == nil {
		rnd = globalSource{}
	}

	masks := make([]Mask, 0, cfg.TimeMasks+cfg.FreqMasks)
	for i := 0; i < cfg.TimeMasks; i++ {
		masks = append(masks, draw(AxisTime, frames, cfg.MaxTimeWidth, rnd))
	}
	for i := 0; i < cfg.FreqMasks; i++ {
		masks = append(masks, draw(AxisFreq, channels, cfg.MaxFreqWidth, rnd))
	}
	return masks
}

func draw(axis Axis, size, maxWidth int, rnd Source) Mask {
	width := int(rnd.Float64() * float64(maxWidth))
	if width > size {
		width = size
	}
	if width < 0 {
		width = 0
	}
	return Mask{
		Axis:  axis,
		Start: rnd.Intn(size - width + 1),
		Width: width,
	}
}

// Apply zeroes the span of mask in m.
func (mask Mask) Apply(m feature.Matrix) {
	switch mask.Axis {
	case AxisTime:
		for t := mask.Start; t < mask.Start+mask.Width && t < len(m); t++ {
			for c := range m[t] {
				m[t][c] = 0
			}
		}
	case AxisFreq:
		for _, row := range m {
			for c := mask.Start; c < mask.Start+mask.Width && c < len(row); c++ {
				row[c] = 0
			}
		}
	}
}

// SpecAugment masks feat in place and returns it.
func SpecAugment(feat feature.Matrix, cfg Config, rnd Source) feature.Matrix {
	for _, mask := range Plan(feat.Frames(), feat.Channels(), cfg, rnd) {
		mask.Apply(feat)
	}
	return feat
}
