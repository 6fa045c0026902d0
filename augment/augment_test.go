package augment

import (
	"math/rand"
	"testing"

	"github.com/neurlang/speechfront/feature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scripted struct {
	floats []float64
	ints   []int
}

func (s *scripted) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scripted) Intn(n int) int {
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		panic("scripted value out of range")
	}
	return v
}

func ones(frames, channels int) feature.Matrix {
	m := make(feature.Matrix, frames)
	for t := range m {
		m[t] = make([]float32, channels)
		for c := range m[t] {
			m[t][c] = 1
		}
	}
	return m
}

func TestSpecAugmentExactRegions(t *testing.T) {
	cfg := Config{MaxTimeWidth: 10, MaxFreqWidth: 4, TimeMasks: 1, FreqMasks: 1}
	rnd := &scripted{
		floats: []float64{0.35, 0.5}, // widths 3 and 2
		ints:   []int{5, 1},
	}

	m := SpecAugment(ones(20, 8), cfg, rnd)
	for ti, row := range m {
		for c, v := range row {
			masked := (ti >= 5 && ti < 8) || (c >= 1 && c < 3)
			if masked {
				assert.Zero(t, v, "frame %d channel %d", ti, c)
			} else {
				assert.Equal(t, float32(1), v, "frame %d channel %d", ti, c)
			}
		}
	}
}

func TestSpecAugmentNoMasks(t *testing.T) {
	m := ones(30, 10)
	m[3][4] = 7
	want := m.Clone()

	got := SpecAugment(m, Config{MaxTimeWidth: 70, MaxFreqWidth: 20}, rand.New(rand.NewSource(1)))
	assert.Equal(t, want, got)
}

func TestPlanWithinBounds(t *testing.T) {
	cfg := Config{MaxTimeWidth: 70, MaxFreqWidth: 20, TimeMasks: 3, FreqMasks: 3}
	shapes := [][2]int{{100, 80}, {50, 10}, {5, 3}, {1, 1}, {0, 0}}

	for seed := int64(0); seed < 200; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		for _, shape := range shapes {
			for _, mask := range Plan(shape[0], shape[1], cfg, rnd) {
				size := shape[0]
				if mask.Axis == AxisFreq {
					size = shape[1]
				}
				require.GreaterOrEqual(t, mask.Start, 0)
				require.GreaterOrEqual(t, mask.Width, 0)
				require.LessOrEqual(t, mask.Start+mask.Width, size, "seed %d shape %v mask %+v", seed, shape, mask)
			}
		}
	}
}

func TestPlanDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	a := Plan(300, 80, cfg, rand.New(rand.NewSource(42)))
	b := Plan(300, 80, cfg, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
	require.Len(t, a, 4)
	assert.Equal(t, AxisTime, a[0].Axis)
	assert.Equal(t, AxisTime, a[1].Axis)
	assert.Equal(t, AxisFreq, a[2].Axis)
	assert.Equal(t, AxisFreq, a[3].Axis)
	for _, mask := range a[:2] {
		assert.Less(t, mask.Width, 70)
	}
	for _, mask := range a[2:] {
		assert.Less(t, mask.Width, 20)
	}
}

func TestPlanNilSource(t *testing.T) {
	masks := Plan(10, 10, DefaultConfig(), nil)
	require.Len(t, masks, 4)
	for _, mask := range masks {
		assert.LessOrEqual(t, mask.Start+mask.Width, 10)
	}
}
