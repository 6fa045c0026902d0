package feature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMelScale(t *testing.T) {
	t.Run("Slaney", func(t *testing.T) {
		assert.InDelta(t, 15, hz_to_mel(1000, false), 1e-9)
		assert.InDelta(t, 3, hz_to_mel(200, false), 1e-9)
		for _, hz := range []float64{0, 120, 999, 1000, 4000, 8000} {
			assert.InDelta(t, hz, mel_to_hz(hz_to_mel(hz, false), false), 1e-6)
		}
	})

	t.Run("HTK", func(t *testing.T) {
		assert.InDelta(t, 1000, hz_to_mel(1000, true), 1.0)
		assert.InDelta(t, 1000, mel_to_hz(hz_to_mel(1000, true), true), 1e-6)
	})
}

func TestMelFilterBank(t *testing.T) {
	bank := melFilterBank(40, 400, 16000, 0, 8000, false)
	require.Len(t, bank, 40)
	for i, filter := range bank {
		require.Len(t, filter, 201)
		var nonZero bool
		for _, w := range filter {
			require.GreaterOrEqual(t, w, 0.0)
			if w > 0 {
				nonZero = true
			}
		}
		assert.True(t, nonZero, "filter %d is all zeros", i)
	}

	// filters are ordered by center frequency
	peakBin := func(filter []float64) int {
		best := 0
		for k, w := range filter {
			if w > filter[best] {
				best = k
			}
		}
		return best
	}
	for i := 1; i < len(bank); i++ {
		assert.GreaterOrEqual(t, peakBin(bank[i]), peakBin(bank[i-1]))
	}
}

func TestPeriodicHamming(t *testing.T) {
	w := periodicHamming(400)
	require.Len(t, w, 400)
	assert.InDelta(t, 0.08, w[0], 1e-9)
	assert.InDelta(t, 1.0, w[200], 1e-9)
	assert.InDelta(t, w[1], w[399], 1e-9)
}

func TestDCT2(t *testing.T) {
	x := []float64{2, 2, 2, 2}
	c := dct2(x, 4)
	assert.InDelta(t, 4, c[0], 1e-9) // sqrt(4) * 2
	for _, v := range c[1:] {
		assert.InDelta(t, 0, v, 1e-9)
	}

	// orthonormal: energy is preserved
	y := []float64{1, -3, 0.5, 7, 2}
	var ey, ec float64
	for _, v := range y {
		ey += v * v
	}
	for _, v := range dct2(y, len(y)) {
		ec += v * v
	}
	assert.InDelta(t, ey, ec, 1e-9)
}

func TestToDB(t *testing.T) {
	t.Run("Amplitude", func(t *testing.T) {
		buf := [][]float64{{10, 1}, {0.1, 0}}
		amplitudeToDB(buf, 80)
		assert.InDelta(t, 0, buf[0][0], 1e-9)
		assert.InDelta(t, -20, buf[0][1], 1e-9)
		assert.InDelta(t, -40, buf[1][0], 1e-9)
		assert.InDelta(t, -80, buf[1][1], 1e-9)
	})

	t.Run("Power", func(t *testing.T) {
		buf := [][]float64{{100, 1e-12}}
		powerToDB(buf, 80)
		assert.InDelta(t, 20, buf[0][0], 1e-9)
		assert.InDelta(t, -60, buf[0][1], 1e-9)
	})
}

func TestPowerSpectrogram(t *testing.T) {
	e := NewExtractor()
	power := e.powerSpectrogram(sine(3200, 1000, 1, 16000))
	require.Len(t, power, 3200/160+1)
	require.Len(t, power[0], 201)

	// 1 kHz lands on bin 1000 * 400 / 16000 = 25
	mid := power[len(power)/2]
	best := 0
	for k, v := range mid {
		if v > mid[best] {
			best = k
		}
	}
	assert.Equal(t, 25, best)
	assert.False(t, math.IsNaN(mid[best]))
}
