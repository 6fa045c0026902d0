package feature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReflectPad(t *testing.T) {
	assert.Equal(t, []float64{3, 2, 1, 2, 3, 2, 1}, reflectPad([]float64{1, 2, 3}, 2))
	assert.Equal(t, []float64{1, 2, 1, 2, 1, 2}, reflectPad([]float64{1, 2}, 2))
	assert.Equal(t, []float64{5, 5, 5}, reflectPad([]float64{5}, 1))
	assert.Equal(t, []float64{1, 2, 3}, reflectPad([]float64{1, 2, 3}, 0))
}

func TestSplit(t *testing.T) {
	var signal []float64
	signal = append(signal, sine(16000, 440, 0.5, 16000)...)
	signal = append(signal, make([]float64, 16000)...)
	signal = append(signal, sine(16000, 440, 0.5, 16000)...)

	intervals := Split(signal, 30, 2048, 512)
	require.Len(t, intervals, 2)
	assert.Equal(t, 0, intervals[0].Start)
	assert.Equal(t, len(signal), intervals[1].End)
	assert.Less(t, intervals[0].End, intervals[1].Start)
	assert.Greater(t, intervals[0].End, 16000-2048)
	assert.Less(t, intervals[1].Start, 32000+2048)

	trimmed := RemoveSilence(signal, 30)
	assert.Less(t, len(trimmed), len(signal))
	assert.Greater(t, len(trimmed), 32000)
}

func TestSplitNoSilence(t *testing.T) {
	signal := sine(5000, 440, 0.5, 16000)
	intervals := Split(signal, 30, 2048, 512)
	require.Len(t, intervals, 1)
	assert.Equal(t, Interval{Start: 0, End: len(signal)}, intervals[0])
	assert.Equal(t, signal, RemoveSilence(signal, 30))

	assert.Nil(t, Split(nil, 30, 2048, 512))
}
