package feature

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix(t *testing.T) {
	m := Matrix{{1, 2}, {3, 4}, {5, 6}}
	assert.Equal(t, 3, m.Frames())
	assert.Equal(t, 2, m.Channels())
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, m.Flatten())

	c := m.Clone()
	c.Reverse()
	assert.Equal(t, Matrix{{5, 6}, {3, 4}, {1, 2}}, c)
	assert.Equal(t, Matrix{{1, 2}, {3, 4}, {5, 6}}, m)

	c[0][0] = 42
	assert.Equal(t, float32(1), m[0][0])

	assert.Equal(t, 0, Matrix(nil).Channels())
}

func TestHalf(t *testing.T) {
	m := Matrix{{0, 1.5, -2}, {-80, 0.25, 1024}}

	var buf bytes.Buffer
	require.NoError(t, WriteHalf(&buf, m))
	assert.Equal(t, 8+2*6, buf.Len())

	got, err := ReadHalf(&buf)
	require.NoError(t, err)
	assert.Equal(t, m, got)

	_, err = ReadHalf(bytes.NewReader([]byte{2, 0, 0, 0, 1, 0, 0, 0, 0}))
	assert.Error(t, err)

	t.Run("ForgedHeader", func(t *testing.T) {
		for name, header := range map[string][]byte{
			"frames":   {0xff, 0xff, 0xff, 0xff, 1, 0, 0, 0},
			"channels": {1, 0, 0, 0, 0xff, 0xff, 0xff, 0xff},
			"empty":    {0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0},
		} {
			t.Run(name, func(t *testing.T) {
				data := append(header, 0, 0x3c, 0, 0x3c)
				got, err := ReadHalf(bytes.NewReader(data))
				assert.Error(t, err)
				assert.Nil(t, got)
			})
		}
	})
}

func TestEncodePNG(t *testing.T) {
	m := Matrix{{0, 1, 2}, {3, 4, 5}}

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, m, true))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())

	// the smallest value is drawn black at the bottom-left when y is reversed
	r, _, _, _ := img.At(0, 2).RGBA()
	assert.Equal(t, uint32(0), r)
	r, _, _, _ = img.At(1, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)

	assert.Error(t, EncodePNG(&buf, Matrix{}, false))
}
