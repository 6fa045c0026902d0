package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/neurlang/speechfront/feature"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f := Register(fs)
	require.NoError(t, fs.Parse([]string{"--format=WAV", "--del-silence", "--reverse=false", "--resampler=soxr"}))

	e := feature.NewExtractor()
	require.NoError(t, f.Apply(e))
	assert.Equal(t, feature.FormatWav, e.Format)
	assert.True(t, e.DelSilence)
	assert.False(t, e.Reverse)
	assert.IsType(t, feature.SoxrResampler{}, e.Resampler)

	f.Format = "mp3"
	assert.ErrorIs(t, f.Apply(e), feature.ErrInvalidFormat)

	f.Format = "pcm"
	f.Resampler = "linear"
	assert.Error(t, f.Apply(e))
}

func TestWrite(t *testing.T) {
	base := filepath.Join(t.TempDir(), "x.pcm")
	feat := feature.Matrix{{0, 1}, {2, 3}}

	require.NoError(t, write(base, feat, &Flags{PNG: true, Half: true}))
	_, err := os.Stat(base + ".png")
	assert.NoError(t, err)

	fh, err := os.Open(base + ".f16")
	require.NoError(t, err)
	defer fh.Close()
	got, err := feature.ReadHalf(fh)
	require.NoError(t, err)
	assert.Equal(t, feat, got)
}
