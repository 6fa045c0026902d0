package feature

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"
	"github.com/stretchr/testify/require"
)

func sine(n int, freq, amplitude float64, sampleRate int) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
	}
	return buf
}

func writePCM(t *testing.T, name string, samples []float64) string {
	t.Helper()
	raw := make([]byte, 2*len(samples))
	for i, v := range samples {
		binary.LittleEndian.PutUint16(raw[2*i:], uint16(int16(math.Round(v))))
	}
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, raw, 0640))
	return path
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0640))
	return path
}

// writeFlac encodes each channel as verbatim 16-bit subframes.
func writeFlac(t *testing.T, name string, sampleRate int, channels ...[]float64) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	info := &meta.StreamInfo{
		BlockSizeMin:  16,
		BlockSizeMax:  65535,
		SampleRate:    uint32(sampleRate),
		NChannels:     uint8(len(channels)),
		BitsPerSample: 16,
	}
	enc, err := flac.NewEncoder(f, info)
	require.NoError(t, err)

	assignment := frame.ChannelsMono
	if len(channels) == 2 {
		assignment = frame.ChannelsLR
	}

	const blockSize = 1024
	for pos := 0; pos < len(channels[0]); pos += blockSize {
		n := min(blockSize, len(channels[0])-pos)
		subframes := make([]*frame.Subframe, len(channels))
		for c, samples := range channels {
			sub := &frame.Subframe{
				SubHeader: frame.SubHeader{Pred: frame.PredVerbatim},
				Samples:   make([]int32, n),
				NSamples:  n,
			}
			for i := range sub.Samples {
				sub.Samples[i] = int32(math.Round(samples[pos+i] * 32767))
			}
			subframes[c] = sub
		}
		hdr := frame.Header{
			BlockSize:     uint16(n),
			SampleRate:    uint32(sampleRate),
			Channels:      assignment,
			BitsPerSample: 16,
		}
		require.NoError(t, enc.WriteFrame(&frame.Frame{Header: hdr, Subframes: subframes}))
	}
	require.NoError(t, enc.Close())
	return path
}

func peak(buf []float64) (p float64) {
	for _, v := range buf {
		p = max(p, math.Abs(v))
	}
	return
}
