package feature

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/x448/float16"
)

// maxHalfChannels bounds the row width accepted by ReadHalf.
const maxHalfChannels = 1 << 16

// WriteHalf stores m as two little-endian uint32 dimensions (frames, channels)
// followed by row-major IEEE 754 half-precision values.
func WriteHalf(w io.Writer, m Matrix) error {
	if m.Channels() > maxHalfChannels {
		return fmt.Errorf("%d channels exceed %d", m.Channels(), maxHalfChannels)
	}
	header := make([]byte, 8)
	binary.LittleEndian.PutUint32(header[0:], uint32(m.Frames()))
	binary.LittleEndian.PutUint32(header[4:], uint32(m.Channels()))
	if _, err := w.Write(header); err != nil {
		return err
	}

	row := make([]byte, 2*m.Channels())
	for t, frame := range m {
		if len(frame) != m.Channels() {
			return fmt.Errorf("frame %d has %d channels, expected %d", t, len(frame), m.Channels())
		}
		for c, v := range frame {
			binary.LittleEndian.PutUint16(row[2*c:], float16.Fromfloat32(v).Bits())
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// ReadHalf loads a matrix written by WriteHalf.
func ReadHalf(r io.Reader) (Matrix, error) {
	header := make([]byte, 8)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("unable to read the header: %w", err)
	}
	frames := int(binary.LittleEndian.Uint32(header[0:]))
	channels := int(binary.LittleEndian.Uint32(header[4:]))
	if channels > maxHalfChannels || (channels == 0 && frames != 0) {
		return nil, fmt.Errorf("bad dimensions %d x %d", frames, channels)
	}

	// rows are allocated as they arrive, a forged frame count fails at EOF
	m := make(Matrix, 0, min(frames, 1024))
	row := make([]byte, 2*channels)
	for t := 0; t < frames; t++ {
		if _, err := io.ReadFull(r, row); err != nil {
			return nil, fmt.Errorf("unable to read frame %d of %d: %w", t, frames, err)
		}
		frame := make([]float32, channels)
		for c := range frame {
			frame[c] = float16.Frombits(binary.LittleEndian.Uint16(row[2*c:])).Float32()
		}
		m = append(m, frame)
	}
	return m, nil
}

// SaveHalf writes m to the named file with WriteHalf.
func SaveHalf(name string, m Matrix) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := WriteHalf(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
