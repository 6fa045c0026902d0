package feature

import "image"
import "image/png"
import "image/color"
import "io"
import "os"

// EncodePNG renders m as a grayscale image, time on the x axis and channels on the y axis.
// With yReverse the first channel is drawn at the bottom.
func EncodePNG(w io.Writer, m Matrix, yReverse bool) error {
	if m.Frames() == 0 || m.Channels() == 0 {
		return ErrEmptySignal
	}

	stride, mels := m.Frames(), m.Channels()
	img := image.NewGray(image.Rect(0, 0, stride, mels))

	var mgc_max, mgc_min = float32(-99999999.), float32(99999999.)
	for x := 0; x < stride; x++ {
		for y := 0; y < mels; y++ {
			var v = m[x][y]
			if v > mgc_max {
				mgc_max = v
			}
			if v < mgc_min {
				mgc_min = v
			}
		}
	}
	var span = mgc_max - mgc_min
	if span == 0 {
		span = 1
	}

	for x := 0; x < stride; x++ {
		for y := 0; y < mels; y++ {
			val := (m[x][y] - mgc_min) / span
			col := color.Gray{Y: uint8(int(255 * val))}
			if yReverse {
				img.SetGray(x, mels-y-1, col)
			} else {
				img.SetGray(x, y, col)
			}
		}
	}

	return png.Encode(w, img)
}

// WritePNG saves m as a PNG image file.
func WritePNG(name string, m Matrix, yReverse bool) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}

	if err := EncodePNG(f, m, yReverse); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
