package feature

import "math"

const (
	splitFrameLength = 2048
	splitHopLength   = 512
)

// Interval is a half-open [Start, End) range of sample indices.
type Interval struct {
	Start int
	End   int
}

// Split returns the non-silent intervals of signal. A frame is silent when its
// mean power is more than topDB below the loudest frame. Frames are centered
// and reflect-padded like the STFT frames.
func Split(signal []float64, topDB float64, frameLength, hopLength int) []Interval {
	if len(signal) == 0 {
		return nil
	}

	padded := reflectPad(signal, frameLength/2)
	numFrames := 1 + (len(padded)-frameLength)/hopLength

	power := make([]float64, numFrames)
	var peak float64
	for i := range power {
		frame := padded[i*hopLength : i*hopLength+frameLength]
		var sum float64
		for _, v := range frame {
			sum += v * v
		}
		power[i] = sum / float64(frameLength)
		if power[i] > peak {
			peak = power[i]
		}
	}

	ref := 10 * math.Log10(math.Max(aminPower, peak))
	nonSilent := make([]bool, numFrames)
	for i, p := range power {
		nonSilent[i] = 10*math.Log10(math.Max(aminPower, p))-ref > -topDB
	}

	var out []Interval
	start := -1
	for i, loud := range nonSilent {
		switch {
		case loud && start < 0:
			start = i
		case !loud && start >= 0:
			out = append(out, frameInterval(start, i, hopLength, len(signal)))
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, frameInterval(start, numFrames, hopLength, len(signal)))
	}
	return out
}

func frameInterval(from, to, hop, limit int) Interval {
	return Interval{
		Start: min(from*hop, limit),
		End:   min(to*hop, limit),
	}
}

// RemoveSilence concatenates the non-silent intervals of signal.
func RemoveSilence(signal []float64, topDB float64) []float64 {
	var out []float64
	for _, iv := range Split(signal, topDB, splitFrameLength, splitHopLength) {
		out = append(out, signal[iv.Start:iv.End]...)
	}
	return out
}

// reflectPad mirrors pad samples on each side without repeating the edge sample.
func reflectPad(buf []float64, pad int) []float64 {
	n := len(buf)
	out := make([]float64, n+2*pad)
	if n == 1 {
		for i := range out {
			out[i] = buf[0]
		}
		return out
	}

	period := 2 * (n - 1)
	for i := range out {
		j := (i - pad) % period
		if j < 0 {
			j += period
		}
		if j >= n {
			j = period - j
		}
		out[i] = buf[j]
	}
	return out
}
