package feature

import "math"
import "github.com/mjibson/go-dsp/window"

const aminPower = 1e-10

func mel_to_hz(value float64, htk bool) float64 {
	if htk {
		const _MEL_BREAK_FREQUENCY_HERTZ = 700.0
		const _MEL_HIGH_FREQUENCY_Q = 1127.0
		return _MEL_BREAK_FREQUENCY_HERTZ * (math.Exp(value/_MEL_HIGH_FREQUENCY_Q) - 1.0)
	}

	// linear below 1 kHz, logarithmic above
	const f_sp = 200.0 / 3
	const min_log_hz = 1000.0
	const min_log_mel = min_log_hz / f_sp
	var logstep = math.Log(6.4) / 27.0

	if value >= min_log_mel {
		return min_log_hz * math.Exp(logstep*(value-min_log_mel))
	}
	return f_sp * value
}

func hz_to_mel(value float64, htk bool) float64 {
	if htk {
		const _MEL_BREAK_FREQUENCY_HERTZ = 700.0
		const _MEL_HIGH_FREQUENCY_Q = 1127.0
		return _MEL_HIGH_FREQUENCY_Q * math.Log(1.0+(value/_MEL_BREAK_FREQUENCY_HERTZ))
	}

	const f_sp = 200.0 / 3
	const min_log_hz = 1000.0
	const min_log_mel = min_log_hz / f_sp
	var logstep = math.Log(6.4) / 27.0

	if value >= min_log_hz {
		return min_log_mel + math.Log(value/min_log_hz)/logstep
	}
	return value / f_sp
}

// melFilterBank returns [mels][fftSize/2+1] triangular filters, each scaled to unit area
// so that bands of different width carry comparable energy.
func melFilterBank(mels, fftSize, sampleRate int, mel_fmin, mel_fmax float64, htk bool) [][]float64 {
	bins := fftSize/2 + 1

	fftfreqs := make([]float64, bins)
	for k := range fftfreqs {
		fftfreqs[k] = float64(k) * float64(sampleRate) / float64(fftSize)
	}

	var lo, hi = hz_to_mel(mel_fmin, htk), hz_to_mel(mel_fmax, htk)
	melf := make([]float64, mels+2)
	for i := range melf {
		melf[i] = mel_to_hz(lo+(hi-lo)*float64(i)/float64(mels+1), htk)
	}

	bank := make([][]float64, mels)
	for i := 0; i < mels; i++ {
		filter := make([]float64, bins)
		var lower, center, upper = melf[i], melf[i+1], melf[i+2]
		var enorm = 2.0 / (upper - lower)
		for k, f := range fftfreqs {
			var down = (f - lower) / (center - lower)
			var up = (upper - f) / (upper - center)
			var w = math.Min(down, up)
			if w > 0 {
				filter[k] = w * enorm
			}
		}
		bank[i] = filter
	}
	return bank
}

// periodicHamming is the DFT-even Hamming window of length n.
func periodicHamming(n int) []float64 {
	return window.Hamming(n + 1)[:n]
}

// amplitudeToDB converts in place to 20*log10(|x|/max|x|), floored topDB below the peak.
func amplitudeToDB(buf [][]float64, topDB float64) {
	var ref float64
	for _, row := range buf {
		for _, v := range row {
			ref = math.Max(ref, math.Abs(v))
		}
	}
	var refDB = 20 * math.Log10(math.Max(math.Sqrt(aminPower), ref))
	toDB(buf, topDB, func(v float64) float64 {
		return 20*math.Log10(math.Max(math.Sqrt(aminPower), math.Abs(v))) - refDB
	})
}

// powerToDB converts in place to 10*log10(x), floored topDB below the peak.
func powerToDB(buf [][]float64, topDB float64) {
	toDB(buf, topDB, func(v float64) float64 {
		return 10 * math.Log10(math.Max(aminPower, v))
	})
}

func toDB(buf [][]float64, topDB float64, conv func(float64) float64) {
	var peak = math.Inf(-1)
	for _, row := range buf {
		for j, v := range row {
			row[j] = conv(v)
			peak = math.Max(peak, row[j])
		}
	}
	for _, row := range buf {
		for j := range row {
			if row[j] < peak-topDB {
				row[j] = peak - topDB
			}
		}
	}
}

// dct2 is the orthonormal type-II DCT of x truncated to n coefficients.
func dct2(x []float64, n int) []float64 {
	var size = float64(len(x))
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		var sum float64
		for i, v := range x {
			sum += v * math.Cos(math.Pi*float64(k)*(2*float64(i)+1)/(2*size))
		}
		if k == 0 {
			out[k] = sum * math.Sqrt(1/size)
		} else {
			out[k] = sum * math.Sqrt(2/size)
		}
	}
	return out
}
