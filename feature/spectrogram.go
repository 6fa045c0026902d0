package feature

import "github.com/r9y9/gossp/stft"

// powerSpectrogram returns |STFT|^2 as [frame][bin] for centered frames.
func (e *Extractor) powerSpectrogram(buf []float64) [][]float64 {
	buf = reflectPad(buf, e.FrameLength/2)

	stft := stft.New(e.HopLength, e.FrameLength)
	stft.Window = periodicHamming(e.FrameLength)

	spectrum := stft.STFT(buf)

	var bins = e.FrameLength/2 + 1
	var ospectrum = make([][]float64, len(spectrum))
	for i := range spectrum {
		ospectrum[i] = make([]float64, bins)
		for j := 0; j < bins; j++ {
			var v = spectrum[i][j]
			ospectrum[i][j] = real(v)*real(v) + imag(v)*imag(v)
		}
	}
	return ospectrum
}

// melPower projects a power spectrogram onto mels bands.
func (e *Extractor) melPower(buf []float64, mels int) [][]float64 {
	spectrum := e.powerSpectrogram(buf)
	bank := melFilterBank(mels, e.FrameLength, e.SampleRate, 0, float64(e.SampleRate)/2, e.HTK)

	melspectrum := make([][]float64, len(spectrum))
	for t, frame := range spectrum {
		melspectrum[t] = make([]float64, mels)
		for m, filter := range bank {
			var total float64
			for k, w := range filter {
				total += w * frame[k]
			}
			melspectrum[t][m] = total
		}
	}
	return melspectrum
}
