// Package feature provides acoustic feature extraction for speech recognition front-ends.
//
// This package turns raw audio files into time × channel feature matrices
// which are consumed by sequence-to-sequence acoustic models. It supports:
//   - Loading headerless 16-bit PCM, WAV and FLAC audio, resampled to 16 kHz
//   - Trimming silent regions relative to the signal peak
//   - Mel-spectrograms (power or log-scaled) with 25 ms frames and 10 ms hops
//   - Mel-frequency cepstral coefficients (MFCC)
//   - Exporting matrices as PNG images or float16 blobs
package feature
