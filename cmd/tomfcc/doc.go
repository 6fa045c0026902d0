// Command tomfcc converts audio files (PCM/WAV/FLAC) to mel-frequency cepstral coefficients.
//
// Usage:
//
//	tomfcc [flags] <audio_file>...
//
// The output PNG file will be named <audio_file>.png, and with --half the
// float16 matrix will be named <audio_file>.f16
package main
