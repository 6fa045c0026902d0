// Command tomel converts audio files (PCM/WAV/FLAC) to mel spectrograms.
//
// This tool computes log-mel spectrograms with 25 ms Hamming frames and a 10 ms
// hop, the input representation of attention-based speech recognizers, and
// saves each one next to its input.
//
// Usage:
//
//	tomel [flags] <audio_file>...
//
// The output PNG file will be named <audio_file>.png, and with --half the
// float16 matrix will be named <audio_file>.f16
//
// Supported input formats: pcm (16 kHz s16le), wav, flac
package main
