package feature

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFormat = errors.New("invalid format")
	ErrInvalidConfig = errors.New("invalid extractor configuration")
	ErrFileNotLoaded = errors.New("audio file not loaded")
	ErrEmptySignal   = errors.New("signal is empty")
)

// ReadError reports an input file that could not be read at all.
// It is not fatal for a batch: the extractor logs it and returns it inside a Result.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("unable to read '%s': %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Result is the outcome of extracting features from a single file.
// Exactly one of Features and Err is meaningful.
type Result struct {
	Features Matrix
	Err      *ReadError
}

// OK reports whether the features were computed.
func (r Result) OK() bool {
	return r.Err == nil
}
