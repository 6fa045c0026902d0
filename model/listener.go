package model

import (
	"fmt"
	"math"
)

// ListenerConfig holds the encoder hyperparameters.
type ListenerConfig struct {
	InputSize     int
	HiddenDim     int
	Device        string
	DropoutP      float64
	NumLayers     int
	Bidirectional bool
	RNNType       RNNType
	// Extractor is the convolutional front-end: "vgg" or "ds2".
	Extractor string
	// Activation is used inside the extractor: "hardtanh" or "relu".
	Activation string
}

// DefaultListenerConfig fills the optional hyperparameters with their defaults.
func DefaultListenerConfig(inputSize, hiddenDim int, device string) ListenerConfig {
	return ListenerConfig{
		InputSize:     inputSize,
		HiddenDim:     hiddenDim,
		Device:        device,
		DropoutP:      0.3,
		NumLayers:     3,
		Bidirectional: true,
		RNNType:       RNNTypeLSTM,
		Extractor:     "vgg",
		Activation:    "hardtanh",
	}
}

// Listener is the encoder: a convolutional feature extractor followed by a recurrent stack.
type Listener struct {
	container
	Config ListenerConfig
	// OutputDim is the size of each encoder output vector.
	OutputDim int
}

// NewListener builds the encoder described by cfg.
func NewListener(cfg ListenerConfig) (*Listener, error) {
	act, err := activation(cfg.Activation)
	if err != nil {
		return nil, err
	}

	var (
		extractor Module
		rnnInput  int
	)
	switch cfg.Extractor {
	case "vgg":
		extractor, rnnInput = vggExtractor(cfg.InputSize, act)
	case "ds2":
		extractor, rnnInput = deepSpeech2Extractor(cfg.InputSize, act)
	default:
		return nil, fmt.Errorf("%w: extractor '%s'", ErrUnsupported, cfg.Extractor)
	}

	rnn, err := newRNN(cfg.RNNType, rnnInput, cfg.HiddenDim, cfg.NumLayers, cfg.DropoutP, cfg.Bidirectional)
	if err != nil {
		return nil, err
	}

	l := &Listener{
		container: container{name: "Listener"},
		Config:    cfg,
		OutputDim: cfg.HiddenDim,
	}
	if cfg.Bidirectional {
		l.OutputDim <<= 1
	}
	l.add("extractor", extractor)
	l.add("rnn", rnn)
	return l, nil
}

func activation(name string) (func() Module, error) {
	switch name {
	case "hardtanh":
		return func() Module { return &Hardtanh{Min: 0, Max: 20} }, nil
	case "relu":
		return func() Module { return &ReLU{} }, nil
	}
	return nil, fmt.Errorf("%w: activation '%s'", ErrUnsupported, name)
}

// vggExtractor stacks two VGG blocks, each halving the feature axis.
func vggExtractor(inputSize int, act func() Module) (Module, int) {
	conv := func(in, out int) Module {
		return &Conv2d{In: in, Out: out, Kernel: [2]int{3, 3}, Stride: [2]int{1, 1}, Padding: [2]int{1, 1}, Bias: true}
	}
	seq := newSequential(
		conv(1, 64), act(), &BatchNorm2d{Features: 64},
		conv(64, 64), act(), &MaxPool2d{Kernel: 2, Stride: 2},
		&BatchNorm2d{Features: 64},
		conv(64, 128), act(), &BatchNorm2d{Features: 128},
		conv(128, 128), act(), &MaxPool2d{Kernel: 2, Stride: 2},
	)

	ext := &container{name: "VGGExtractor"}
	ext.add("conv", seq)

	var out int
	if inputSize%2 != 0 {
		out = (inputSize - 1) << 5
	} else {
		out = inputSize << 5
	}
	return ext, out
}

// deepSpeech2Extractor is the two-layer strided convolution front-end of Deep Speech 2.
func deepSpeech2Extractor(inputSize int, act func() Module) (Module, int) {
	seq := newSequential(
		&Conv2d{In: 1, Out: 32, Kernel: [2]int{41, 11}, Stride: [2]int{2, 2}, Padding: [2]int{20, 5}},
		&BatchNorm2d{Features: 32},
		act(),
		&Conv2d{In: 32, Out: 32, Kernel: [2]int{21, 11}, Stride: [2]int{2, 1}, Padding: [2]int{10, 5}},
		&BatchNorm2d{Features: 32},
		act(),
	)

	ext := &container{name: "DeepSpeech2Extractor"}
	ext.add("conv", seq)

	out := int(math.Floor(float64(inputSize+2*20-41)/2 + 1))
	out = int(math.Floor(float64(out+2*10-21)/2 + 1))
	out <<= 5
	return ext, out
}

func (l *Listener) String() string { return Format(l) }
