package model

import (
	"fmt"
	"strings"
)

type leaf struct{}

func (leaf) Children() []Child { return nil }

// Conv2d is a 2-D convolution.
type Conv2d struct {
	leaf
	In, Out int
	Kernel  [2]int
	Stride  [2]int
	Padding [2]int
	Bias    bool
}

func (m *Conv2d) Name() string { return "Conv2d" }

func (m *Conv2d) Extra() string {
	s := fmt.Sprintf("%d, %d, kernel_size=(%d, %d), stride=(%d, %d)", m.In, m.Out, m.Kernel[0], m.Kernel[1], m.Stride[0], m.Stride[1])
	if m.Padding != [2]int{} {
		s += fmt.Sprintf(", padding=(%d, %d)", m.Padding[0], m.Padding[1])
	}
	if !m.Bias {
		s += ", bias=False"
	}
	return s
}

func (m *Conv2d) OwnParams() int64 {
	n := int64(m.Out) * int64(m.In) * int64(m.Kernel[0]) * int64(m.Kernel[1])
	if m.Bias {
		n += int64(m.Out)
	}
	return n
}

// Conv1d is a 1-D convolution.
type Conv1d struct {
	leaf
	In, Out int
	Kernel  int
	Padding int
	Bias    bool
}

func (m *Conv1d) Name() string { return "Conv1d" }

func (m *Conv1d) Extra() string {
	s := fmt.Sprintf("%d, %d, kernel_size=(%d,), stride=(1,)", m.In, m.Out, m.Kernel)
	if m.Padding != 0 {
		s += fmt.Sprintf(", padding=(%d,)", m.Padding)
	}
	if !m.Bias {
		s += ", bias=False"
	}
	return s
}

func (m *Conv1d) OwnParams() int64 {
	n := int64(m.Out) * int64(m.In) * int64(m.Kernel)
	if m.Bias {
		n += int64(m.Out)
	}
	return n
}

// BatchNorm2d normalizes over the channel dimension with an affine transform.
type BatchNorm2d struct {
	leaf
	Features int
}

func (m *BatchNorm2d) Name() string { return "BatchNorm2d" }

func (m *BatchNorm2d) Extra() string {
	return fmt.Sprintf("%d, eps=1e-05, momentum=0.1, affine=True, track_running_stats=True", m.Features)
}

func (m *BatchNorm2d) OwnParams() int64 { return 2 * int64(m.Features) }

// Hardtanh clamps activations to [Min, Max].
type Hardtanh struct {
	leaf
	Min, Max float64
}

func (m *Hardtanh) Name() string { return "Hardtanh" }

func (m *Hardtanh) Extra() string {
	return fmt.Sprintf("min_val=%s, max_val=%s, inplace=True", pyFloat(m.Min), pyFloat(m.Max))
}

func (m *Hardtanh) OwnParams() int64 { return 0 }

// ReLU is the rectifier.
type ReLU struct{ leaf }

func (m *ReLU) Name() string     { return "ReLU" }
func (m *ReLU) Extra() string    { return "inplace=True" }
func (m *ReLU) OwnParams() int64 { return 0 }

// MaxPool2d is a square max pooling.
type MaxPool2d struct {
	leaf
	Kernel, Stride int
}

func (m *MaxPool2d) Name() string { return "MaxPool2d" }

func (m *MaxPool2d) Extra() string {
	return fmt.Sprintf("kernel_size=%d, stride=%d, padding=0, dilation=1, ceil_mode=False", m.Kernel, m.Stride)
}

func (m *MaxPool2d) OwnParams() int64 { return 0 }

// Linear is a fully connected layer.
type Linear struct {
	leaf
	In, Out int
	Bias    bool
}

func (m *Linear) Name() string { return "Linear" }

func (m *Linear) Extra() string {
	return fmt.Sprintf("in_features=%d, out_features=%d, bias=%s", m.In, m.Out, pyBool(m.Bias))
}

func (m *Linear) OwnParams() int64 {
	n := int64(m.In) * int64(m.Out)
	if m.Bias {
		n += int64(m.Out)
	}
	return n
}

// Embedding is a lookup table of Num vectors of size Dim.
type Embedding struct {
	leaf
	Num, Dim int
}

func (m *Embedding) Name() string     { return "Embedding" }
func (m *Embedding) Extra() string    { return fmt.Sprintf("%d, %d", m.Num, m.Dim) }
func (m *Embedding) OwnParams() int64 { return int64(m.Num) * int64(m.Dim) }

// Dropout zeroes activations with probability P during training.
type Dropout struct {
	leaf
	P float64
}

func (m *Dropout) Name() string     { return "Dropout" }
func (m *Dropout) Extra() string    { return fmt.Sprintf("p=%s, inplace=False", pyFloat(m.P)) }
func (m *Dropout) OwnParams() int64 { return 0 }

// RNNType is the recurrent cell kind.
type RNNType string

const (
	RNNTypeLSTM RNNType = "lstm"
	RNNTypeGRU  RNNType = "gru"
	RNNTypeRNN  RNNType = "rnn"
)

func (t RNNType) gates() (int, error) {
	switch t {
	case RNNTypeLSTM:
		return 4, nil
	case RNNTypeGRU:
		return 3, nil
	case RNNTypeRNN:
		return 1, nil
	}
	return 0, fmt.Errorf("%w: rnn type '%s'", ErrUnsupported, string(t))
}

// RNN is a stacked, optionally bidirectional recurrent layer with batch-first input.
type RNN struct {
	leaf
	Type          RNNType
	In, Hidden    int
	Layers        int
	Dropout       float64
	Bidirectional bool
}

func newRNN(t RNNType, in, hidden, layers int, dropout float64, bidirectional bool) (*RNN, error) {
	if _, err := t.gates(); err != nil {
		return nil, err
	}
	if layers < 1 {
		return nil, fmt.Errorf("%w: %d rnn layers", ErrUnsupported, layers)
	}
	return &RNN{
		Type:          t,
		In:            in,
		Hidden:        hidden,
		Layers:        layers,
		Dropout:       dropout,
		Bidirectional: bidirectional,
	}, nil
}

func (m *RNN) Name() string { return strings.ToUpper(string(m.Type)) }

func (m *RNN) Extra() string {
	s := fmt.Sprintf("%d, %d", m.In, m.Hidden)
	if m.Layers != 1 {
		s += fmt.Sprintf(", num_layers=%d", m.Layers)
	}
	s += ", batch_first=True"
	if m.Dropout != 0 {
		s += ", dropout=" + pyFloat(m.Dropout)
	}
	if m.Bidirectional {
		s += ", bidirectional=True"
	}
	return s
}

// OwnParams counts input-hidden and hidden-hidden weights plus both biases
// for every gate, layer and direction.
func (m *RNN) OwnParams() int64 {
	gates, _ := m.Type.gates()
	dirs := 1
	if m.Bidirectional {
		dirs = 2
	}

	var total int64
	in := m.In
	for l := 0; l < m.Layers; l++ {
		perDir := int64(gates) * int64(m.Hidden) * int64(in+m.Hidden+2)
		total += perDir * int64(dirs)
		in = m.Hidden * dirs
	}
	return total
}

// Sequential is an ordered list of modules named by position.
type Sequential struct {
	container
}

func newSequential(modules ...Module) *Sequential {
	s := &Sequential{container: container{name: "Sequential"}}
	for i, m := range modules {
		s.add(fmt.Sprint(i), m)
	}
	return s
}
