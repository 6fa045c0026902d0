package model

import "fmt"

// SpellerConfig holds the decoder hyperparameters.
type SpellerConfig struct {
	NumClasses int
	MaxLength  int
	HiddenDim  int
	SOSID      int
	EOSID      int
	// AttnMechanism is "dot", "loc" or "multi-head".
	AttnMechanism string
	NumHeads      int
	NumLayers     int
	RNNType       RNNType
	DropoutP      float64
	Device        string
}

// DefaultSpellerConfig fills the optional hyperparameters with their defaults.
func DefaultSpellerConfig(numClasses, maxLength, hiddenDim, sosID, eosID int) SpellerConfig {
	return SpellerConfig{
		NumClasses:    numClasses,
		MaxLength:     maxLength,
		HiddenDim:     hiddenDim,
		SOSID:         sosID,
		EOSID:         eosID,
		AttnMechanism: "dot",
		NumHeads:      4,
		NumLayers:     2,
		RNNType:       RNNTypeLSTM,
		DropoutP:      0.3,
	}
}

// Speller is the attention decoder emitting one of NumClasses symbols per step.
type Speller struct {
	container
	Config SpellerConfig
}

// NewSpeller builds the decoder described by cfg.
func NewSpeller(cfg SpellerConfig) (*Speller, error) {
	if cfg.SOSID < 0 || cfg.SOSID >= cfg.NumClasses || cfg.EOSID < 0 || cfg.EOSID >= cfg.NumClasses {
		return nil, fmt.Errorf("sos %d / eos %d outside of %d classes", cfg.SOSID, cfg.EOSID, cfg.NumClasses)
	}

	attention, err := newAttention(cfg.AttnMechanism, cfg.HiddenDim, cfg.NumHeads)
	if err != nil {
		return nil, err
	}
	rnn, err := newRNN(cfg.RNNType, cfg.HiddenDim, cfg.HiddenDim, cfg.NumLayers, cfg.DropoutP, false)
	if err != nil {
		return nil, err
	}

	s := &Speller{
		container: container{name: "Speller"},
		Config:    cfg,
	}
	s.add("embedding", &Embedding{Num: cfg.NumClasses, Dim: cfg.HiddenDim})
	s.add("input_dropout", &Dropout{P: cfg.DropoutP})
	s.add("rnn", rnn)
	s.add("attention", attention)
	s.add("fc", &Linear{In: cfg.HiddenDim << 1, Out: cfg.NumClasses, Bias: true})
	return s, nil
}

func (s *Speller) String() string { return Format(s) }

func newAttention(mechanism string, dim, heads int) (Module, error) {
	switch mechanism {
	case "dot":
		return &DotProductAttention{Dim: dim}, nil
	case "loc":
		a := &LocationAwareAttention{container: container{name: "LocationAwareAttention"}, Dim: dim, Smoothing: true}
		a.add("conv1d", &Conv1d{In: 1, Out: dim, Kernel: 3, Padding: 1, Bias: true})
		a.add("query_proj", &Linear{In: dim, Out: dim, Bias: false})
		a.add("value_proj", &Linear{In: dim, Out: dim, Bias: false})
		a.add("score_proj", &Linear{In: dim, Out: 1, Bias: true})
		return a, nil
	case "multi-head":
		if heads < 1 || dim%heads != 0 {
			return nil, fmt.Errorf("%w: %d heads for dimension %d", ErrUnsupported, heads, dim)
		}
		a := &MultiHeadAttention{container: container{name: "MultiHeadAttention"}, Dim: dim, Heads: heads}
		a.add("query_proj", &Linear{In: dim, Out: dim, Bias: true})
		a.add("value_proj", &Linear{In: dim, Out: dim, Bias: true})
		return a, nil
	}
	return nil, fmt.Errorf("%w: attention mechanism '%s'", ErrUnsupported, mechanism)
}

// DotProductAttention scores encoder outputs by their dot product with the decoder state.
type DotProductAttention struct {
	leaf
	Dim int
}

func (a *DotProductAttention) Name() string     { return "DotProductAttention" }
func (a *DotProductAttention) Extra() string    { return "" }
func (a *DotProductAttention) OwnParams() int64 { return 0 }

// LocationAwareAttention adds a convolution over the previous alignment to the score.
type LocationAwareAttention struct {
	container
	Dim       int
	Smoothing bool
}

// OwnParams is the additive score bias.
func (a *LocationAwareAttention) OwnParams() int64 { return int64(a.Dim) }

// MultiHeadAttention splits Dim into Heads scaled dot-product attentions.
type MultiHeadAttention struct {
	container
	Dim   int
	Heads int
}
