package model

import "fmt"

// ListenAttendSpell wraps an encoder and a decoder into a sequence-to-sequence model.
type ListenAttendSpell struct {
	container
	Listener *Listener
	Speller  *Speller
}

// NewListenAttendSpell joins listener and speller. The speller attends over
// listener outputs, so their widths must match.
func NewListenAttendSpell(listener *Listener, speller *Speller) (*ListenAttendSpell, error) {
	if listener.OutputDim != speller.Config.HiddenDim {
		return nil, fmt.Errorf("listener outputs %d features but speller hidden dimension is %d", listener.OutputDim, speller.Config.HiddenDim)
	}

	m := &ListenAttendSpell{
		container: container{name: "ListenAttendSpell"},
		Listener:  listener,
		Speller:   speller,
	}
	m.add("listener", listener)
	m.add("speller", speller)
	return m, nil
}

func (m *ListenAttendSpell) String() string { return Format(m) }
