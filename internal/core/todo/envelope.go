package todo

import (
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when decoding an envelope with an unrecognized kind.
var ErrUnknownKind = errors.New("unknown action kind")

// Envelope is the flat, serializable form of an Action used by scenario
// files and JSON output.
type Envelope struct {
	Kind   Kind       `json:"kind"             yaml:"kind"`
	ID     *int       `json:"id,omitempty"     yaml:"id,omitempty"`
	Text   string     `json:"text,omitempty"   yaml:"text,omitempty"`
	Filter FilterMode `json:"filter,omitempty" yaml:"filter,omitempty"`
}

// Encode converts an action into its envelope. A nil action encodes to the
// zero envelope.
func Encode(a Action) Envelope {
	switch a := a.(type) {
	case AddItem:
		return Envelope{Kind: KindAddItem, ID: &a.ID, Text: a.Text}
	case ToggleItem:
		return Envelope{Kind: KindToggleItem, ID: &a.ID}
	case SetFilter:
		return Envelope{Kind: KindSetFilter, Filter: a.Filter}
	default:
		return Envelope{}
	}
}

// Decode converts the envelope back into an action. Fields the kind
// requires must be present; the id is the only one that can be absent
// without being zero.
func (e Envelope) Decode() (Action, error) {
	switch e.Kind {
	case KindAddItem:
		if e.ID == nil {
			return nil, fmt.Errorf("%w: %s: id is required", ErrInvalidAction, e.Kind)
		}
		return AddItem{ID: *e.ID, Text: e.Text}, nil
	case KindToggleItem:
		if e.ID == nil {
			return nil, fmt.Errorf("%w: %s: id is required", ErrInvalidAction, e.Kind)
		}
		return ToggleItem{ID: *e.ID}, nil
	case KindSetFilter:
		return SetFilter{Filter: e.Filter}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, e.Kind)
	}
}
