package todo

import "sync/atomic"

// Sequence hands out item ids. Ids increase monotonically and start after
// the largest id already present in the collection it was created from.
type Sequence struct {
	next atomic.Int64
}

// NewSequence returns a Sequence whose first id is one past c.MaxID().
func NewSequence(c Collection) *Sequence {
	s := &Sequence{}
	s.next.Store(int64(c.MaxID() + 1))
	return s
}

// Next returns the next unused id.
func (s *Sequence) Next() int {
	return int(s.next.Add(1) - 1)
}

// AddItem builds an AddItem action carrying the next id.
func (s *Sequence) AddItem(text string) AddItem {
	return AddItem{ID: s.Next(), Text: text}
}
