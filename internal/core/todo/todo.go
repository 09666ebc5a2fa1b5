// Package todo defines the to-do domain: items, the visibility filter, the
// actions that change them, and the pure reducers that apply those actions.
package todo

// Item is a single entry in the to-do list.
type Item struct {
	ID        int    `json:"id"        yaml:"id"`
	Text      string `json:"text"      yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Collection is the ordered list of items. Insertion order is display order.
//
// A nil Collection means no prior state and is replaced by the seed when
// reduced. Use an empty, non-nil Collection for a defined empty list.
type Collection []Item

// FilterMode selects which items are visible.
type FilterMode string

const (
	ShowAll       FilterMode = "SHOW_ALL"
	ShowActive    FilterMode = "SHOW_ACTIVE"
	ShowCompleted FilterMode = "SHOW_COMPLETED"
)

// FilterModes returns the known filter modes in display order.
func FilterModes() []FilterMode {
	return []FilterMode{ShowAll, ShowActive, ShowCompleted}
}

// IsValid reports whether f is one of the known filter modes.
func (f FilterMode) IsValid() bool {
	switch f {
	case ShowAll, ShowActive, ShowCompleted:
		return true
	}
	return false
}

// Label returns the short human name of the filter.
func (f FilterMode) Label() string {
	switch f {
	case ShowAll:
		return "All"
	case ShowActive:
		return "Active"
	case ShowCompleted:
		return "Completed"
	default:
		return string(f)
	}
}

// State is the root state tree. A State value is never modified after it is
// produced by Reduce; every transition yields a new one.
type State struct {
	Collection Collection `json:"collection" yaml:"collection"`
	Filter     FilterMode `json:"filter"     yaml:"filter"`
}

// DefaultSeed returns the sample items used when no seed is configured.
func DefaultSeed() Collection {
	return Collection{
		{ID: 0, Text: "Hello there"},
		{ID: 1, Text: "Hello Ho"},
		{ID: 2, Text: "Hello Hey"},
	}
}

// InitialState builds a preloaded state from a seed collection and filter.
// A nil seed falls back to DefaultSeed and an empty filter to ShowAll.
func InitialState(seed Collection, filter FilterMode) State {
	if seed == nil {
		seed = DefaultSeed()
	}
	if filter == "" {
		filter = ShowAll
	}
	c := make(Collection, len(seed))
	copy(c, seed)
	return State{Collection: c, Filter: filter}
}

// Find returns the item with the given id.
func (c Collection) Find(id int) (Item, bool) {
	for _, it := range c {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// MaxID returns the largest id in the collection, or -1 when it is empty.
func (c Collection) MaxID() int {
	maxID := -1
	for _, it := range c {
		maxID = max(maxID, it.ID)
	}
	return maxID
}
