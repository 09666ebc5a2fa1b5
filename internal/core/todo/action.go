package todo

// Kind tags an action variant.
type Kind string

const (
	KindAddItem    Kind = "ADD_ITEM"
	KindToggleItem Kind = "TOGGLE_ITEM"
	KindSetFilter  Kind = "SET_FILTER"
)

// Action describes one intended state transition. The set of variants is
// closed: AddItem, ToggleItem and SetFilter. A nil Action is a no-op that
// every reducer returns its input for.
type Action interface {
	Kind() Kind
	action()
}

// AddItem appends a new, active item.
type AddItem struct {
	ID   int
	Text string
}

// ToggleItem flips the completed flag of the item with ID.
type ToggleItem struct {
	ID int
}

// SetFilter changes the visibility filter.
type SetFilter struct {
	Filter FilterMode
}

func (AddItem) Kind() Kind    { return KindAddItem }
func (ToggleItem) Kind() Kind { return KindToggleItem }
func (SetFilter) Kind() Kind  { return KindSetFilter }

func (AddItem) action()    {}
func (ToggleItem) action() {}
func (SetFilter) action()  {}

// KindOf returns the kind of a, or an empty Kind for a nil action.
func KindOf(a Action) Kind {
	if a == nil {
		return ""
	}
	return a.Kind()
}
