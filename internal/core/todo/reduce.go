package todo

// ReduceItem applies a to a single item.
//
// AddItem ignores prior and builds a fresh item. ToggleItem returns prior
// as-is unless the ids match, so untouched items stay value-equal across
// transitions.
func ReduceItem(prior Item, a Action) Item {
	switch a := a.(type) {
	case AddItem:
		return Item{ID: a.ID, Text: a.Text, Completed: false}
	case ToggleItem:
		if prior.ID != a.ID {
			return prior
		}
		next := prior
		next.Completed = !prior.Completed
		return next
	default:
		return prior
	}
}

// ReduceCollection applies a to the item list. A nil prior is seeded with
// DefaultSeed. The prior slice is never written to.
func ReduceCollection(prior Collection, a Action) Collection {
	if prior == nil {
		prior = DefaultSeed()
	}

	switch a.(type) {
	case AddItem:
		next := make(Collection, len(prior), len(prior)+1)
		copy(next, prior)
		return append(next, ReduceItem(Item{}, a))
	case ToggleItem:
		next := make(Collection, len(prior))
		for i, it := range prior {
			next[i] = ReduceItem(it, a)
		}
		return next
	default:
		return prior
	}
}

// ReduceFilter applies a to the visibility filter. An empty prior means
// ShowAll. SetFilter is taken verbatim; Validate is where unknown modes are
// rejected.
func ReduceFilter(prior FilterMode, a Action) FilterMode {
	if prior == "" {
		prior = ShowAll
	}

	if a, ok := a.(SetFilter); ok {
		return a.Filter
	}
	return prior
}

// Reduce is the root reducer. Every slice reducer runs for every action and
// only ever sees its own slice.
func Reduce(prior State, a Action) State {
	return State{
		Collection: ReduceCollection(prior.Collection, a),
		Filter:     ReduceFilter(prior.Filter, a),
	}
}

// VisibleItems returns the items that pass filter. Unknown filters show
// everything.
func VisibleItems(c Collection, filter FilterMode) Collection {
	switch filter {
	case ShowActive:
		return c.where(func(it Item) bool { return !it.Completed })
	case ShowCompleted:
		return c.where(func(it Item) bool { return it.Completed })
	default:
		return c
	}
}

func (c Collection) where(keep func(Item) bool) Collection {
	out := make(Collection, 0, len(c))
	for _, it := range c {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
