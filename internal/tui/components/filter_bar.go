package components

import (
	"slices"
	"strings"
	"sync"

	"github.com/hay-kot/tidy/internal/core/styles"
	"github.com/hay-kot/tidy/internal/core/todo"
)

// FilterBar shows the filter choices with the current one highlighted.
// SetCurrent may be called from a store observer on another goroutine.
type FilterBar struct {
	mu      sync.Mutex
	current todo.FilterMode
}

// NewFilterBar creates a filter bar showing current.
func NewFilterBar(current todo.FilterMode) *FilterBar {
	return &FilterBar{current: current}
}

// SetCurrent changes the highlighted filter.
func (f *FilterBar) SetCurrent(mode todo.FilterMode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = mode
}

// Current returns the highlighted filter.
func (f *FilterBar) Current() todo.FilterMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

// Pick returns the SetFilter intent for the n-th filter, counting from 1.
func (f *FilterBar) Pick(n int) (todo.SetFilter, bool) {
	modes := todo.FilterModes()
	if n < 1 || n > len(modes) {
		return todo.SetFilter{}, false
	}
	return todo.SetFilter{Filter: modes[n-1]}, true
}

// Next returns the SetFilter intent for the filter after the current one,
// wrapping around.
func (f *FilterBar) Next() todo.SetFilter {
	modes := todo.FilterModes()
	i := slices.Index(modes, f.Current())
	return todo.SetFilter{Filter: modes[(i+1)%len(modes)]}
}

// View renders "Show: All, Active, Completed" with the current filter plain
// and the others as links.
func (f *FilterBar) View() string {
	current := f.Current()
	modes := todo.FilterModes()
	links := make([]string, 0, len(modes))
	for _, mode := range modes {
		if mode == current {
			links = append(links, styles.FilterCurrentStyle.Render(mode.Label()))
			continue
		}
		links = append(links, styles.FilterLinkStyle.Render(mode.Label()))
	}
	return styles.TextMutedStyle.Render(styles.IconFilter+" Show: ") + strings.Join(links, ", ")
}
