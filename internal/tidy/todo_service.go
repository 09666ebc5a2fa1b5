package tidy

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/hay-kot/tidy/internal/core/todo"
)

// TodoService is the action-creator side of the store: it turns user intent
// into actions, assigns item ids, and answers read queries.
type TodoService struct {
	store Handle
	ids   *todo.Sequence
	log   zerolog.Logger
}

// NewTodoService creates a TodoService over h. Item ids continue after the
// largest id in h's current collection.
func NewTodoService(h Handle, log zerolog.Logger) *TodoService {
	return &TodoService{
		store: h,
		ids:   todo.NewSequence(h.GetState().Collection),
		log:   log,
	}
}

// Store returns the underlying store handle.
func (s *TodoService) Store() Handle {
	return s.store
}

// State returns the current state snapshot.
func (s *TodoService) State() todo.State {
	return s.store.GetState()
}

// Add appends a new item with the next free id and returns it.
func (s *TodoService) Add(text string) (todo.Item, error) {
	action := s.ids.AddItem(strings.TrimSpace(text))
	if err := s.store.Dispatch(action); err != nil {
		return todo.Item{}, fmt.Errorf("add item: %w", err)
	}

	s.log.Debug().Int("id", action.ID).Msg("item added")
	return todo.ReduceItem(todo.Item{}, action), nil
}

// Toggle flips the completed flag of the item with id.
func (s *TodoService) Toggle(id int) error {
	if err := s.store.Dispatch(todo.ToggleItem{ID: id}); err != nil {
		return fmt.Errorf("toggle item %d: %w", id, err)
	}
	return nil
}

// SetFilter changes the visibility filter.
func (s *TodoService) SetFilter(f todo.FilterMode) error {
	if err := s.store.Dispatch(todo.SetFilter{Filter: f}); err != nil {
		return fmt.Errorf("set filter: %w", err)
	}
	return nil
}

// Visible returns the items that pass the current filter.
func (s *TodoService) Visible() todo.Collection {
	st := s.store.GetState()
	return todo.VisibleItems(st.Collection, st.Filter)
}

// Match returns the visible items whose text matches the doublestar glob
// pattern, case-insensitively. An empty pattern matches everything.
func (s *TodoService) Match(pattern string) (todo.Collection, error) {
	visible := s.Visible()
	if pattern == "" {
		return visible, nil
	}

	pattern = strings.ToLower(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	out := make(todo.Collection, 0, len(visible))
	for _, it := range visible {
		ok, err := doublestar.Match(pattern, strings.ToLower(it.Text))
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", pattern, err)
		}
		if ok {
			out = append(out, it)
		}
	}
	return out, nil
}
