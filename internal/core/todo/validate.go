package todo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// ErrInvalidAction is returned when an action is rejected at the dispatch
// boundary. The wrapped error is a criterio.FieldErrors naming the bad fields.
var ErrInvalidAction = errors.New("invalid action")

// Validate checks that a is well formed for state s. Nil actions and kinds
// the reducers do not handle are valid no-ops.
func Validate(s State, a Action) error {
	var errs criterio.FieldErrorsBuilder

	switch a := a.(type) {
	case AddItem:
		if a.ID < 0 {
			errs = errs.Append("id", fmt.Errorf("must not be negative, got %d", a.ID))
		} else if _, exists := s.Collection.Find(a.ID); exists {
			errs = errs.Append("id", fmt.Errorf("item %d already exists", a.ID))
		}
		if strings.TrimSpace(a.Text) == "" {
			errs = errs.Append("text", errors.New("is required"))
		}
	case ToggleItem:
		if a.ID < 0 {
			errs = errs.Append("id", fmt.Errorf("must not be negative, got %d", a.ID))
		}
	case SetFilter:
		if !a.Filter.IsValid() {
			errs = errs.Append("filter", fmt.Errorf("unknown filter %q", a.Filter))
		}
	}

	if err := errs.ToError(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidAction, KindOf(a), err)
	}
	return nil
}
