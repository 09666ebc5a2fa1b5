package scenario

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"

	"github.com/hay-kot/tidy/internal/core/logging"
	"github.com/hay-kot/tidy/internal/core/store"
	"github.com/hay-kot/tidy/internal/core/todo"
)

// Result is the outcome of a replay.
type Result struct {
	Name    string          `json:"name"`
	Applied int             `json:"applied"`
	State   todo.State      `json:"state"`
	Visible todo.Collection `json:"visible"`
}

// Run dispatches the scenario's actions into a new store that starts from
// s.InitialState(base), then checks the expectations. A rejected action stops
// the run; the partial result is returned with the error.
//
// Logging goes to the logger carried by ctx (zerolog.Ctx).
func Run(ctx context.Context, s *Scenario, base todo.State) (Result, error) {
	ctx = logging.WithScenario(ctx, s.Name)
	log := zerolog.Ctx(ctx)

	res := Result{Name: s.Name}

	actions, err := s.Decode()
	if err != nil {
		return res, err
	}

	st := store.New[todo.State, todo.Action](todo.Reduce,
		store.WithInitialState[todo.State, todo.Action](s.InitialState(base)),
		store.WithValidator(todo.Validate),
		store.WithLogger[todo.State, todo.Action](*log),
	)

	for i, a := range actions {
		if err := st.Dispatch(a); err != nil {
			res.State = st.GetState()
			res.Visible = todo.VisibleItems(res.State.Collection, res.State.Filter)
			return res, fmt.Errorf("actions[%d] %s: %w", i, todo.KindOf(a), err)
		}
		res.Applied++
		log.Debug().Ctx(ctx).Int("index", i).Str("kind", string(todo.KindOf(a))).Msg("replayed action")
	}

	res.State = st.GetState()
	res.Visible = todo.VisibleItems(res.State.Collection, res.State.Filter)

	if err := s.Expect.check(res); err != nil {
		log.Warn().Ctx(ctx).Err(err).Msg("scenario failed")
		return res, err
	}

	log.Info().Ctx(ctx).Int("applied", res.Applied).Msg("scenario passed")
	return res, nil
}

func (e *Expect) check(res Result) error {
	if e == nil {
		return nil
	}

	var errs criterio.FieldErrorsBuilder

	if e.Count != nil && *e.Count != len(res.State.Collection) {
		errs = errs.Append("expect.count", fmt.Errorf("want %d items, got %d", *e.Count, len(res.State.Collection)))
	}

	if e.Filter != "" && e.Filter != res.State.Filter {
		errs = errs.Append("expect.filter", fmt.Errorf("want %s, got %s", e.Filter, res.State.Filter))
	}

	if e.Visible != nil {
		if got := ids(res.Visible, nil); !slices.Equal(e.Visible, got) {
			errs = errs.Append("expect.visible", fmt.Errorf("want ids %v, got %v", e.Visible, got))
		}
	}

	if e.Completed != nil {
		done := func(it todo.Item) bool { return it.Completed }
		if got := ids(res.State.Collection, done); !slices.Equal(e.Completed, got) {
			errs = errs.Append("expect.completed", fmt.Errorf("want ids %v, got %v", e.Completed, got))
		}
	}

	if err := errs.ToError(); err != nil {
		return errors.Join(ErrExpectation, err)
	}
	return nil
}

func ids(c todo.Collection, keep func(todo.Item) bool) []int {
	out := make([]int, 0, len(c))
	for _, it := range c {
		if keep == nil || keep(it) {
			out = append(out, it.ID)
		}
	}
	return out
}
