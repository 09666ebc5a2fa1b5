package tidy

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/tidy/internal/core/config"
	"github.com/hay-kot/tidy/internal/core/store"
	"github.com/hay-kot/tidy/internal/core/todo"
)

func newTestService(t *testing.T, mutate ...func(*config.Config)) *TodoService {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	for _, fn := range mutate {
		fn(&cfg)
	}
	require.NoError(t, cfg.Validate())

	app := NewApp(&cfg, zerolog.Nop(), BuildInfo{})
	return app.Todos
}

func TestNewApp_BootstrapsDefaultSeed(t *testing.T) {
	svc := newTestService(t)

	st := svc.State()
	assert.Equal(t, todo.DefaultSeed(), st.Collection)
	assert.Equal(t, todo.ShowAll, st.Filter)
}

func TestNewApp_ConfiguredSeed(t *testing.T) {
	svc := newTestService(t, func(c *config.Config) {
		c.Seed = []todo.Item{{ID: 40, Text: "from config"}}
		c.Filter = todo.ShowActive
	})

	st := svc.State()
	assert.Equal(t, todo.Collection{{ID: 40, Text: "from config"}}, st.Collection)
	assert.Equal(t, todo.ShowActive, st.Filter)

	item, err := svc.Add("next")
	require.NoError(t, err)
	assert.Equal(t, 41, item.ID, "ids continue after the seed")
}

func TestTodoService_Scenario(t *testing.T) {
	svc := newTestService(t)

	item, err := svc.Add("  x  ")
	require.NoError(t, err)
	assert.Equal(t, todo.Item{ID: 3, Text: "x"}, item)

	st := svc.State()
	require.Len(t, st.Collection, 4)
	assert.Equal(t, item, st.Collection[3])

	require.NoError(t, svc.Toggle(0))
	require.NoError(t, svc.SetFilter(todo.ShowCompleted))

	assert.Equal(t, todo.Collection{{ID: 0, Text: "Hello there", Completed: true}}, svc.Visible())
}

func TestTodoService_AddRejectsBlank(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Add("   ")
	require.ErrorIs(t, err, todo.ErrInvalidAction)
	assert.Len(t, svc.State().Collection, 3)
}

func TestTodoService_SetFilterRejectsUnknown(t *testing.T) {
	svc := newTestService(t)

	err := svc.SetFilter("SHOW_EVERYTHING")
	require.ErrorIs(t, err, todo.ErrInvalidAction)
	assert.Equal(t, todo.ShowAll, svc.State().Filter)
}

func TestTodoService_Match(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Add("buy milk")
	require.NoError(t, err)

	tests := []struct {
		pattern string
		want    []int
	}{
		{"", []int{0, 1, 2, 3}},
		{"hello *", []int{0, 1, 2}},
		{"*HO", []int{1}},
		{"buy*", []int{3}},
		{"h?llo hey", []int{2}},
		{"nothing", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := svc.Match(tt.pattern)
			require.NoError(t, err)

			ids := []int{}
			for _, it := range got {
				ids = append(ids, it.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	_, err = svc.Match("[")
	assert.Error(t, err)
}

func TestNewStore_ReentrantPolicyFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Store.ReentrantDispatch = "reject"

	s := NewStore(&cfg, zerolog.Nop())

	var nested error
	fired := false
	s.Subscribe(func() {
		if !fired {
			fired = true
			nested = s.Dispatch(todo.ToggleItem{ID: 1})
		}
	})

	require.NoError(t, s.Dispatch(todo.ToggleItem{ID: 0}))
	assert.ErrorIs(t, nested, store.ErrReentrantDispatch)
}
