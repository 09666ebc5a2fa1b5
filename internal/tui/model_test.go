package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/tidy/internal/core/store"
	"github.com/hay-kot/tidy/internal/core/todo"
	"github.com/hay-kot/tidy/internal/tidy"
	"github.com/hay-kot/tidy/pkg/tuitest"
)

type todoStore = store.Store[todo.State, todo.Action]

func newStore() *todoStore {
	return store.New[todo.State, todo.Action](todo.Reduce, store.WithValidator(todo.Validate))
}

// countingHandle wraps a store and counts live subscriptions.
type countingHandle struct {
	*todoStore
	live int
}

func (h *countingHandle) Subscribe(fn func()) func() {
	h.live++
	unsubscribe := h.todoStore.Subscribe(fn)
	return func() {
		h.live--
		unsubscribe()
	}
}

func deps(h tidy.Handle) Deps {
	return Deps{Todos: tidy.NewTodoService(h, zerolog.Nop())}
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func render(m Model) string {
	return tuitest.StripANSI(m.renderMain())
}

func TestModel_InitialRender(t *testing.T) {
	m := New(deps(newStore()))

	out := render(m)
	assert.Contains(t, out, "Hello there")
	assert.Contains(t, out, "Hello Ho")
	assert.Contains(t, out, "Hello Hey")
	assert.Contains(t, out, "Show: All, Active, Completed")
}

func TestModel_ToggleUnderCursor(t *testing.T) {
	s := newStore()
	m := New(deps(s))

	m = send(t, m, tuitest.KeySpace())
	assert.True(t, s.GetState().Collection[0].Completed)

	m = send(t, m, tuitest.KeyDown(), tuitest.KeyEnter())
	assert.True(t, s.GetState().Collection[1].Completed)

	m = send(t, m, tuitest.KeyPress('k'), tuitest.KeySpace())
	assert.False(t, s.GetState().Collection[0].Completed)
	assert.Equal(t, s.GetState(), m.State())
}

func TestModel_AddItem(t *testing.T) {
	s := newStore()
	m := New(deps(s))

	m = send(t, m, tuitest.KeyPress('a'))
	assert.Equal(t, stateAdding, m.ui)

	m = send(t, m, tuitest.Type("buy milk")...)
	m = send(t, m, tuitest.KeyEnter())

	c := s.GetState().Collection
	require.Len(t, c, 4)
	assert.Equal(t, todo.Item{ID: 3, Text: "buy milk"}, c[3])
	assert.Equal(t, "added #3", m.Status())
	assert.Contains(t, render(m), "buy milk")

	m = send(t, m, tuitest.KeyEsc())
	assert.Equal(t, stateNormal, m.ui)
}

func TestModel_KeysGoToInputWhileAdding(t *testing.T) {
	s := newStore()
	m := New(deps(s))

	m = send(t, m, tuitest.KeyPress('i'))
	m = send(t, m, tuitest.Type("q3")...)
	assert.False(t, m.quitting)
	assert.Equal(t, todo.ShowAll, s.GetState().Filter)
	assert.Equal(t, "q3", m.input.Value())
}

func TestModel_BlankAddDispatchesNothing(t *testing.T) {
	s := newStore()
	m := New(deps(s))

	m = send(t, m, tuitest.KeyPress('a'))
	m = send(t, m, tuitest.Type("   ")...)
	send(t, m, tuitest.KeyEnter())

	assert.Len(t, s.GetState().Collection, 3)
}

func TestModel_Filters(t *testing.T) {
	s := newStore()
	m := New(deps(s))

	m = send(t, m, tuitest.KeyPress('3'))
	assert.Equal(t, todo.ShowCompleted, s.GetState().Filter)
	assert.Contains(t, render(m), "nothing to show")

	m = send(t, m, tuitest.KeyPress('1'))
	assert.Equal(t, todo.ShowAll, s.GetState().Filter)

	m = send(t, m, tuitest.KeyTab())
	assert.Equal(t, todo.ShowActive, s.GetState().Filter)

	m = send(t, m, tuitest.KeySpace())
	assert.NotContains(t, render(m), "Hello there", "completed items leave the active view")
}

func TestModel_RejectedDispatchShowsStatus(t *testing.T) {
	s := newStore()
	m := New(deps(s))

	// takes the id the service hands out next
	require.NoError(t, s.Dispatch(todo.AddItem{ID: 3, Text: "elsewhere"}))

	m = send(t, m, tuitest.KeyPress('a'))
	m = send(t, m, tuitest.Type("clash")...)
	m = send(t, m, tuitest.KeyEnter())

	assert.Len(t, s.GetState().Collection, 4)
	assert.Contains(t, m.Status(), "invalid action")
	assert.Contains(t, render(m), "invalid action")
}

func TestModel_ExternalDispatchWakesView(t *testing.T) {
	s := newStore()
	m := New(deps(s))

	cmd := m.Init()
	require.NotNil(t, cmd)

	require.NoError(t, s.Dispatch(todo.AddItem{ID: 7, Text: "from elsewhere"}))

	msg := cmd()
	assert.IsType(t, stateChangedMsg{}, msg)

	m = send(t, m, msg)
	assert.Contains(t, render(m), "from elsewhere")
}

func TestModel_HelpOverlay(t *testing.T) {
	m := New(deps(newStore()))

	m = send(t, m, tuitest.KeyPress('?'))
	assert.Equal(t, stateShowingHelp, m.ui)

	m = send(t, m, tuitest.KeySpace())
	assert.Equal(t, stateShowingHelp, m.ui, "help swallows other keys")

	m = send(t, m, tuitest.KeyEsc())
	assert.Equal(t, stateNormal, m.ui)
}

func TestModel_QuitUnsubscribes(t *testing.T) {
	h := &countingHandle{todoStore: newStore()}
	m := New(deps(h))
	require.Equal(t, 2, h.live, "change signal and filter connection")

	wait := m.Init()
	require.NotNil(t, wait)

	next, cmd := m.Update(tuitest.KeyPress('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, next.(Model).quitting)
	assert.Equal(t, 0, h.live)

	assert.Nil(t, wait(), "a pending wait returns once the change channel closes")
}

func TestModel_FilterBarFollowsStore(t *testing.T) {
	s := newStore()
	m := New(deps(s))

	require.NoError(t, s.Dispatch(todo.SetFilter{Filter: todo.ShowCompleted}))
	assert.Equal(t, todo.ShowCompleted, m.filters.Current(), "connected without waiting for a change message")

	m = send(t, m, tuitest.KeyTab())
	assert.Equal(t, todo.ShowAll, s.GetState().Filter)
	assert.Equal(t, todo.ShowAll, m.filters.Current())
}

func TestModel_AddUsesServiceIDs(t *testing.T) {
	s := newStore()
	d := deps(s)
	m := New(d)

	_, err := d.Todos.Add("from the cli")
	require.NoError(t, err)

	m = send(t, m, tuitest.KeyPress('a'))
	m = send(t, m, tuitest.Type("from the view")...)
	m = send(t, m, tuitest.KeyEnter())

	c := s.GetState().Collection
	require.Len(t, c, 5)
	assert.Equal(t, 3, c[3].ID)
	assert.Equal(t, 4, c[4].ID)
	assert.Equal(t, "added #4", m.Status())
}
