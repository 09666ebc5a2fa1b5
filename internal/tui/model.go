// Package tui implements the interactive to-do view. Model is the container:
// it re-reads state when the store signals a change and hands component
// intents to the todo service, which dispatches them.
package tui

import (
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/hay-kot/tidy/internal/core/store"
	"github.com/hay-kot/tidy/internal/core/todo"
	"github.com/hay-kot/tidy/internal/tidy"
	"github.com/hay-kot/tidy/internal/tui/components"
)

// Deps are the collaborators the view needs. The store is reached through
// Todos and nowhere else.
type Deps struct {
	Todos *tidy.TodoService
}

// stateChangedMsg is sent when the store reports a state change.
type stateChangedMsg struct{}

// UIState is the interaction mode of the view.
type UIState int

const (
	stateNormal UIState = iota
	stateAdding
	stateShowingHelp
)

// Model is the main TUI model.
type Model struct {
	todos *tidy.TodoService
	keys  keyMap

	state   todo.State
	ui      UIState
	list    *components.TodoList
	input   *components.AddTodo
	filters *components.FilterBar
	help    *components.HelpDialog

	changes     <-chan struct{}
	unsubscribe []func()

	status    string
	statusErr bool
	width     int
	height    int
	quitting  bool
}

// New creates a Model subscribed to the store behind deps.Todos. The
// subscriptions end when the model quits.
//
// The filter bar is connected to the filter slice directly and updates as
// soon as the filter changes; the list re-reads state on each change signal.
func New(deps Deps) Model {
	h := deps.Todos.Store()
	keys := defaultKeyMap()

	filters := components.NewFilterBar(deps.Todos.State().Filter)
	unsubFilter := store.Connect(h, selectFilter, sameFilter, filters.SetCurrent)
	changes, unsubChanges := store.Notify(h)

	m := Model{
		todos:       deps.Todos,
		keys:        keys,
		list:        components.NewTodoList(),
		input:       components.NewAddTodo(),
		filters:     filters,
		help:        components.NewHelpDialog("Keys", keys.helpSections()),
		changes:     changes,
		unsubscribe: []func(){unsubFilter, unsubChanges},
	}
	m.sync()
	return m
}

func selectFilter(s todo.State) todo.FilterMode { return s.Filter }

func sameFilter(a, b todo.FilterMode) bool { return a == b }

// Init starts listening for store changes.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

func (m Model) waitForChange() tea.Cmd {
	ch := m.changes
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return stateChangedMsg{}
	}
}

// sync re-reads the store and pushes the visible items into the list.
func (m *Model) sync() {
	m.state = m.todos.State()
	m.list.SetItems(todo.VisibleItems(m.state.Collection, m.state.Filter))
}

// settle records the outcome of a service call in the status line.
// Successful calls re-sync immediately; the change signal that follows is
// then a no-op re-read.
func (m *Model) settle(err error) bool {
	if err != nil {
		log.Debug().Err(err).Msg("dispatch rejected")
		m.status = err.Error()
		m.statusErr = true
		return false
	}
	m.status = ""
	m.statusErr = false
	m.sync()
	return true
}

// State returns the state the view last rendered from.
func (m Model) State() todo.State {
	return m.state
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetWidth(msg.Width)
		m.input.SetWidth(max(msg.Width-4, 10))
		return m, nil
	case stateChangedMsg:
		m.sync()
		return m, m.waitForChange()
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	if m.ui == stateAdding {
		_, _, cmd := m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQ) {
		return m.quit()
	}

	switch m.ui {
	case stateShowingHelp:
		return m.handleHelpKey(msg)
	case stateAdding:
		return m.handleAddingKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m Model) handleHelpKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Leave), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.ui = stateNormal
	}
	return m, nil
}

func (m Model) handleAddingKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Leave) {
		m.input.Blur()
		m.ui = stateNormal
		return m, nil
	}

	text, submitted, cmd := m.input.Update(msg)
	if submitted {
		item, err := m.todos.Add(text)
		if m.settle(err) {
			m.status = fmt.Sprintf("added #%d", item.ID)
		}
	}
	return m, cmd
}

func (m Model) handleNormalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Up):
		m.list.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.list.MoveDown()
	case key.Matches(msg, m.keys.Toggle):
		if intent, ok := m.list.Toggle(); ok {
			m.settle(m.todos.Toggle(intent.ID))
		}
	case key.Matches(msg, m.keys.Add):
		m.ui = stateAdding
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.FilterN):
		n, _ := strconv.Atoi(msg.String())
		if intent, ok := m.filters.Pick(n); ok {
			m.settle(m.todos.SetFilter(intent.Filter))
		}
	case key.Matches(msg, m.keys.NextView):
		m.settle(m.todos.SetFilter(m.filters.Next().Filter))
	case key.Matches(msg, m.keys.Help):
		m.ui = stateShowingHelp
	}
	return m, nil
}

// quit unsubscribes from the store and stops the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	for _, unsubscribe := range m.unsubscribe {
		unsubscribe()
	}
	return m, tea.Quit
}
