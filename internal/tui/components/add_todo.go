package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/tidy/internal/core/styles"
)

var submitKey = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add"))

// AddTodo is the single-line input for new items.
type AddTodo struct {
	input textinput.Model
}

// NewAddTodo creates a blurred input.
func NewAddTodo() *AddTodo {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.Prompt = ""
	ti.SetWidth(40)

	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorPrimary
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.SetStyles(inputStyles)

	return &AddTodo{input: ti}
}

// SetWidth sets the input width.
func (a *AddTodo) SetWidth(w int) {
	a.input.SetWidth(w)
}

// Focus focuses the input.
func (a *AddTodo) Focus() tea.Cmd {
	return a.input.Focus()
}

// Blur blurs the input.
func (a *AddTodo) Blur() {
	a.input.Blur()
}

// Focused reports whether the input has focus.
func (a *AddTodo) Focused() bool {
	return a.input.Focused()
}

// Value returns the current input text.
func (a *AddTodo) Value() string {
	return a.input.Value()
}

// Update forwards msg to the input. On enter it clears the input and
// returns the trimmed text; blank input submits nothing.
func (a *AddTodo) Update(msg tea.Msg) (text string, submitted bool, cmd tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(keyMsg, submitKey) {
		text = strings.TrimSpace(a.input.Value())
		a.input.SetValue("")
		return text, text != "", nil
	}

	a.input, cmd = a.input.Update(msg)
	return "", false, cmd
}

// View renders the input with a focus-dependent border.
func (a *AddTodo) View() string {
	style := styles.InputStyle
	if a.input.Focused() {
		style = styles.InputFocusedStyle
	}
	return style.Render(a.input.View())
}
