package components

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/tidy/internal/core/styles"
	"github.com/hay-kot/tidy/internal/core/todo"
	"github.com/hay-kot/tidy/pkg/kv"
)

// renderedRow is a cached row render together with the inputs it was
// produced from.
type renderedRow struct {
	item     todo.Item
	selected bool
	width    int
	view     string
}

// TodoList renders the visible items with a cursor.
type TodoList struct {
	items  todo.Collection
	cursor int
	width  int
	rows   *kv.Store[int, renderedRow]
	hits   int
}

// NewTodoList creates an empty list.
func NewTodoList() *TodoList {
	return &TodoList{rows: kv.New[int, renderedRow]()}
}

// SetItems replaces the listed items. The cursor is clamped to the new
// length and cached rows for items no longer listed are dropped.
func (l *TodoList) SetItems(items todo.Collection) {
	l.items = items
	l.cursor = min(l.cursor, max(len(items)-1, 0))

	listed := make(map[int]struct{}, len(items))
	for _, it := range items {
		listed[it.ID] = struct{}{}
	}
	l.rows.Retain(func(id int) bool {
		_, ok := listed[id]
		return ok
	})
}

// SetWidth sets the render width. Zero leaves rows unpadded.
func (l *TodoList) SetWidth(w int) {
	l.width = w
}

// Items returns the listed items.
func (l *TodoList) Items() todo.Collection {
	return l.items
}

// Cursor returns the cursor index.
func (l *TodoList) Cursor() int {
	return l.cursor
}

// Selected returns the item under the cursor.
func (l *TodoList) Selected() (todo.Item, bool) {
	if len(l.items) == 0 {
		return todo.Item{}, false
	}
	return l.items[l.cursor], true
}

// MoveUp moves the cursor up one row, stopping at the top.
func (l *TodoList) MoveUp() {
	if l.cursor > 0 {
		l.cursor--
	}
}

// MoveDown moves the cursor down one row, stopping at the bottom.
func (l *TodoList) MoveDown() {
	if l.cursor < len(l.items)-1 {
		l.cursor++
	}
}

// Toggle returns the toggle intent for the item under the cursor.
func (l *TodoList) Toggle() (todo.ToggleItem, bool) {
	it, ok := l.Selected()
	if !ok {
		return todo.ToggleItem{}, false
	}
	return todo.ToggleItem{ID: it.ID}, true
}

// View renders the list. Rows are reused from the cache while the item,
// selection and width are unchanged.
func (l *TodoList) View() string {
	if len(l.items) == 0 {
		return styles.TextMutedStyle.Render("  nothing to show")
	}

	lines := make([]string, 0, len(l.items))
	for i, it := range l.items {
		selected := i == l.cursor
		row, reused := l.rows.GetOrCompute(it.ID,
			func(r renderedRow) bool {
				return r.item == it && r.selected == selected && r.width == l.width
			},
			func() renderedRow {
				return renderedRow{item: it, selected: selected, width: l.width, view: l.renderRow(it, selected)}
			},
		)
		if reused {
			l.hits++
		}
		lines = append(lines, row.view)
	}

	return strings.Join(lines, "\n")
}

func (l *TodoList) renderRow(it todo.Item, selected bool) string {
	cursor := " "
	if selected {
		cursor = styles.CursorStyle.Render(styles.IconCursor)
	}

	icon := styles.IconUnchecked
	text := styles.ItemStyle.Render(it.Text)
	if it.Completed {
		icon = styles.IconChecked
		text = styles.ItemCompletedStyle.Render(it.Text)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Left, cursor, " ", icon, " ", text)
	if selected {
		style := styles.ItemSelectedStyle
		if l.width > 0 {
			style = style.Width(l.width)
		}
		row = style.Render(row)
	}
	return row
}
