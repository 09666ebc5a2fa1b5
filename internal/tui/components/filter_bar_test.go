package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/tidy/internal/core/todo"
	"github.com/hay-kot/tidy/pkg/tuitest"
)

func TestFilterBar_Pick(t *testing.T) {
	f := NewFilterBar(todo.ShowAll)

	tests := []struct {
		n    int
		want todo.FilterMode
		ok   bool
	}{
		{1, todo.ShowAll, true},
		{2, todo.ShowActive, true},
		{3, todo.ShowCompleted, true},
		{0, "", false},
		{4, "", false},
	}

	for _, tt := range tests {
		got, ok := f.Pick(tt.n)
		assert.Equal(t, tt.ok, ok, "pick %d", tt.n)
		assert.Equal(t, tt.want, got.Filter, "pick %d", tt.n)
	}
}

func TestFilterBar_NextWraps(t *testing.T) {
	f := NewFilterBar(todo.ShowAll)
	assert.Equal(t, todo.ShowActive, f.Next().Filter)

	f.SetCurrent(todo.ShowCompleted)
	assert.Equal(t, todo.ShowAll, f.Next().Filter)
}

func TestFilterBar_View(t *testing.T) {
	f := NewFilterBar(todo.ShowActive)
	out := tuitest.StripANSI(f.View())
	assert.Contains(t, out, "Show: All, Active, Completed")
}
