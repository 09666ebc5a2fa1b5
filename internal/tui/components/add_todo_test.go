package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/tidy/pkg/tuitest"
)

func typeInto(a *AddTodo, s string) {
	for _, msg := range tuitest.Type(s) {
		a.Update(msg)
	}
}

func TestAddTodo_SubmitTrimsAndClears(t *testing.T) {
	a := NewAddTodo()
	a.Focus()

	typeInto(a, "  buy milk ")
	assert.Equal(t, "  buy milk ", a.Value())

	text, ok, _ := a.Update(tuitest.KeyEnter())
	assert.True(t, ok)
	assert.Equal(t, "buy milk", text)
	assert.Empty(t, a.Value())
}

func TestAddTodo_BlankSubmitsNothing(t *testing.T) {
	a := NewAddTodo()
	a.Focus()

	typeInto(a, "   ")
	_, ok, _ := a.Update(tuitest.KeyEnter())
	assert.False(t, ok)
	assert.Empty(t, a.Value())
}

func TestAddTodo_IgnoresInputWhenBlurred(t *testing.T) {
	a := NewAddTodo()

	typeInto(a, "x")
	assert.Empty(t, a.Value())
	assert.False(t, a.Focused())
}
