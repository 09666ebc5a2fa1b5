package tuitest

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[1mbold\x1b[0m   \nplain  \n\n"
	assert.Equal(t, "bold\nplain", StripANSI(in))
}

func TestType(t *testing.T) {
	msgs := Type("ab")
	require.Len(t, msgs, 2)

	key, ok := msgs[0].(tea.KeyPressMsg)
	require.True(t, ok)
	assert.Equal(t, "a", key.String())
}

func TestNamedKeys(t *testing.T) {
	assert.Equal(t, "enter", KeyEnter().(tea.KeyPressMsg).String())
	assert.Equal(t, "esc", KeyEsc().(tea.KeyPressMsg).String())
	assert.Equal(t, "tab", KeyTab().(tea.KeyPressMsg).String())
	assert.Equal(t, "down", KeyDown().(tea.KeyPressMsg).String())
}
