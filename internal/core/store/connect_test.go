package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isEven(n int) bool { return n%2 == 0 }

func eq[T comparable](a, b T) bool { return a == b }

func TestConnect_OnlyCallsOnChange(t *testing.T) {
	s := newCounter()

	var got []bool
	unsubscribe := Connect[int, string](s, isEven, eq[bool], func(even bool) {
		got = append(got, even)
	})

	require.NoError(t, s.Dispatch("noop"))
	assert.Empty(t, got, "unchanged selection is not reported")

	require.NoError(t, s.Dispatch("inc"))
	require.NoError(t, s.Dispatch("noop"))
	require.NoError(t, s.Dispatch("inc"))
	assert.Equal(t, []bool{false, true}, got)

	unsubscribe()
	require.NoError(t, s.Dispatch("inc"))
	assert.Len(t, got, 2)
}

func TestNotify_Coalesces(t *testing.T) {
	s := newCounter()

	ch, unsubscribe := Notify[int, string](s)
	defer unsubscribe()

	require.NoError(t, s.Dispatch("inc"))
	require.NoError(t, s.Dispatch("inc"))
	require.NoError(t, s.Dispatch("inc"))

	select {
	case <-ch:
	default:
		t.Fatal("expected a pending signal")
	}

	select {
	case <-ch:
		t.Fatal("signals should coalesce into one")
	default:
	}

	assert.Equal(t, 13, s.GetState())
}

func TestNotify_UnsubscribeClosesChannel(t *testing.T) {
	s := newCounter()

	ch, unsubscribe := Notify[int, string](s)
	require.NoError(t, s.Dispatch("inc"))

	unsubscribe()
	assert.NotPanics(t, unsubscribe)

	_, ok := <-ch
	assert.True(t, ok, "a signal sent before unsubscribing is still delivered")
	_, ok = <-ch
	assert.False(t, ok, "channel is closed after unsubscribe")

	require.NoError(t, s.Dispatch("inc"))
}

func TestNotify_UnsubscribeDuringPassDoesNotSend(t *testing.T) {
	s := newCounter()

	var panics []any
	s.OnPanic(func(_ string, r any) { panics = append(panics, r) })

	var unsubscribe func()
	s.Subscribe(func() { unsubscribe() })
	ch, unsub := Notify[int, string](s)
	unsubscribe = unsub

	require.NoError(t, s.Dispatch("inc"))
	assert.Empty(t, panics, "the snapshot still calls the notifier, which must not send on a closed channel")

	_, ok := <-ch
	assert.False(t, ok)
}
