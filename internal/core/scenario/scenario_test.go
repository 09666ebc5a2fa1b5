package scenario

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/tidy/internal/core/todo"
)

func defaultBase() todo.State {
	return todo.Reduce(todo.State{}, nil)
}

func TestLoad_Basic(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "basic.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "basic flow", s.Name)
	require.Len(t, s.Actions, 3)
	require.NotNil(t, s.Expect)
	require.NotNil(t, s.Expect.Count)
	assert.Equal(t, 4, *s.Expect.Count)
	assert.Equal(t, []int{0}, s.Expect.Visible)
}

func TestRun_BasicGolden(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "basic.yaml"))
	require.NoError(t, err)

	res, err := Run(context.Background(), s, defaultBase())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Applied)

	bits, err := json.MarshalIndent(res, "", "  ")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "basic_result", append(bits, '\n'))
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("name: x\nexpect:\n  visable: [1]\n"))
	assert.ErrorContains(t, err, "parse scenario")
}

func TestParse_RejectsUnknownStartFilter(t *testing.T) {
	_, err := Parse([]byte("name: x\nfilter: SHOW_SOME\n"))
	assert.ErrorContains(t, err, `unknown filter "SHOW_SOME"`)
}

func TestParse_RejectsDuplicateSeedIDs(t *testing.T) {
	_, err := Parse([]byte(`
name: twins
seed:
  - {id: 5, text: a}
  - {id: 5, text: b}
actions:
  - {kind: TOGGLE_ITEM, id: 5}
`))

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "seed[1].id", fieldErrs[0].Field)
	assert.ErrorContains(t, err, "parse scenario")
}

func TestParse_RejectsInvalidSeedItems(t *testing.T) {
	_, err := Parse([]byte(`
name: bad seed
seed:
  - {id: -1, text: a}
  - {id: 2, text: ''}
`))

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 2)
	assert.Equal(t, "seed[0].id", fieldErrs[0].Field)
	assert.Equal(t, "seed[1].text", fieldErrs[1].Field)
}

func TestParse_JSON(t *testing.T) {
	s, err := Parse([]byte(`{"name":"json","actions":[{"kind":"TOGGLE_ITEM","id":1}]}`))
	require.NoError(t, err)

	actions, err := s.Decode()
	require.NoError(t, err)
	assert.Equal(t, []todo.Action{todo.ToggleItem{ID: 1}}, actions)
}

func TestRun_SeedOverridesBase(t *testing.T) {
	s, err := Parse([]byte(`
name: empty start
seed: []
actions:
  - {kind: ADD_ITEM, id: 0, text: first}
expect:
  count: 1
`))
	require.NoError(t, err)

	res, err := Run(context.Background(), s, defaultBase())
	require.NoError(t, err)
	assert.Equal(t, todo.Collection{{ID: 0, Text: "first"}}, res.State.Collection)
}

func TestRun_DoubleToggle(t *testing.T) {
	s, err := Parse([]byte(`
name: toggle twice
actions:
  - {kind: TOGGLE_ITEM, id: 2}
  - {kind: TOGGLE_ITEM, id: 2}
expect:
  completed: []
  visible: [0, 1, 2]
`))
	require.NoError(t, err)

	_, err = Run(context.Background(), s, defaultBase())
	assert.NoError(t, err)
}

func TestRun_RejectedActionStops(t *testing.T) {
	s, err := Parse([]byte(`
name: duplicate
actions:
  - {kind: TOGGLE_ITEM, id: 1}
  - {kind: ADD_ITEM, id: 1, text: again}
  - {kind: TOGGLE_ITEM, id: 2}
`))
	require.NoError(t, err)

	res, err := Run(context.Background(), s, defaultBase())
	require.ErrorIs(t, err, todo.ErrInvalidAction)
	assert.ErrorContains(t, err, "actions[1] ADD_ITEM")
	assert.Equal(t, 1, res.Applied)
	assert.True(t, res.State.Collection[1].Completed)
	assert.False(t, res.State.Collection[2].Completed)
}

func TestRun_UndecodableAction(t *testing.T) {
	s, err := Parse([]byte("name: bad\nactions:\n  - {kind: DELETE_ITEM, id: 1}\n"))
	require.NoError(t, err)

	_, err = Run(context.Background(), s, defaultBase())
	require.ErrorIs(t, err, todo.ErrUnknownKind)
	assert.ErrorContains(t, err, "actions[0]")
}

func TestRun_ExpectationFailures(t *testing.T) {
	s, err := Parse([]byte(`
name: wrong
actions:
  - {kind: SET_FILTER, filter: SHOW_ACTIVE}
expect:
  count: 5
  filter: SHOW_ALL
  visible: [2]
`))
	require.NoError(t, err)

	_, err = Run(context.Background(), s, defaultBase())
	require.ErrorIs(t, err, ErrExpectation)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 3)
	assert.Equal(t, "expect.count", fieldErrs[0].Field)
	assert.Equal(t, "expect.filter", fieldErrs[1].Field)
	assert.Equal(t, "expect.visible", fieldErrs[2].Field)
}

func TestRun_LogsThroughContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := logger.WithContext(context.Background())

	s, err := Parse([]byte("name: logged\nactions: []\n"))
	require.NoError(t, err)

	_, err = Run(ctx, s, defaultBase())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "scenario passed")
}
