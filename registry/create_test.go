package registry

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errAssembly = errors.New("assembly line down")

func newFailingWidget() (*widget, error) {
	return nil, fmt.Errorf("widget: %w", errAssembly)
}

func newPanickyWidget() *widget {
	panic("kaboom")
}

func newLabelBatch(prefix string, labels ...string) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = prefix + l
	}
	return out
}

func TestRegistry_Create_ForwardsArguments(t *testing.T) {
	t.Parallel()

	r := New("test")
	require.NoError(t, r.Register("sized", newSizedWidget))

	v, err := r.Create("sized", 42, "answer")
	require.NoError(t, err)

	w, ok := v.(*widget)
	require.True(t, ok)
	assert.Equal(t, 42, w.Size)
	assert.Equal(t, "answer", w.Label)
}

func TestRegistry_Create_ZeroArguments(t *testing.T) {
	t.Parallel()

	r := New("test")
	require.NoError(t, r.Register("widget", newWidget))

	v, err := r.Create("widget")
	require.NoError(t, err)
	assert.IsType(t, &widget{}, v)
}

func TestRegistry_Create_Variadic(t *testing.T) {
	t.Parallel()

	r := New("test")
	require.NoError(t, r.Register("batch", newLabelBatch))

	v, err := r.Create("batch", "x-", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"x-a", "x-b"}, v)

	// Variadic tail may be empty.
	v, err = r.Create("batch", "x-")
	require.NoError(t, err)
	assert.Empty(t, v)
}

func TestRegistry_Create_NotFound(t *testing.T) {
	t.Parallel()

	r := New("test")
	_, err := r.Create("missing")
	require.ErrorIs(t, err, ErrNotFound)

	// Nothing may be partially constructed or registered.
	assert.Zero(t, r.Count())
}

func TestRegistry_Create_ConstructableError(t *testing.T) {
	t.Parallel()

	r := New("test")
	require.NoError(t, r.Register("failing", newFailingWidget))

	_, err := r.Create("failing")
	require.Error(t, err)

	var cerr *ConstructionError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "failing", cerr.Name)

	// The original failure is chained, never swallowed.
	require.ErrorIs(t, err, errAssembly)
}

func TestRegistry_Create_ConstructablePanic(t *testing.T) {
	t.Parallel()

	r := New("test")
	require.NoError(t, r.Register("panicky", newPanickyWidget))

	_, err := r.Create("panicky")
	require.Error(t, err)

	var cerr *ConstructionError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Err.Error(), "kaboom")
}

func TestRegistry_Create_ArgumentMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []any
		wantMsg string
	}{
		{
			name:    "too few",
			args:    []any{7},
			wantMsg: "expects 2 arguments, got 1",
		},
		{
			name:    "too many",
			args:    []any{7, "x", true},
			wantMsg: "expects 2 arguments, got 3",
		},
		{
			name:    "wrong type",
			args:    []any{"seven", "x"},
			wantMsg: "not assignable",
		},
		{
			name:    "nil for value parameter",
			args:    []any{nil, "x"},
			wantMsg: "nil is not assignable",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := New("test")
			require.NoError(t, r.Register("sized", newSizedWidget))

			_, err := r.Create("sized", tt.args...)
			require.Error(t, err)

			var cerr *ConstructionError
			require.ErrorAs(t, err, &cerr)
			assert.True(t, strings.Contains(err.Error(), tt.wantMsg),
				"error %q should contain %q", err.Error(), tt.wantMsg)
		})
	}
}

func TestRegistry_Create_ErrorOnlyConstructable(t *testing.T) {
	t.Parallel()

	r := New("test")
	require.NoError(t, r.Register("noop", func() error { return nil }))

	v, err := r.Create("noop")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestRegistry_Create_NilInterfaceArgument(t *testing.T) {
	t.Parallel()

	r := New("test")
	require.NoError(t, r.Register("sink", func(err error) string {
		if err == nil {
			return "nil"
		}
		return err.Error()
	}))

	v, err := r.Create("sink", nil)
	require.NoError(t, err)
	assert.Equal(t, "nil", v)
}
