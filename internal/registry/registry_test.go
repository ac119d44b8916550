package registry

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constFunc(v any, frag string) Func {
	return func(context.Context, Args) (any, string, error) { return v, frag, nil }
}

func newTestRegistry(t *testing.T) (*Registry, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(logger), buf
}

func TestRegister_FirstWins(t *testing.T) {
	r, logs := newTestRegistry(t)

	require.True(t, r.Register("rows", constFunc(1, "first")))
	require.False(t, r.Register("rows", constFunc(2, "second")), "second registration must be rejected")

	fn, err := r.Resolve("rows")
	require.NoError(t, err)
	v, frag, err := fn(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, "first", frag)
	assert.Contains(t, logs.String(), "Function already registered")
}

func TestRegister_RejectsEmpty(t *testing.T) {
	r, _ := newTestRegistry(t)
	assert.False(t, r.Register("", constFunc(1, "")))
	assert.False(t, r.Register("nil", nil))
	assert.Empty(t, r.Names())
}

func TestResolve_NotFound(t *testing.T) {
	r, _ := newTestRegistry(t)

	_, err := r.Resolve("missing")
	require.ErrorIs(t, err, ErrFuncNotFound)
	assert.True(t, IsPrecondition(err))
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestLoad_FuncsModule(t *testing.T) {
	r, _ := newTestRegistry(t)
	r.Load(
		Funcs{"b": constFunc(2, ""), "a": constFunc(1, "")},
		Funcs{"a": constFunc(99, "")},
	)

	assert.Equal(t, []string{"a", "b"}, r.Names())
	fn, err := r.Resolve("a")
	require.NoError(t, err)
	v, _, _ := fn(context.Background(), nil)
	assert.Equal(t, 1, v)
}

func TestValidate(t *testing.T) {
	r, _ := newTestRegistry(t)
	r.Register("known", constFunc(1, ""))

	require.NoError(t, r.Validate([]string{"known", "known"}))

	err := r.Validate([]string{"zeta", "known", "alpha", "zeta"})
	require.ErrorIs(t, err, ErrFuncNotFound)
	assert.Contains(t, err.Error(), "- alpha\n- zeta")
}
