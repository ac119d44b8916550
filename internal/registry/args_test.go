package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	args, err := Merge(map[string]any{"value": 1.5}, map[string]any{"db": "conn"})
	require.NoError(t, err)
	assert.Equal(t, Args{"value": 1.5, "db": "conn"}, args)

	args, err = Merge(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, args)
}

func TestMerge_Collision(t *testing.T) {
	_, err := Merge(map[string]any{"db": 1, "x": 2, "client": 3}, map[string]any{"db": "a", "client": "b"})
	require.ErrorIs(t, err, ErrArgCollision)
	require.ErrorIs(t, err, ErrPrecondition)
	assert.Contains(t, err.Error(), "client, db")
}

func TestArgs_Getters(t *testing.T) {
	args := Args{
		"n":     3,
		"f":     2.5,
		"s":     "hello",
		"list":  []any{1, 2.5, uint(3)},
		"plain": []float64{1, 2},
		"bad":   []any{1, "two"},
		"nil":   nil,
	}

	f, err := args.Float("n")
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)

	_, err = args.Float("s")
	var argErr *ArgError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "s", argErr.Key)
	assert.True(t, IsPrecondition(err))

	_, err = args.Float("absent")
	require.ErrorIs(t, err, ErrPrecondition)
	assert.Contains(t, err.Error(), "missing")

	list, err := args.Floats("list")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, 3}, list)

	list, err = args.Floats("plain")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, list)

	_, err = args.Floats("bad")
	require.ErrorIs(t, err, ErrPrecondition)
	assert.Contains(t, err.Error(), "element 1")

	s, err := args.String("s")
	require.NoError(t, err)
	assert.Equal(t, "hello", s)

	s, err = args.StringOr("absent", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", s)

	v, err := args.Value("nil")
	require.NoError(t, err)
	assert.Nil(t, v)
}

type fakeClient struct{ name string }

func TestObject(t *testing.T) {
	args := Args{"client": &fakeClient{name: "c"}, "other": 1}

	c, err := Object[*fakeClient](args, "client")
	require.NoError(t, err)
	assert.Equal(t, "c", c.name)

	_, err = Object[*fakeClient](args, "other")
	require.ErrorIs(t, err, ErrPrecondition)

	_, err = Object[*fakeClient](args, "absent")
	require.ErrorIs(t, err, ErrPrecondition)
}
