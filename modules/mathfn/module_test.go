package mathfn

import (
	"context"
	"testing"

	"github.com/specialistvlad/funcgrid/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func call(t *testing.T, name string, args registry.Args) (any, string, error) {
	t.Helper()
	r := registry.New(nil)
	r.Load(&Module{})
	fn, err := r.Resolve(name)
	require.NoError(t, err)
	return fn(context.Background(), args)
}

func TestAggregates(t *testing.T) {
	values := registry.Args{"values": []any{4, 1.5, 10, -2.5}}

	testCases := []struct {
		name     string
		want     any
		wantFrag string
	}{
		{name: "sum", want: 13.0, wantFrag: "sum=13"},
		{name: "mean", want: 3.25, wantFrag: "mean=3.25"},
		{name: "min", want: -2.5, wantFrag: "min=-2.5"},
		{name: "max", want: 10.0, wantFrag: "max=10"},
		{name: "count", want: 4, wantFrag: "count=4"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, frag, err := call(t, tc.name, values)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantFrag, frag)
		})
	}
}

func TestAggregates_EmptyList(t *testing.T) {
	got, _, err := call(t, "sum", registry.Args{"values": []any{}})
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	for _, name := range []string{"mean", "min", "max"} {
		got, frag, err := call(t, name, registry.Args{"values": []any{}})
		require.NoError(t, err)
		assert.Nil(t, got, name)
		assert.Equal(t, name+" of empty list", frag)
	}
}

func TestAggregates_BadArguments(t *testing.T) {
	_, _, err := call(t, "sum", registry.Args{"values": []any{1, "two"}})
	require.Error(t, err)
	assert.True(t, registry.IsPrecondition(err))
	assert.Contains(t, err.Error(), "element 1")

	_, _, err = call(t, "count", registry.Args{"values": "abc"})
	assert.True(t, registry.IsPrecondition(err))

	_, _, err = call(t, "max", registry.Args{})
	assert.True(t, registry.IsPrecondition(err))
}
