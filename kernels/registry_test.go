package kernels

import (
	"math"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestDefaultRegistryUtilityLibraries(t *testing.T) {
	for _, name := range []string{"kernel-utils", "padding-helpers", "tensor-helpers"} {
		lib, ok := Lookup(name)
		require.Truef(t, ok, "utility library %q not registered", name)
		assert.False(t, lib.IsKernel())
		assert.NotEmpty(t, lib.Srcs)
		assert.NotEmpty(t, lib.Hdrs)
	}

	_, ok := Lookup("no-such-library")
	assert.False(t, ok)
}

func TestResolve(t *testing.T) {
	r := NewRegistry()
	r.Register(Library{Name: "base"})
	r.Register(Library{Name: "mid", Deps: []string{"base"}})
	r.Register(Library{Name: "top", Deps: []string{"mid", "base"}})

	order, err := r.Resolve("top")
	require.NoError(t, err)
	assert.Equal(t, []string{"base", "mid", "top"}, order)

	order, err = r.Resolve("base")
	require.NoError(t, err)
	assert.Equal(t, []string{"base"}, order)

	_, err = r.Resolve("no-such-library")
	require.Error(t, err)
}

func TestResolveMissingDep(t *testing.T) {
	r := NewRegistry()
	r.Register(Library{Name: "lonely", Deps: []string{"missing"}})
	_, err := r.Resolve("lonely")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestResolveCycle(t *testing.T) {
	r := NewRegistry()
	r.Register(Library{Name: "a", Deps: []string{"b"}})
	r.Register(Library{Name: "b", Deps: []string{"c"}})
	r.Register(Library{Name: "c", Deps: []string{"a"}})
	_, err := r.Resolve("a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestResolveAll(t *testing.T) {
	r := NewRegistry()
	r.Register(Library{Name: "base"})
	r.Register(Library{Name: "x", Deps: []string{"base"}})
	r.Register(Library{Name: "y", Deps: []string{"base"}})
	order, err := r.ResolveAll()
	require.NoError(t, err)
	assert.Len(t, order, 3)
	assert.Equal(t, "base", order[0])
}

func TestRegisterDuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(Library{Name: "once"})
	require.Panics(t, func() { r.Register(Library{Name: "once"}) })
}

func TestRegisterInvalidPanics(t *testing.T) {
	r := NewRegistry()
	require.Panics(t, func() { r.Register(Library{}) }, "empty name")
}

func TestPaddingIdentity(t *testing.T) {
	v, err := PaddingIdentity(dtypes.Float32)
	require.NoError(t, err)
	assert.Equal(t, float32(math.Inf(-1)), v)

	v, err = PaddingIdentity(dtypes.Float16)
	require.NoError(t, err)
	assert.Equal(t, float16.Inf(-1), v)

	v, err = PaddingIdentity(dtypes.Int32)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MinInt32), v)

	v, err = PaddingIdentity(dtypes.Uint8)
	require.NoError(t, err)
	assert.Equal(t, uint8(0), v)

	_, err = PaddingIdentity(dtypes.Bool)
	require.Error(t, err)
}
