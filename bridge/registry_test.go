package bridge

import (
	"errors"
	"testing"

	"github.com/mccode-go/mctree/comp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_resolvesEveryType(t *testing.T) {
	r := NewRegistry(NewStaticHost())
	defer r.Close()

	for _, typ := range comp.Types() {
		h, err := r.Handle(typ)
		require.NoError(t, err)
		assert.Equal(t, typ.Name(), h.Name())
	}
}

func TestRegistry_cachesHandles(t *testing.T) {
	r := NewRegistry(NewStaticHost())
	defer r.Close()

	h1, err := r.Handle(comp.NodeTraceBlock)
	require.NoError(t, err)
	h2, err := r.Handle(comp.NodeTraceBlock)
	require.NoError(t, err)

	// The second resolution must return the identical handle, not just an
	// equal one.
	assert.Same(t, h1, h2)
}

func TestRegistry_unresolvedTypeIsFatalAndNamed(t *testing.T) {
	var names []string
	for _, typ := range comp.Types() {
		if typ != comp.NodeShareBlock {
			names = append(names, typ.Name())
		}
	}
	r := NewRegistry(NewStaticHost(names...))
	defer r.Close()

	_, err := r.Handle(comp.NodeShareBlock)
	require.Error(t, err)

	var unresolved *UnresolvedTypeError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, "ShareBlock", unresolved.TypeName)
	assert.Contains(t, err.Error(), "ShareBlock")

	// Resolution failures must not poison the cache for other types.
	_, err = r.Handle(comp.NodeTraceBlock)
	assert.NoError(t, err)
}

func TestRegistry_rejectsTokenSentinel(t *testing.T) {
	r := NewRegistry(NewStaticHost())
	defer r.Close()

	_, err := r.Handle(comp.TokenType)
	assert.Error(t, err)
}

func TestRegistry_preload(t *testing.T) {
	host := NewStaticHost()
	r := NewRegistry(host)
	defer r.Close()

	require.NoError(t, r.Preload())
	for _, typ := range comp.Types() {
		h, err := r.Handle(typ)
		require.NoError(t, err)
		assert.Equal(t, typ.Name(), h.Name())
	}
}

func TestRegistry_preloadReportsDrift(t *testing.T) {
	r := NewRegistry(NewStaticHost("Prog"))
	defer r.Close()

	err := r.Preload()
	var unresolved *UnresolvedTypeError
	require.True(t, errors.As(err, &unresolved))
}

func TestRegistry_closeReleasesEachHandleOnce(t *testing.T) {
	host := NewStaticHost()
	r := NewRegistry(host)

	_, err := r.Handle(comp.NodeProg)
	require.NoError(t, err)
	_, err = r.Handle(comp.NodeProg)
	require.NoError(t, err)
	_, err = r.Handle(comp.NodeMetadata)
	require.NoError(t, err)

	r.Close()
	assert.Equal(t, 1, host.Releases("Prog"))
	assert.Equal(t, 1, host.Releases("Metadata"))
	assert.Equal(t, 0, host.Releases("TraceBlock"))

	// Double close must not release twice.
	r.Close()
	assert.Equal(t, 1, host.Releases("Prog"))

	_, err = r.Handle(comp.NodeProg)
	assert.Error(t, err)
}
