package icon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	assert.Same(t, r, Default(), "default registry is built once")
	assert.Equal(t, []string{"bank-reduced-logo", "car", "caret-down", "caret-up", "paper-plane"}, r.Names())

	ic, ok := r.Lookup("caret-up")
	require.True(t, ok)
	assert.Equal(t, "0 0 24 24", ic.ViewBox)
	assert.NotEmpty(t, ic.Paths)

	_, ok = r.Lookup("caret-left")
	assert.False(t, ok)
}

func TestRegistryIsReadOnly(t *testing.T) {
	r := NewRegistry(Icon{Name: "dot", ViewBox: "0 0 1 1", Paths: []string{"M0 0h1v1H0z"}})

	ic, _ := r.Lookup("dot")
	ic.Paths[0] = "mutated"
	names := r.Names()
	names[0] = "mutated"

	again, _ := r.Lookup("dot")
	assert.Equal(t, "M0 0h1v1H0z", again.Paths[0])
	assert.Equal(t, []string{"dot"}, r.Names())
}

func TestNewRegistryDuplicates(t *testing.T) {
	r := NewRegistry(
		Icon{Name: "dot", ViewBox: "0 0 1 1"},
		Icon{Name: "dot", ViewBox: "0 0 2 2"},
	)
	assert.Equal(t, []string{"dot"}, r.Names())
	ic, _ := r.Lookup("dot")
	assert.Equal(t, "0 0 2 2", ic.ViewBox)
}

func TestSuggest(t *testing.T) {
	r := Default()
	assert.Equal(t, "caret-up", r.Suggest("carret-up"))
	assert.Equal(t, "car", r.Suggest("cat"))
	assert.Equal(t, "", r.Suggest("something-else-entirely"))
}
