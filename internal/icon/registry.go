package icon

import (
	"sort"
	"sync"

	"github.com/agnivade/levenshtein"
)

// Icon is a named vector drawing.
type Icon struct {
	Name    string
	ViewBox string
	Paths   []string
}

// Registry is an immutable name → Icon index. It is safe for concurrent
// reads once constructed.
type Registry struct {
	icons map[string]Icon
	names []string
}

// NewRegistry indexes icons by name. Later duplicates replace earlier ones.
func NewRegistry(icons ...Icon) *Registry {
	r := &Registry{icons: make(map[string]Icon, len(icons))}
	for _, ic := range icons {
		if _, dup := r.icons[ic.Name]; !dup {
			r.names = append(r.names, ic.Name)
		}
		r.icons[ic.Name] = ic
	}
	sort.Strings(r.names)
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the built-in icon set, loaded on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(builtin...)
	})
	return defaultRegistry
}

// Lookup returns the icon registered under name.
func (r *Registry) Lookup(name string) (Icon, bool) {
	ic, ok := r.icons[name]
	if ok {
		ic.Paths = append([]string(nil), ic.Paths...)
	}
	return ic, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// maxSuggestDistance bounds how different a suggestion may be.
const maxSuggestDistance = 3

// Suggest returns the registered name closest to name, or "" when nothing
// is within a few edits.
func (r *Registry) Suggest(name string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, n := range r.names {
		if d := levenshtein.ComputeDistance(name, n); d < bestDist {
			best, bestDist = n, d
		}
	}
	return best
}

var builtin = []Icon{
	{Name: "caret-up", ViewBox: "0 0 24 24", Paths: []string{"M12 7l7 9H5z"}},
	{Name: "caret-down", ViewBox: "0 0 24 24", Paths: []string{"M12 17L5 8h14z"}},
	{Name: "bank-reduced-logo", ViewBox: "0 0 24 24", Paths: []string{
		"M12 2L2 7v2h20V7z",
		"M4 11h2v7H4zm4 0h2v7H8zm6 0h2v7h-2zm4 0h2v7h-2z",
		"M2 20h20v2H2z",
	}},
	{Name: "car", ViewBox: "0 0 24 24", Paths: []string{
		"M5 11l1.6-4.5A1.5 1.5 0 018 5.5h8a1.5 1.5 0 011.4 1l1.6 4.5v7h-2v-2H7v2H5z",
		"M7.5 15a1.5 1.5 0 100-3 1.5 1.5 0 000 3zm9 0a1.5 1.5 0 100-3 1.5 1.5 0 000 3z",
	}},
	{Name: "paper-plane", ViewBox: "0 0 24 24", Paths: []string{"M2 21l21-9L2 3v7l15 2-15 2z"}},
}
