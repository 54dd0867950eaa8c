package clang

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/sirkon/cxcursor/internal/cx"
)

// Key is the pair of discriminants a wrapper is registered for.
type Key struct {
	Kind  cx.CursorKind
	Class cx.StmtClass
}

func (k Key) String() string {
	if k.Class == cx.StmtClassNone {
		return k.Kind.String()
	}

	return fmt.Sprintf("%s/%s", k.Kind, k.Class)
}

// Constructor builds a node over a cursor.
type Constructor func(f *Factory, cur cx.Cursor) (Node, error)

// Entry is a registered wrapper.
type Entry struct {
	// Name is the wrapper type name.
	Name string
	New  Constructor
}

// Registry maps discriminant pairs to wrappers. Lookups are safe for
// concurrent use, registration is not: fill the registry before handing it
// to a factory.
type Registry struct {
	entries map[Key]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: map[Key]Entry{}}
}

// Register adds or replaces the wrapper for key.
func (r *Registry) Register(key Key, name string, ctor Constructor) {
	r.entries[key] = Entry{Name: name, New: ctor}
}

// Lookup finds the wrapper registered for key.
func (r *Registry) Lookup(key Key) (Entry, bool) {
	e, ok := r.entries[key]
	return e, ok
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	return &Registry{entries: maps.Clone(r.entries)}
}

// Keys returns registered keys ordered by kind, then by class.
func (r *Registry) Keys() []Key {
	return slices.SortedFunc(maps.Keys(r.entries), func(a, b Key) int {
		if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
			return c
		}
		return cmp.Compare(a.Class, b.Class)
	})
}

// Len returns the number of registered keys.
func (r *Registry) Len() int {
	return len(r.entries)
}

// ctor adapts a typed constructor to Constructor.
func ctor[T Node](fn func(f *Factory, cur cx.Cursor) (T, error)) Constructor {
	return func(f *Factory, cur cx.Cursor) (Node, error) {
		n, err := fn(f, cur)
		if err != nil {
			return nil, err
		}

		return n, nil
	}
}
