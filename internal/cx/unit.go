package cx

import (
	"sync"
	"sync/atomic"
)

// unitTokens hands out lifetime tokens, so a cursor can tell its unit apart
// from any other unit.
var unitTokens atomic.Uint64

// nodeRecord is what a cursor points at.
type nodeRecord struct {
	native   string
	kind     CursorKind
	class    StmtClass
	spelling string
	typ      string
	castKind string
	listInit bool
	implicit bool
	loc      SourceLocation
	extent   SourceRange

	parent   int32
	children []int32
}

// TranslationUnit owns every node of one parsed source file. Cursors into it
// stay valid until Dispose is called.
type TranslationUnit struct {
	mu       sync.RWMutex
	token    uint64
	file     string
	nodes    []nodeRecord
	disposed bool
}

func newUnit(file string) *TranslationUnit {
	return &TranslationUnit{
		token: unitTokens.Add(1),
		file:  file,
	}
}

// add appends a node under parent and returns its index. parent < 0 adds a root.
// Only loaders call it, before the unit is published.
func (u *TranslationUnit) add(parent int32, rec nodeRecord) int32 {
	idx := int32(len(u.nodes))
	rec.parent = parent
	u.nodes = append(u.nodes, rec)
	if parent >= 0 {
		u.nodes[parent].children = append(u.nodes[parent].children, idx)
	}

	return idx
}

// File returns the main file name of the unit.
func (u *TranslationUnit) File() string {
	return u.file
}

// Root returns the cursor of the translation unit node. It is null for an
// empty unit.
func (u *TranslationUnit) Root() Cursor {
	u.mu.RLock()
	defer u.mu.RUnlock()

	if u.disposed || len(u.nodes) == 0 {
		return Cursor{}
	}

	return u.cursor(0)
}

// Len returns the number of nodes in the unit.
func (u *TranslationUnit) Len() int {
	u.mu.RLock()
	defer u.mu.RUnlock()

	return len(u.nodes)
}

// Dispose releases the nodes. It waits for queries in flight and makes every
// later query fail with ErrUnitDisposed. Calling it twice is harmless.
func (u *TranslationUnit) Dispose() {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.disposed = true
	u.nodes = nil
}

// Disposed reports whether Dispose has been called.
func (u *TranslationUnit) Disposed() bool {
	u.mu.RLock()
	defer u.mu.RUnlock()

	return u.disposed
}

func (u *TranslationUnit) cursor(idx int32) Cursor {
	return Cursor{unit: u, token: u.token, index: idx}
}
