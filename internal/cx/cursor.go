package cx

import (
	"fmt"
)

// Cursor is a non-owning reference to one node of a [TranslationUnit]. It is a
// small comparable value: copy it freely, compare it with ==.
//
// The zero Cursor is null; every query on it fails with ErrNullCursor.
type Cursor struct {
	unit  *TranslationUnit
	token uint64
	index int32
}

// IsNull reports whether the cursor points nowhere.
func (c Cursor) IsNull() bool {
	return c.unit == nil
}

// Unit returns the translation unit the cursor belongs to.
func (c Cursor) Unit() *TranslationUnit {
	return c.unit
}

// Equal reports whether both cursors point at the same node.
func (c Cursor) Equal(other Cursor) bool {
	return c == other
}

// read runs fn over the node record under the unit read lock.
func (c Cursor) read(fn func(rec *nodeRecord)) error {
	if c.unit == nil {
		return ErrNullCursor
	}

	c.unit.mu.RLock()
	defer c.unit.mu.RUnlock()

	switch {
	case c.unit.disposed:
		return ErrUnitDisposed
	case c.token != c.unit.token:
		return ErrForeignCursor
	case c.index < 0 || int(c.index) >= len(c.unit.nodes):
		return ErrInvalidCursor
	}

	fn(&c.unit.nodes[c.index])
	return nil
}

// Kind returns the libclang cursor kind of the node.
func (c Cursor) Kind() (CursorKind, error) {
	var res CursorKind
	err := c.read(func(rec *nodeRecord) {
		res = rec.kind
	})
	return res, err
}

// StmtClass returns the statement class of the node.
func (c Cursor) StmtClass() (StmtClass, error) {
	var res StmtClass
	err := c.read(func(rec *nodeRecord) {
		res = rec.class
	})
	return res, err
}

// NativeKind returns the node kind name as the native parser reported it.
func (c Cursor) NativeKind() (string, error) {
	var res string
	err := c.read(func(rec *nodeRecord) {
		res = rec.native
	})
	return res, err
}

// Spelling returns the name of the node: the declared name for declarations,
// the referenced name for references and an empty string otherwise.
func (c Cursor) Spelling() (string, error) {
	var res string
	err := c.read(func(rec *nodeRecord) {
		res = rec.spelling
	})
	return res, err
}

// Type returns the spelling of the node type, if the node has one.
func (c Cursor) Type() (string, error) {
	var res string
	err := c.read(func(rec *nodeRecord) {
		res = rec.typ
	})
	return res, err
}

// CastKind returns the cast kind ("NoOp", "IntegralCast", …) for cast
// expressions and an empty string otherwise.
func (c Cursor) CastKind() (string, error) {
	var res string
	err := c.read(func(rec *nodeRecord) {
		res = rec.castKind
	})
	return res, err
}

// IsListInitialization reports whether a functional cast or constructor call
// was written with braces, like T{x}. It is false for every other node.
func (c Cursor) IsListInitialization() (bool, error) {
	var res bool
	err := c.read(func(rec *nodeRecord) {
		res = rec.listInit
	})
	return res, err
}

// IsImplicit reports whether the node was introduced by the compiler rather
// than written in the source.
func (c Cursor) IsImplicit() (bool, error) {
	var res bool
	err := c.read(func(rec *nodeRecord) {
		res = rec.implicit
	})
	return res, err
}

// Location returns the node location (the name position for declarations).
func (c Cursor) Location() (SourceLocation, error) {
	var res SourceLocation
	err := c.read(func(rec *nodeRecord) {
		res = rec.loc
	})
	return res, err
}

// Extent returns the source range the node covers.
func (c Cursor) Extent() (SourceRange, error) {
	var res SourceRange
	err := c.read(func(rec *nodeRecord) {
		res = rec.extent
	})
	return res, err
}

// Parent returns the semantic parent cursor. It is null for the root.
func (c Cursor) Parent() (Cursor, error) {
	var res Cursor
	err := c.read(func(rec *nodeRecord) {
		if rec.parent >= 0 {
			res = c.unit.cursor(rec.parent)
		}
	})
	return res, err
}

// Children returns direct children in source order.
func (c Cursor) Children() ([]Cursor, error) {
	var res []Cursor
	err := c.read(func(rec *nodeRecord) {
		res = make([]Cursor, len(rec.children))
		for i, idx := range rec.children {
			res[i] = c.unit.cursor(idx)
		}
	})
	return res, err
}

// Visit walks the subtree rooted at c in preorder. It stops at the first
// error fn returns and returns it. The unit lock is not held while fn runs.
func (c Cursor) Visit(fn func(cur Cursor, depth int) error) error {
	return c.visit(fn, 0)
}

func (c Cursor) visit(fn func(cur Cursor, depth int) error, depth int) error {
	if err := fn(c, depth); err != nil {
		return err
	}

	children, err := c.Children()
	if err != nil {
		return err
	}

	for _, child := range children {
		if err := child.visit(fn, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func (c Cursor) String() string {
	var res string
	err := c.read(func(rec *nodeRecord) {
		res = rec.kind.String()
		if rec.spelling != "" {
			res += "(" + rec.spelling + ")"
		}
		if rec.loc.IsValid() {
			res += "@" + rec.loc.String()
		}
	})
	if err != nil {
		return fmt.Sprintf("<%s>", err)
	}

	return res
}
