package clang

import (
	"fmt"

	"github.com/sirkon/cxcursor/internal/cx"
)

// Node is the base interface implemented by all node types.
type Node interface {
	// Handle returns the cursor the node wraps.
	Handle() cx.Cursor

	// CursorKind returns the cursor kind the node was built for.
	CursorKind() cx.CursorKind

	// Extent returns the source range of the cursor.
	Extent() (cx.SourceRange, error)

	// Children wraps direct children of the cursor.
	Children() ([]Node, error)

	isNode()
}

// Decl marks declaration nodes.
type Decl interface {
	Node
	Spelling() (string, error)
	isDecl()
}

// Stmt marks statements. Expressions are statements too, like in clang.
type Stmt interface {
	Node
	StmtClass() cx.StmtClass
	isStmt()
}

// Expr marks expressions.
type Expr interface {
	Stmt
	Type() (string, error)
	isExpr()
}

// CastExpr is any cast, implicit or written.
type CastExpr interface {
	Expr
	CastKind() (string, error)
	SubExpr() (Expr, error)
	isCastExpr()
}

// ExplicitCastExpr is a cast written in the source: C-style, functional or
// one of the named C++ casts.
type ExplicitCastExpr interface {
	CastExpr
	TypeAsWritten() (string, error)
	isExplicitCastExpr()
}

// OMPExecutableDirective is an OpenMP directive. Directives that own a
// statement keep it wrapped in a CapturedStmt.
type OMPExecutableDirective interface {
	Stmt
	HasAssociatedStmt() (bool, error)
	AssociatedStmt() (Stmt, error)
	isOMPExecutableDirective()
}

// node is embedded by every wrapper.
type node struct {
	handle  cx.Cursor
	kind    cx.CursorKind
	factory *Factory
}

func (n *node) Handle() cx.Cursor         { return n.handle }
func (n *node) CursorKind() cx.CursorKind { return n.kind }

func (n *node) Extent() (cx.SourceRange, error) {
	return n.handle.Extent()
}

func (n *node) Children() ([]Node, error) {
	curs, err := n.handle.Children()
	if err != nil {
		return nil, err
	}

	res := make([]Node, 0, len(curs))
	for _, cur := range curs {
		child, err := n.factory.Create(cur)
		if err != nil {
			return nil, err
		}
		res = append(res, child)
	}

	return res, nil
}

func (*node) isNode() {}

// stmt is embedded by statements and expressions.
type stmt struct {
	node
	class cx.StmtClass
}

func (s *stmt) StmtClass() cx.StmtClass { return s.class }

func (*stmt) isStmt() {}

// expr is embedded by expressions.
type expr struct {
	stmt
}

func (e *expr) Type() (string, error) {
	return e.handle.Type()
}

func (*expr) isExpr() {}

// castExpr is embedded by casts.
type castExpr struct {
	expr
}

func (c *castExpr) CastKind() (string, error) {
	return c.handle.CastKind()
}

// SubExpr returns the cast operand.
func (c *castExpr) SubExpr() (Expr, error) {
	children, err := c.Children()
	if err != nil {
		return nil, err
	}

	for _, child := range children {
		if e, ok := child.(Expr); ok {
			return e, nil
		}
	}

	return nil, ErrNoSubExpr
}

func (*castExpr) isCastExpr() {}

// explicitCastExpr is embedded by casts written in the source.
type explicitCastExpr struct {
	castExpr
}

// TypeAsWritten returns the target type of the cast.
func (c *explicitCastExpr) TypeAsWritten() (string, error) {
	return c.handle.Type()
}

func (*explicitCastExpr) isExplicitCastExpr() {}

// ompDirective is embedded by OpenMP directives.
type ompDirective struct {
	stmt
}

func (d *ompDirective) HasAssociatedStmt() (bool, error) {
	s, err := d.associated()
	if err != nil {
		return false, err
	}

	return s != nil, nil
}

func (d *ompDirective) AssociatedStmt() (Stmt, error) {
	s, err := d.associated()
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrNoAssociatedStmt
	}

	return s, nil
}

// associated wraps the CapturedStmt child. Clause nodes around it are never
// materialized.
func (d *ompDirective) associated() (Stmt, error) {
	curs, err := d.handle.Children()
	if err != nil {
		return nil, err
	}

	for _, cur := range curs {
		class, err := cur.StmtClass()
		if err != nil {
			return nil, err
		}
		if class != cx.StmtClassCapturedStmt {
			continue
		}

		child, err := d.factory.Create(cur)
		if err != nil {
			return nil, err
		}
		s, ok := child.(Stmt)
		if !ok {
			return nil, fmt.Errorf("%w: captured statement wrapped as %T", ErrKindMismatch, child)
		}
		return s, nil
	}

	return nil, nil
}

func (*ompDirective) isOMPExecutableDirective() {}
