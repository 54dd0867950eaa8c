package clang

import (
	"github.com/sirkon/cxcursor/internal/cx"
)

// TranslationUnitNode is the root of every tree.
type TranslationUnitNode struct {
	node
}

// Spelling returns the main file name.
func (n *TranslationUnitNode) Spelling() (string, error) {
	return n.handle.Spelling()
}

// GenericDecl is any declaration without a dedicated wrapper.
type GenericDecl struct {
	node
}

func (d *GenericDecl) Spelling() (string, error) {
	return d.handle.Spelling()
}

func (*GenericDecl) isDecl() {}

// GenericStmt is any statement without a dedicated wrapper.
type GenericStmt struct {
	stmt
}

// GenericExpr is any expression without a dedicated wrapper.
type GenericExpr struct {
	expr
}

// Spelling returns the referenced name for references and an empty string
// for most other expressions.
func (e *GenericExpr) Spelling() (string, error) {
	return e.handle.Spelling()
}

// GenericCursor is everything else: attributes and invalid kinds.
type GenericCursor struct {
	node
}

// genericNode builds the common part of a generic wrapper from whatever
// the cursor carries.
func genericNode(f *Factory, cur cx.Cursor) (node, cx.StmtClass, error) {
	kind, err := cur.Kind()
	if err != nil {
		return node{}, cx.StmtClassNone, err
	}
	class, err := cur.StmtClass()
	if err != nil {
		return node{}, cx.StmtClassNone, err
	}

	return node{handle: cur, kind: kind, factory: f}, class, nil
}

// newGeneric picks a generic wrapper by the cursor family.
func newGeneric(f *Factory, cur cx.Cursor) (Node, error) {
	n, class, err := genericNode(f, cur)
	if err != nil {
		return nil, err
	}

	switch {
	case n.kind.IsTranslationUnit():
		return &TranslationUnitNode{node: n}, nil
	case n.kind.IsDeclaration():
		return &GenericDecl{node: n}, nil
	case n.kind.IsExpression():
		return &GenericExpr{expr{stmt{node: n, class: class}}}, nil
	case n.kind.IsStatement():
		return &GenericStmt{stmt{node: n, class: class}}, nil
	default:
		return &GenericCursor{node: n}, nil
	}
}
