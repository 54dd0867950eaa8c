package clang

import (
	"github.com/sirkon/cxcursor/internal/cx"
)

// CStyleCastExpr is a C-style cast.
//
//	(long)x
type CStyleCastExpr struct {
	explicitCastExpr
}

// NewCStyleCastExpr wraps a C-style cast cursor.
func NewCStyleCastExpr(cur cx.Cursor) (*CStyleCastExpr, error) {
	return newCStyleCastExpr(defaultFactory(), cur)
}

func newCStyleCastExpr(f *Factory, cur cx.Cursor) (*CStyleCastExpr, error) {
	s, err := newStmt(f, cur, cx.CursorCStyleCastExpr, cx.StmtClassCStyleCastExpr)
	if err != nil {
		return nil, err
	}

	res := &CStyleCastExpr{}
	res.stmt = s
	return res, nil
}

// ImplicitCastExpr is a conversion the compiler inserted. libclang exposes
// it as UnexposedExpr.
type ImplicitCastExpr struct {
	castExpr
}

// NewImplicitCastExpr wraps an implicit cast cursor.
func NewImplicitCastExpr(cur cx.Cursor) (*ImplicitCastExpr, error) {
	return newImplicitCastExpr(defaultFactory(), cur)
}

func newImplicitCastExpr(f *Factory, cur cx.Cursor) (*ImplicitCastExpr, error) {
	s, err := newStmt(f, cur, cx.CursorUnexposedExpr, cx.StmtClassImplicitCastExpr)
	if err != nil {
		return nil, err
	}

	res := &ImplicitCastExpr{}
	res.stmt = s
	return res, nil
}
