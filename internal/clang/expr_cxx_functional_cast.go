package clang

import (
	"github.com/sirkon/cxcursor/internal/cx"
)

// CXXFunctionalCastExpr is a cast written with functional notation.
//
//	int(x)  // IsListInitialization: false
//	S{x}    // IsListInitialization: true
type CXXFunctionalCastExpr struct {
	explicitCastExpr
}

// NewCXXFunctionalCastExpr wraps a functional cast cursor.
func NewCXXFunctionalCastExpr(cur cx.Cursor) (*CXXFunctionalCastExpr, error) {
	return newCXXFunctionalCastExpr(defaultFactory(), cur)
}

func newCXXFunctionalCastExpr(f *Factory, cur cx.Cursor) (*CXXFunctionalCastExpr, error) {
	s, err := newStmt(f, cur, cx.CursorCXXFunctionalCastExpr, cx.StmtClassCXXFunctionalCastExpr)
	if err != nil {
		return nil, err
	}

	res := &CXXFunctionalCastExpr{}
	res.stmt = s
	return res, nil
}

// IsListInitialization reports whether the cast was written with braces.
func (e *CXXFunctionalCastExpr) IsListInitialization() (bool, error) {
	return e.handle.IsListInitialization()
}
