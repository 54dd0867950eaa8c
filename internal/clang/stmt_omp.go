package clang

import (
	"github.com/sirkon/cxcursor/internal/cx"
)

// OMPTaskgroupDirective is "#pragma omp taskgroup". It has nothing beyond
// the executable directive contract: the associated statement is the
// structured block the task group covers.
type OMPTaskgroupDirective struct {
	ompDirective
}

// NewOMPTaskgroupDirective wraps a taskgroup directive cursor.
func NewOMPTaskgroupDirective(cur cx.Cursor) (*OMPTaskgroupDirective, error) {
	return newOMPTaskgroupDirective(defaultFactory(), cur)
}

func newOMPTaskgroupDirective(f *Factory, cur cx.Cursor) (*OMPTaskgroupDirective, error) {
	s, err := newStmt(f, cur, cx.CursorOMPTaskgroupDirective, cx.StmtClassOMPTaskgroupDirective)
	if err != nil {
		return nil, err
	}

	return &OMPTaskgroupDirective{ompDirective{stmt: s}}, nil
}

// OMPTaskwaitDirective is "#pragma omp taskwait", a standalone directive.
type OMPTaskwaitDirective struct {
	ompDirective
}

// NewOMPTaskwaitDirective wraps a taskwait directive cursor.
func NewOMPTaskwaitDirective(cur cx.Cursor) (*OMPTaskwaitDirective, error) {
	return newOMPTaskwaitDirective(defaultFactory(), cur)
}

func newOMPTaskwaitDirective(f *Factory, cur cx.Cursor) (*OMPTaskwaitDirective, error) {
	s, err := newStmt(f, cur, cx.CursorOMPTaskwaitDirective, cx.StmtClassOMPTaskwaitDirective)
	if err != nil {
		return nil, err
	}

	return &OMPTaskwaitDirective{ompDirective{stmt: s}}, nil
}
