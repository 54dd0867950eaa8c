package clang

import (
	"errors"
	"fmt"

	"github.com/sirkon/cxcursor/internal/cx"
)

var (
	// ErrKindMismatch is returned when a wrapper is built over a cursor of
	// another kind or statement class.
	ErrKindMismatch = errors.New("cursor kind mismatch")

	// ErrUnregistered is returned in strict mode for cursors with no wrapper
	// registered for their discriminants.
	ErrUnregistered = errors.New("no wrapper registered")

	// ErrNoSubExpr is returned for casts without an operand.
	ErrNoSubExpr = errors.New("cast has no operand")

	// ErrNoAssociatedStmt is returned for directives that own no statement.
	ErrNoAssociatedStmt = errors.New("directive has no associated statement")
)

func kindMismatch(gotKind cx.CursorKind, gotClass cx.StmtClass, kind cx.CursorKind, class cx.StmtClass) error {
	return fmt.Errorf("%w: got %s/%s, %s/%s was expected", ErrKindMismatch, gotKind, gotClass, kind, class)
}

// newNode checks the cursor discriminants and builds the common part of a
// wrapper. Use cx.StmtClassNone as class for declarations.
func newNode(f *Factory, cur cx.Cursor, kind cx.CursorKind, class cx.StmtClass) (node, error) {
	gotKind, err := cur.Kind()
	if err != nil {
		return node{}, err
	}
	gotClass, err := cur.StmtClass()
	if err != nil {
		return node{}, err
	}
	if gotKind != kind || gotClass != class {
		return node{}, kindMismatch(gotKind, gotClass, kind, class)
	}

	return node{
		handle:  cur,
		kind:    kind,
		factory: f,
	}, nil
}

func newStmt(f *Factory, cur cx.Cursor, kind cx.CursorKind, class cx.StmtClass) (stmt, error) {
	n, err := newNode(f, cur, kind, class)
	if err != nil {
		return stmt{}, err
	}

	return stmt{node: n, class: class}, nil
}
