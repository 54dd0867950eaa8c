package clang

import (
	"fmt"
	"strings"

	"github.com/sirkon/cxcursor/internal/cx"
)

// DumpNode is a plain snapshot of a node subtree, fit for yaml output and
// for comparing trees in tests.
type DumpNode struct {
	Node     string        `yaml:"node"`
	Kind     cx.CursorKind `yaml:"kind"`
	Class    cx.StmtClass  `yaml:"class,omitempty"`
	Spelling string        `yaml:"spelling,omitempty"`
	Type     string        `yaml:"type,omitempty"`
	Cast     string        `yaml:"cast,omitempty"`
	ListInit *bool         `yaml:"list_init,omitempty"`
	Range    string        `yaml:"range,omitempty"`
	Children []*DumpNode   `yaml:"children,omitempty"`
}

// Dump takes a snapshot of the subtree rooted at n.
func Dump(n Node) (*DumpNode, error) {
	cur := n.Handle()
	res := &DumpNode{
		Node: strings.TrimPrefix(fmt.Sprintf("%T", n), "*clang."),
		Kind: n.CursorKind(),
	}

	var err error
	if s, ok := n.(Stmt); ok {
		res.Class = s.StmtClass()
	}
	if res.Spelling, err = cur.Spelling(); err != nil {
		return nil, err
	}
	if e, ok := n.(Expr); ok {
		if res.Type, err = e.Type(); err != nil {
			return nil, err
		}
	}
	if c, ok := n.(CastExpr); ok {
		if res.Cast, err = c.CastKind(); err != nil {
			return nil, err
		}
	}
	if fc, ok := n.(*CXXFunctionalCastExpr); ok {
		list, err := fc.IsListInitialization()
		if err != nil {
			return nil, err
		}
		res.ListInit = &list
	}

	extent, err := n.Extent()
	if err != nil {
		return nil, err
	}
	if extent.IsValid() {
		res.Range = extent.String()
	}

	children, err := n.Children()
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		d, err := Dump(child)
		if err != nil {
			return nil, err
		}
		res.Children = append(res.Children, d)
	}

	return res, nil
}

// StripRanges returns a deep copy of d with all ranges cleared. This is
// useful for comparing trees built by different backends.
func StripRanges(d *DumpNode) *DumpNode {
	if d == nil {
		return nil
	}

	cp := *d
	cp.Range = ""
	cp.Children = nil
	for _, child := range d.Children {
		cp.Children = append(cp.Children, StripRanges(child))
	}

	return &cp
}
