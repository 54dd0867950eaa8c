package cxindex

import (
	"github.com/sirkon/rbtree"
)

// span stores a half-open [start, end) offset span of a cursor and, if
// needed, a nested tree for spans fully contained in it.
type span struct {
	start int
	end   int

	node     int
	children *rbtree.Tree[*span]
}

// Cmp defines ordering for the tree as "disjoint by offset".
//   - -1 if this span ends before other starts
//   - 1 if this span starts after other ends
//   - 0 if spans overlap in any way, containment included
//
// Overlapping spans are resolved by attachInto, the tree itself only ever
// holds disjoint spans.
func (n *span) Cmp(other *span) int {
	if n.end <= other.start {
		return -1
	}
	if n.start >= other.end {
		return 1
	}
	return 0
}

func contains(a, b *span) bool {
	return a.start <= b.start && a.end >= b.end
}

// attachInto inserts span s into tree t:
//   - If t has no overlapping span, s becomes a new entry of t.
//   - If an overlapping span r contains s, s goes into r.children. Equal
//     spans take this path, so the later span is nested deeper.
//   - If s contains r, r is overwritten in place with s (so the pointer
//     already in the tree now represents s) and the old r is re-attached
//     as a child of s.
//
// It returns false for partial overlaps, s is dropped then.
func attachInto(t *rbtree.Tree[*span], s *span) bool {
	r := t.InsertReturn(s)
	if r == s {
		return true
	}

	if contains(r, s) {
		if r.children == nil {
			r.children = rbtree.New[*span]()
		}
		return attachInto(r.children, s)
	}

	if contains(s, r) {
		old := *r
		*r = *s

		if r.children == nil {
			r.children = rbtree.New[*span]()
		}
		return attachInto(r.children, &old)
	}

	return false
}

// descendSearch returns the innermost node covering offset below n.
func descendSearch(n *span, offset int) int {
	if n.children == nil {
		return n.node
	}

	child := n.children.Search(probe(offset))
	if child == nil {
		return n.node
	}

	return descendSearch(child, offset)
}

func probe(offset int) *span {
	return &span{start: offset, end: offset + 1}
}
