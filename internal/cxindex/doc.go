// Package cxindex finds the innermost cursor covering a source offset.
//
// Every file of a translation unit gets a red-black tree of disjoint spans.
// A span nested into another one lives in the children tree of its
// enclosing span, so a lookup descends level by level. Spans of equal
// extent nest in the order they are added: a cursor covering exactly the
// same text as its parent ends up below it.
package cxindex
