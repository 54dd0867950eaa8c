// Package clang wraps cursors of a translation unit into typed nodes.
//
// A node is picked by the pair of discriminants a cursor carries: its
// libclang cursor kind and its statement class. Concrete wrappers fix both
// at construction and never change them. Cursor pairs with no concrete
// wrapper get a generic one of their family, so any tree can be walked.
//
// Nodes never own their cursor. Once the translation unit is disposed every
// query of every node fails with cx.ErrUnitDisposed.
package clang
