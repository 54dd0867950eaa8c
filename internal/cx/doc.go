// Package cx is the handle layer of cxcursor.
//
// It owns parsed translation units and hands out [Cursor] values: non-owning,
// copyable references to single nodes of a unit. Every node carries two
// discriminants, the libclang-style [CursorKind] and the parallel
// [StmtClass] classification, which the object model uses to pick a typed
// wrapper.
//
// Translation units come from native parsing collaborators:
//
//   - [LoadJSON] reads the output of
//     clang -Xclang -ast-dump=json -fsyntax-only.
//   - [ParseCPP] runs the tree-sitter C++ grammar over raw source text.
//     This is a syntactic approximation of what clang would produce.
//
// A cursor stays valid until its unit is disposed. Queries against a cursor of
// a disposed unit fail with [ErrUnitDisposed] instead of reading freed state.
package cx
