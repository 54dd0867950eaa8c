package cx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const sitterSource = `struct S { int v; };
void g(int x) {
  int a = int(2);
  S s = S{1};
  long c = (long)x;
#pragma omp taskgroup
  {
    a = x;
  }
#pragma omp taskwait
}
`

func parseSource(t *testing.T, opts ...LoadOption) *TranslationUnit {
	t.Helper()

	unit, err := ParseCPP(context.Background(), []byte(sitterSource), "g.cpp", opts...)
	require.NoError(t, err)
	return unit
}

func TestParseCPP_Root(t *testing.T) {
	unit := parseSource(t)
	require.Equal(t, "g.cpp", unit.File())

	root := unit.Root()
	kind, err := root.Kind()
	require.NoError(t, err)
	require.Equal(t, CursorTranslationUnit, kind)

	spelling, err := root.Spelling()
	require.NoError(t, err)
	require.Equal(t, "g.cpp", spelling)

	fns := findAll(t, root, CursorFunctionDecl)
	require.Len(t, fns, 1)
	name, err := fns[0].Spelling()
	require.NoError(t, err)
	require.Equal(t, "g", name)

	loc, err := fns[0].Location()
	require.NoError(t, err)
	require.Equal(t, SourceLocation{File: "g.cpp", Offset: 26, Line: 2, Column: 6}, loc)

	structs := findAll(t, root, CursorStructDecl)
	require.Len(t, structs, 1)
	name, err = structs[0].Spelling()
	require.NoError(t, err)
	require.Equal(t, "S", name)
}

func TestParseCPP_FunctionalCasts(t *testing.T) {
	unit := parseSource(t)

	casts := findAll(t, unit.Root(), CursorCXXFunctionalCastExpr)
	require.Len(t, casts, 2)

	want := []struct {
		typ      string
		listInit bool
		line     int
	}{
		{typ: "int", listInit: false, line: 3},
		{typ: "S", listInit: true, line: 4},
	}
	for i, w := range want {
		typ, err := casts[i].Type()
		require.NoError(t, err)
		require.Equal(t, w.typ, typ)

		listInit, err := casts[i].IsListInitialization()
		require.NoError(t, err)
		require.Equal(t, w.listInit, listInit)

		class, err := casts[i].StmtClass()
		require.NoError(t, err)
		require.Equal(t, StmtClassCXXFunctionalCastExpr, class)

		extent, err := casts[i].Extent()
		require.NoError(t, err)
		require.Equal(t, w.line, extent.Begin.Line)
	}

	cstyle := findAll(t, unit.Root(), CursorCStyleCastExpr)
	require.Len(t, cstyle, 1)
	typ, err := cstyle[0].Type()
	require.NoError(t, err)
	require.Equal(t, "long", typ)
}

func TestParseCPP_Directives(t *testing.T) {
	unit := parseSource(t)

	groups := findAll(t, unit.Root(), CursorOMPTaskgroupDirective)
	require.Len(t, groups, 1)

	extent, err := groups[0].Extent()
	require.NoError(t, err)
	require.Equal(t, 6, extent.Begin.Line)
	require.Equal(t, 1, extent.Begin.Column)
	require.Equal(t, 6, extent.End.Line)
	require.Equal(t, 22, extent.End.Column)
	require.Equal(t, len("#pragma omp taskgroup"), extent.End.Offset-extent.Begin.Offset)

	children, err := groups[0].Children()
	require.NoError(t, err)
	require.Len(t, children, 1)

	class, err := children[0].StmtClass()
	require.NoError(t, err)
	require.Equal(t, StmtClassCapturedStmt, class)

	body, err := children[0].Children()
	require.NoError(t, err)
	require.Len(t, body, 1)
	kind, err := body[0].Kind()
	require.NoError(t, err)
	require.Equal(t, CursorCompoundStmt, kind)

	waits := findAll(t, unit.Root(), CursorOMPTaskwaitDirective)
	require.Len(t, waits, 1)
	children, err = waits[0].Children()
	require.NoError(t, err)
	require.Empty(t, children)
}

func TestParseCPP_DirectiveAfterComment(t *testing.T) {
	src := `void k() {
  int a = 0;
#pragma omp taskgroup
  // spawn

  /* the block */
  {
    a = 1;
  }
#pragma omp taskgroup
  ;
  a = 2;
}
`
	unit, err := ParseCPP(context.Background(), []byte(src), "k.cpp")
	require.NoError(t, err)

	groups := findAll(t, unit.Root(), CursorOMPTaskgroupDirective)
	require.Len(t, groups, 2)

	children, err := groups[0].Children()
	require.NoError(t, err)
	require.Len(t, children, 1)

	body, err := children[0].Children()
	require.NoError(t, err)
	require.Len(t, body, 1)
	kind, err := body[0].Kind()
	require.NoError(t, err)
	require.Equal(t, CursorCompoundStmt, kind)

	extent, err := body[0].Extent()
	require.NoError(t, err)
	require.Equal(t, 7, extent.Begin.Line)

	// An empty statement is still a statement.
	children, err = groups[1].Children()
	require.NoError(t, err)
	require.Len(t, children, 1)
	body, err = children[0].Children()
	require.NoError(t, err)
	require.Empty(t, body)

	fns := findAll(t, unit.Root(), CursorFunctionDecl)
	require.Len(t, fns, 1)
	blocks := findAll(t, fns[0], CursorCompoundStmt)
	require.Len(t, blocks, 2)
	parent, err := blocks[1].Parent()
	require.NoError(t, err)
	class, err := parent.StmtClass()
	require.NoError(t, err)
	require.Equal(t, StmtClassCapturedStmt, class)
}

func TestParseCPP_CustomPragmas(t *testing.T) {
	src := "void h() {\n#pragma omp mytask\n  ;\n}\n"

	unit, err := ParseCPP(context.Background(), []byte(src), "h.cpp", WithPragmas(map[string]StmtClass{
		"mytask": StmtClassOMPTaskDirective,
	}))
	require.NoError(t, err)
	require.Len(t, findAll(t, unit.Root(), CursorOMPTaskDirective), 1)

	unit, err = ParseCPP(context.Background(), []byte(src), "h.cpp")
	require.NoError(t, err)
	require.Empty(t, findAll(t, unit.Root(), CursorOMPTaskDirective))
}

func TestParseCPP_Filename(t *testing.T) {
	unit := parseSource(t, WithFilename("renamed.cpp"))
	require.Equal(t, "renamed.cpp", unit.File())
}

func TestParseCPP_SyntaxErrors(t *testing.T) {
	unit, err := ParseCPP(context.Background(), []byte("void f( { int a = int(1);"), "broken.cpp")
	require.NoError(t, err)
	require.False(t, unit.Root().IsNull())
}
