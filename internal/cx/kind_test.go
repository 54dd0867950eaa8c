package cx

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCursorKind_Text(t *testing.T) {
	tests := []struct {
		text    string
		want    CursorKind
		wantErr bool
	}{
		{text: "CXXFunctionalCastExpr", want: CursorCXXFunctionalCastExpr},
		{text: "OMPTaskgroupDirective", want: CursorOMPTaskgroupDirective},
		{text: "128", want: CursorCXXFunctionalCastExpr},
		{text: "254", want: CursorOMPTaskgroupDirective},
		{text: "247", wantErr: true},
		{text: "NoSuchKind", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var k CursorKind
			err := k.UnmarshalText([]byte(tt.text))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, k)
		})
	}

	data, err := CursorCXXFunctionalCastExpr.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "CXXFunctionalCastExpr", string(data))

	_, err = cursorSEHLeaveStmt.MarshalText()
	require.Error(t, err)
}

func TestCursorKind_Families(t *testing.T) {
	require.True(t, CursorCXXFunctionalCastExpr.IsExpression())
	require.False(t, CursorCXXFunctionalCastExpr.IsStatement())
	require.True(t, CursorOMPTaskgroupDirective.IsStatement())
	require.True(t, CursorOMPTaskgroupDirective.IsOMPDirective())
	require.False(t, CursorCompoundStmt.IsOMPDirective())
	require.False(t, cursorSEHLeaveStmt.IsOMPDirective())
	require.True(t, CursorOMPOrderedDirective.IsOMPDirective())
	require.True(t, CursorStaticAssert.IsDeclaration())
	require.True(t, CursorParmDecl.IsDeclaration())
	require.False(t, CursorTranslationUnit.IsDeclaration())
	require.True(t, CursorTranslationUnit.IsTranslationUnit())
	require.True(t, CursorUnexposedAttr.IsAttribute())
	require.True(t, CursorUnexposedStmt.IsUnexposed())
	require.False(t, CursorCallExpr.IsUnexposed())
}

func TestStmtClass_Text(t *testing.T) {
	for c := StmtClassNone + 1; c < stmtClassEnd; c++ {
		data, err := c.MarshalText()
		require.NoError(t, err)

		var got StmtClass
		require.NoError(t, got.UnmarshalText(data))
		require.Equal(t, c, got, string(data))
		require.NotEqual(t, CursorInvalid, c.CursorKind(), string(data))
	}

	var c StmtClass
	require.Error(t, c.UnmarshalText([]byte("NoSuchExpr")))
	require.Equal(t, CursorInvalid, stmtClassEnd.CursorKind())
}

func TestStmtClass_YAML(t *testing.T) {
	var got struct {
		Class StmtClass  `yaml:"class"`
		Kind  CursorKind `yaml:"kind"`
	}
	err := yaml.Unmarshal([]byte("class: OMPTaskgroupDirective\nkind: CXXFunctionalCastExpr\n"), &got)
	require.NoError(t, err)
	require.Equal(t, StmtClassOMPTaskgroupDirective, got.Class)
	require.Equal(t, CursorCXXFunctionalCastExpr, got.Kind)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		native    string
		tag       string
		wantKind  CursorKind
		wantClass StmtClass
		wantOK    bool
	}{
		{"CXXFunctionalCastExpr", "", CursorCXXFunctionalCastExpr, StmtClassCXXFunctionalCastExpr, true},
		{"OMPTaskgroupDirective", "", CursorOMPTaskgroupDirective, StmtClassOMPTaskgroupDirective, true},
		{"ImplicitCastExpr", "", CursorUnexposedExpr, StmtClassImplicitCastExpr, true},
		{"CXXConstructExpr", "", CursorCallExpr, StmtClassCXXConstructExpr, true},
		{"CapturedStmt", "", CursorUnexposedStmt, StmtClassCapturedStmt, true},
		{"FunctionDecl", "", CursorFunctionDecl, StmtClassNone, true},
		{"TranslationUnitDecl", "", CursorTranslationUnit, StmtClassNone, true},
		{"CXXRecordDecl", "struct", CursorStructDecl, StmtClassNone, true},
		{"CXXRecordDecl", "class", CursorClassDecl, StmtClassNone, true},
		{"CXXRecordDecl", "union", CursorUnionDecl, StmtClassNone, true},
		{"CapturedDecl", "", CursorUnexposedDecl, StmtClassNone, false},
		{"AlignedAttr", "", CursorUnexposedAttr, StmtClassNone, false},
		{"OMPTaskLoopDirective", "", CursorUnexposedStmt, StmtClassNone, false},
		{"CoroutineBodyStmt", "", CursorUnexposedStmt, StmtClassNone, false},
		{"CXXFoldExpr", "", CursorUnexposedExpr, StmtClassNone, false},
		{"NoStmtClass", "", CursorUnexposedExpr, StmtClassNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.native+tt.tag, func(t *testing.T) {
			kind, class, ok := Classify(tt.native, tt.tag)
			require.Equal(t, tt.wantKind, kind)
			require.Equal(t, tt.wantClass, class)
			require.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestIsHidden(t *testing.T) {
	require.True(t, isHidden("FullComment"))
	require.True(t, isHidden("BuiltinType"))
	require.True(t, isHidden(""))
	require.False(t, isHidden("TypedefDecl"))
	require.False(t, isHidden("CXXFunctionalCastExpr"))
}

func TestMatchPragma(t *testing.T) {
	known := newKnownPragmas(map[string]StmtClass{
		"taskloop": StmtClassOMPTaskDirective,
	})

	tests := []struct {
		arg    string
		want   StmtClass
		wantOK bool
	}{
		{"omp taskgroup", StmtClassOMPTaskgroupDirective, true},
		{" omp  taskwait\n", StmtClassOMPTaskwaitDirective, true},
		{"omp parallel for num_threads(4)", StmtClassOMPParallelForDirective, true},
		{"omp parallel if(x)", StmtClassOMPParallelDirective, true},
		{"omp critical(lock)", StmtClassOMPCriticalDirective, true},
		{"omp taskloop grainsize(2)", StmtClassOMPTaskDirective, true},
		{"omp", StmtClassNone, false},
		{"once", StmtClassNone, false},
		{"omp declare simd", StmtClassNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, ok := matchPragma(known, tt.arg)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestKnownNodeTypes_Custom(t *testing.T) {
	got := newKnownNodeTypes(map[string]string{
		"cast_expression": "CXXStaticCastExpr",
		"co_await":        "CoawaitExpr",
	})
	require.Equal(t, "CXXStaticCastExpr", got["cast_expression"])
	require.Equal(t, "CoawaitExpr", got["co_await"])
	require.Equal(t, "CompoundStmt", got["compound_statement"])

	// The predefined table must stay intact.
	require.Equal(t, "CStyleCastExpr", newKnownNodeTypes(nil)["cast_expression"])
}
