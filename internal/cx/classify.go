package cx

import "strings"

// declKinds maps clang declaration class names to cursor kinds.
var declKinds = map[string]CursorKind{
	"TranslationUnitDecl":             CursorTranslationUnit,
	"FunctionDecl":                    CursorFunctionDecl,
	"VarDecl":                         CursorVarDecl,
	"ParmVarDecl":                     CursorParmDecl,
	"FieldDecl":                       CursorFieldDecl,
	"EnumDecl":                        CursorEnumDecl,
	"EnumConstantDecl":                CursorEnumConstant,
	"TypedefDecl":                     CursorTypedefDecl,
	"TypeAliasDecl":                   CursorTypeAliasDecl,
	"CXXMethodDecl":                   CursorCXXMethod,
	"CXXConstructorDecl":              CursorConstructor,
	"CXXDestructorDecl":               CursorDestructor,
	"NamespaceDecl":                   CursorNamespace,
	"FunctionTemplateDecl":            CursorFunctionTmpl,
	"ClassTemplateDecl":               CursorClassTmpl,
	"UsingDirectiveDecl":              CursorUsingDirective,
	"UsingDecl":                       CursorUsingDecl,
	"LinkageSpecDecl":                 CursorLinkageSpec,
	"StaticAssertDecl":                CursorStaticAssert,
	"FriendDecl":                      CursorFriendDecl,
	"AccessSpecDecl":                  CursorAccessSpecifier,
	"RecordDecl":                      CursorStructDecl,
	"CXXRecordDecl":                   CursorStructDecl,
	"ClassTemplateSpecializationDecl": CursorStructDecl,
}

// Classify maps a native node kind name (a clang class name such as
// "CXXFunctionalCastExpr" or "FunctionDecl") to its discriminant pair. tag is
// the record tag ("struct", "class", "union") and only matters for records.
//
// ok is false when the name is not known. Unknown names still classify into
// the unexposed kind of their family, so the tree keeps its shape.
func Classify(nativeKind, tag string) (kind CursorKind, class StmtClass, ok bool) {
	if k, found := declKinds[nativeKind]; found {
		if k == CursorStructDecl {
			switch tag {
			case "class":
				k = CursorClassDecl
			case "union":
				k = CursorUnionDecl
			}
		}
		return k, StmtClassNone, true
	}

	if c, found := StmtClassByName(nativeKind); found && c != StmtClassNone {
		return c.CursorKind(), c, true
	}

	switch {
	case strings.HasSuffix(nativeKind, "Decl"):
		return CursorUnexposedDecl, StmtClassNone, false
	case strings.HasSuffix(nativeKind, "Attr"):
		return CursorUnexposedAttr, StmtClassNone, false
	case strings.HasSuffix(nativeKind, "Stmt"), strings.HasSuffix(nativeKind, "Directive"):
		return CursorUnexposedStmt, StmtClassNone, false
	default:
		// Expressions make up most of the remaining classes: *Expr, *Literal,
		// *Operator and a few odd ones.
		return CursorUnexposedExpr, StmtClassNone, false
	}
}

// isHidden reports native kinds libclang never exposes as cursors: comments
// and type nodes. OpenMP clauses come with no kind at all.
func isHidden(nativeKind string) bool {
	return nativeKind == "" || strings.HasSuffix(nativeKind, "Comment") || strings.HasSuffix(nativeKind, "Type")
}
