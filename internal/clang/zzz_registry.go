package clang

import (
	"github.com/sirkon/cxcursor/internal/cx"
)

// DefaultRegistry returns a registry with every known discriminant pair:
// dedicated wrappers where they exist and generic ones elsewhere. Pairs of
// unknown native kinds (unexposed kinds with no statement class) are left
// out on purpose, a strict factory refuses them.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	for _, kind := range cx.CursorKinds() {
		switch {
		case kind.IsTranslationUnit():
			r.Register(Key{Kind: kind}, "TranslationUnitNode", newGeneric)
		case kind.IsDeclaration() && !kind.IsUnexposed():
			r.Register(Key{Kind: kind}, "GenericDecl", newGeneric)
		}
	}

	for _, class := range cx.StmtClasses() {
		kind := class.CursorKind()
		name := "GenericStmt"
		if kind.IsExpression() {
			name = "GenericExpr"
		}
		r.Register(Key{Kind: kind, Class: class}, name, newGeneric)
	}

	r.Register(
		Key{Kind: cx.CursorCXXFunctionalCastExpr, Class: cx.StmtClassCXXFunctionalCastExpr},
		"CXXFunctionalCastExpr",
		ctor(newCXXFunctionalCastExpr),
	)
	r.Register(
		Key{Kind: cx.CursorCStyleCastExpr, Class: cx.StmtClassCStyleCastExpr},
		"CStyleCastExpr",
		ctor(newCStyleCastExpr),
	)
	r.Register(
		Key{Kind: cx.CursorUnexposedExpr, Class: cx.StmtClassImplicitCastExpr},
		"ImplicitCastExpr",
		ctor(newImplicitCastExpr),
	)
	r.Register(
		Key{Kind: cx.CursorOMPTaskgroupDirective, Class: cx.StmtClassOMPTaskgroupDirective},
		"OMPTaskgroupDirective",
		ctor(newOMPTaskgroupDirective),
	)
	r.Register(
		Key{Kind: cx.CursorOMPTaskwaitDirective, Class: cx.StmtClassOMPTaskwaitDirective},
		"OMPTaskwaitDirective",
		ctor(newOMPTaskwaitDirective),
	)

	return r
}
