package cx

import (
	"encoding"
	"fmt"
)

// StmtClass is the second discriminant of a node: the concrete clang class of a
// statement or expression. Declarations, attributes and the translation unit
// itself carry StmtClassNone.
//
// libclang exposes many classes under the same cursor kind (UnexposedExpr
// covers implicit casts, temporaries and so on), so the object model needs
// both discriminants to pick a wrapper.
type StmtClass int

const (
	StmtClassNone StmtClass = iota

	// Statements.
	StmtClassCompoundStmt
	StmtClassDeclStmt
	StmtClassReturnStmt
	StmtClassIfStmt
	StmtClassForStmt
	StmtClassWhileStmt
	StmtClassDoStmt
	StmtClassSwitchStmt
	StmtClassCaseStmt
	StmtClassDefaultStmt
	StmtClassBreakStmt
	StmtClassContinueStmt
	StmtClassNullStmt
	StmtClassLabelStmt
	StmtClassGotoStmt
	StmtClassCapturedStmt

	// Expressions.
	StmtClassDeclRefExpr
	StmtClassMemberExpr
	StmtClassCallExpr
	StmtClassIntegerLiteral
	StmtClassFloatingLiteral
	StmtClassStringLiteral
	StmtClassCharacterLiteral
	StmtClassCXXBoolLiteralExpr
	StmtClassCXXNullPtrLiteralExpr
	StmtClassParenExpr
	StmtClassUnaryOperator
	StmtClassBinaryOperator
	StmtClassCompoundAssignOperator
	StmtClassConditionalOperator
	StmtClassArraySubscriptExpr
	StmtClassInitListExpr
	StmtClassCompoundLiteralExpr
	StmtClassImplicitCastExpr
	StmtClassCStyleCastExpr
	StmtClassCXXFunctionalCastExpr
	StmtClassCXXStaticCastExpr
	StmtClassCXXDynamicCastExpr
	StmtClassCXXReinterpretCastExpr
	StmtClassCXXConstCastExpr
	StmtClassCXXConstructExpr
	StmtClassCXXTemporaryObjectExpr
	StmtClassMaterializeTemporaryExpr
	StmtClassCXXBindTemporaryExpr
	StmtClassExprWithCleanups
	StmtClassCXXThisExpr
	StmtClassCXXNewExpr
	StmtClassCXXDeleteExpr
	StmtClassLambdaExpr

	// OpenMP directives.
	StmtClassOMPParallelDirective
	StmtClassOMPForDirective
	StmtClassOMPParallelForDirective
	StmtClassOMPSectionsDirective
	StmtClassOMPSectionDirective
	StmtClassOMPSingleDirective
	StmtClassOMPMasterDirective
	StmtClassOMPCriticalDirective
	StmtClassOMPTaskDirective
	StmtClassOMPTaskyieldDirective
	StmtClassOMPBarrierDirective
	StmtClassOMPTaskwaitDirective
	StmtClassOMPTaskgroupDirective
	StmtClassOMPFlushDirective
	StmtClassOMPAtomicDirective
	StmtClassOMPOrderedDirective

	stmtClassEnd
)

type stmtClassInfo struct {
	name string
	kind CursorKind
}

// stmtClasses maps every class to its clang name and to the cursor kind
// libclang exposes it as.
var stmtClasses = [stmtClassEnd]stmtClassInfo{
	StmtClassNone: {name: "NoStmtClass", kind: CursorInvalid},

	StmtClassCompoundStmt:  {"CompoundStmt", CursorCompoundStmt},
	StmtClassDeclStmt:      {"DeclStmt", CursorDeclStmt},
	StmtClassReturnStmt:    {"ReturnStmt", CursorReturnStmt},
	StmtClassIfStmt:        {"IfStmt", CursorIfStmt},
	StmtClassForStmt:       {"ForStmt", CursorForStmt},
	StmtClassWhileStmt:     {"WhileStmt", CursorWhileStmt},
	StmtClassDoStmt:        {"DoStmt", CursorDoStmt},
	StmtClassSwitchStmt:    {"SwitchStmt", CursorSwitchStmt},
	StmtClassCaseStmt:      {"CaseStmt", CursorCaseStmt},
	StmtClassDefaultStmt:   {"DefaultStmt", CursorDefaultStmt},
	StmtClassBreakStmt:     {"BreakStmt", CursorBreakStmt},
	StmtClassContinueStmt:  {"ContinueStmt", CursorContinueStmt},
	StmtClassNullStmt:      {"NullStmt", CursorNullStmt},
	StmtClassLabelStmt:     {"LabelStmt", CursorLabelStmt},
	StmtClassGotoStmt:      {"GotoStmt", CursorGotoStmt},
	StmtClassCapturedStmt:  {"CapturedStmt", CursorUnexposedStmt},
	StmtClassDeclRefExpr:   {"DeclRefExpr", CursorDeclRefExpr},
	StmtClassMemberExpr:    {"MemberExpr", CursorMemberRefExpr},
	StmtClassCallExpr:      {"CallExpr", CursorCallExpr},
	StmtClassParenExpr:     {"ParenExpr", CursorParenExpr},
	StmtClassInitListExpr:  {"InitListExpr", CursorInitListExpr},
	StmtClassUnaryOperator: {"UnaryOperator", CursorUnaryOperator},

	StmtClassIntegerLiteral:         {"IntegerLiteral", CursorIntegerLiteral},
	StmtClassFloatingLiteral:        {"FloatingLiteral", CursorFloatingLiteral},
	StmtClassStringLiteral:          {"StringLiteral", CursorStringLiteral},
	StmtClassCharacterLiteral:       {"CharacterLiteral", CursorCharacterLiteral},
	StmtClassCXXBoolLiteralExpr:     {"CXXBoolLiteralExpr", CursorCXXBoolLiteralExpr},
	StmtClassCXXNullPtrLiteralExpr:  {"CXXNullPtrLiteralExpr", CursorCXXNullPtrLiteralExpr},
	StmtClassBinaryOperator:         {"BinaryOperator", CursorBinaryOperator},
	StmtClassCompoundAssignOperator: {"CompoundAssignOperator", CursorCompoundAssignOperator},
	StmtClassConditionalOperator:    {"ConditionalOperator", CursorConditionalOperator},
	StmtClassArraySubscriptExpr:     {"ArraySubscriptExpr", CursorArraySubscriptExpr},
	StmtClassCompoundLiteralExpr:    {"CompoundLiteralExpr", CursorCompoundLiteralExpr},
	StmtClassImplicitCastExpr:       {"ImplicitCastExpr", CursorUnexposedExpr},
	StmtClassCStyleCastExpr:         {"CStyleCastExpr", CursorCStyleCastExpr},
	StmtClassCXXFunctionalCastExpr:  {"CXXFunctionalCastExpr", CursorCXXFunctionalCastExpr},
	StmtClassCXXStaticCastExpr:      {"CXXStaticCastExpr", CursorCXXStaticCastExpr},
	StmtClassCXXDynamicCastExpr:     {"CXXDynamicCastExpr", CursorCXXDynamicCastExpr},
	StmtClassCXXReinterpretCastExpr: {"CXXReinterpretCastExpr", CursorCXXReinterpretCastExpr},
	StmtClassCXXConstCastExpr:       {"CXXConstCastExpr", CursorCXXConstCastExpr},
	StmtClassCXXConstructExpr:       {"CXXConstructExpr", CursorCallExpr},
	StmtClassCXXTemporaryObjectExpr: {"CXXTemporaryObjectExpr", CursorCallExpr},

	StmtClassMaterializeTemporaryExpr: {"MaterializeTemporaryExpr", CursorUnexposedExpr},
	StmtClassCXXBindTemporaryExpr:     {"CXXBindTemporaryExpr", CursorUnexposedExpr},
	StmtClassExprWithCleanups:         {"ExprWithCleanups", CursorUnexposedExpr},
	StmtClassCXXThisExpr:              {"CXXThisExpr", CursorCXXThisExpr},
	StmtClassCXXNewExpr:               {"CXXNewExpr", CursorCXXNewExpr},
	StmtClassCXXDeleteExpr:            {"CXXDeleteExpr", CursorCXXDeleteExpr},
	StmtClassLambdaExpr:               {"LambdaExpr", CursorLambdaExpr},

	StmtClassOMPParallelDirective:    {"OMPParallelDirective", CursorOMPParallelDirective},
	StmtClassOMPForDirective:         {"OMPForDirective", CursorOMPForDirective},
	StmtClassOMPParallelForDirective: {"OMPParallelForDirective", CursorOMPParallelForDirective},
	StmtClassOMPSectionsDirective:    {"OMPSectionsDirective", CursorOMPSectionsDirective},
	StmtClassOMPSectionDirective:     {"OMPSectionDirective", CursorOMPSectionDirective},
	StmtClassOMPSingleDirective:      {"OMPSingleDirective", CursorOMPSingleDirective},
	StmtClassOMPMasterDirective:      {"OMPMasterDirective", CursorOMPMasterDirective},
	StmtClassOMPCriticalDirective:    {"OMPCriticalDirective", CursorOMPCriticalDirective},
	StmtClassOMPTaskDirective:        {"OMPTaskDirective", CursorOMPTaskDirective},
	StmtClassOMPTaskyieldDirective:   {"OMPTaskyieldDirective", CursorOMPTaskyieldDirective},
	StmtClassOMPBarrierDirective:     {"OMPBarrierDirective", CursorOMPBarrierDirective},
	StmtClassOMPTaskwaitDirective:    {"OMPTaskwaitDirective", CursorOMPTaskwaitDirective},
	StmtClassOMPTaskgroupDirective:   {"OMPTaskgroupDirective", CursorOMPTaskgroupDirective},
	StmtClassOMPFlushDirective:       {"OMPFlushDirective", CursorOMPFlushDirective},
	StmtClassOMPAtomicDirective:      {"OMPAtomicDirective", CursorOMPAtomicDirective},
	StmtClassOMPOrderedDirective:     {"OMPOrderedDirective", CursorOMPOrderedDirective},
}

var stmtClassValues = func() map[string]StmtClass {
	res := make(map[string]StmtClass, len(stmtClasses))
	for i, v := range stmtClasses {
		res[v.name] = StmtClass(i)
	}
	return res
}()

func (c StmtClass) String() string {
	if c < 0 || c >= stmtClassEnd {
		return fmt.Sprintf("invalid(%d)", c)
	}

	return stmtClasses[c].name
}

// CursorKind returns the cursor kind libclang exposes nodes of this class as.
func (c StmtClass) CursorKind() CursorKind {
	if c < 0 || c >= stmtClassEnd {
		return CursorInvalid
	}

	return stmtClasses[c].kind
}

var (
	_ encoding.TextMarshaler   = StmtClass(0)
	_ encoding.TextUnmarshaler = (*StmtClass)(nil)
)

func (c StmtClass) MarshalText() ([]byte, error) {
	if c < 0 || c >= stmtClassEnd {
		return nil, fmt.Errorf("cannot marshal invalid StmtClass(%d)", c)
	}

	return []byte(stmtClasses[c].name), nil
}

func (c *StmtClass) UnmarshalText(rawtext []byte) error {
	v, ok := stmtClassValues[string(rawtext)]
	if !ok {
		return fmt.Errorf("unknown statement class %q", rawtext)
	}

	*c = v
	return nil
}

// StmtClassByName looks up a class by its clang name.
func StmtClassByName(name string) (StmtClass, bool) {
	v, ok := stmtClassValues[name]
	return v, ok
}

// StmtClasses returns every statement class except StmtClassNone.
func StmtClasses() []StmtClass {
	res := make([]StmtClass, 0, stmtClassEnd-1)
	for c := StmtClassNone + 1; c < stmtClassEnd; c++ {
		res = append(res, c)
	}
	return res
}
