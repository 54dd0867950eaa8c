package cx

import (
	"encoding"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// CursorKind classifies a node the way libclang does. Values follow the
// CXCursorKind numbering, so they can be compared with libclang output.
type CursorKind int

const (
	CursorInvalid CursorKind = 0

	// Declarations.
	CursorUnexposedDecl   CursorKind = 1
	CursorStructDecl      CursorKind = 2
	CursorUnionDecl       CursorKind = 3
	CursorClassDecl       CursorKind = 4
	CursorEnumDecl        CursorKind = 5
	CursorFieldDecl       CursorKind = 6
	CursorEnumConstant    CursorKind = 7
	CursorFunctionDecl    CursorKind = 8
	CursorVarDecl         CursorKind = 9
	CursorParmDecl        CursorKind = 10
	CursorTypedefDecl     CursorKind = 20
	CursorCXXMethod       CursorKind = 21
	CursorNamespace       CursorKind = 22
	CursorConstructor     CursorKind = 24
	CursorDestructor      CursorKind = 25
	CursorFunctionTmpl    CursorKind = 30
	CursorClassTmpl       CursorKind = 31
	CursorTypeAliasDecl   CursorKind = 36
	CursorUsingDirective  CursorKind = 34
	CursorUsingDecl       CursorKind = 35
	CursorLinkageSpec     CursorKind = 23
	CursorStaticAssert    CursorKind = 602
	CursorFriendDecl      CursorKind = 603
	CursorAccessSpecifier CursorKind = 39

	// Expressions.
	CursorUnexposedExpr          CursorKind = 100
	CursorDeclRefExpr            CursorKind = 101
	CursorMemberRefExpr          CursorKind = 102
	CursorCallExpr               CursorKind = 103
	CursorIntegerLiteral         CursorKind = 106
	CursorFloatingLiteral        CursorKind = 107
	CursorStringLiteral          CursorKind = 109
	CursorCharacterLiteral       CursorKind = 110
	CursorParenExpr              CursorKind = 111
	CursorUnaryOperator          CursorKind = 112
	CursorArraySubscriptExpr     CursorKind = 113
	CursorBinaryOperator         CursorKind = 114
	CursorCompoundAssignOperator CursorKind = 115
	CursorConditionalOperator    CursorKind = 116
	CursorCStyleCastExpr         CursorKind = 117
	CursorCompoundLiteralExpr    CursorKind = 118
	CursorInitListExpr           CursorKind = 119
	CursorCXXStaticCastExpr      CursorKind = 124
	CursorCXXDynamicCastExpr     CursorKind = 125
	CursorCXXReinterpretCastExpr CursorKind = 126
	CursorCXXConstCastExpr       CursorKind = 127
	CursorCXXFunctionalCastExpr  CursorKind = 128
	CursorCXXBoolLiteralExpr     CursorKind = 130
	CursorCXXNullPtrLiteralExpr  CursorKind = 131
	CursorCXXThisExpr            CursorKind = 132
	CursorCXXNewExpr             CursorKind = 134
	CursorCXXDeleteExpr          CursorKind = 135
	CursorLambdaExpr             CursorKind = 144

	// Statements.
	CursorUnexposedStmt                CursorKind = 200
	CursorLabelStmt                    CursorKind = 201
	CursorCompoundStmt                 CursorKind = 202
	CursorCaseStmt                     CursorKind = 203
	CursorDefaultStmt                  CursorKind = 204
	CursorIfStmt                       CursorKind = 205
	CursorSwitchStmt                   CursorKind = 206
	CursorWhileStmt                    CursorKind = 207
	CursorDoStmt                       CursorKind = 208
	CursorForStmt                      CursorKind = 209
	CursorGotoStmt                     CursorKind = 210
	CursorContinueStmt                 CursorKind = 213
	CursorBreakStmt                    CursorKind = 214
	CursorReturnStmt                   CursorKind = 215
	CursorNullStmt                     CursorKind = 230
	CursorDeclStmt                     CursorKind = 231
	CursorOMPParallelDirective         CursorKind = 232
	CursorOMPSimdDirective             CursorKind = 233
	CursorOMPForDirective              CursorKind = 234
	CursorOMPSectionsDirective         CursorKind = 235
	CursorOMPSectionDirective          CursorKind = 236
	CursorOMPSingleDirective           CursorKind = 237
	CursorOMPParallelForDirective      CursorKind = 238
	CursorOMPParallelSectionsDirective CursorKind = 239
	CursorOMPTaskDirective             CursorKind = 240
	CursorOMPMasterDirective           CursorKind = 241
	CursorOMPCriticalDirective         CursorKind = 242
	CursorOMPTaskyieldDirective        CursorKind = 243
	CursorOMPBarrierDirective          CursorKind = 244
	CursorOMPTaskwaitDirective         CursorKind = 245
	CursorOMPFlushDirective            CursorKind = 246
	cursorSEHLeaveStmt                 CursorKind = 247 // inside the OpenMP range, no name given
	CursorOMPOrderedDirective          CursorKind = 248
	CursorOMPAtomicDirective           CursorKind = 249
	CursorOMPForSimdDirective          CursorKind = 250
	CursorOMPParallelForSimdDirective  CursorKind = 251
	CursorOMPTargetDirective           CursorKind = 252
	CursorOMPTeamsDirective            CursorKind = 253
	CursorOMPTaskgroupDirective        CursorKind = 254

	CursorTranslationUnit CursorKind = 350

	// Attributes.
	CursorUnexposedAttr CursorKind = 400
)

var cursorKindNames = map[CursorKind]string{
	CursorUnexposedDecl:   "UnexposedDecl",
	CursorStructDecl:      "StructDecl",
	CursorUnionDecl:       "UnionDecl",
	CursorClassDecl:       "ClassDecl",
	CursorEnumDecl:        "EnumDecl",
	CursorFieldDecl:       "FieldDecl",
	CursorEnumConstant:    "EnumConstantDecl",
	CursorFunctionDecl:    "FunctionDecl",
	CursorVarDecl:         "VarDecl",
	CursorParmDecl:        "ParmDecl",
	CursorTypedefDecl:     "TypedefDecl",
	CursorCXXMethod:       "CXXMethod",
	CursorNamespace:       "Namespace",
	CursorConstructor:     "CXXConstructor",
	CursorDestructor:      "CXXDestructor",
	CursorFunctionTmpl:    "FunctionTemplate",
	CursorClassTmpl:       "ClassTemplate",
	CursorTypeAliasDecl:   "TypeAliasDecl",
	CursorUsingDirective:  "UsingDirective",
	CursorUsingDecl:       "UsingDeclaration",
	CursorLinkageSpec:     "LinkageSpec",
	CursorStaticAssert:    "StaticAssert",
	CursorFriendDecl:      "FriendDecl",
	CursorAccessSpecifier: "CXXAccessSpecifier",

	CursorUnexposedExpr:          "UnexposedExpr",
	CursorDeclRefExpr:            "DeclRefExpr",
	CursorMemberRefExpr:          "MemberRefExpr",
	CursorCallExpr:               "CallExpr",
	CursorIntegerLiteral:         "IntegerLiteral",
	CursorFloatingLiteral:        "FloatingLiteral",
	CursorStringLiteral:          "StringLiteral",
	CursorCharacterLiteral:       "CharacterLiteral",
	CursorParenExpr:              "ParenExpr",
	CursorUnaryOperator:          "UnaryOperator",
	CursorArraySubscriptExpr:     "ArraySubscriptExpr",
	CursorBinaryOperator:         "BinaryOperator",
	CursorCompoundAssignOperator: "CompoundAssignOperator",
	CursorConditionalOperator:    "ConditionalOperator",
	CursorCStyleCastExpr:         "CStyleCastExpr",
	CursorCompoundLiteralExpr:    "CompoundLiteralExpr",
	CursorInitListExpr:           "InitListExpr",
	CursorCXXStaticCastExpr:      "CXXStaticCastExpr",
	CursorCXXDynamicCastExpr:     "CXXDynamicCastExpr",
	CursorCXXReinterpretCastExpr: "CXXReinterpretCastExpr",
	CursorCXXConstCastExpr:       "CXXConstCastExpr",
	CursorCXXFunctionalCastExpr:  "CXXFunctionalCastExpr",
	CursorCXXBoolLiteralExpr:     "CXXBoolLiteralExpr",
	CursorCXXNullPtrLiteralExpr:  "CXXNullPtrLiteralExpr",
	CursorCXXThisExpr:            "CXXThisExpr",
	CursorCXXNewExpr:             "CXXNewExpr",
	CursorCXXDeleteExpr:          "CXXDeleteExpr",
	CursorLambdaExpr:             "LambdaExpr",

	CursorUnexposedStmt:                "UnexposedStmt",
	CursorLabelStmt:                    "LabelStmt",
	CursorCompoundStmt:                 "CompoundStmt",
	CursorCaseStmt:                     "CaseStmt",
	CursorDefaultStmt:                  "DefaultStmt",
	CursorIfStmt:                       "IfStmt",
	CursorSwitchStmt:                   "SwitchStmt",
	CursorWhileStmt:                    "WhileStmt",
	CursorDoStmt:                       "DoStmt",
	CursorForStmt:                      "ForStmt",
	CursorGotoStmt:                     "GotoStmt",
	CursorContinueStmt:                 "ContinueStmt",
	CursorBreakStmt:                    "BreakStmt",
	CursorReturnStmt:                   "ReturnStmt",
	CursorNullStmt:                     "NullStmt",
	CursorDeclStmt:                     "DeclStmt",
	CursorOMPParallelDirective:         "OMPParallelDirective",
	CursorOMPSimdDirective:             "OMPSimdDirective",
	CursorOMPForDirective:              "OMPForDirective",
	CursorOMPSectionsDirective:         "OMPSectionsDirective",
	CursorOMPSectionDirective:          "OMPSectionDirective",
	CursorOMPSingleDirective:           "OMPSingleDirective",
	CursorOMPParallelForDirective:      "OMPParallelForDirective",
	CursorOMPParallelSectionsDirective: "OMPParallelSectionsDirective",
	CursorOMPTaskDirective:             "OMPTaskDirective",
	CursorOMPMasterDirective:           "OMPMasterDirective",
	CursorOMPCriticalDirective:         "OMPCriticalDirective",
	CursorOMPTaskyieldDirective:        "OMPTaskyieldDirective",
	CursorOMPBarrierDirective:          "OMPBarrierDirective",
	CursorOMPTaskwaitDirective:         "OMPTaskwaitDirective",
	CursorOMPFlushDirective:            "OMPFlushDirective",
	CursorOMPOrderedDirective:          "OMPOrderedDirective",
	CursorOMPAtomicDirective:           "OMPAtomicDirective",
	CursorOMPForSimdDirective:          "OMPForSimdDirective",
	CursorOMPParallelForSimdDirective:  "OMPParallelForSimdDirective",
	CursorOMPTargetDirective:           "OMPTargetDirective",
	CursorOMPTeamsDirective:            "OMPTeamsDirective",
	CursorOMPTaskgroupDirective:        "OMPTaskgroupDirective",

	CursorTranslationUnit: "TranslationUnit",
	CursorUnexposedAttr:   "UnexposedAttr",
}

var cursorKindValues = func() map[string]CursorKind {
	res := make(map[string]CursorKind, len(cursorKindNames))
	for k, v := range cursorKindNames {
		res[v] = k
	}
	return res
}()

func (k CursorKind) String() string {
	v, ok := cursorKindNames[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

var (
	_ encoding.TextMarshaler   = CursorKind(0)
	_ encoding.TextUnmarshaler = (*CursorKind)(nil)
)

// MarshalText renders the kind by its libclang spelling.
func (k CursorKind) MarshalText() ([]byte, error) {
	v, ok := cursorKindNames[k]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid CursorKind(%d)", k)
	}

	return []byte(v), nil
}

// UnmarshalText accepts either a spelling like "CXXFunctionalCastExpr" or a
// raw libclang number like "128".
func (k *CursorKind) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	if v, ok := cursorKindValues[text]; ok {
		*k = v
		return nil
	}

	if n, err := strconv.Atoi(text); err == nil {
		if _, ok := cursorKindNames[CursorKind(n)]; ok {
			*k = CursorKind(n)
			return nil
		}
	}

	return fmt.Errorf("unknown cursor kind %q", text)
}

// CursorKinds returns every known cursor kind in ascending order.
func CursorKinds() []CursorKind {
	return slices.Sorted(maps.Keys(cursorKindNames))
}

// IsDeclaration mirrors clang_isDeclaration.
func (k CursorKind) IsDeclaration() bool {
	return (k >= CursorUnexposedDecl && k <= CursorAccessSpecifier) ||
		(k >= CursorStaticAssert && k <= CursorFriendDecl)
}

// IsExpression mirrors clang_isExpression.
func (k CursorKind) IsExpression() bool {
	return k >= CursorUnexposedExpr && k < CursorUnexposedStmt
}

// IsStatement mirrors clang_isStatement.
func (k CursorKind) IsStatement() bool {
	return k >= CursorUnexposedStmt && k < CursorTranslationUnit
}

// IsOMPDirective reports whether kind is one of the OpenMP directive kinds.
func (k CursorKind) IsOMPDirective() bool {
	return k >= CursorOMPParallelDirective && k <= CursorOMPTaskgroupDirective && k != cursorSEHLeaveStmt
}

func (k CursorKind) IsTranslationUnit() bool { return k == CursorTranslationUnit }
func (k CursorKind) IsAttribute() bool       { return k >= CursorUnexposedAttr && k < 500 }

// IsUnexposed mirrors clang_isUnexposed.
func (k CursorKind) IsUnexposed() bool {
	switch k {
	case CursorUnexposedDecl, CursorUnexposedExpr, CursorUnexposedStmt, CursorUnexposedAttr:
		return true
	default:
		return false
	}
}
