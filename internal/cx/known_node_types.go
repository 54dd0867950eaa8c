package cx

import (
	"maps"
)

// Tree-sitter node types that need more than a table lookup.
const (
	sitterCallExpression     = "call_expression"
	sitterCompoundLiteral    = "compound_literal_expression"
	sitterPreprocCall        = "preproc_call"
	sitterComment            = "comment"
	sitterPrimitiveType      = "primitive_type"
	sitterTypeDescriptor     = "type_descriptor"
	sitterTranslationUnit    = "translation_unit"
	sitterNumberLiteral      = "number_literal"
	sitterFunctionDefinition = "function_definition"
)

// newKnownNodeTypes returns the tree-sitter node type → clang class name table.
// Node types missing from the table are transparent: their children are
// attached to the closest mapped ancestor.
func newKnownNodeTypes(custom map[string]string) map[string]string {
	predefined := map[string]string{
		sitterTranslationUnit:    "TranslationUnitDecl",
		sitterFunctionDefinition: "FunctionDecl",
		"parameter_declaration":  "ParmVarDecl",
		"init_declarator":        "VarDecl",
		"field_declaration":      "FieldDecl",
		"namespace_definition":   "NamespaceDecl",
		"struct_specifier":       "CXXRecordDecl",
		"class_specifier":        "CXXRecordDecl",
		"union_specifier":        "CXXRecordDecl",
		"enum_specifier":         "EnumDecl",
		"enumerator":             "EnumConstantDecl",
		"type_definition":        "TypedefDecl",
		"alias_declaration":      "TypeAliasDecl",

		// Statements.
		"compound_statement": "CompoundStmt",
		"return_statement":   "ReturnStmt",
		"if_statement":       "IfStmt",
		"for_statement":      "ForStmt",
		"while_statement":    "WhileStmt",
		"do_statement":       "DoStmt",
		"switch_statement":   "SwitchStmt",
		"case_statement":     "CaseStmt",
		"break_statement":    "BreakStmt",
		"continue_statement": "ContinueStmt",
		"goto_statement":     "GotoStmt",
		"labeled_statement":  "LabelStmt",

		// Expressions.
		"binary_expression":         "BinaryOperator",
		"unary_expression":          "UnaryOperator",
		"update_expression":         "UnaryOperator",
		"assignment_expression":     "BinaryOperator",
		"conditional_expression":    "ConditionalOperator",
		"parenthesized_expression":  "ParenExpr",
		"subscript_expression":      "ArraySubscriptExpr",
		"field_expression":          "MemberExpr",
		"cast_expression":           "CStyleCastExpr",
		"initializer_list":          "InitListExpr",
		"string_literal":            "StringLiteral",
		"char_literal":              "CharacterLiteral",
		"true":                      "CXXBoolLiteralExpr",
		"false":                     "CXXBoolLiteralExpr",
		"nullptr":                   "CXXNullPtrLiteralExpr",
		"this":                      "CXXThisExpr",
		"new_expression":            "CXXNewExpr",
		"delete_expression":         "CXXDeleteExpr",
		"lambda_expression":         "LambdaExpr",
		sitterNumberLiteral:         "IntegerLiteral",
		sitterCallExpression:        "CallExpr",
		sitterCompoundLiteral:       "CompoundLiteralExpr",
	}

	res := maps.Clone(predefined)
	if custom != nil {
		maps.Insert(res, maps.All(custom))
	}

	return res
}
