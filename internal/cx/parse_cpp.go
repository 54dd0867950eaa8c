package cx

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"
	"go.uber.org/zap"
)

// ParseCPP builds a translation unit out of C++ source with the tree-sitter
// C++ grammar.
//
// Tree-sitter knows syntax only, so the result approximates what clang would
// produce: there are no implicit nodes, no types beyond their spelling and no
// cast kinds. Functional casts are recognized for primitive types, T(x), and
// for class types written with braces, T{x}. OpenMP pragmas become directive
// nodes; a directive owning a statement gets it inside a CapturedStmt, the way
// clang nests it.
func ParseCPP(ctx context.Context, src []byte, filename string, opts ...LoadOption) (*TranslationUnit, error) {
	cfg := newLoadConfig(opts)
	if cfg.filename != "" {
		filename = cfg.filename
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(cpp.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	defer tree.Close()

	b := &sitterBuilder{
		ctx:       ctx,
		cfg:       cfg,
		src:       src,
		unit:      newUnit(filename),
		nodeTypes: newKnownNodeTypes(cfg.nodeTypes),
		pragmas:   newKnownPragmas(cfg.pragmas),
	}

	root := tree.RootNode()
	rec := b.record(root, "TranslationUnitDecl")
	rec.spelling = filename
	idx := b.unit.add(-1, rec)
	if err := b.children(idx, root); err != nil {
		return nil, err
	}

	if root.HasError() {
		cfg.log.Warn("source has syntax errors, the tree is partial", zap.String("file", filename))
	}
	cfg.log.Debug("c++ source parsed", zap.String("file", filename), zap.Int("nodes", len(b.unit.nodes)))

	return b.unit, nil
}

type sitterBuilder struct {
	ctx       context.Context
	cfg       *loadConfig
	src       []byte
	unit      *TranslationUnit
	nodeTypes map[string]string
	pragmas   map[string]StmtClass
}

// children converts named children of n and attaches them to parent.
func (b *sitterBuilder) children(parent int32, n *sitter.Node) error {
	count := int(n.NamedChildCount())
	for i := 0; i < count; i++ {
		child := n.NamedChild(i)
		if child == nil {
			continue
		}

		if child.Type() != sitterPreprocCall {
			if err := b.node(parent, child); err != nil {
				return err
			}
			continue
		}

		class, ok := b.pragma(child)
		if !ok {
			continue
		}

		directive := b.directive(parent, child, class)
		if isStandaloneDirective(class) {
			continue
		}

		j := i + 1
		for j < count && b.blank(n.NamedChild(j)) {
			j++
		}
		if j >= count {
			continue
		}

		next := n.NamedChild(j)
		if next == nil || next.Type() == sitterPreprocCall {
			continue
		}
		i = j

		captured := b.unit.add(directive, b.record(next, "CapturedStmt"))
		if err := b.node(captured, next); err != nil {
			return err
		}
	}

	return nil
}

// node converts n under parent. Unmapped nodes are transparent.
func (b *sitterBuilder) node(parent int32, n *sitter.Node) error {
	if len(b.unit.nodes)%1024 == 0 {
		if err := b.ctx.Err(); err != nil {
			return fmt.Errorf("convert tree-sitter nodes: %w", err)
		}
	}

	name, ok := b.classify(n)
	if !ok {
		return b.children(parent, n)
	}

	idx := b.unit.add(parent, b.record(n, name))
	return b.children(idx, n)
}

// blank reports nodes that convert to nothing and cannot stand for a
// statement, like comments between a pragma and its statement.
func (b *sitterBuilder) blank(n *sitter.Node) bool {
	switch {
	case n == nil, n.Type() == sitterComment:
		return true
	case n.Type() == sitterPreprocCall, strings.HasSuffix(n.Type(), "_statement"):
		return false
	}

	if _, ok := b.classify(n); ok {
		return false
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if !b.blank(n.NamedChild(i)) {
			return false
		}
	}

	return true
}

// classify picks the clang class name for n.
func (b *sitterBuilder) classify(n *sitter.Node) (string, bool) {
	switch n.Type() {
	case sitterCallExpression:
		if fn := n.ChildByFieldName("function"); fn != nil && fn.Type() == sitterPrimitiveType {
			return "CXXFunctionalCastExpr", true
		}
	case sitterCompoundLiteral:
		if typ := n.ChildByFieldName("type"); typ != nil && typ.Type() != sitterTypeDescriptor {
			return "CXXFunctionalCastExpr", true
		}
	case sitterNumberLiteral:
		if isFloatLiteral(n.Content(b.src)) {
			return "FloatingLiteral", true
		}
	case "struct_specifier", "class_specifier", "union_specifier", "enum_specifier":
		// Without a body this is a type reference, not a declaration.
		if n.ChildByFieldName("body") == nil {
			return "", false
		}
	}

	name, ok := b.nodeTypes[n.Type()]
	return name, ok
}

// record builds a node record for n classified as name.
func (b *sitterBuilder) record(n *sitter.Node, name string) nodeRecord {
	rec := nodeRecord{
		native: name,
		extent: b.extent(n),
	}
	rec.kind, rec.class, _ = Classify(name, b.recordTag(n))
	rec.loc = rec.extent.Begin

	switch rec.class {
	case StmtClassCXXFunctionalCastExpr:
		if n.Type() == sitterCompoundLiteral {
			rec.listInit = true
			rec.typ = b.fieldContent(n, "type")
		} else {
			rec.typ = b.fieldContent(n, "function")
		}
	case StmtClassCStyleCastExpr, StmtClassCompoundLiteralExpr:
		rec.typ = strings.Trim(b.fieldContent(n, "type"), "() ")
	case StmtClassMemberExpr:
		rec.spelling = b.fieldContent(n, "field")
	}

	if rec.kind.IsDeclaration() {
		if id := b.declName(n); id != nil {
			rec.spelling = id.Content(b.src)
			rec.loc = b.point(id.StartByte(), id.StartPoint())
		}
	}

	return rec
}

// directive adds an OpenMP directive node for a "#pragma omp" line.
func (b *sitterBuilder) directive(parent int32, n *sitter.Node, class StmtClass) int32 {
	rec := nodeRecord{
		native: class.String(),
		kind:   class.CursorKind(),
		class:  class,
		extent: b.extent(n),
	}

	// The preproc node swallows the trailing newline, clang's directive range
	// ends with the pragma text.
	if arg := n.ChildByFieldName("argument"); arg != nil {
		text := strings.TrimRight(arg.Content(b.src), " \t\r\n")
		if !strings.ContainsRune(text, '\n') {
			rec.extent.End = b.point(arg.StartByte()+uint32(len(text)), arg.StartPoint())
			rec.extent.End.Column += len(text)
		}
	}
	rec.loc = rec.extent.Begin

	return b.unit.add(parent, rec)
}

// pragma recognizes "#pragma omp …" lines.
func (b *sitterBuilder) pragma(n *sitter.Node) (StmtClass, bool) {
	directive := n.ChildByFieldName("directive")
	if directive == nil || strings.Join(strings.Fields(directive.Content(b.src)), "") != "#pragma" {
		return StmtClassNone, false
	}

	arg := n.ChildByFieldName("argument")
	if arg == nil {
		return StmtClassNone, false
	}

	class, ok := matchPragma(b.pragmas, arg.Content(b.src))
	if !ok {
		b.cfg.log.Debug("unsupported pragma skipped", zap.String("pragma", strings.TrimSpace(arg.Content(b.src))))
	}

	return class, ok
}

// declName digs the declared identifier out of nested declarators.
func (b *sitterBuilder) declName(n *sitter.Node) *sitter.Node {
	for _, field := range []string{"declarator", "name"} {
		cur := n.ChildByFieldName(field)
		for cur != nil {
			switch cur.Type() {
			case "identifier", "field_identifier", "type_identifier", "namespace_identifier",
				"qualified_identifier", "destructor_name", "operator_name":
				return cur
			}
			cur = cur.ChildByFieldName("declarator")
		}
	}

	return nil
}

func (b *sitterBuilder) recordTag(n *sitter.Node) string {
	switch n.Type() {
	case "class_specifier":
		return "class"
	case "union_specifier":
		return "union"
	default:
		return ""
	}
}

func (b *sitterBuilder) fieldContent(n *sitter.Node, field string) string {
	child := n.ChildByFieldName(field)
	if child == nil {
		return ""
	}

	return child.Content(b.src)
}

func (b *sitterBuilder) extent(n *sitter.Node) SourceRange {
	return SourceRange{
		Begin: b.point(n.StartByte(), n.StartPoint()),
		End:   b.point(n.EndByte(), n.EndPoint()),
	}
}

func (b *sitterBuilder) point(offset uint32, p sitter.Point) SourceLocation {
	return SourceLocation{
		File:   b.unit.file,
		Offset: int(offset),
		Line:   int(p.Row) + 1,
		Column: int(p.Column) + 1,
	}
}

func isFloatLiteral(text string) bool {
	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "0x") {
		return strings.ContainsRune(lower, 'p')
	}

	return strings.ContainsAny(lower, ".e")
}
