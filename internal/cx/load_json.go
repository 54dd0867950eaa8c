package cx

import (
	"context"
	"fmt"
	"io"

	"github.com/segmentio/encoding/json"
	"go.uber.org/zap"
)

// jsonNode is a node of clang's JSON AST dump. Only attributes the handle
// layer exposes are decoded.
type jsonNode struct {
	Kind           string      `json:"kind"`
	Loc            *jsonLoc    `json:"loc"`
	Range          *jsonRange  `json:"range"`
	Name           string      `json:"name"`
	TagUsed        string      `json:"tagUsed"`
	Type           *jsonType   `json:"type"`
	CastKind       string      `json:"castKind"`
	List           bool        `json:"list"`
	ListInit       bool        `json:"isListInitialization"`
	IsImplicit     bool        `json:"isImplicit"`
	ReferencedDecl *jsonNode   `json:"referencedDecl"`
	Inner          []*jsonNode `json:"inner"`
}

type jsonLoc struct {
	Offset       *int     `json:"offset"`
	File         string   `json:"file"`
	Line         int      `json:"line"`
	Col          int      `json:"col"`
	TokLen       int      `json:"tokLen"`
	SpellingLoc  *jsonLoc `json:"spellingLoc"`
	ExpansionLoc *jsonLoc `json:"expansionLoc"`
}

type jsonRange struct {
	Begin jsonLoc `json:"begin"`
	End   jsonLoc `json:"end"`
}

type jsonType struct {
	QualType string `json:"qualType"`
}

// LoadJSON builds a translation unit from the output of
//
//	clang -Xclang -ast-dump=json -fsyntax-only file.cpp
//
// Comment and type nodes are dropped, as libclang never exposes them as
// cursors.
func LoadJSON(ctx context.Context, r io.Reader, opts ...LoadOption) (*TranslationUnit, error) {
	cfg := newLoadConfig(opts)

	var root jsonNode
	if err := json.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("decode clang json dump: %w", err)
	}
	if root.Kind != "TranslationUnitDecl" {
		return nil, fmt.Errorf("unexpected root node kind %q, TranslationUnitDecl was expected", root.Kind)
	}

	b := &jsonBuilder{
		ctx:     ctx,
		cfg:     cfg,
		unit:    newUnit(cfg.filename),
		unknown: map[string]struct{}{},
	}
	if err := b.add(-1, &root); err != nil {
		return nil, err
	}

	if b.unit.file == "" {
		b.unit.file = b.mainFile()
	}
	b.unit.nodes[0].spelling = b.unit.file

	cfg.log.Debug(
		"clang json dump loaded",
		zap.String("file", b.unit.file),
		zap.Int("nodes", len(b.unit.nodes)),
		zap.Int("unknown-kinds", len(b.unknown)),
	)

	return b.unit, nil
}

type jsonBuilder struct {
	ctx  context.Context
	cfg  *loadConfig
	unit *TranslationUnit

	// Clang writes "file" and "line" only when they differ from the
	// previously written location. These keep the last seen values.
	lastFile string
	lastLine int

	unknown map[string]struct{}
}

// add converts n and its subtree in the same order clang writes them:
// loc, range begin, range end, inner nodes.
func (b *jsonBuilder) add(parent int32, n *jsonNode) error {
	if n == nil {
		return nil
	}
	if isHidden(n.Kind) {
		b.skip([]*jsonNode{n})
		return nil
	}

	if len(b.unit.nodes)%1024 == 0 {
		if err := b.ctx.Err(); err != nil {
			return fmt.Errorf("load clang json dump: %w", err)
		}
	}

	rec := nodeRecord{native: n.Kind}

	var ok bool
	rec.kind, rec.class, ok = Classify(n.Kind, n.TagUsed)
	if !ok {
		if _, seen := b.unknown[n.Kind]; !seen {
			b.unknown[n.Kind] = struct{}{}
			b.cfg.log.Debug("unknown native kind", zap.String("kind", n.Kind), zap.Stringer("exposed-as", rec.kind))
		}
	}

	if n.Loc != nil {
		rec.loc = b.location(n.Loc, false)
	}
	if n.Range != nil {
		rec.extent.Begin = b.location(&n.Range.Begin, false)
		rec.extent.End = b.location(&n.Range.End, true)
	}
	if !rec.loc.IsValid() {
		rec.loc = rec.extent.Begin
	}

	// Locations above must be replayed even for skipped nodes, otherwise the
	// carried file and line go out of sync.
	if b.cfg.skipImplicit && n.IsImplicit && rec.kind.IsDeclaration() {
		b.skip(n.Inner)
		return nil
	}

	rec.spelling = n.Name
	if rec.spelling == "" && n.ReferencedDecl != nil {
		rec.spelling = n.ReferencedDecl.Name
	}
	if n.Type != nil {
		rec.typ = n.Type.QualType
	}
	rec.castKind = n.CastKind
	rec.listInit = isJSONListInit(n)
	rec.implicit = n.IsImplicit

	idx := b.unit.add(parent, rec)
	for _, child := range n.Inner {
		if err := b.add(idx, child); err != nil {
			return err
		}
	}

	return nil
}

// skip replays locations of a dropped subtree.
func (b *jsonBuilder) skip(nodes []*jsonNode) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if n.Loc != nil {
			b.location(n.Loc, false)
		}
		if n.Range != nil {
			b.location(&n.Range.Begin, false)
			b.location(&n.Range.End, false)
		}
		b.skip(n.Inner)
	}
}

// location resolves l against the carried file and line. Macro locations
// resolve to their expansion location. With end set the offset and column
// are moved past the token.
func (b *jsonBuilder) location(l *jsonLoc, end bool) SourceLocation {
	if l.SpellingLoc != nil || l.ExpansionLoc != nil {
		var res SourceLocation
		if l.SpellingLoc != nil {
			res = b.location(l.SpellingLoc, end)
		}
		if l.ExpansionLoc != nil {
			res = b.location(l.ExpansionLoc, end)
		}
		return res
	}

	if l.File != "" {
		b.lastFile = l.File
	}
	if l.Line != 0 {
		b.lastLine = l.Line
	}
	if l.Offset == nil {
		return SourceLocation{}
	}

	res := SourceLocation{
		File:   b.lastFile,
		Offset: *l.Offset,
		Line:   b.lastLine,
		Column: l.Col,
	}
	if end {
		res.Offset += l.TokLen
		res.Column += l.TokLen
	}

	return res
}

// mainFile guesses the main file: declarations of the main file come after
// every included one, so the last located top-level node wins.
func (b *jsonBuilder) mainFile() string {
	rootRec := b.unit.nodes[0]
	for i := len(rootRec.children) - 1; i >= 0; i-- {
		rec := b.unit.nodes[rootRec.children[i]]
		if rec.loc.IsValid() && rec.loc.File != "" {
			return rec.loc.File
		}
	}

	return ""
}

// isJSONListInit reports whether n was written with brace initialization.
// Clang marks constructor calls with "list"; for functional casts the braces
// show up as the operand.
func isJSONListInit(n *jsonNode) bool {
	if n.List || n.ListInit {
		return true
	}
	if n.Kind != "CXXFunctionalCastExpr" || len(n.Inner) == 0 {
		return false
	}

	sub := n.Inner[0]
	for sub != nil && len(sub.Inner) > 0 && isTemporaryWrapper(sub.Kind) {
		sub = sub.Inner[0]
	}

	if sub == nil {
		return false
	}

	switch sub.Kind {
	case "InitListExpr":
		return true
	case "CXXConstructExpr", "CXXTemporaryObjectExpr":
		return sub.List
	default:
		return false
	}
}

func isTemporaryWrapper(kind string) bool {
	switch kind {
	case "CXXBindTemporaryExpr", "MaterializeTemporaryExpr", "ExprWithCleanups":
		return true
	default:
		return false
	}
}
