package cxindex

import (
	"fmt"
	"maps"
	"slices"

	"github.com/sirkon/rbtree"
	"go.uber.org/zap"

	"github.com/sirkon/cxcursor/internal/cx"
	"github.com/sirkon/cxcursor/internal/cxrules"
	"github.com/sirkon/cxcursor/internal/report"
)

// Index maps source offsets to cursors of one translation unit.
type Index struct {
	files   map[string]*rbtree.Tree[*span]
	cursors []cx.Cursor

	log  *zap.Logger
	sink *report.PhaseReporter
}

// Option tunes index construction.
type Option func(x *Index)

// WithLogger sets a logger.
func WithLogger(log *zap.Logger) Option {
	return func(x *Index) {
		if log != nil {
			x.log = log
		}
	}
}

// WithReporter sets where partial overlaps are reported.
func WithReporter(sink *report.PhaseReporter) Option {
	return func(x *Index) {
		x.sink = sink
	}
}

// New creates an empty index.
func New(opts ...Option) *Index {
	x := &Index{
		files: map[string]*rbtree.Tree[*span]{},
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(x)
	}

	return x
}

// Build indexes every cursor of the unit except the root. Cursors are added
// in preorder, so parents always come before their children.
func Build(unit *cx.TranslationUnit, opts ...Option) (*Index, error) {
	x := New(opts...)

	root := unit.Root()
	if root.IsNull() {
		return nil, fmt.Errorf("index unit %s: %w", unit.File(), cx.ErrNullCursor)
	}

	err := root.Visit(func(cur cx.Cursor, depth int) error {
		if depth == 0 {
			return nil
		}
		return x.Add(cur)
	})
	if err != nil {
		return nil, fmt.Errorf("index unit %s: %w", unit.File(), err)
	}

	x.log.Debug("unit indexed", zap.String("file", unit.File()), zap.Int("cursors", len(x.cursors)))
	return x, nil
}

// Add registers a cursor by its extent. Cursors without a valid extent or
// spanning several files are ignored. A cursor partially overlapping an
// already added one is reported and ignored.
func (x *Index) Add(cur cx.Cursor) error {
	extent, err := cur.Extent()
	if err != nil {
		return err
	}
	if !extent.IsValid() || extent.Begin.Offset == extent.End.Offset {
		return nil
	}
	if extent.Begin.File != extent.End.File {
		x.log.Debug("cursor spans several files", zap.Stringer("cursor", cur))
		return nil
	}

	t, ok := x.files[extent.Begin.File]
	if !ok {
		t = rbtree.New[*span]()
		x.files[extent.Begin.File] = t
	}

	s := &span{
		start: extent.Begin.Offset,
		end:   extent.End.Offset,
		node:  len(x.cursors),
	}
	x.cursors = append(x.cursors, cur)
	if !attachInto(t, s) {
		x.sink.Report(
			cxrules.PartialOverlap(),
			fmt.Sprintf("%s at %s partially overlaps another cursor", cur, extent),
			extent.Begin,
		)
	}

	return nil
}

// At returns the innermost cursor covering offset of file.
func (x *Index) At(file string, offset int) (cx.Cursor, bool) {
	t, ok := x.files[file]
	if !ok {
		return cx.Cursor{}, false
	}

	res := t.Search(probe(offset))
	if res == nil {
		return cx.Cursor{}, false
	}

	return x.cursors[descendSearch(res, offset)], true
}

// Files returns indexed file names in lexical order.
func (x *Index) Files() []string {
	return slices.Sorted(maps.Keys(x.files))
}

// Len returns the number of cursors added.
func (x *Index) Len() int {
	return len(x.cursors)
}
