package clang

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/sirkon/cxcursor/internal/cx"
	"github.com/sirkon/cxcursor/internal/cxrules"
	"github.com/sirkon/cxcursor/internal/report"
)

// Factory turns cursors into nodes using a registry. It is safe for
// concurrent use.
type Factory struct {
	registry *Registry
	strict   bool
	log      *zap.Logger
	sink     *report.PhaseReporter
}

// FactoryOption tunes a factory.
type FactoryOption func(f *Factory)

// NewFactory creates a factory over DefaultRegistry unless WithRegistry
// says otherwise.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.registry == nil {
		f.registry = DefaultRegistry()
	}

	return f
}

// WithRegistry sets the registry to pick wrappers from.
func WithRegistry(r *Registry) FactoryOption {
	return func(f *Factory) {
		f.registry = r
	}
}

// WithStrict makes the factory fail on cursors with no registered wrapper
// instead of falling back to a generic one.
func WithStrict(strict bool) FactoryOption {
	return func(f *Factory) {
		f.strict = strict
	}
}

// WithLogger sets a logger.
func WithLogger(log *zap.Logger) FactoryOption {
	return func(f *Factory) {
		if log != nil {
			f.log = log
		}
	}
}

// WithReporter sets where materialization issues go.
func WithReporter(sink *report.PhaseReporter) FactoryOption {
	return func(f *Factory) {
		f.sink = sink
	}
}

var defaultFactory = sync.OnceValue(func() *Factory {
	return NewFactory()
})

// Registry returns the registry the factory uses.
func (f *Factory) Registry() *Registry {
	return f.registry
}

// Create wraps the cursor into the node registered for its discriminants.
func (f *Factory) Create(cur cx.Cursor) (Node, error) {
	kind, err := cur.Kind()
	if err != nil {
		f.report(cxrules.InvalidHandle(), err.Error(), cx.SourceLocation{})
		return nil, fmt.Errorf("get cursor kind: %w", err)
	}
	class, err := cur.StmtClass()
	if err != nil {
		return nil, fmt.Errorf("get statement class: %w", err)
	}

	key := Key{Kind: kind, Class: class}
	entry, ok := f.registry.Lookup(key)
	if !ok {
		if f.strict {
			f.report(cxrules.UnregisteredKind(), fmt.Sprintf("no wrapper for %s", cursorLabel(cur, key)), location(cur))
			return nil, fmt.Errorf("%w for %s", ErrUnregistered, cursorLabel(cur, key))
		}

		f.log.Debug("no wrapper registered, falling back to a generic one", zap.Stringer("key", key))
		return newGeneric(f, cur)
	}

	n, err := entry.New(f, cur)
	if err != nil {
		if errors.Is(err, ErrKindMismatch) {
			f.report(cxrules.KindMismatch(), err.Error(), location(cur))
		}
		return nil, fmt.Errorf("create %s: %w", entry.Name, err)
	}

	return n, nil
}

// CreateRoot wraps the root of the unit.
func (f *Factory) CreateRoot(unit *cx.TranslationUnit) (Node, error) {
	root := unit.Root()
	if root.IsNull() {
		return nil, fmt.Errorf("unit %s: %w", unit.File(), cx.ErrNullCursor)
	}

	return f.Create(root)
}

func (f *Factory) report(rule cxrules.Rule, msg string, loc cx.SourceLocation) {
	f.sink.Report(rule, msg, loc)
}

func location(cur cx.Cursor) cx.SourceLocation {
	loc, _ := cur.Location()
	return loc
}

func cursorLabel(cur cx.Cursor, key Key) string {
	native, err := cur.NativeKind()
	if err != nil || native == "" {
		return key.String()
	}

	return fmt.Sprintf("%s (%s)", key, native)
}

// Walk visits n and its subtree in preorder and stops at the first error.
func Walk(n Node, fn func(n Node, depth int) error) error {
	return walk(n, fn, 0)
}

func walk(n Node, fn func(n Node, depth int) error, depth int) error {
	if err := fn(n, depth); err != nil {
		return err
	}

	children, err := n.Children()
	if err != nil {
		return err
	}

	for _, child := range children {
		if err := walk(child, fn, depth+1); err != nil {
			return err
		}
	}

	return nil
}
