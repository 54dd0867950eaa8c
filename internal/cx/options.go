package cx

import (
	"go.uber.org/zap"
)

// LoadOption tunes loaders.
type LoadOption func(cfg *loadConfig)

type loadConfig struct {
	log          *zap.Logger
	filename     string
	skipImplicit bool
	nodeTypes    map[string]string
	pragmas      map[string]StmtClass
}

func newLoadConfig(opts []LoadOption) *loadConfig {
	cfg := &loadConfig{
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithLogger sets a logger for load diagnostics.
func WithLogger(log *zap.Logger) LoadOption {
	return func(cfg *loadConfig) {
		if log != nil {
			cfg.log = log
		}
	}
}

// WithFilename overrides the main file name of the unit. LoadJSON picks the
// first file it sees in the dump otherwise.
func WithFilename(name string) LoadOption {
	return func(cfg *loadConfig) {
		cfg.filename = name
	}
}

// WithSkipImplicit drops declarations the compiler introduced on its own,
// like the builtin typedefs at the top of every clang dump.
func WithSkipImplicit(skip bool) LoadOption {
	return func(cfg *loadConfig) {
		cfg.skipImplicit = skip
	}
}

// WithNodeTypes adds tree-sitter node type → clang class name mappings for
// ParseCPP. They take precedence over the predefined ones.
func WithNodeTypes(custom map[string]string) LoadOption {
	return func(cfg *loadConfig) {
		cfg.nodeTypes = custom
	}
}

// WithPragmas adds OpenMP directive name → statement class mappings for
// ParseCPP, e.g. "taskloop" → some class. Names are space separated words
// following "#pragma omp".
func WithPragmas(custom map[string]StmtClass) LoadOption {
	return func(cfg *loadConfig) {
		cfg.pragmas = custom
	}
}
