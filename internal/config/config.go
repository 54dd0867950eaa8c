// Package config reads cxcursor yaml configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/sirkon/cxcursor/internal/cx"
)

// Config is the tool configuration.
//
//	backend: tree-sitter
//	strict: true
//	skip_implicit: true
//	output: yaml
//	log:
//	  level: debug
//	sitter:
//	  node_types:
//	    co_await_expression: CoawaitExpr
//	omp:
//	  pragmas:
//	    taskloop: OMPTaskDirective
type Config struct {
	Backend      Backend      `yaml:"backend"`
	Strict       bool         `yaml:"strict"`
	SkipImplicit bool         `yaml:"skip_implicit"`
	Output       OutputFormat `yaml:"output"`
	Log          Log          `yaml:"log"`
	Sitter       Sitter       `yaml:"sitter"`
	OMP          OMP          `yaml:"omp"`
}

// Log configures logging.
type Log struct {
	Level zapcore.Level `yaml:"level"`
}

// Sitter configures the tree-sitter backend.
type Sitter struct {
	// NodeTypes maps tree-sitter node types to clang class names on top of
	// the predefined table.
	NodeTypes map[string]string `yaml:"node_types"`
}

// OMP configures OpenMP pragma recognition.
type OMP struct {
	// Pragmas maps directive names following "#pragma omp" to statement
	// classes on top of the predefined table.
	Pragmas map[string]cx.StmtClass `yaml:"pragmas"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Backend:      BackendClangJSON,
		SkipImplicit: true,
		Output:       OutputText,
		Log: Log{
			Level: zapcore.InfoLevel,
		},
	}
}

// Load reads configuration from the file at path. Values missing in the
// file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes configuration. Unknown keys are errors.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return cfg, nil
}

// LoadOptions turns the configuration into loader options.
func (c *Config) LoadOptions(log *zap.Logger) []cx.LoadOption {
	return []cx.LoadOption{
		cx.WithLogger(log),
		cx.WithSkipImplicit(c.SkipImplicit),
		cx.WithNodeTypes(c.Sitter.NodeTypes),
		cx.WithPragmas(c.OMP.Pragmas),
	}
}
