package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/sirkon/cxcursor/internal/cx"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
backend: tree-sitter
strict: true
output: yaml
log:
  level: debug
sitter:
  node_types:
    co_await_expression: CoawaitExpr
omp:
  pragmas:
    taskloop: OMPTaskDirective
`))
	require.NoError(t, err)

	require.Equal(t, &Config{
		Backend:      BackendTreeSitter,
		Strict:       true,
		SkipImplicit: true,
		Output:       OutputYAML,
		Log:          Log{Level: zapcore.DebugLevel},
		Sitter: Sitter{
			NodeTypes: map[string]string{"co_await_expression": "CoawaitExpr"},
		},
		OMP: OMP{
			Pragmas: map[string]cx.StmtClass{"taskloop": cx.StmtClassOMPTaskDirective},
		},
	}, cfg)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "unknown backend", data: "backend: libclang\n"},
		{name: "unknown output", data: "output: json\n"},
		{name: "unknown level", data: "log:\n  level: loud\n"},
		{name: "unknown class", data: "omp:\n  pragmas:\n    taskloop: OMPTaskLoopDirective\n"},
		{name: "unknown key", data: "backends: tree-sitter\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cxcursor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("skip_implicit: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.False(t, cfg.SkipImplicit)
	require.Equal(t, BackendClangJSON, cfg.Backend)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnums_Text(t *testing.T) {
	for b := range backendValueMap {
		data, err := b.MarshalText()
		require.NoError(t, err)

		var got Backend
		require.NoError(t, got.UnmarshalText(data))
		require.Equal(t, b, got)
	}

	for f := range outputValueMap {
		data, err := f.MarshalText()
		require.NoError(t, err)

		var got OutputFormat
		require.NoError(t, got.UnmarshalText(data))
		require.Equal(t, f, got)
	}

	_, err := Backend(0).MarshalText()
	require.Error(t, err)
	require.Equal(t, "output-invalid(7)", OutputFormat(7).String())
}
