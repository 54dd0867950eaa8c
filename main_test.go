package main

import (
	"bytes"
	"context"
	"embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/sirkon/deepequal"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
	"gopkg.in/yaml.v3"

	"github.com/sirkon/cxcursor/internal/clang"
	"github.com/sirkon/cxcursor/internal/cx"
)

//go:embed testdata
var cliTestCases embed.FS

type cliCase struct {
	input string
	want  []byte
	err   string
}

// readCase unpacks a case archive: input.json goes to a temporary file,
// want.yaml and error stay in memory.
func readCase(t *testing.T, name string) cliCase {
	t.Helper()

	data, err := cliTestCases.ReadFile("testdata/cases/" + name)
	require.NoError(t, err)

	var res cliCase
	for _, f := range txtar.Parse(data).Files {
		switch f.Name {
		case "input.json":
			res.input = filepath.Join(t.TempDir(), "input.json")
			require.NoError(t, os.WriteFile(res.input, f.Data, 0o644))
		case "want.yaml":
			res.want = f.Data
		case "error":
			res.err = strings.TrimSpace(string(f.Data))
		}
	}
	require.NotEmpty(t, res.input, "no input.json in %s", name)

	return res
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	t.Log(stderr.String())

	return out.String(), err
}

func casesWithPrefix(t *testing.T, prefix string) []string {
	t.Helper()

	files, err := cliTestCases.ReadDir("testdata/cases")
	require.NoError(t, err)

	var res []string
	for _, file := range files {
		if file.IsDir() || !strings.HasPrefix(file.Name(), prefix) {
			continue
		}
		res = append(res, file.Name())
	}
	require.NotEmpty(t, res, "no %s cases", prefix)

	return res
}

func TestDump(t *testing.T) {
	for _, name := range casesWithPrefix(t, "dump_") {
		t.Run(name, func(t *testing.T) {
			c := readCase(t, name)

			out, err := runCommand(t, "--output", "yaml", "dump", c.input)
			require.NoError(t, err)

			var want, got clang.DumpNode
			require.NoError(t, yaml.Unmarshal(c.want, &want))
			require.NoError(t, yaml.Unmarshal([]byte(out), &got))

			if !reflect.DeepEqual(&want, &got) {
				deepequal.SideBySide(t, "dump", &want, &got)
				t.Fatal("dump mismatch")
			}
		})
	}
}

func TestDump_Text(t *testing.T) {
	c := readCase(t, "dump_list_init.txtar")

	out, err := runCommand(t, "dump", c.input)
	require.NoError(t, err)
	require.Contains(t, out, "CXXFunctionalCastExpr CXXFunctionalCastExpr 'S' cast=NoOp list a.cpp:1:21-1:25\n")
	require.Contains(t, out, "\n  GenericDecl FunctionDecl g a.cpp:1:1-1:28\n")
	require.True(t, strings.HasPrefix(out, "TranslationUnitNode TranslationUnit a.cpp\n"), out)
}

func TestCheck(t *testing.T) {
	for _, name := range casesWithPrefix(t, "check_") {
		t.Run(name, func(t *testing.T) {
			c := readCase(t, name)

			out, err := runCommand(t, "--output", "yaml", "check", c.input)
			if c.err != "" {
				require.EqualError(t, err, c.err)
			} else {
				require.NoError(t, err)
			}

			var want, got []checkEntry
			require.NoError(t, yaml.Unmarshal(c.want, &want))
			require.NoError(t, yaml.Unmarshal([]byte(out), &got))

			if !reflect.DeepEqual(want, got) {
				deepequal.SideBySide(t, "reports", want, got)
				t.Fatal("reports mismatch")
			}
		})
	}
}

func TestCheck_Strict(t *testing.T) {
	c := readCase(t, "check_taskgroup.txtar")

	out, err := runCommand(t, "--strict", "check", c.input)
	require.Error(t, err)
	require.Contains(t, out, "[materialize] CXR020: UnregisteredKind: no wrapper for")
	require.Contains(t, out, "(t.cpp:3:3)")
}

func TestAt(t *testing.T) {
	c := readCase(t, "dump_list_init.txtar")

	out, err := runCommand(t, "--output", "yaml", "at", c.input, "22")
	require.NoError(t, err)

	var got []atEntry
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))

	var kinds []cx.CursorKind
	for _, entry := range got {
		kinds = append(kinds, entry.Kind)
	}
	require.Equal(t, []cx.CursorKind{
		cx.CursorDeclRefExpr,
		cx.CursorUnexposedExpr,
		cx.CursorInitListExpr,
		cx.CursorCXXFunctionalCastExpr,
		cx.CursorReturnStmt,
		cx.CursorCompoundStmt,
		cx.CursorFunctionDecl,
		cx.CursorTranslationUnit,
	}, kinds)
	require.Equal(t, "x", got[0].Spelling)
	require.Equal(t, cx.StmtClassImplicitCastExpr, got[1].Class)
	require.Equal(t, "a.cpp:1:21-1:25", got[3].Range)

	_, err = runCommand(t, "at", c.input, "1000")
	require.Error(t, err)

	_, err = runCommand(t, "at", c.input, "x")
	require.Error(t, err)
}

func TestKinds(t *testing.T) {
	out, err := runCommand(t, "--output", "yaml", "kinds")
	require.NoError(t, err)

	var got []kindEntry
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))

	var wrappers []string
	for _, entry := range got {
		wrappers = append(wrappers, entry.Wrapper)
	}
	require.Equal(t, []string{
		"ImplicitCastExpr",
		"CStyleCastExpr",
		"CXXFunctionalCastExpr",
		"OMPTaskwaitDirective",
		"OMPTaskgroupDirective",
	}, wrappers)

	all, err := runCommand(t, "--output", "yaml", "kinds", "--all")
	require.NoError(t, err)
	require.Greater(t, len(all), len(out))
}

func TestConfigFlags(t *testing.T) {
	c := readCase(t, "dump_list_init.txtar")

	cfg := filepath.Join(t.TempDir(), "cxcursor.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("output: yaml\nlog:\n  level: debug\n"), 0o644))

	out, err := runCommand(t, "--config", cfg, "dump", c.input)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "node: TranslationUnitNode\n"), out)

	out, err = runCommand(t, "--config", cfg, "--output", "text", "dump", c.input)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "TranslationUnitNode "), out)

	_, err = runCommand(t, "--backend", "clang", "dump", c.input)
	require.Error(t, err)
}
