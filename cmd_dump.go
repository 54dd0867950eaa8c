package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sirkon/cxcursor/internal/clang"
	"github.com/sirkon/cxcursor/internal/config"
)

func newDumpCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the typed node tree of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := a.loadUnit(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer unit.Dispose()

			f := clang.NewFactory(clang.WithStrict(a.cfg.Strict), clang.WithLogger(a.log))
			root, err := f.CreateRoot(unit)
			if err != nil {
				return err
			}

			d, err := clang.Dump(root)
			if err != nil {
				return fmt.Errorf("dump %s: %w", args[0], err)
			}

			return writeDump(cmd.OutOrStdout(), a.cfg.Output, d)
		},
	}
}

func writeDump(w io.Writer, format config.OutputFormat, d *clang.DumpNode) error {
	if format == config.OutputYAML {
		return writeYAML(w, d)
	}

	return writeDumpText(w, d, 0)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return enc.Close()
}

// writeDumpText prints one node per line:
//
//	CXXFunctionalCastExpr CXXFunctionalCastExpr 'S' cast=NoOp list input.cpp:5:9-5:13
func writeDumpText(w io.Writer, d *clang.DumpNode, depth int) error {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(d.Node)
	b.WriteByte(' ')
	b.WriteString(d.Kind.String())
	if d.Spelling != "" {
		b.WriteString(" " + d.Spelling)
	}
	if d.Type != "" {
		b.WriteString(" '" + d.Type + "'")
	}
	if d.Cast != "" {
		b.WriteString(" cast=" + d.Cast)
	}
	if d.ListInit != nil && *d.ListInit {
		b.WriteString(" list")
	}
	if d.Range != "" {
		b.WriteString(" " + d.Range)
	}
	b.WriteByte('\n')

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write dump: %w", err)
	}

	for _, child := range d.Children {
		if err := writeDumpText(w, child, depth+1); err != nil {
			return err
		}
	}

	return nil
}
