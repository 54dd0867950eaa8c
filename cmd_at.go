package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sirkon/cxcursor/internal/config"
	"github.com/sirkon/cxcursor/internal/cx"
	"github.com/sirkon/cxcursor/internal/cxindex"
)

type atEntry struct {
	Kind     cx.CursorKind `yaml:"kind"`
	Class    cx.StmtClass  `yaml:"class,omitempty"`
	Spelling string        `yaml:"spelling,omitempty"`
	Range    string        `yaml:"range,omitempty"`
}

func newAtCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "at FILE OFFSET",
		Short: "Print the innermost cursor covering a byte offset and its parents",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid offset %q: %w", args[1], err)
			}

			unit, err := a.loadUnit(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer unit.Dispose()

			x, err := cxindex.Build(unit, cxindex.WithLogger(a.log))
			if err != nil {
				return err
			}

			cur, ok := x.At(unit.File(), offset)
			if !ok {
				return fmt.Errorf("no cursor at %s:%d", unit.File(), offset)
			}

			var chain []atEntry
			for !cur.IsNull() {
				entry, err := newAtEntry(cur)
				if err != nil {
					return err
				}
				chain = append(chain, entry)

				if cur, err = cur.Parent(); err != nil {
					return err
				}
			}

			if a.cfg.Output == config.OutputYAML {
				return writeYAML(cmd.OutOrStdout(), chain)
			}
			for i, entry := range chain {
				line := fmt.Sprintf("%*s%s", i*2, "", entry.Kind)
				if entry.Spelling != "" {
					line += " " + entry.Spelling
				}
				if entry.Range != "" {
					line += " " + entry.Range
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

func newAtEntry(cur cx.Cursor) (atEntry, error) {
	var (
		res atEntry
		err error
	)
	if res.Kind, err = cur.Kind(); err != nil {
		return res, err
	}
	if res.Class, err = cur.StmtClass(); err != nil {
		return res, err
	}
	if res.Spelling, err = cur.Spelling(); err != nil {
		return res, err
	}

	extent, err := cur.Extent()
	if err != nil {
		return res, err
	}
	if extent.IsValid() {
		res.Range = extent.String()
	}

	return res, nil
}
