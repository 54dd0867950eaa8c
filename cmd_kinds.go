package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sirkon/cxcursor/internal/clang"
	"github.com/sirkon/cxcursor/internal/config"
)

type kindEntry struct {
	Kind    string `yaml:"kind"`
	Value   int    `yaml:"value"`
	Class   string `yaml:"class,omitempty"`
	Wrapper string `yaml:"wrapper"`
}

func newKindsCommand(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List registered wrappers by cursor kind and statement class",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := clang.DefaultRegistry()

			var entries []kindEntry
			for _, key := range reg.Keys() {
				entry, _ := reg.Lookup(key)
				if !all && strings.HasPrefix(entry.Name, "Generic") {
					continue
				}

				e := kindEntry{
					Kind:    key.Kind.String(),
					Value:   int(key.Kind),
					Wrapper: entry.Name,
				}
				if key.Class != 0 {
					e.Class = key.Class.String()
				}
				entries = append(entries, e)
			}

			if a.cfg.Output == config.OutputYAML {
				return writeYAML(cmd.OutOrStdout(), entries)
			}
			for _, e := range entries {
				class := e.Class
				if class == "" {
					class = "-"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-4d %-28s %-28s %s\n", e.Value, e.Kind, class, e.Wrapper); err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include generic fallback wrappers")

	return cmd
}
