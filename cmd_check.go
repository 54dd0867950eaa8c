package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sirkon/cxcursor/internal/clang"
	"github.com/sirkon/cxcursor/internal/config"
	"github.com/sirkon/cxcursor/internal/cxindex"
	"github.com/sirkon/cxcursor/internal/report"
)

type checkEntry struct {
	Phase    string `yaml:"phase"`
	Rule     string `yaml:"rule"`
	Message  string `yaml:"message"`
	Location string `yaml:"location,omitempty"`
}

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Materialize, verify and index a file, then report issues",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := a.loadUnit(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			defer unit.Dispose()

			var r report.Reporter
			f := clang.NewFactory(
				clang.WithStrict(a.cfg.Strict),
				clang.WithLogger(a.log),
				clang.WithReporter(r.Phase(report.PhaseMaterialize)),
			)

			root, err := f.CreateRoot(unit)
			if err != nil {
				return err
			}
			if _, err := clang.Verify(root, r.Phase(report.PhaseVerify)); err != nil {
				a.log.Warn("verification stopped early", zap.Error(err))
			}
			if _, err := cxindex.Build(unit, cxindex.WithLogger(a.log), cxindex.WithReporter(r.Phase(report.PhaseIndex))); err != nil {
				return err
			}

			if err := writeReports(cmd, a.cfg.Output, &r); err != nil {
				return err
			}
			if n := r.Len(); n > 0 {
				return fmt.Errorf("%d issues found", n)
			}

			return nil
		},
	}
}

func writeReports(cmd *cobra.Command, format config.OutputFormat, r *report.Reporter) error {
	if format != config.OutputYAML {
		return r.PrintSummary(cmd.OutOrStdout())
	}

	entries := []checkEntry{}
	for _, rep := range r.Reports() {
		entry := checkEntry{
			Phase:   rep.Phase.String(),
			Rule:    rep.RuleCode.Code(),
			Message: rep.Message,
		}
		if rep.Loc.IsValid() {
			entry.Location = rep.Loc.String()
		}
		entries = append(entries, entry)
	}

	return writeYAML(cmd.OutOrStdout(), entries)
}
