package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sirkon/cxcursor/internal/config"
	"github.com/sirkon/cxcursor/internal/cx"
)

const doc = `cxcursor loads C/C++ syntax trees produced by clang or tree-sitter and
exposes them as typed cursors: dump them, look up the node at an offset or
check them for wrapper and span issues.`

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds state shared by all commands.
type app struct {
	configPath string
	backend    backendFlag
	output     outputFlag
	logLevel   levelFlag
	strict     bool

	cfg *config.Config
	log *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "cxcursor",
		Short:         "Typed cursors over C/C++ syntax trees",
		Long:          doc,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to a yaml config")
	flags.Var(&a.backend, "backend", "native parser: clang-json or tree-sitter")
	flags.Var(&a.output, "output", "output format: text or yaml")
	flags.Var(&a.logLevel, "log-level", "log level: debug, info, warn, error")
	flags.BoolVar(&a.strict, "strict", false, "fail on cursors with no registered wrapper")

	root.AddCommand(
		newDumpCommand(a),
		newAtCommand(a),
		newCheckCommand(a),
		newKindsCommand(a),
	)

	return root
}

// setup reads the config and applies flags given explicitly on top of it.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		if cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = a.backend.value
	}
	if flags.Changed("output") {
		cfg.Output = a.output.value
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel.value
	}
	if flags.Changed("strict") {
		cfg.Strict = a.strict
	}

	a.cfg = cfg
	a.log = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())),
		cfg.Log.Level,
	))

	return nil
}

// loadUnit parses the input with the configured backend. The caller
// disposes the unit.
func (a *app) loadUnit(ctx context.Context, path string) (*cx.TranslationUnit, error) {
	opts := a.cfg.LoadOptions(a.log)

	switch a.cfg.Backend {
	case config.BackendClangJSON:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open clang json dump: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				a.log.Warn("close clang json dump", zap.String("path", path), zap.Error(err))
			}
		}()

		unit, err := cx.LoadJSON(ctx, f, opts...)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		return unit, nil

	case config.BackendTreeSitter:
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read source: %w", err)
		}

		unit, err := cx.ParseCPP(ctx, src, path, opts...)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return unit, nil

	default:
		return nil, fmt.Errorf("unsupported backend %s", a.cfg.Backend)
	}
}
