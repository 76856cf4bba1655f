// Command ved is a modal terminal text editor, a Go port of
// original_source/editor.c's main loop.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/garaekz/ved/editor"
	"github.com/garaekz/ved/input"
	"github.com/garaekz/ved/internal/share"
	"github.com/garaekz/ved/logx"
	"github.com/garaekz/ved/terminal"
	"github.com/garaekz/ved/writer"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCommand builds the ved CLI, grounded on
// dcosson-h2/benchmarks/swe_bench_pro/main.go's NewCommand shape: local
// closure-captured flag variables, Flags().*Var registration, and a RunE
// closure that does the real work.
func newRootCommand() *cobra.Command {
	var (
		themeName  string
		configPath string
		debugLog   string
	)

	cmd := &cobra.Command{
		Use:   "ved [file]",
		Short: "A modal terminal text editor",
		Long: `ved is a small modal text editor: ctrl-G opens a file, ctrl-N
starts a new one, ctrl-R drops into a command line (split -, split |,
theme <name>, close), and ctrl-F finds text incrementally as you type.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) == 1 {
				file = args[0]
			}
			return run(cmd.Context(), file, themeName, configPath, debugLog)
		},
	}

	cmd.Flags().StringVar(&themeName, "theme", "", "color theme to start on (overrides the config file)")
	cmd.Flags().StringVar(&configPath, "config", os.Getenv("VED_CONFIG"), "path to a YAML config file")
	cmd.Flags().StringVar(&debugLog, "debug", "", "write debug-level log entries to this file instead of discarding them")

	return cmd
}

// run wires together the config, the terminal/IO surfaces, and the editor,
// then drives it to completion. Grounded on original_source/editor.c's
// main(): init_terminal, editor_init, register SIGWINCH, loop, then
// restore_terminal unconditionally on the way out.
func run(ctx context.Context, file, themeName, configPath, debugLog string) error {
	if !terminal.StdinIsTTY() {
		return fmt.Errorf("ved requires an interactive terminal on stdin")
	}

	opts, err := loadConfigOptions(configPath, themeName, debugLog)
	if err != nil {
		return err
	}
	cfg := editor.NewConfig(opts...)

	out := writer.NewTerminalWriter(os.Stdout, writer.TerminalOptions{DoubleBuffer: true})
	width, height, err := out.GetSize()
	if err != nil {
		return fmt.Errorf("determine terminal size: %w", err)
	}

	in := input.NewReader(os.Stdin)
	e := editor.New(out, in, cfg, width, height)

	if file != "" {
		if err := e.OpenInitialFile(file); err != nil {
			cfg.Logger.Warn("could not open initial file " + file + ": " + err.Error())
		}
	}

	state, err := out.EnableRawMode()
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}

	runErr := e.Run(ctx)
	restoreErr := out.RestoreMode(state)

	return multierr.Append(runErr, restoreErr)
}

// loadConfigOptions resolves the config file (if any) and layers the CLI
// flags on top, per SPEC_FULL's "built-in defaults -> $VED_CONFIG ->
// flags" order.
func loadConfigOptions(configPath, themeName, debugLog string) ([]editor.Option, error) {
	var opts []editor.Option

	if configPath != "" {
		fileOpts, err := editor.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", configPath, err)
		}
		opts = append(opts, fileOpts...)
	}

	if debugLog != "" {
		opts = append(opts, editor.WithLogger(logx.LogWith(
			logx.WithFileOutput(debugLog),
			logx.WithDebugLevel(),
			logx.WithFileLevel(share.LevelDebug),
		)))
	}

	if themeName != "" {
		opts = append(opts, withResolvedTheme(themeName))
	}

	return opts, nil
}

// withResolvedTheme defers Themes.Resolve until NewConfig applies the
// earlier options, so a --theme flag always wins over $VED_CONFIG's theme
// regardless of table the config file loaded.
func withResolvedTheme(name string) editor.Option {
	return func(c *editor.Config) {
		c.ThemeIndex = c.Themes.Resolve(name)
	}
}
