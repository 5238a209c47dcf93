// Package main implements the jsxc CLI.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jsxc/internal/version"
)

var (
	traceCleanup   = func() {}
	profileCleanup = func() {}
)

var rootCmd = &cobra.Command{
	Use:   "jsxc",
	Short: "JSX to Vue Vapor template compiler",
	Long: `jsxc compiles JSX expressions into Vue Vapor render code: static HTML
templates plus reactive DOM operations.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := applyColorFlag(cmd); err != nil {
			return err
		}
		cleanup, err := setupTracing(cmd)
		if err != nil {
			return err
		}
		traceCleanup = cleanup
		stop, err := setupProfiling(cmd)
		if err != nil {
			return err
		}
		profileCleanup = stop
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		profileCleanup()
		traceCleanup()
	},
}

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(diagCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics per file")
	rootCmd.PersistentFlags().String("trace", "", "trace output file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-mode", "stream", "trace storage (stream|ring|both)")
	rootCmd.PersistentFlags().String("trace-format", "auto", "trace format (auto|text|ndjson)")
	rootCmd.PersistentFlags().Int("trace-ring-size", 4096, "events kept by the ring tracer")
	rootCmd.PersistentFlags().Duration("trace-heartbeat", 0, "heartbeat interval, 0 disables")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to file")
}

// main запускает корневую команду; любая ошибка завершает процесс с кодом 1.
func main() {
	err := rootCmd.Execute()
	profileCleanup()
	traceCleanup()
	if err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// applyColorFlag настраивает fatih/color глобально; auto уважает NO_COLOR
// и JSXC_NO_COLOR через конфигурацию.
func applyColorFlag(cmd *cobra.Command) error {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	switch value {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout) || envNoColor()
	default:
		return fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
	return nil
}

func useColor() bool {
	return !color.NoColor
}
