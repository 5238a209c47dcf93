package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"jsxc/internal/buildpipeline"
	"jsxc/internal/diagfmt"
	"jsxc/internal/driver"
)

var diagCmd = &cobra.Command{
	Use:   "diag [flags] <file.jsx|directory>",
	Short: "Report diagnostics without writing output",
	Long:  `Compile a file or every matching file under a directory and print the diagnostics only.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDiagnose,
}

func init() {
	diagCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	diagCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	diagCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	diagCmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	diagCmd.Flags().Bool("preview", false, "preview fix suggestions")
	diagCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

// runDiagnose компилирует входы без записи и печатает диагностики.
// Ошибки в диагностиках дают ненулевой код выхода.
func runDiagnose(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return fmt.Errorf("failed to get suggest flag: %w", err)
	}
	preview, err := cmd.Flags().GetBool("preview")
	if err != nil {
		return fmt.Errorf("failed to get preview flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	if format != "pretty" && format != "json" && format != "short" {
		return fmt.Errorf("unknown format: %s", format)
	}

	manifest, err := loadManifest(args[0])
	if err != nil {
		return err
	}
	cfg := manifest.Config
	if jobs > 0 {
		cfg.Build.Jobs = jobs
	}
	req := &buildpipeline.BuildRequest{Inputs: args, Config: cfg}
	paths, err := buildpipeline.Discover(req)
	if err != nil {
		return err
	}
	limit := maxDiagnostics(cmd)
	results, err := driver.CompileFiles(cmd.Context(), paths, driver.Options{
		Config:    cfg,
		Jobs:      cfg.Build.Jobs,
		MaxErrors: uint(max(limit, 0)),
	})
	if err != nil {
		return fmt.Errorf("diagnosis failed: %w", err)
	}

	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}
	out := cmd.OutOrStdout()
	switch format {
	case "pretty":
		opts := prettyOpts()
		opts.Context = 2
		opts.PathMode = pathMode
		opts.ShowNotes = withNotes
		opts.ShowFixes = suggest || preview
		opts.ShowPreview = preview
		printFileDiagnostics(out, results, opts, limit)
		if showTimings {
			printTimings(cmd.ErrOrStderr(), "", driver.SumTimings(results), opts)
		}
	case "short":
		for i := range results {
			if err := diagfmt.Short(out, results[i].Diagnostics, results[i].Files, pathMode, withNotes); err != nil {
				return err
			}
		}
	case "json":
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			Max:              limit,
			IncludeNotes:     withNotes,
			IncludeFixes:     suggest || preview,
			IncludePreviews:  preview,
		}
		base := buildpipeline.ResolveBaseDir(req)
		output := make(map[string]diagfmt.DiagnosticsOutput, len(results))
		for i := range results {
			r := &results[i]
			items := r.Diagnostics
			if showTimings {
				items = append(items[:len(items):len(items)], driver.TimingDiagnostic(r.Path, r.Timing))
			}
			output[buildpipeline.DisplayName(r.Path, base)] = diagfmt.BuildDiagnosticsOutput(items, r.Files, jsonOpts)
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(output); err != nil {
			return fmt.Errorf("failed to encode diagnostics output: %w", err)
		}
	}

	failed := 0
	for i := range results {
		if results[i].HasErrors() {
			failed++
		}
	}
	if failed > 0 {
		cmd.SilenceErrors = true
		return errDiagnostics{failed: failed}
	}
	return nil
}
