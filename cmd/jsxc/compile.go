package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsxc/internal/buildpipeline"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] <file.jsx|directory>",
	Short: "Compile JSX files to Vapor render code",
	Long: `Compile a single .jsx file or every matching file under a directory.
A single file without --out-dir is printed to stdout; directories need an
output directory from --out-dir or build.out_dir in jsxc.toml.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().String("out-dir", "", "directory for generated .js files")
	compileCmd.Flags().Int("jobs", 0, "max parallel compiles (0=config or auto)")
	compileCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	compileCmd.Flags().Bool("no-cache", false, "bypass the disk cache")
}

func runCompile(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()
	input := args[0]

	outDir, err := cmd.Flags().GetString("out-dir")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}
	st, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	manifest, err := loadManifest(input)
	if err != nil {
		return err
	}
	cfg := manifest.Config
	if jobs > 0 {
		cfg.Build.Jobs = jobs
	}
	if outDir == "" {
		outDir = inRoot(manifest, cfg.Build.OutDir)
	}
	if st.IsDir() && outDir == "" {
		return errors.New("compiling a directory needs --out-dir or build.out_dir in jsxc.toml")
	}
	cache, err := openCache(manifest, noCache)
	if err != nil {
		// без кэша компиляция всё равно возможна
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: cache disabled: %v\n", err)
		cache = nil
	}

	req := &buildpipeline.BuildRequest{
		Inputs:    []string{input},
		OutDir:    outDir,
		Config:    cfg,
		Jobs:      cfg.Build.Jobs,
		Cache:     cache,
		MaxErrors: uint(max(maxDiagnostics(cmd), 0)),
	}

	useTUI, err := wantTUI(uiValue, outDir != "", stdoutIsTerminal)
	if err != nil {
		return err
	}
	var res buildpipeline.BuildResult
	if useTUI {
		paths, derr := buildpipeline.Discover(req)
		if derr != nil {
			return derr
		}
		files := buildpipeline.NormalizeProgressFiles(paths, buildpipeline.ResolveBaseDir(req))
		res, err = runBuildWithUI(cmd.Context(), "compile", files, req)
	} else {
		res, err = buildpipeline.Build(cmd.Context(), req)
	}
	if err != nil {
		return err
	}

	opts := prettyOpts()
	printFileDiagnostics(cmd.ErrOrStderr(), res.Files, opts, maxDiagnostics(cmd))

	// один файл без каталога вывода печатаем в stdout
	if outDir == "" && len(res.Files) == 1 && !res.Files[0].HasErrors() {
		fmt.Fprint(cmd.OutOrStdout(), res.Files[0].Code)
		if n := len(res.Files[0].Code); n > 0 && res.Files[0].Code[n-1] != '\n' {
			fmt.Fprintln(cmd.OutOrStdout())
		}
	}

	if showTimings {
		printStageTimings(cmd.ErrOrStderr(), res.Timings)
		printTimings(cmd.ErrOrStderr(), "", res.Phases, opts)
	}
	if outDir != "" {
		written := 0
		for _, out := range res.Outputs {
			if out != "" {
				written++
			}
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "compiled %d file(s) into %s (%d cached, %d failed)\n", written, outDir, res.Cached, res.Failed)
	}

	if res.Failed > 0 {
		cmd.SilenceErrors = true
		return errDiagnostics{failed: res.Failed}
	}
	return nil
}
