package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"jsxc/internal/diag"
	"jsxc/internal/diagfmt"
	"jsxc/internal/driver"
	"jsxc/internal/observ"
)

func prettyOpts() diagfmt.PrettyOpts {
	return diagfmt.PrettyOpts{
		Color:    useColor(),
		Context:  1,
		PathMode: diagfmt.PathModeAuto,
	}
}

// bagOf собирает диагностики файла в Bag для форматтеров.
func bagOf(items []diag.Diagnostic, limit int) *diag.Bag {
	bag := diag.NewBag(limit)
	for _, d := range items {
		bag.Add(d)
	}
	bag.Sort()
	return bag
}

// printFileDiagnostics renders the diagnostics of every file that has any.
func printFileDiagnostics(out io.Writer, files []driver.FileResult, opts diagfmt.PrettyOpts, limit int) {
	first := true
	for i := range files {
		f := &files[i]
		if len(f.Diagnostics) == 0 {
			continue
		}
		if !first {
			fmt.Fprintln(out)
		}
		first = false
		diagfmt.Pretty(out, bagOf(f.Diagnostics, limit), f.Files, opts)
	}
}

// printTimings renders a timing report as an OBS diagnostic.
func printTimings(out io.Writer, path string, report observ.Report, opts diagfmt.PrettyOpts) {
	bag := diag.NewBag(1)
	bag.Add(driver.TimingDiagnostic(path, report))
	diagfmt.Pretty(out, bag, nil, opts)
}

func maxDiagnostics(cmd *cobra.Command) int {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0
	}
	return n
}

// errDiagnostics — тихая ошибка: диагностики уже напечатаны.
type errDiagnostics struct{ failed int }

func (e errDiagnostics) Error() string {
	return fmt.Sprintf("%d file(s) failed", e.failed)
}
