package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"jsxc/internal/diag"
	"jsxc/internal/diagfmt"
	"jsxc/internal/jsast"
	"jsxc/internal/parser"
	"jsxc/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.jsx>",
	Short: "Parse a file and dump its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("expr", false, "parse the file as a single expression")
	parseCmd.Flags().Bool("jsx-only", false, "dump only the JSX roots of a module")
}

func runParse(cmd *cobra.Command, args []string) error {
	defer dumpTraceOnPanic()
	asExpr, err := cmd.Flags().GetBool("expr")
	if err != nil {
		return err
	}
	jsxOnly, err := cmd.Flags().GetBool("jsx-only")
	if err != nil {
		return err
	}

	fs := source.NewFileSet()
	id, err := fs.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	file := fs.Get(id)
	bag := diag.NewBag(maxDiagnostics(cmd))
	opts := parser.Options{Reporter: diag.BagReporter{Bag: bag}}

	var roots []jsast.Node
	if asExpr {
		expr, _ := parser.ParseExpression(file, opts)
		roots = append(roots, expr)
	} else {
		res := parser.ParseFile(file, opts)
		if jsxOnly {
			for _, r := range parser.JSXRoots(res.Program) {
				roots = append(roots, r)
			}
		} else {
			roots = append(roots, res.Program)
		}
	}

	out := cmd.OutOrStdout()
	for _, n := range roots {
		if err := jsast.Dump(out, n); err != nil {
			return err
		}
	}

	if bag.Len() > 0 {
		bag.Sort()
		diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, diagfmt.PrettyOpts{Color: useColor(), Context: 1})
	}
	if bag.HasErrors() {
		cmd.SilenceErrors = true
		return errDiagnostics{failed: 1}
	}
	return nil
}
