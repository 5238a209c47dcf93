package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"jsxc/internal/compiler"
	"jsxc/internal/diag"
	"jsxc/internal/diagfmt"
	"jsxc/internal/driver"
	"jsxc/internal/parser"
	"jsxc/internal/source"
	"jsxc/internal/version"
)

const (
	historyFile = ".jsxc_history"
	promptMain  = "jsx> "
	promptCont  = "...> "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Compile JSX expressions interactively",
	Long: `Read JSX expressions line by line and print the generated code.
Unclosed elements continue on the next line. Commands:
  :runtime <name>  set the runtime import source
  :interop         toggle interop mode
  :module          toggle module mode (imports inlined)
  :quit            exit`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

type replState struct {
	opts   compiler.Options
	module bool
}

func runRepl(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, version.Banner())

	manifest, err := loadManifest(".")
	if err != nil {
		return err
	}
	state := &replState{opts: driver.CompilerOptions(manifest.Config, "repl.jsx")}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil { // #nosec G304 -- history in $HOME
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil { // #nosec G304 -- history in $HOME
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		if _, ok := <-sigc; ok {
			ln.Close()
			os.Exit(130)
		}
	}()

	for {
		src, ok := readJSX(ln)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}
		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if state.command(out, trimmed) {
				return nil
			}
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		state.compile(out, cmd.ErrOrStderr(), src)
	}
}

// command выполняет :команду; true означает выход.
func (s *replState) command(out io.Writer, line string) bool {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch strings.ToLower(name) {
	case ":quit", ":q", ":exit":
		return true
	case ":runtime":
		if arg == "" {
			fmt.Fprintf(out, "runtime = %s\n", s.opts.Runtime)
			break
		}
		s.opts.Runtime = arg
	case ":interop":
		s.opts.Interop = !s.opts.Interop
		fmt.Fprintf(out, "interop = %v\n", s.opts.Interop)
	case ":module":
		s.module = !s.module
		fmt.Fprintf(out, "module = %v\n", s.module)
	default:
		fmt.Fprintln(out, "unknown command; try :runtime, :interop, :module or :quit")
	}
	return false
}

func (s *replState) compile(out, errOut io.Writer, src string) {
	sess := compiler.NewSession(s.opts)
	var res compiler.Result
	if s.module {
		res = sess.CompileModule([]byte(src))
	} else {
		res = sess.Compile([]byte(src))
	}
	if sess.Bag().Len() > 0 {
		sess.Bag().Sort()
		diagfmt.Pretty(errOut, sess.Bag(), sess.FileSet(), diagfmt.PrettyOpts{Color: useColor(), Context: 1, ShowNotes: true})
	}
	if res.Code == "" {
		return
	}
	if !s.module {
		for _, imp := range res.Imports {
			fmt.Fprintln(out, color.New(color.Faint).Sprint(imp))
		}
	}
	fmt.Fprintln(out, res.Code)
}

// readJSX reads lines until the input parses or fails for a reason other
// than reaching the end of input. false means EOF.
func readJSX(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl-C сбрасывает незаконченный ввод
			return "", errors.Is(err, liner.ErrPromptAborted)
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") || !incomplete(src) {
			return src, true
		}
	}
}

// incomplete reports whether src stops in the middle of an expression:
// every syntax error is an unclosed construct or runs into the end of the
// input.
func incomplete(src string) bool {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("repl.jsx", []byte(src)))
	bag := diag.NewBag(0)
	parser.ParseExpression(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.Len() == 0 {
		return false
	}
	end := uint32(len(strings.TrimRight(string(file.Content), " \t\n")))
	for _, d := range bag.Items() {
		switch d.Code {
		case diag.SynJSXUnclosedElement, diag.SynUnclosedParen, diag.SynUnclosedBrace, diag.SynUnclosedBracket,
			diag.LexUnterminatedTemplate, diag.LexUnterminatedBlockComment:
			continue
		case diag.SynExpectExpression, diag.SynExpectIdentifier, diag.SynUnexpectedToken:
			// `(` в конце ввода: тело стрелки ещё не набрано
			if d.Primary.End >= end {
				continue
			}
		}
		if d.Primary.Start < end {
			return false
		}
	}
	return true
}
