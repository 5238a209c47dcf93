// Package compiler ties the parser, the IR builder and the code generator
// into one compile.
//
// A Session is one isolated compile context: it owns the file set, the
// diagnostic bag, the IR registries and the timers. Nothing is shared
// between sessions, so hosts may run many of them in parallel.
package compiler

import (
	"strings"

	"fortio.org/safecast"

	"jsxc/internal/codegen"
	"jsxc/internal/diag"
	"jsxc/internal/ir"
	"jsxc/internal/jsast"
	"jsxc/internal/observ"
	"jsxc/internal/parser"
	"jsxc/internal/source"
	"jsxc/internal/trace"
	"jsxc/internal/transform"
)

type Options struct {
	// IsCustomElement marks lowercase tags that are native custom elements.
	IsCustomElement func(tag string) bool
	// OnError is called once per template error, after the session bag.
	OnError func(kind diag.Code, span source.Span)

	// SSR compiles are not supported and report TplSSRUnsupported.
	SSR bool
	// InSSR and Interop are compatibility flags; Interop routes component
	// creation to InteropRuntime.
	InSSR   bool
	Interop bool

	Filename string

	Runtime        string
	InteropRuntime string
	// NoAbbreviate keeps every closing tag in templates.
	NoAbbreviate bool

	// Host-owned collections; nil means the session creates its own.
	Helpers   *ir.Helpers
	Hoists    *ir.Hoists
	Templates *ir.TemplateRegistry

	// MaxErrors stops parsing after that many syntax errors; 0 is unlimited.
	MaxErrors uint
	// Tracer receives phase spans; nil disables tracing.
	Tracer trace.Tracer
	// TraceParent is the span the module span is attached to.
	TraceParent uint64
}

// Result is the output of one compile.
type Result struct {
	// Code is the compiled output. For Compile it holds the template
	// declarations, hoisted constants and the program expression; for
	// CompileModule it is the whole module with the prelude prepended.
	Code string
	// Imports are the runtime import statements Code relies on. They are
	// already part of Code for CompileModule.
	Imports     []string
	Templates   []ir.Template
	Hoists      []jsast.Expr
	Helpers     []string
	Diagnostics []diag.Diagnostic
	// Programs counts the JSX roots compiled.
	Programs int
}

// HasErrors reports whether the compile produced error diagnostics.
func (r Result) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity >= diag.SevError {
			return true
		}
	}
	return false
}

// Session holds the state of one compile.
type Session struct {
	opts  Options
	files *source.FileSet
	bag   *diag.Bag
	root  *ir.Root
	rep   diag.Reporter
	timer *observ.Timer

	tracer trace.Tracer
	span   *trace.Span
}

// NewSession prepares an empty compile context.
func NewSession(opts Options) *Session {
	if opts.Filename == "" {
		opts.Filename = "anonymous.jsx"
	}
	root := ir.NewRoot()
	if opts.Helpers != nil {
		root.Helpers = opts.Helpers
	}
	if opts.Hoists != nil {
		root.Hoists = opts.Hoists
	}
	if opts.Templates != nil {
		root.Templates = opts.Templates
	}
	bag := diag.NewBag(0)
	reps := diag.MultiReporter{diag.BagReporter{Bag: bag}}
	if opts.OnError != nil {
		reps = append(reps, diag.FuncReporter(opts.OnError))
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}
	return &Session{
		opts:   opts,
		files:  source.NewFileSet(),
		bag:    bag,
		root:   root,
		rep:    diag.NewDedupReporter(reps),
		timer:  observ.NewTimer(),
		tracer: tracer,
	}
}

func (s *Session) FileSet() *source.FileSet { return s.files }
func (s *Session) Bag() *diag.Bag           { return s.bag }
func (s *Session) Timer() *observ.Timer     { return s.timer }

// phase runs fn inside a trace span and a timer entry of the same name.
func (s *Session) phase(name string, fn func() string) {
	sp := trace.Begin(s.tracer, trace.ScopePass, name, s.span.ID())
	stop := s.timer.Track(name)
	note := fn()
	stop(note)
	sp.End(note)
}

func (s *Session) transformOptions() transform.Options {
	return transform.Options{
		IsCustomElement: s.opts.IsCustomElement,
		Reporter:        s.rep,
		Abbreviate:      !s.opts.NoAbbreviate,
	}
}

func (s *Session) codegenOptions(imported map[string]bool) codegen.Options {
	topts := s.transformOptions()
	return codegen.Options{
		Runtime:        s.opts.Runtime,
		InteropRuntime: s.opts.InteropRuntime,
		Interop:        s.opts.Interop,
		Imported:       imported,
		Transform: func(e jsast.Expr) *ir.Program {
			return transform.Transform(e, s.root, topts)
		},
	}
}

func (s *Session) begin(src []byte) *source.File {
	s.span = trace.Begin(s.tracer, trace.ScopeModule, s.opts.Filename, s.opts.TraceParent)
	id := s.files.AddVirtual(s.opts.Filename, src)
	return s.files.Get(id)
}

// rejectSSR reports the unsupported SSR mode once per compile.
func (s *Session) rejectSSR(file *source.File) {
	if !s.opts.SSR {
		return
	}
	end, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		end = 0
	}
	sp := source.Span{File: file.ID, Start: 0, End: end}
	diag.ReportError(s.rep, diag.TplSSRUnsupported, sp, "server-side rendering output is not supported, emitting client code").Emit()
}

func (s *Session) parserOptions() parser.Options {
	return parser.Options{MaxErrors: s.opts.MaxErrors, Reporter: s.rep}
}

// Compile compiles a source holding exactly one JSX expression.
func (s *Session) Compile(src []byte) Result {
	file := s.begin(src)
	defer func() { s.span.End("") }()
	s.rejectSSR(file)

	var (
		node jsast.Expr
		errs uint
	)
	s.phase("parse", func() string {
		node, errs = parser.ParseExpression(file, s.parserOptions())
		return ""
	})
	if errs > 0 || node == nil || !isJSX(node) {
		if errs == 0 {
			sp := source.Span{File: file.ID}
			if node != nil {
				sp = node.Span()
			}
			diag.ReportError(s.rep, diag.SynNoTemplate, sp, "expected a JSX element or fragment").Emit()
		}
		return s.result("")
	}

	s.phase("transform", func() string {
		transform.Transform(node, s.root, s.transformOptions())
		return ""
	})
	var gen codegen.Result
	s.phase("codegen", func() string {
		gen = codegen.Generate(s.root, s.codegenOptions(nil))
		return ""
	})
	res := s.result("")
	s.phase("assemble", func() string {
		lines := append(append([]string(nil), gen.Declarations...), gen.Programs[0])
		res.Code = strings.Join(lines, "\n")
		res.Imports = gen.Imports
		return ""
	})
	res.Programs = 1
	return res
}

// CompileModule compiles every outermost JSX expression of a JS module in
// place and prepends the runtime imports and the template declarations.
func (s *Session) CompileModule(src []byte) Result {
	file := s.begin(src)
	defer func() { s.span.End("") }()
	s.rejectSSR(file)

	var prog *jsast.Program
	var errs uint
	s.phase("parse", func() string {
		r := parser.ParseFile(file, s.parserOptions())
		prog, errs = r.Program, r.Errors
		return ""
	})
	if errs > 0 || prog == nil {
		return s.result("")
	}

	roots := parser.JSXRoots(prog)
	if len(roots) == 0 {
		return s.result(string(file.Content))
	}
	s.phase("transform", func() string {
		topts := s.transformOptions()
		for _, r := range roots {
			sp := trace.Begin(s.tracer, trace.ScopeNode, "jsx", s.span.ID())
			transform.Transform(r, s.root, topts)
			sp.End(r.Span().String())
		}
		return ""
	})

	var gen codegen.Result
	s.phase("codegen", func() string {
		gen = codegen.Generate(s.root, s.codegenOptions(importedLocals(prog)))
		return ""
	})

	res := s.result("")
	s.phase("assemble", func() string {
		res.Code = splice(file.Content, roots, gen.Programs, gen.Prelude)
		res.Imports = gen.Imports
		return ""
	})
	res.Programs = len(roots)
	return res
}

// splice replaces each root by its program and puts the prelude on top.
func splice(content []byte, roots []jsast.Expr, programs []string, prelude string) string {
	var sb strings.Builder
	if prelude != "" {
		sb.WriteString(prelude)
		sb.WriteString("\n")
	}
	var pos uint32
	for i, r := range roots {
		sp := r.Span()
		sb.Write(content[pos:sp.Start])
		sb.WriteString(programs[i])
		pos = sp.End
	}
	sb.Write(content[pos:])
	return sb.String()
}

// importedLocals collects the local names bound by import declarations.
func importedLocals(prog *jsast.Program) map[string]bool {
	out := make(map[string]bool)
	for _, st := range prog.Body {
		decl, ok := st.(*jsast.ImportDecl)
		if !ok {
			continue
		}
		for _, spec := range decl.Specs {
			if spec.Local != nil {
				out[spec.Local.Name] = true
			}
		}
	}
	return out
}

func isJSX(e jsast.Expr) bool {
	switch e.(type) {
	case *jsast.JSXElement, *jsast.JSXFragment:
		return true
	}
	return false
}

func (s *Session) result(code string) Result {
	s.bag.Sort()
	return Result{
		Code:        code,
		Templates:   s.root.Templates.All(),
		Hoists:      s.root.Hoists.All(),
		Helpers:     s.root.Helpers.Names(),
		Diagnostics: s.bag.Items(),
	}
}

// Compile compiles one JSX expression in a fresh session.
func Compile(src string, opts Options) Result {
	return NewSession(opts).Compile([]byte(src))
}

// CompileModule compiles a JS module in a fresh session.
func CompileModule(src string, opts Options) Result {
	return NewSession(opts).CompileModule([]byte(src))
}
