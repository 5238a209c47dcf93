// Package jsast defines an ESTree-shaped syntax tree for the JavaScript subset
// that appears in JSX templates and the modules around them.
//
// Nodes are pointers. Expression-like nodes (including destructuring patterns)
// implement Expr; statements implement Stmt. Structural nodes that are neither
// (Property, ClassMember, Function, ...) implement Node only.
package jsast

import "jsxc/internal/source"

type Node interface {
	Span() source.Span
	node()
}

type Expr interface {
	Node
	expr()
}

type Stmt interface {
	Node
	stmt()
}

type base struct {
	Loc source.Span
}

func (b *base) Span() source.Span { return b.Loc }
func (*base) node()               {}

// SetSpan overrides the node location.
func (b *base) SetSpan(sp source.Span) { b.Loc = sp }

type spanSetter interface{ SetSpan(source.Span) }

// At sets the location of n and returns it, so nodes can be built inline:
//
//	id := jsast.At(sp, &jsast.Ident{Name: "x"})
func At[T spanSetter](sp source.Span, n T) T {
	n.SetSpan(sp)
	return n
}

type exprBase struct{ base }

func (*exprBase) expr() {}

type stmtBase struct{ base }

func (*stmtBase) stmt() {}

// ---- expressions ----

type (
	Ident struct {
		exprBase
		Name string
	}

	// PrivateName is `#name`; Name excludes the hash.
	PrivateName struct {
		exprBase
		Name string
	}

	NullLit struct{ exprBase }

	BoolLit struct {
		exprBase
		Value bool
	}

	NumberLit struct {
		exprBase
		Raw   string
		Value float64
	}

	BigIntLit struct {
		exprBase
		Raw string
	}

	StringLit struct {
		exprBase
		Value string
		Raw   string // с кавычками; пустой у синтезированных строк
	}

	RegExpLit struct {
		exprBase
		Pattern string
		Flags   string
	}

	TemplateElem struct {
		base
		Raw    string
		Cooked string
	}

	TemplateLit struct {
		exprBase
		Quasis []*TemplateElem
		Exprs  []Expr
	}

	TaggedTemplate struct {
		exprBase
		Tag   Expr
		Quasi *TemplateLit
	}

	ThisExpr  struct{ exprBase }
	SuperExpr struct{ exprBase }

	// ArrayLit elements may be nil (holes) or *SpreadElem.
	ArrayLit struct {
		exprBase
		Elems []Expr
	}

	ObjectLit struct {
		exprBase
		Props []*Property
	}

	FuncExpr struct {
		exprBase
		Fn *Function
	}

	// ArrowFunc has exactly one of Body and Expr set.
	ArrowFunc struct {
		exprBase
		Params []Expr
		Body   *BlockStmt
		Expr   Expr
		Async  bool
	}

	ClassExpr struct {
		exprBase
		Class *Class
	}

	UnaryExpr struct {
		exprBase
		Op string
		X  Expr
	}

	UpdateExpr struct {
		exprBase
		Op     string
		Prefix bool
		X      Expr
	}

	// BinaryExpr also carries logical operators (&&, ||, ??), `in` and `instanceof`.
	BinaryExpr struct {
		exprBase
		Op string
		X  Expr
		Y  Expr
	}

	AssignExpr struct {
		exprBase
		Op     string
		Target Expr
		Value  Expr
	}

	CondExpr struct {
		exprBase
		Test Expr
		Cons Expr
		Alt  Expr
	}

	CallExpr struct {
		exprBase
		Callee   Expr
		Args     []Expr
		Optional bool
	}

	NewExpr struct {
		exprBase
		Callee Expr
		Args   []Expr
	}

	// MemberExpr: a non-computed Property is *Ident or *PrivateName.
	MemberExpr struct {
		exprBase
		Object   Expr
		Property Expr
		Computed bool
		Optional bool
	}

	SeqExpr struct {
		exprBase
		Exprs []Expr
	}

	SpreadElem struct {
		exprBase
		X Expr
	}

	YieldExpr struct {
		exprBase
		X        Expr
		Delegate bool
	}

	AwaitExpr struct {
		exprBase
		X Expr
	}

	// MetaProperty is new.target or import.meta.
	MetaProperty struct {
		exprBase
		Meta     string
		Property string
	}

	// ImportCall is dynamic `import(source)`.
	ImportCall struct {
		exprBase
		Source Expr
	}

	// ParenExpr keeps user parentheses only where the printer cannot infer them
	// (a parenthesised sequence used as a v-for binding list).
	ParenExpr struct {
		exprBase
		X Expr
	}
)

// ---- patterns ----

type (
	ObjectPattern struct {
		exprBase
		Props []*Property
		Rest  *RestElem
	}

	// ArrayPattern elements may be nil (holes) or *RestElem (last).
	ArrayPattern struct {
		exprBase
		Elems []Expr
	}

	AssignPattern struct {
		exprBase
		Left  Expr
		Right Expr
	}

	RestElem struct {
		exprBase
		Arg Expr
	}
)

// ---- structural nodes ----

type PropKind uint8

const (
	PropInit PropKind = iota
	PropGet
	PropSet
	PropMethod
	PropSpread // Value holds the spread argument, Key is nil
)

// Property is an object literal or object pattern entry.
type Property struct {
	base
	Kind      PropKind
	Key       Expr
	Value     Expr
	Computed  bool
	Shorthand bool
}

type Function struct {
	base
	ID        *Ident
	Params    []Expr
	Body      *BlockStmt
	Async     bool
	Generator bool
}

type MemberKind uint8

const (
	MemberMethod MemberKind = iota
	MemberGetter
	MemberSetter
	MemberField
	MemberStaticBlock
)

type ClassMember struct {
	base
	Kind     MemberKind
	Static   bool
	Key      Expr // *Ident, *PrivateName, literal or computed expression
	Computed bool
	Value    Expr       // *FuncExpr for methods, initializer for fields
	Body     *BlockStmt // static blocks
}

type Class struct {
	base
	ID      *Ident
	Super   Expr
	Members []*ClassMember
}

type Declarator struct {
	base
	Target Expr
	Init   Expr
}

type CatchClause struct {
	base
	Param Expr
	Body  *BlockStmt
}

type SwitchCase struct {
	base
	Test Expr // nil for default
	Body []Stmt
}

type ImportKind uint8

const (
	ImportNamed ImportKind = iota
	ImportDefault
	ImportNamespace
)

type ImportSpec struct {
	base
	Kind     ImportKind
	Imported string
	Local    *Ident
}

type ExportSpec struct {
	base
	Local    string
	Exported string
}

// ---- statements ----

type (
	ExprStmt struct {
		stmtBase
		X Expr
	}

	VarDecl struct {
		stmtBase
		Kind  string // var, let, const
		Decls []*Declarator
	}

	FuncDecl struct {
		stmtBase
		Fn *Function
	}

	ClassDecl struct {
		stmtBase
		Class *Class
	}

	ReturnStmt struct {
		stmtBase
		X Expr
	}

	IfStmt struct {
		stmtBase
		Test Expr
		Cons Stmt
		Alt  Stmt
	}

	// ForStmt.Init is *VarDecl, an Expr or nil.
	ForStmt struct {
		stmtBase
		Init   Node
		Test   Expr
		Update Expr
		Body   Stmt
	}

	// ForInStmt covers for-in and for-of; Left is *VarDecl or a pattern.
	ForInStmt struct {
		stmtBase
		Left  Node
		Right Expr
		Body  Stmt
		Of    bool
		Await bool
	}

	WhileStmt struct {
		stmtBase
		Test Expr
		Body Stmt
	}

	DoWhileStmt struct {
		stmtBase
		Body Stmt
		Test Expr
	}

	BlockStmt struct {
		stmtBase
		Body []Stmt
	}

	TryStmt struct {
		stmtBase
		Block     *BlockStmt
		Handler   *CatchClause
		Finalizer *BlockStmt
	}

	ThrowStmt struct {
		stmtBase
		X Expr
	}

	BreakStmt struct {
		stmtBase
		Label *Ident
	}

	ContinueStmt struct {
		stmtBase
		Label *Ident
	}

	LabeledStmt struct {
		stmtBase
		Label *Ident
		Body  Stmt
	}

	SwitchStmt struct {
		stmtBase
		Disc  Expr
		Cases []*SwitchCase
	}

	EmptyStmt    struct{ stmtBase }
	DebuggerStmt struct{ stmtBase }

	ImportDecl struct {
		stmtBase
		Specs  []*ImportSpec
		Source *StringLit
	}

	// ExportDecl is `export <declaration>`.
	ExportDecl struct {
		stmtBase
		Decl Stmt
	}

	// ExportDefault.Decl is an Expr, *FuncDecl or *ClassDecl.
	ExportDefault struct {
		stmtBase
		Decl Node
	}

	ExportNamed struct {
		stmtBase
		Specs  []*ExportSpec
		Source *StringLit
	}

	ExportAll struct {
		stmtBase
		Exported string
		Source   *StringLit
	}
)

type Program struct {
	base
	Body []Stmt
}

// ---- JSX ----

type (
	JSXElement struct {
		exprBase
		Name        Expr // *JSXIdent, *JSXMemberExpr or *JSXNamespacedName
		Attrs       []Node
		Children    []Expr
		SelfClosing bool
		OpenSpan    source.Span
	}

	JSXFragment struct {
		exprBase
		Children []Expr
	}

	JSXIdent struct {
		exprBase
		Name string
	}

	JSXNamespacedName struct {
		exprBase
		Namespace *JSXIdent
		Name      *JSXIdent
	}

	JSXMemberExpr struct {
		exprBase
		Object   Expr // *JSXIdent or *JSXMemberExpr
		Property *JSXIdent
	}

	// JSXAttr.Value is nil, *StringLit, *JSXExprContainer, *JSXElement or *JSXFragment.
	JSXAttr struct {
		base
		Name  Expr // *JSXIdent or *JSXNamespacedName
		Value Expr
	}

	JSXSpreadAttr struct {
		base
		X Expr
	}

	JSXExprContainer struct {
		exprBase
		X Expr // *JSXEmptyExpr for `{}` and `{/* comment */}`
	}

	JSXEmptyExpr struct{ exprBase }

	JSXSpreadChild struct {
		exprBase
		X Expr
	}

	JSXText struct {
		exprBase
		Value string // HTML entities decoded
		Raw   string
	}
)
