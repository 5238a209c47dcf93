package scope

import "jsxc/internal/jsast"

// Known is a multiset of names bound by the enclosing scopes.
type Known map[string]int

func (k Known) Add(name string) { k[name]++ }

// Remove drops one binding of name; the entry disappears at zero.
func (k Known) Remove(name string) {
	if k[name] <= 1 {
		delete(k, name)
		return
	}
	k[name]--
}

func (k Known) Has(name string) bool { return k[name] > 0 }

// OnIdentifier is called for identifiers found by WalkIdentifiers. stack
// holds the ancestors of id with the direct parent last. A non-nil result
// replaces id in its parent; the replacement is not walked.
type OnIdentifier func(id *jsast.Ident, parent jsast.Node, stack []jsast.Node, isReference, isLocal bool) jsast.Expr

type Options struct {
	// IncludeAll reports every identifier, bound or not, reference or not.
	IncludeAll bool
	// Known seeds the multiset with names bound outside root. It is
	// restored to its initial contents when the walk returns.
	Known Known
}

// WalkIdentifiers visits root and reports free identifier references to fn.
// It returns root, or the replacement when root itself was an identifier
// that fn replaced.
func WalkIdentifiers(root jsast.Expr, fn OnIdentifier, opts Options) jsast.Expr {
	known := opts.Known
	if known == nil {
		known = Known{}
	}
	var (
		stack  []jsast.Node
		frames [][]string
	)
	mark := func(names []string) {
		for _, n := range names {
			known.Add(n)
		}
		frames = append(frames, names)
	}

	jsast.WalkExpr(&root, jsast.Visitor{
		Enter: func(c *jsast.Cursor) bool {
			if c.Parent != nil {
				stack = append(stack, c.Parent)
			}
			if id, ok := c.Node.(*jsast.Ident); ok {
				frames = append(frames, nil)
				isLocal := known.Has(id.Name)
				isRef := IsReferencedIdentifier(id, c.Parent, stack)
				if opts.IncludeAll || (isRef && !isLocal) {
					if repl := fn(id, c.Parent, stack, isRef, isLocal); repl != nil && c.CanReplace() {
						c.Replace(repl)
					}
				}
				return true
			}
			mark(scopeNames(c.Node))
			return true
		},
		Leave: func(c *jsast.Cursor) {
			if c.Parent != nil {
				stack = stack[:len(stack)-1]
			}
			names := frames[len(frames)-1]
			frames = frames[:len(frames)-1]
			for _, n := range names {
				known.Remove(n)
			}
		},
	})
	return root
}

// scopeNames returns the names n binds for its own subtree.
func scopeNames(n jsast.Node) []string {
	var ids []*jsast.Ident
	switch n := n.(type) {
	case *jsast.Function:
		ids = functionParams(n.Params)
	case *jsast.FuncExpr:
		// имя функционального выражения видно только внутри него
		if n.Fn != nil && n.Fn.ID != nil {
			ids = append(ids, n.Fn.ID)
		}
	case *jsast.ArrowFunc:
		ids = functionParams(n.Params)
	case *jsast.BlockStmt:
		ids = blockDeclarations(n.Body)
	case *jsast.Program:
		ids = blockDeclarations(n.Body)
	case *jsast.SwitchStmt:
		for _, c := range n.Cases {
			ids = append(ids, blockDeclarations(c.Body)...)
		}
	case *jsast.CatchClause:
		if n.Param != nil {
			ids = ExtractIdentifiers(n.Param, nil)
		}
	case *jsast.ForStmt:
		ids = forDeclarations(n.Init, false)
	case *jsast.ForInStmt:
		ids = forDeclarations(n.Left, false)
	}
	if len(ids) == 0 {
		return nil
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.Name
	}
	return names
}

func functionParams(params []jsast.Expr) []*jsast.Ident {
	var ids []*jsast.Ident
	for _, p := range params {
		ids = ExtractIdentifiers(p, ids)
	}
	return ids
}

// blockDeclarations collects names declared directly in a statement list,
// plus `var` loop variables of for statements in it.
func blockDeclarations(body []jsast.Stmt) []*jsast.Ident {
	var ids []*jsast.Ident
	for _, s := range body {
		if e, ok := s.(*jsast.ExportDecl); ok {
			s = e.Decl
		}
		switch s := s.(type) {
		case *jsast.VarDecl:
			for _, d := range s.Decls {
				ids = ExtractIdentifiers(d.Target, ids)
			}
		case *jsast.FuncDecl:
			if s.Fn != nil && s.Fn.ID != nil {
				ids = append(ids, s.Fn.ID)
			}
		case *jsast.ClassDecl:
			if s.Class != nil && s.Class.ID != nil {
				ids = append(ids, s.Class.ID)
			}
		case *jsast.ForStmt:
			ids = append(ids, forDeclarations(s.Init, true)...)
		case *jsast.ForInStmt:
			ids = append(ids, forDeclarations(s.Left, true)...)
		}
	}
	return ids
}

// forDeclarations returns loop variables: `var` ones when isVar is set
// (they belong to the enclosing block), let/const ones otherwise.
func forDeclarations(init jsast.Node, isVar bool) []*jsast.Ident {
	decl, ok := init.(*jsast.VarDecl)
	if !ok || (decl.Kind == "var") != isVar {
		return nil
	}
	var ids []*jsast.Ident
	for _, d := range decl.Decls {
		ids = ExtractIdentifiers(d.Target, ids)
	}
	return ids
}

// Uses reports whether expr reads the free variable name.
func Uses(expr jsast.Expr, name string) bool {
	found := false
	WalkIdentifiers(expr, func(id *jsast.Ident, _ jsast.Node, _ []jsast.Node, _, _ bool) jsast.Expr {
		if id.Name == name {
			found = true
		}
		return nil
	}, Options{})
	return found
}

// FreeNames returns the distinct free variables read by expr in first-use order.
func FreeNames(expr jsast.Expr) []string {
	var names []string
	seen := map[string]bool{}
	WalkIdentifiers(expr, func(id *jsast.Ident, _ jsast.Node, _ []jsast.Node, _, _ bool) jsast.Expr {
		if !seen[id.Name] {
			seen[id.Name] = true
			names = append(names, id.Name)
		}
		return nil
	}, Options{})
	return names
}
