// Package scope resolves identifiers inside embedded template expressions.
//
// IsReferenced and IsReferencedIdentifier decide whether an identifier reads
// a variable. WalkIdentifiers walks an expression, tracks the names bound by
// nested functions, blocks, catch clauses and loops, and reports every free
// reference; the callback may replace the identifier in place.
package scope

import "jsxc/internal/jsast"

// IsReferenced reports whether node, an identifier directly under parent,
// reads a binding. grandparent is the parent's parent and may be nil.
// Assignment targets are not references here; see IsReferencedIdentifier.
func IsReferenced(node, parent, grandparent jsast.Node) bool {
	switch p := parent.(type) {
	case *jsast.MemberExpr:
		if p.Property == node {
			return p.Computed
		}
		return p.Object == node
	case *jsast.Property:
		if p.Key == node {
			return p.Computed
		}
		// значение свойства внутри паттерна — цель привязки
		_, inPattern := grandparent.(*jsast.ObjectPattern)
		return !inPattern
	case *jsast.ClassMember:
		if p.Key == node {
			return p.Computed
		}
		return true
	case *jsast.Class:
		return p.Super == node
	case *jsast.AssignExpr:
		return p.Value == node
	case *jsast.AssignPattern:
		return p.Right == node
	case *jsast.Declarator:
		return p.Init == node
	case *jsast.Function:
		return false
	case *jsast.ArrowFunc:
		return p.Expr == node
	case *jsast.LabeledStmt, *jsast.BreakStmt, *jsast.ContinueStmt:
		return false
	case *jsast.CatchClause:
		return false
	case *jsast.RestElem, *jsast.ArrayPattern, *jsast.ObjectPattern:
		return false
	case *jsast.ImportSpec, *jsast.ExportSpec:
		return false
	case *jsast.ForInStmt:
		return p.Left != node
	case *jsast.MetaProperty, *jsast.PrivateName:
		return false
	}
	return true
}

// IsReferencedIdentifier is IsReferenced extended to assignment targets,
// which still have to be rewritten when the assigned variable is free.
// stack holds the ancestors of id, the direct parent last.
func IsReferencedIdentifier(id *jsast.Ident, parent jsast.Node, stack []jsast.Node) bool {
	if parent == nil {
		return true
	}
	if id.Name == "arguments" {
		return false
	}
	var grandparent jsast.Node
	if len(stack) >= 2 {
		grandparent = stack[len(stack)-2]
	}
	if IsReferenced(id, parent, grandparent) {
		return true
	}
	switch p := parent.(type) {
	case *jsast.AssignExpr, *jsast.AssignPattern:
		return true
	case *jsast.Property:
		return p.Key != jsast.Node(id) && IsInDestructureAssignment(parent, stack)
	case *jsast.ArrayPattern:
		return IsInDestructureAssignment(parent, stack)
	case *jsast.RestElem:
		return IsInDestructureAssignment(parent, stack)
	case *jsast.ForInStmt:
		// for (x of list) без объявления присваивает x
		return true
	}
	return false
}

// IsInDestructureAssignment reports whether parent (a pattern entry) belongs
// to the target of an assignment expression rather than to a declaration.
func IsInDestructureAssignment(parent jsast.Node, stack []jsast.Node) bool {
	switch parent.(type) {
	case *jsast.Property, *jsast.ArrayPattern, *jsast.RestElem:
	default:
		return false
	}
	for i := len(stack) - 1; i >= 0; i-- {
		switch stack[i].(type) {
		case *jsast.AssignExpr:
			return true
		case *jsast.ForInStmt:
			return true
		case *jsast.Property, *jsast.ObjectPattern, *jsast.ArrayPattern,
			*jsast.AssignPattern, *jsast.RestElem:
			continue
		}
		return false
	}
	return false
}
