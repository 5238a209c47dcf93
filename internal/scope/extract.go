package scope

import "jsxc/internal/jsast"

// ExtractIdentifiers appends the identifiers bound by a parameter or
// destructuring pattern to ids. Member targets contribute their root object.
func ExtractIdentifiers(pattern jsast.Expr, ids []*jsast.Ident) []*jsast.Ident {
	switch p := pattern.(type) {
	case *jsast.Ident:
		ids = append(ids, p)
	case *jsast.MemberExpr:
		obj := p.Object
		for {
			m, ok := obj.(*jsast.MemberExpr)
			if !ok {
				break
			}
			obj = m.Object
		}
		if id, ok := obj.(*jsast.Ident); ok {
			ids = append(ids, id)
		}
	case *jsast.ObjectPattern:
		for _, prop := range p.Props {
			ids = ExtractIdentifiers(prop.Value, ids)
		}
		if p.Rest != nil {
			ids = ExtractIdentifiers(p.Rest.Arg, ids)
		}
	case *jsast.ArrayPattern:
		for _, el := range p.Elems {
			if el != nil {
				ids = ExtractIdentifiers(el, ids)
			}
		}
	case *jsast.RestElem:
		ids = ExtractIdentifiers(p.Arg, ids)
	case *jsast.AssignPattern:
		ids = ExtractIdentifiers(p.Left, ids)
	case *jsast.ParenExpr:
		ids = ExtractIdentifiers(p.X, ids)
	}
	return ids
}

// BoundNames is ExtractIdentifiers returning names only.
func BoundNames(pattern jsast.Expr) []string {
	ids := ExtractIdentifiers(pattern, nil)
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id.Name
	}
	return names
}
