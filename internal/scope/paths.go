package scope

import (
	"jsxc/internal/jsast"
)

type StepKind uint8

const (
	StepKey      StepKind = iota // .key or ["key"]
	StepComputed                 // [expr]
	StepIndex                    // [n]
	StepSlice                    // .slice(n), array rest
	StepRest                     // object rest without the listed keys
	StepDefault                  // default value applied to the path so far
)

// Step is one accessor applied to a destructured value.
type Step struct {
	Kind  StepKind
	Key   string
	Index int
	// Expr is the computed key for StepComputed and the fallback for StepDefault.
	Expr jsast.Expr
	// Exclude lists the sibling keys of an object rest; static keys are *jsast.StringLit.
	Exclude []jsast.Expr
}

// Path describes how to reach one bound name from the destructured value.
type Path struct {
	Name  string
	Ident *jsast.Ident
	Steps []Step
}

// DestructurePaths returns one access path per identifier bound by pattern,
// in source order. A plain identifier yields a single path without steps.
func DestructurePaths(pattern jsast.Expr) []Path {
	if pattern == nil {
		return nil
	}
	var paths []Path
	WalkIdentifiers(pattern, func(id *jsast.Ident, _ jsast.Node, stack []jsast.Node, _, _ bool) jsast.Expr {
		steps, ok := pathSteps(id, stack)
		if ok {
			paths = append(paths, Path{Name: id.Name, Ident: id, Steps: steps})
		}
		return nil
	}, Options{IncludeAll: true})
	return paths
}

// pathSteps converts the ancestor chain of a bound identifier into steps.
// ok is false for identifiers that are not binding targets (keys, defaults).
func pathSteps(id *jsast.Ident, stack []jsast.Node) (steps []Step, ok bool) {
	for i, parent := range stack {
		var child jsast.Node = id
		if i+1 < len(stack) {
			child = stack[i+1]
		}
		switch p := parent.(type) {
		case *jsast.Property:
			if p.Value != child {
				return nil, false
			}
			if p.Computed {
				steps = append(steps, Step{Kind: StepComputed, Expr: p.Key})
				continue
			}
			steps = append(steps, Step{Kind: StepKey, Key: StaticKey(p.Key)})
		case *jsast.ArrayPattern:
			for idx, el := range p.Elems {
				if el == child {
					if _, rest := el.(*jsast.RestElem); rest {
						steps = append(steps, Step{Kind: StepSlice, Index: idx})
					} else {
						steps = append(steps, Step{Kind: StepIndex, Index: idx})
					}
					break
				}
			}
		case *jsast.ObjectPattern:
			if p.Rest != nil && jsast.Node(p.Rest) == child {
				steps = append(steps, Step{Kind: StepRest, Exclude: restExclusions(p)})
			}
		case *jsast.AssignPattern:
			if p.Left != child {
				return nil, false
			}
			steps = append(steps, Step{Kind: StepDefault, Expr: p.Right})
		case *jsast.RestElem, *jsast.ParenExpr:
		default:
			return nil, false
		}
	}
	return steps, true
}

func restExclusions(p *jsast.ObjectPattern) []jsast.Expr {
	out := make([]jsast.Expr, 0, len(p.Props))
	for _, prop := range p.Props {
		if prop.Computed {
			out = append(out, prop.Key)
			continue
		}
		key := StaticKey(prop.Key)
		out = append(out, &jsast.StringLit{Value: key})
	}
	return out
}

// StaticKey returns the property name of a non-computed key.
func StaticKey(key jsast.Expr) string {
	switch k := key.(type) {
	case *jsast.Ident:
		return k.Name
	case *jsast.StringLit:
		return k.Value
	case *jsast.NumberLit:
		return k.Raw
	}
	return ""
}
