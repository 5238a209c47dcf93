package directive

import "strings"

// Modifiers partitions event modifiers by how the runtime applies them.
type Modifiers struct {
	// Keys guard the handler on the pressed key (withKeys).
	Keys []string
	// NonKeys guard the handler on event state (withModifiers).
	NonKeys []string
	// Options become listener options (passive, once, capture).
	Options []string
}

func isEventOptionModifier(m string) bool {
	return m == "passive" || m == "once" || m == "capture"
}

func isNonKeyModifier(m string) bool {
	switch m {
	case "stop", "prevent", "self", "ctrl", "shift", "alt", "meta", "exact", "middle":
		return true
	}
	return false
}

// left/right — кнопка мыши или клавиша, зависит от события
func maybeKeyModifier(m string) bool { return m == "left" || m == "right" }

// IsKeyboardEvent reports keyup, keydown and keypress.
func IsKeyboardEvent(event string) bool {
	switch strings.ToLower(event) {
	case "keyup", "keydown", "keypress":
		return true
	}
	return false
}

// ResolveModifiers routes modifiers of a handler for event. When static is
// false the event name is only known at runtime and ambiguous modifiers go
// to both guards.
func ResolveModifiers(event string, static bool, modifiers []string) Modifiers {
	var out Modifiers
	for _, m := range modifiers {
		switch {
		case isEventOptionModifier(m):
			out.Options = append(out.Options, m)
		case maybeKeyModifier(m):
			if !static {
				out.Keys = append(out.Keys, m)
				out.NonKeys = append(out.NonKeys, m)
			} else if IsKeyboardEvent(event) {
				out.Keys = append(out.Keys, m)
			} else {
				out.NonKeys = append(out.NonKeys, m)
			}
		case isNonKeyModifier(m):
			out.NonKeys = append(out.NonKeys, m)
		default:
			out.Keys = append(out.Keys, m)
		}
	}
	return out
}
