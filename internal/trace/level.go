package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota // nothing
	LevelError               // crash dumps only
	LevelPhase               // builds and compiler phases
	LevelDetail              // plus one span per file
	LevelDebug               // plus one span per JSX root
)

var levelNames = [...]string{"off", "error", "phase", "detail", "debug"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel accepts the names printed by String in any case.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range levelNames {
		if n == name {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level %q (want %s)", s, strings.Join(levelNames[:], "|"))
}

// ShouldEmit reports whether events of scope pass at this level.
// LevelError keeps the tracer alive for crash dumps but records nothing.
func (l Level) ShouldEmit(scope Scope) bool {
	if l < LevelPhase {
		return false
	}
	// LevelPhase -> ScopePass, LevelDetail -> ScopeModule, LevelDebug -> ScopeNode
	return scope <= Scope(l)
}
