package trace

import "time"

// Kind is what an event marks.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
	KindHeartbeat // признак жизни долгой сборки
)

var kindNames = [...]string{KindSpanBegin: "begin", KindSpanEnd: "end", KindPoint: "point", KindHeartbeat: "heartbeat"}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown"
}

// Scope is the granularity of an event; smaller is coarser.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // команда, сборка каталога
	ScopePass                    // parse, transform, codegen, assemble
	ScopeModule                  // один файл
	ScopeNode                    // один JSX-корень
)

var scopeNames = [...]string{ScopeDriver: "driver", ScopePass: "pass", ScopeModule: "module", ScopeNode: "node"}

func (s Scope) String() string {
	if int(s) < len(scopeNames) && scopeNames[s] != "" {
		return scopeNames[s]
	}
	return "unknown"
}

// Event is one trace record. Tracers copy it, so emitters may reuse it.
type Event struct {
	Time     time.Time
	Seq      uint64
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 для корня
	GID      uint64
	Name     string // "parse", "file:src/App.jsx"
	Detail   string
	Extra    map[string]string
}
